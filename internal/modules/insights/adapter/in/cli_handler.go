package in

import (
	"context"

	"innerwork/internal/modules/insights/dto"
	insightsin "innerwork/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (dto.Summary, error) {
	return h.usecase.Summary(ctx)
}
