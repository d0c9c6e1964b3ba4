package in

import (
	"context"

	"innerwork/internal/modules/history/dto"
	historyin "innerwork/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, filter string) ([]dto.Item, error) {
	return h.usecase.List(ctx, filter)
}

func (h CLIHandler) Delete(ctx context.Context, id, category string) error {
	return h.usecase.Delete(ctx, id, category)
}
