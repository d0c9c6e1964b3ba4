package in

import (
	"context"

	"innerwork/internal/modules/insights/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.Summary, error)
}
