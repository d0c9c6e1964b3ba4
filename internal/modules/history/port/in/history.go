package in

import (
	"context"

	"innerwork/internal/modules/history/dto"
)

type Usecase interface {
	List(ctx context.Context, filter string) ([]dto.Item, error)
	Delete(ctx context.Context, id, category string) error
}
