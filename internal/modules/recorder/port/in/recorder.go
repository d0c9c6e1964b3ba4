package in

import (
	"context"

	"innerwork/internal/modules/recorder/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RecorderInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Capture(ctx context.Context, input dto.CaptureInput) (dto.CaptureOutput, error)
}
