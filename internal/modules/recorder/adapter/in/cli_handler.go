package in

import (
	"context"

	"innerwork/internal/modules/recorder/dto"
	recorderin "innerwork/internal/modules/recorder/port/in"
)

type CLIHandler struct {
	usecase recorderin.Usecase
}

func NewCLIHandler(usecase recorderin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.RecorderInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Capture(ctx context.Context, recorderName, kind string, maxSeconds int) (dto.CaptureOutput, error) {
	return h.usecase.Capture(ctx, dto.CaptureInput{RecorderName: recorderName, Kind: kind, MaxSeconds: maxSeconds})
}
