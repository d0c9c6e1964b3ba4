package usecase

import (
	"context"

	"innerwork/internal/modules/recorder/dto"
	recorderin "innerwork/internal/modules/recorder/port/in"
	"innerwork/internal/modules/recorder/service"
)

type Interactor struct {
	svc *service.RecorderService
}

func NewInteractor(svc *service.RecorderService) recorderin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.RecorderInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Capture(ctx context.Context, input dto.CaptureInput) (dto.CaptureOutput, error) {
	return i.svc.Capture(ctx, input)
}
