package out

import (
	"context"

	"innerwork/internal/modules/recorder/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Capture(ctx context.Context, manifest domain.Manifest, input domain.CaptureRequest) (domain.CaptureResult, error)
}
