package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	recorderrpc "innerwork/internal/modules/recorder/adapter/out/rpc"
	"innerwork/internal/modules/recorder/domain"
	recorderout "innerwork/internal/modules/recorder/port/out"
)

const (
	defaultStartTimeout   = 3 * time.Second
	defaultCallTimeout    = 5 * time.Second
	defaultCaptureTimeout = 120 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() recorderout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	kinds := make([]domain.CaptureKind, 0, len(meta.Kinds))
	for _, kind := range meta.Kinds {
		kinds = append(kinds, domain.CaptureKind(kind))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Kinds: kinds}, nil
}

// Capture runs one capture call. The timeout is generous because the
// recorder blocks until the user finishes recording.
func (h *GRPCHost) Capture(ctx context.Context, manifest domain.Manifest, input domain.CaptureRequest) (domain.CaptureResult, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.CaptureResult{}, err
	}
	defer closeFn()

	timeout := defaultCaptureTimeout
	if input.MaxSeconds > 0 {
		timeout = time.Duration(input.MaxSeconds)*time.Second + defaultCallTimeout
	}
	callCtx, cancel := h.callContext(ctx, timeout)
	defer cancel()
	response, err := client.Capture(callCtx, &recorderrpc.CaptureRequest{
		Kind:       string(input.Kind),
		MaxSeconds: int32(input.MaxSeconds),
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.CaptureResult{}, fmt.Errorf("%w: %s capture", domain.ErrRecorderTimeout, input.Kind)
		}
		return domain.CaptureResult{}, fmt.Errorf("capture: %w", err)
	}
	return domain.CaptureResult{
		Kind:          domain.CaptureKind(response.Kind),
		MIME:          response.MIME,
		PayloadBase64: response.PayloadBase64,
	}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (recorderrpc.RecorderClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  recorderrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          recorderrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start recorder client: %w", err)
	}
	raw, err := rpcClient.Dispense(recorderrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense recorder: %w", err)
	}
	typed, ok := raw.(recorderrpc.RecorderClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("recorder rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
