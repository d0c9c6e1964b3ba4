package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-plugin"

	recorderrpc "innerwork/internal/modules/recorder/adapter/out/rpc"
)

// The reference recorder captures nothing from real hardware. It reads
// a fixture file named by INNERWORK_CAPTURE_FILE, or falls back to a
// small deterministic payload, so the host pipeline can be exercised
// end to end without devices.
type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *recorderrpc.Empty) (*recorderrpc.Metadata, error) {
	return &recorderrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
		Kinds:   []string{"audio", "video"},
	}, nil
}

func (s *server) Capture(_ context.Context, in *recorderrpc.CaptureRequest) (*recorderrpc.CaptureResponse, error) {
	var mime string
	switch in.Kind {
	case "audio":
		mime = "audio/webm"
	case "video":
		mime = "video/webm"
	default:
		return nil, fmt.Errorf("unknown capture kind: %s", in.Kind)
	}

	payload := []byte("reference-" + in.Kind + "-capture")
	if path := strings.TrimSpace(os.Getenv("INNERWORK_CAPTURE_FILE")); path != "" {
		fromFile, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read capture fixture: %w", err)
		}
		payload = fromFile
	}
	return &recorderrpc.CaptureResponse{
		Kind:          in.Kind,
		MIME:          mime,
		PayloadBase64: base64.StdEncoding.EncodeToString(payload),
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: recorderrpc.HandshakeConfig,
		Plugins:         recorderrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
