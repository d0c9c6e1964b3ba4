package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "innerwork"
	serviceName       = "innerwork.recorder.v1.Recorder"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodCapture     = "/" + serviceName + "/Capture"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "INNERWORK_RECORDER",
	MagicCookieValue: "innerwork",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Kinds   []string `json:"kinds"`
}

type CaptureRequest struct {
	Kind       string `json:"kind"`
	MaxSeconds int32  `json:"max_seconds"`
}

type CaptureResponse struct {
	Kind          string `json:"kind"`
	MIME          string `json:"mime"`
	PayloadBase64 string `json:"payload_base64"`
}

type RecorderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Capture(ctx context.Context, in *CaptureRequest) (*CaptureResponse, error)
}

type RecorderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Capture(ctx context.Context, in *CaptureRequest) (*CaptureResponse, error)
}

type recorderClient struct {
	conn *grpc.ClientConn
}

func NewRecorderClient(conn *grpc.ClientConn) RecorderClient {
	return &recorderClient{conn: conn}
}

func (c *recorderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recorderClient) Capture(ctx context.Context, in *CaptureRequest) (*CaptureResponse, error) {
	out := &CaptureResponse{}
	if err := c.conn.Invoke(ctx, methodCapture, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterRecorderServer(server grpc.ServiceRegistrar, impl RecorderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*RecorderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Capture",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &CaptureRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Capture(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCapture}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*CaptureRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Capture(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/recorder-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl RecorderServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterRecorderServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewRecorderClient(conn), nil
}

func PluginMap(impl RecorderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
