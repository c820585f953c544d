// Package proto declares the bowlsignup gRPC service. Messages are protobuf
// well-known types (Struct, ListValue, wrappers, Empty), so the service needs
// no generated message code; the descriptor below mirrors what
// protoc-gen-go-grpc would emit for it.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "bowlsignup.BowlerService"

const (
	BowlerService_AddBowler_FullMethodName          = "/" + ServiceName + "/AddBowler"
	BowlerService_DeleteBowler_FullMethodName       = "/" + ServiceName + "/DeleteBowler"
	BowlerService_BatchDeleteBowlers_FullMethodName = "/" + ServiceName + "/BatchDeleteBowlers"
	BowlerService_SubscribeBowlers_FullMethodName   = "/" + ServiceName + "/SubscribeBowlers"
	BowlerService_Login_FullMethodName              = "/" + ServiceName + "/Login"
	BowlerService_ExportBowlers_FullMethodName      = "/" + ServiceName + "/ExportBowlers"
	BowlerService_Ping_FullMethodName               = "/" + ServiceName + "/Ping"
)

// BowlerServiceServer is the server API for BowlerService.
type BowlerServiceServer interface {
	AddBowler(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	DeleteBowler(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	BatchDeleteBowlers(context.Context, *structpb.ListValue) (*emptypb.Empty, error)
	SubscribeBowlers(*emptypb.Empty, grpc.ServerStreamingServer[structpb.ListValue]) error
	Login(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	ExportBowlers(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedBowlerServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedBowlerServiceServer struct{}

func (UnimplementedBowlerServiceServer) AddBowler(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddBowler not implemented")
}
func (UnimplementedBowlerServiceServer) DeleteBowler(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBowler not implemented")
}
func (UnimplementedBowlerServiceServer) BatchDeleteBowlers(context.Context, *structpb.ListValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BatchDeleteBowlers not implemented")
}
func (UnimplementedBowlerServiceServer) SubscribeBowlers(*emptypb.Empty, grpc.ServerStreamingServer[structpb.ListValue]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeBowlers not implemented")
}
func (UnimplementedBowlerServiceServer) Login(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedBowlerServiceServer) ExportBowlers(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBowlers not implemented")
}
func (UnimplementedBowlerServiceServer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}

func RegisterBowlerServiceServer(s grpc.ServiceRegistrar, srv BowlerServiceServer) {
	s.RegisterService(&BowlerService_ServiceDesc, srv)
}

func _BowlerService_AddBowler_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).AddBowler(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_AddBowler_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).AddBowler(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlerService_DeleteBowler_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).DeleteBowler(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_DeleteBowler_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).DeleteBowler(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlerService_BatchDeleteBowlers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).BatchDeleteBowlers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_BatchDeleteBowlers_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).BatchDeleteBowlers(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlerService_SubscribeBowlers_Handler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BowlerServiceServer).SubscribeBowlers(m, &grpc.GenericServerStream[emptypb.Empty, structpb.ListValue]{ServerStream: stream})
}

func _BowlerService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).Login(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlerService_ExportBowlers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).ExportBowlers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_ExportBowlers_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).ExportBowlers(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlerService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlerServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlerService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlerServiceServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// BowlerService_ServiceDesc is the grpc.ServiceDesc for BowlerService.
var BowlerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BowlerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddBowler", Handler: _BowlerService_AddBowler_Handler},
		{MethodName: "DeleteBowler", Handler: _BowlerService_DeleteBowler_Handler},
		{MethodName: "BatchDeleteBowlers", Handler: _BowlerService_BatchDeleteBowlers_Handler},
		{MethodName: "Login", Handler: _BowlerService_Login_Handler},
		{MethodName: "ExportBowlers", Handler: _BowlerService_ExportBowlers_Handler},
		{MethodName: "Ping", Handler: _BowlerService_Ping_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeBowlers",
			Handler:       _BowlerService_SubscribeBowlers_Handler,
			ServerStreams: true,
		},
	},
}

// BowlerServiceClient is the client API for BowlerService.
type BowlerServiceClient interface {
	AddBowler(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DeleteBowler(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	BatchDeleteBowlers(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SubscribeBowlers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.ListValue], error)
	Login(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	ExportBowlers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type bowlerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBowlerServiceClient(cc grpc.ClientConnInterface) BowlerServiceClient {
	return &bowlerServiceClient{cc}
}

func (c *bowlerServiceClient) AddBowler(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, BowlerService_AddBowler_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlerServiceClient) DeleteBowler(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, BowlerService_DeleteBowler_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlerServiceClient) BatchDeleteBowlers(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, BowlerService_BatchDeleteBowlers_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlerServiceClient) SubscribeBowlers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.ListValue], error) {
	stream, err := c.cc.NewStream(ctx, &BowlerService_ServiceDesc.Streams[0], BowlerService_SubscribeBowlers_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.ListValue]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *bowlerServiceClient) Login(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, BowlerService_Login_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlerServiceClient) ExportBowlers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, BowlerService_ExportBowlers_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlerServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, BowlerService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
