package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/vibechef/models"
)

const ServiceName = "vibechef.RecipeStore"

const (
	MethodRegister = "/" + ServiceName + "/Register"
	MethodLogin    = "/" + ServiceName + "/Login"
	MethodUpsert   = "/" + ServiceName + "/Upsert"
	MethodDelete   = "/" + ServiceName + "/Delete"
	MethodSetField = "/" + ServiceName + "/SetField"
	MethodWatch    = "/" + ServiceName + "/Watch"
)

// PublicMethods do not require a bearer token.
var PublicMethods = map[string]bool{
	MethodRegister: true,
	MethodLogin:    true,
}

// RecipeStoreServer is implemented by the server-side gRPC handler.
type RecipeStoreServer interface {
	Register(ctx context.Context, req *AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *AuthRequest) (*AuthResponse, error)
	Upsert(ctx context.Context, req *UpsertRequest) (*UpsertResponse, error)
	Delete(ctx context.Context, req *DeleteRequest) (*Empty, error)
	SetField(ctx context.Context, req *SetFieldRequest) (*Empty, error)
	Watch(req *WatchRequest, stream WatchServerStream) error
}

// WatchServerStream sends history frames to one subscriber.
type WatchServerStream interface {
	Send(frame *models.HistoryFrame) error
	grpc.ServerStream
}

type watchServerStream struct {
	grpc.ServerStream
}

func (s *watchServerStream) Send(frame *models.HistoryFrame) error {
	return s.ServerStream.SendMsg(frame)
}

// WatchStreamDesc describes the server-streaming Watch call for clients.
var WatchStreamDesc = grpc.StreamDesc{
	StreamName:    "Watch",
	ServerStreams: true,
}

// ServiceDesc registers a RecipeStoreServer on a *grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecipeStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(MethodRegister, RecipeStoreServer.Register)},
		{MethodName: "Login", Handler: unary(MethodLogin, RecipeStoreServer.Login)},
		{MethodName: "Upsert", Handler: unary(MethodUpsert, RecipeStoreServer.Upsert)},
		{MethodName: "Delete", Handler: unary(MethodDelete, RecipeStoreServer.Delete)},
		{MethodName: "SetField", Handler: unary(MethodSetField, RecipeStoreServer.SetField)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Watch", Handler: watchHandler, ServerStreams: true},
	},
	Metadata: "vibechef/recipe_store",
}

func RegisterRecipeStoreServer(s grpc.ServiceRegistrar, srv RecipeStoreServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

// unary adapts a typed server method to a grpc.MethodDesc handler.
func unary[Req, Resp any](fullMethod string, call func(RecipeStoreServer, context.Context, *Req) (*Resp, error)) unaryHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecipeStoreServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecipeStoreServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(RecipeStoreServer).Watch(in, &watchServerStream{stream})
}
