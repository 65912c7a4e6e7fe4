package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName, gRPC servis adıdır. Mesajlar protobuf well-known type'larıyla taşınır.
const ServiceName = "sentiric.phonemask.v1.PhoneMaskService"

const (
	FormatPhoneMethod     = "/" + ServiceName + "/FormatPhone"
	GuessCountryMethod    = "/" + ServiceName + "/GuessCountry"
	ListCountriesMethod   = "/" + ServiceName + "/ListCountries"
	ReloadCountriesMethod = "/" + ServiceName + "/ReloadCountries"
)

// PhoneMaskServer is the server API of the phone mask service.
type PhoneMaskServer interface {
	FormatPhone(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GuessCountry(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListCountries(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ReloadCountries(context.Context, *emptypb.Empty) (*wrapperspb.Int32Value, error)
}

func RegisterPhoneMaskServer(s grpc.ServiceRegistrar, srv PhoneMaskServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PhoneMaskServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FormatPhone", Handler: formatPhoneHandler},
		{MethodName: "GuessCountry", Handler: guessCountryHandler},
		{MethodName: "ListCountries", Handler: listCountriesHandler},
		{MethodName: "ReloadCountries", Handler: reloadCountriesHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func formatPhoneHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhoneMaskServer).FormatPhone(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FormatPhoneMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhoneMaskServer).FormatPhone(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func guessCountryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhoneMaskServer).GuessCountry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GuessCountryMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhoneMaskServer).GuessCountry(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listCountriesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhoneMaskServer).ListCountries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListCountriesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhoneMaskServer).ListCountries(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func reloadCountriesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhoneMaskServer).ReloadCountries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReloadCountriesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhoneMaskServer).ReloadCountries(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
