package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "hunt.ballistics.v1alpha1.BallisticsService"

// Full method names
const (
	BallisticsService_ListWeapons_FullMethodName            = "/hunt.ballistics.v1alpha1.BallisticsService/ListWeapons"
	BallisticsService_GetWeapon_FullMethodName              = "/hunt.ballistics.v1alpha1.BallisticsService/GetWeapon"
	BallisticsService_ListObstacles_FullMethodName          = "/hunt.ballistics.v1alpha1.BallisticsService/ListObstacles"
	BallisticsService_ListBodyparts_FullMethodName          = "/hunt.ballistics.v1alpha1.BallisticsService/ListBodyparts"
	BallisticsService_CalculateDamage_FullMethodName        = "/hunt.ballistics.v1alpha1.BallisticsService/CalculateDamage"
	BallisticsService_GetDamageProfile_FullMethodName       = "/hunt.ballistics.v1alpha1.BallisticsService/GetDamageProfile"
	BallisticsService_FindLethalCombinations_FullMethodName = "/hunt.ballistics.v1alpha1.BallisticsService/FindLethalCombinations"
)

// BallisticsServiceServer is the server API for BallisticsService.
// Implementations must embed UnimplementedBallisticsServiceServer.
type BallisticsServiceServer interface {
	ListWeapons(context.Context, *ListWeaponsRequest) (*ListWeaponsResponse, error)
	GetWeapon(context.Context, *GetWeaponRequest) (*GetWeaponResponse, error)
	ListObstacles(context.Context, *ListObstaclesRequest) (*ListObstaclesResponse, error)
	ListBodyparts(context.Context, *ListBodypartsRequest) (*ListBodypartsResponse, error)
	CalculateDamage(context.Context, *CalculateDamageRequest) (*CalculateDamageResponse, error)
	GetDamageProfile(context.Context, *GetDamageProfileRequest) (*GetDamageProfileResponse, error)
	FindLethalCombinations(context.Context, *FindLethalCombinationsRequest) (*FindLethalCombinationsResponse, error)
	mustEmbedUnimplementedBallisticsServiceServer()
}

// UnimplementedBallisticsServiceServer returns Unimplemented for every method.
type UnimplementedBallisticsServiceServer struct{}

func (UnimplementedBallisticsServiceServer) ListWeapons(context.Context, *ListWeaponsRequest) (*ListWeaponsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWeapons not implemented")
}

func (UnimplementedBallisticsServiceServer) GetWeapon(context.Context, *GetWeaponRequest) (*GetWeaponResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWeapon not implemented")
}

func (UnimplementedBallisticsServiceServer) ListObstacles(context.Context, *ListObstaclesRequest) (*ListObstaclesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListObstacles not implemented")
}

func (UnimplementedBallisticsServiceServer) ListBodyparts(context.Context, *ListBodypartsRequest) (*ListBodypartsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBodyparts not implemented")
}

func (UnimplementedBallisticsServiceServer) CalculateDamage(context.Context, *CalculateDamageRequest) (*CalculateDamageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateDamage not implemented")
}

func (UnimplementedBallisticsServiceServer) GetDamageProfile(context.Context, *GetDamageProfileRequest) (*GetDamageProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDamageProfile not implemented")
}

func (UnimplementedBallisticsServiceServer) FindLethalCombinations(context.Context, *FindLethalCombinationsRequest) (*FindLethalCombinationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindLethalCombinations not implemented")
}

func (UnimplementedBallisticsServiceServer) mustEmbedUnimplementedBallisticsServiceServer() {}

// RegisterBallisticsServiceServer registers srv with s
func RegisterBallisticsServiceServer(s grpc.ServiceRegistrar, srv BallisticsServiceServer) {
	s.RegisterService(&BallisticsService_ServiceDesc, srv)
}

func _BallisticsService_ListWeapons_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListWeaponsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).ListWeapons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_ListWeapons_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).ListWeapons(ctx, req.(*ListWeaponsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_GetWeapon_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetWeaponRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).GetWeapon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_GetWeapon_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).GetWeapon(ctx, req.(*GetWeaponRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_ListObstacles_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListObstaclesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).ListObstacles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_ListObstacles_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).ListObstacles(ctx, req.(*ListObstaclesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_ListBodyparts_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListBodypartsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).ListBodyparts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_ListBodyparts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).ListBodyparts(ctx, req.(*ListBodypartsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_CalculateDamage_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(CalculateDamageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).CalculateDamage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_CalculateDamage_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).CalculateDamage(ctx, req.(*CalculateDamageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_GetDamageProfile_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetDamageProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).GetDamageProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_GetDamageProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).GetDamageProfile(ctx, req.(*GetDamageProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BallisticsService_FindLethalCombinations_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(FindLethalCombinationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BallisticsServiceServer).FindLethalCombinations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BallisticsService_FindLethalCombinations_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BallisticsServiceServer).FindLethalCombinations(ctx, req.(*FindLethalCombinationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BallisticsService_ServiceDesc is the grpc.ServiceDesc for BallisticsService
var BallisticsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BallisticsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListWeapons",
			Handler:    _BallisticsService_ListWeapons_Handler,
		},
		{
			MethodName: "GetWeapon",
			Handler:    _BallisticsService_GetWeapon_Handler,
		},
		{
			MethodName: "ListObstacles",
			Handler:    _BallisticsService_ListObstacles_Handler,
		},
		{
			MethodName: "ListBodyparts",
			Handler:    _BallisticsService_ListBodyparts_Handler,
		},
		{
			MethodName: "CalculateDamage",
			Handler:    _BallisticsService_CalculateDamage_Handler,
		},
		{
			MethodName: "GetDamageProfile",
			Handler:    _BallisticsService_GetDamageProfile_Handler,
		},
		{
			MethodName: "FindLethalCombinations",
			Handler:    _BallisticsService_FindLethalCombinations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hunt/ballistics/v1alpha1/ballistics.json",
}
