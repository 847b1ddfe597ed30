package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// BallisticsServiceClient is the client API for BallisticsService
type BallisticsServiceClient interface {
	ListWeapons(ctx context.Context, in *ListWeaponsRequest, opts ...grpc.CallOption) (*ListWeaponsResponse, error)
	GetWeapon(ctx context.Context, in *GetWeaponRequest, opts ...grpc.CallOption) (*GetWeaponResponse, error)
	ListObstacles(ctx context.Context, in *ListObstaclesRequest, opts ...grpc.CallOption) (*ListObstaclesResponse, error)
	ListBodyparts(ctx context.Context, in *ListBodypartsRequest, opts ...grpc.CallOption) (*ListBodypartsResponse, error)
	CalculateDamage(ctx context.Context, in *CalculateDamageRequest, opts ...grpc.CallOption) (*CalculateDamageResponse, error)
	GetDamageProfile(ctx context.Context, in *GetDamageProfileRequest, opts ...grpc.CallOption) (*GetDamageProfileResponse, error)
	FindLethalCombinations(ctx context.Context, in *FindLethalCombinationsRequest, opts ...grpc.CallOption) (*FindLethalCombinationsResponse, error)
}

type ballisticsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBallisticsServiceClient returns a client that sends every call with the
// json content-subtype
func NewBallisticsServiceClient(cc grpc.ClientConnInterface) BallisticsServiceClient {
	return &ballisticsServiceClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *ballisticsServiceClient) ListWeapons(
	ctx context.Context,
	in *ListWeaponsRequest,
	opts ...grpc.CallOption,
) (*ListWeaponsResponse, error) {
	out := new(ListWeaponsResponse)
	err := c.cc.Invoke(ctx, BallisticsService_ListWeapons_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) GetWeapon(
	ctx context.Context,
	in *GetWeaponRequest,
	opts ...grpc.CallOption,
) (*GetWeaponResponse, error) {
	out := new(GetWeaponResponse)
	err := c.cc.Invoke(ctx, BallisticsService_GetWeapon_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) ListObstacles(
	ctx context.Context,
	in *ListObstaclesRequest,
	opts ...grpc.CallOption,
) (*ListObstaclesResponse, error) {
	out := new(ListObstaclesResponse)
	err := c.cc.Invoke(ctx, BallisticsService_ListObstacles_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) ListBodyparts(
	ctx context.Context,
	in *ListBodypartsRequest,
	opts ...grpc.CallOption,
) (*ListBodypartsResponse, error) {
	out := new(ListBodypartsResponse)
	err := c.cc.Invoke(ctx, BallisticsService_ListBodyparts_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) CalculateDamage(
	ctx context.Context,
	in *CalculateDamageRequest,
	opts ...grpc.CallOption,
) (*CalculateDamageResponse, error) {
	out := new(CalculateDamageResponse)
	err := c.cc.Invoke(ctx, BallisticsService_CalculateDamage_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) GetDamageProfile(
	ctx context.Context,
	in *GetDamageProfileRequest,
	opts ...grpc.CallOption,
) (*GetDamageProfileResponse, error) {
	out := new(GetDamageProfileResponse)
	err := c.cc.Invoke(ctx, BallisticsService_GetDamageProfile_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ballisticsServiceClient) FindLethalCombinations(
	ctx context.Context,
	in *FindLethalCombinationsRequest,
	opts ...grpc.CallOption,
) (*FindLethalCombinationsResponse, error) {
	out := new(FindLethalCombinationsResponse)
	err := c.cc.Invoke(ctx, BallisticsService_FindLethalCombinations_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
