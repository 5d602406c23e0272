package stargate

import (
	"context"
	"fmt"

	rpcclient "github.com/cometbft/cometbft/rpc/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"google.golang.org/grpc"
)

const accountQueryPath = "/cosmos.auth.v1beta1.Query/Account"

// AccountQuerier reads an account's on-chain state
type AccountQuerier interface {
	Account(ctx context.Context, address string) (sdk.AccountI, error)
}

// abciQuerier runs the auth query through the RPC node's ABCI query endpoint
type abciQuerier struct {
	rpc   RPC
	codec codec.Codec
}

var _ AccountQuerier = &abciQuerier{}

func NewABCIQuerier(rpc RPC, cdc codec.Codec) AccountQuerier {
	return &abciQuerier{rpc: rpc, codec: cdc}
}

func (q *abciQuerier) Account(ctx context.Context, address string) (sdk.AccountI, error) {
	req, err := q.codec.Marshal(&authtypes.QueryAccountRequest{Address: address})
	if err != nil {
		return nil, err
	}

	res, err := q.rpc.ABCIQueryWithOptions(ctx, accountQueryPath, req, rpcclient.ABCIQueryOptions{})
	if err != nil {
		return nil, err
	}
	if !res.Response.IsOK() {
		return nil, fmt.Errorf("account query failed with code %d: %s", res.Response.Code, res.Response.Log)
	}

	var resp authtypes.QueryAccountResponse
	if err := q.codec.Unmarshal(res.Response.Value, &resp); err != nil {
		return nil, err
	}
	return unpackAccount(q.codec, &resp)
}

// grpcQuerier uses the node's gRPC auth service
type grpcQuerier struct {
	client authtypes.QueryClient
	codec  codec.Codec
}

var _ AccountQuerier = &grpcQuerier{}

func NewGRPCQuerier(conn grpc.ClientConnInterface, cdc codec.Codec) AccountQuerier {
	return &grpcQuerier{client: authtypes.NewQueryClient(conn), codec: cdc}
}

func (q *grpcQuerier) Account(ctx context.Context, address string) (sdk.AccountI, error) {
	resp, err := q.client.Account(ctx, &authtypes.QueryAccountRequest{Address: address})
	if err != nil {
		return nil, err
	}
	return unpackAccount(q.codec, resp)
}

func unpackAccount(cdc codec.Codec, resp *authtypes.QueryAccountResponse) (sdk.AccountI, error) {
	if resp.Account == nil {
		return nil, fmt.Errorf("empty account in query response")
	}
	var account sdk.AccountI
	if err := cdc.UnpackAny(resp.Account, &account); err != nil {
		return nil, err
	}
	return account, nil
}
