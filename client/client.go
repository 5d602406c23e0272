package client

import (
	"context"

	"github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
)

// StargateClient signs through the wallet and broadcasts protobuf transactions over RPC.
type StargateClient interface {
	// Account number and sequence as currently stored on chain
	GetSequence(ctx context.Context, address string) (types.AccountSequenceInfo, error)

	// Sign with the connected signer, broadcast, and wait for the result
	SignAndBroadcast(ctx context.Context, address string, msgs []types.AminoMsg, fee types.StdFee, memo string) (*types.BroadcastResult, error)

	// Release the connections opened by the connector
	Close() error
}

// LegacyClient is bound to one address and talks to the REST server.
type LegacyClient interface {
	SignAndBroadcast(ctx context.Context, msgs []types.AminoMsg, fee types.StdFee, memo string) (*types.BroadcastResult, error)

	// Broadcast an already signed amino transaction
	BroadcastTx(ctx context.Context, tx types.StdTx) (*types.BroadcastResult, error)
}

// StargateConnector connects a Stargate client to rpcURL using signer
type StargateConnector func(ctx context.Context, rpcURL string, signer wallet.OfflineSigner) (StargateClient, error)

// LegacyClientFactory builds a REST client bound to address
type LegacyClientFactory func(restURL string, address string, signer wallet.OfflineSigner) LegacyClient
