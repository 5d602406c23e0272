package wallet

import (
	"context"

	"github.com/openweb3-io/walletbridge/types"
)

// Wallet is the minimum capability: it can be asked to enable a chain, which may prompt the user.
type Wallet interface {
	Enable(ctx context.Context, chainID string) error
}

// SignerProvider hands out amino-only offline signers keyed by chain id.
type SignerProvider interface {
	OfflineSignerOnlyAmino(chainID string) (OfflineSigner, error)
}

// ChainSuggester can register a chain it does not know yet.
type ChainSuggester interface {
	ExperimentalSuggestChain(ctx context.Context, info types.ChainInfo) error
}

// OfflineSigner signs for the accounts it exposes without handing out key material.
type OfflineSigner interface {
	GetAccounts(ctx context.Context) ([]types.AccountData, error)
	SignAmino(ctx context.Context, signerAddress string, signDoc types.StdSignDoc) (*types.AminoSignResponse, error)
}
