package wallet

import (
	"context"

	"github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/util"
	"github.com/sirupsen/logrus"
)

type Options struct {
	skipSuggestion bool
	logger         logrus.FieldLogger
}

type Option func(*Options)

// WithSkipSuggestion is for wallets that already know the chain and cannot be asked to add it.
func WithSkipSuggestion() Option {
	return func(o *Options) {
		o.skipSuggestion = true
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// Gateway registers the chain with a wallet and hands out its accounts and signer.
type Gateway struct {
	opts    *Options
	profile *types.ChainProfile
	wallet  Wallet
}

// NewGateway accepts a nil wallet; Initialize then reports ErrWalletNotInstalled.
func NewGateway(profile *types.ChainProfile, wallet Wallet, o ...Option) *Gateway {
	opts := &Options{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range o {
		opt(opts)
	}

	return &Gateway{
		opts:    opts,
		profile: profile,
		wallet:  wallet,
	}
}

func (g *Gateway) Profile() *types.ChainProfile {
	return g.profile
}

func (g *Gateway) logger() logrus.FieldLogger {
	return g.opts.logger.WithField("chain_id", g.profile.ChainID)
}

func (g *Gateway) signerProvider() (SignerProvider, bool) {
	if g.wallet == nil {
		return nil, false
	}
	provider, ok := g.wallet.(SignerProvider)
	return provider, ok
}

// Initialize registers the chain with the wallet, enables it, and returns the wallet's accounts.
func (g *Gateway) Initialize(ctx context.Context) ([]types.AccountData, error) {
	if _, ok := g.signerProvider(); !ok {
		return nil, types.ErrWalletNotInstalled
	}

	if suggester, ok := g.wallet.(ChainSuggester); ok {
		g.logger().Debug("suggesting chain")
		if err := suggester.ExperimentalSuggestChain(ctx, g.profile.Suggestion()); err != nil {
			g.logger().WithError(err).Warn("chain suggestion rejected")
			return nil, types.WrapCause(types.ErrChainSuggestionFailed, err)
		}
	} else if !g.opts.skipSuggestion {
		return nil, types.ErrUnsupportedWalletVersion
	}

	signer, err := g.Signer(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := signer.GetAccounts(ctx)
	if err != nil {
		return nil, types.WrapCause(types.ErrTransport, err)
	}
	g.logger().WithField("accounts", len(accounts)).Info("wallet initialized")
	return accounts, nil
}

// InitializeAsync runs Initialize in the background and calls cb exactly once.
func (g *Gateway) InitializeAsync(ctx context.Context, cb func(err error, accounts []types.AccountData)) {
	go func() {
		var (
			accounts []types.AccountData
			err      error
		)
		func() {
			defer func() {
				if r := recover(); r != nil {
					accounts, err = nil, types.WrapCause(types.ErrTransport, util.InterfaceToError(r))
				}
			}()
			accounts, err = g.Initialize(ctx)
		}()
		if err != nil {
			cb(err, nil)
			return
		}
		cb(nil, accounts)
	}()
}

// Signer enables the chain and returns the wallet's amino offline signer for it.
func (g *Gateway) Signer(ctx context.Context) (OfflineSigner, error) {
	provider, ok := g.signerProvider()
	if !ok {
		return nil, types.ErrWalletNotInstalled
	}

	if err := g.wallet.Enable(ctx, g.profile.ChainID); err != nil {
		return nil, types.WrapCause(types.ErrTransport, err)
	}

	signer, err := provider.OfflineSignerOnlyAmino(g.profile.ChainID)
	if err != nil {
		return nil, types.WrapCause(types.ErrTransport, err)
	}
	if signer == nil {
		return nil, types.ErrWalletNotInstalled
	}
	return signer, nil
}
