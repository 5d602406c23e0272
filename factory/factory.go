package factory

import (
	"context"

	"github.com/openweb3-io/walletbridge/blockchain/cosmos/legacy"
	"github.com/openweb3-io/walletbridge/blockchain/cosmos/stargate"
	"github.com/openweb3-io/walletbridge/dispatcher"
	"github.com/openweb3-io/walletbridge/factory/defaults/chains"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/sirupsen/logrus"
)

type Options struct {
	gateway    []wallet.Option
	dispatcher []dispatcher.Option
	stargate   []stargate.Option
	legacy     []legacy.Option
}

type Option func(*Options)

// WithLogger sets the logger of every component the bridge wires
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.gateway = append(o.gateway, wallet.WithLogger(logger))
		o.dispatcher = append(o.dispatcher, dispatcher.WithLogger(logger))
		o.stargate = append(o.stargate, stargate.WithLogger(logger))
		o.legacy = append(o.legacy, legacy.WithLogger(logger))
	}
}

func WithGatewayOptions(opts ...wallet.Option) Option {
	return func(o *Options) {
		o.gateway = append(o.gateway, opts...)
	}
}

func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(o *Options) {
		o.dispatcher = append(o.dispatcher, opts...)
	}
}

func WithStargateOptions(opts ...stargate.Option) Option {
	return func(o *Options) {
		o.stargate = append(o.stargate, opts...)
	}
}

func WithLegacyOptions(opts ...legacy.Option) Option {
	return func(o *Options) {
		o.legacy = append(o.legacy, opts...)
	}
}

// Bridge is a gateway and dispatcher sharing one chain profile and wallet
type Bridge struct {
	*wallet.Gateway
	*dispatcher.Dispatcher
}

// New wires the gateway and dispatcher for profile with the Stargate RPC and legacy REST clients
func New(profile *xc.ChainProfile, w wallet.Wallet, o ...Option) (*Bridge, error) {
	if profile == nil {
		return nil, xc.WrapErr(xc.ErrInvalidProfile, "nil profile")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	opts := &Options{}
	for _, opt := range o {
		opt(opts)
	}

	connectStargate, err := stargate.NewConnector(profile, opts.stargate...)
	if err != nil {
		return nil, err
	}
	newLegacy, err := legacy.NewFactory(profile, opts.legacy...)
	if err != nil {
		return nil, err
	}

	gateway := wallet.NewGateway(profile, w, opts.gateway...)
	return &Bridge{
		Gateway:    gateway,
		Dispatcher: dispatcher.New(profile, gateway, connectStargate, newLegacy, opts.dispatcher...),
	}, nil
}

// NewDefault uses the embedded mainnet profile of chain
func NewDefault(chain string, w wallet.Wallet, o ...Option) (*Bridge, error) {
	profile, err := chains.Get(chains.Mainnets, chain)
	if err != nil {
		return nil, err
	}
	return New(profile, w, o...)
}

type IFactory interface {
	NewBridge(ctx context.Context, walletName string, profile *xc.ChainProfile) (*Bridge, error)
}

// Factory builds bridges for wallets registered with a wallet.Provider
type Factory struct {
	Wallets wallet.Provider
	opts    []Option
}

var _ IFactory = &Factory{}

func NewFactory(wallets wallet.Provider, o ...Option) *Factory {
	return &Factory{
		Wallets: wallets,
		opts:    o,
	}
}

func (f *Factory) NewBridge(ctx context.Context, walletName string, profile *xc.ChainProfile) (*Bridge, error) {
	w, err := f.Wallets.Provide(ctx, walletName, profile)
	if err != nil {
		return nil, err
	}
	return New(profile, w, f.opts...)
}
