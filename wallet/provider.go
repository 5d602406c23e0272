package wallet

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/openweb3-io/walletbridge/types"
)

// Creator builds a wallet for the given chain profile
type Creator = func(ctx context.Context, profile *types.ChainProfile) (Wallet, error)

type Provider interface {
	Register(name string, creator Creator)
	Provide(ctx context.Context, name string, profile *types.ChainProfile) (Wallet, error)
	Names() []string
}

type ProviderOptions struct {
	failoverCreator Creator
}

type ProviderOption func(*ProviderOptions)

func WithFailoverCreator(v Creator) ProviderOption {
	return func(o *ProviderOptions) {
		o.failoverCreator = v
	}
}

type provider struct {
	opts       *ProviderOptions
	mu         sync.RWMutex
	creatorMap map[string]Creator
}

func NewProvider(o ...ProviderOption) Provider {
	opts := &ProviderOptions{}

	for _, opt := range o {
		opt(opts)
	}

	return &provider{
		opts:       opts,
		creatorMap: make(map[string]Creator),
	}
}

func (p *provider) Register(name string, creator Creator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.creatorMap[name] = creator
}

func (p *provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.creatorMap))
	for name := range p.creatorMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *provider) Provide(ctx context.Context, name string, profile *types.ChainProfile) (Wallet, error) {
	p.mu.RLock()
	creator, ok := p.creatorMap[name]
	p.mu.RUnlock()
	if !ok {
		if p.opts.failoverCreator == nil {
			return nil, fmt.Errorf("wallet creator %s not found", name)
		}

		creator = p.opts.failoverCreator
	}

	return creator(ctx, profile)
}
