package builder

import (
	"fmt"

	xc "github.com/openweb3-io/walletbridge/types"
	"go.uber.org/zap"
)

// All possible builder arguments go in here, privately available.
type builderOptions struct {
	memo           *string
	gasFeePriority *xc.GasFeePriority
	gas            *uint64
	fee            *[]xc.Coin
	feeGranter     *string
	feePayer       *string
}

// TransactionOptions are the options every intent accepts
type TransactionOptions interface {
	GetMemo() (string, bool)
	GetPriority() (xc.GasFeePriority, bool)
	GetGas() (uint64, bool)
	GetFee() ([]xc.Coin, bool)
	GetFeeGranter() (string, bool)
	GetFeePayer() (string, bool)
}

var _ TransactionOptions = &builderOptions{}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

func (opts *builderOptions) GetMemo() (string, bool) { return get(opts.memo) }
func (opts *builderOptions) GetPriority() (xc.GasFeePriority, bool) {
	return get(opts.gasFeePriority)
}
func (opts *builderOptions) GetGas() (uint64, bool)        { return get(opts.gas) }
func (opts *builderOptions) GetFee() ([]xc.Coin, bool)     { return get(opts.fee) }
func (opts *builderOptions) GetFeeGranter() (string, bool) { return get(opts.feeGranter) }
func (opts *builderOptions) GetFeePayer() (string, bool)   { return get(opts.feePayer) }

type BuilderOption func(opts *builderOptions) error

func WithMemo(memo string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.memo = &memo
		return nil
	}
}

// WithGasPriority selects the gas price step used when no explicit fee is given
func WithGasPriority(priority xc.GasFeePriority) BuilderOption {
	return func(opts *builderOptions) error {
		if _, err := (xc.GasPriceStep{}).Price(priority); err != nil {
			return err
		}
		opts.gasFeePriority = &priority
		return nil
	}
}

func WithGas(gas uint64) BuilderOption {
	return func(opts *builderOptions) error {
		if gas == 0 {
			return fmt.Errorf("gas limit must be positive")
		}
		opts.gas = &gas
		return nil
	}
}

// WithFee pays exactly these coins instead of deriving the fee from the gas price
func WithFee(coins ...xc.Coin) BuilderOption {
	return func(opts *builderOptions) error {
		if len(coins) == 0 {
			zap.S().Warn("empty fee given, the transaction will pay no fee")
		}
		opts.fee = &coins
		return nil
	}
}

func WithFeeGranter(granter string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.feeGranter = &granter
		return nil
	}
}

func WithFeePayer(payer string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.feePayer = &payer
		return nil
	}
}
