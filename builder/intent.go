package builder

import (
	"strconv"

	xc "github.com/openweb3-io/walletbridge/types"
)

// NewTxIntent assembles an intent for msgs. Without WithFee the fee is derived from the gas limit
// and the profile's gas price step for the chosen priority (average by default).
func NewTxIntent(profile *xc.ChainProfile, msgs []xc.AminoMsg, options ...BuilderOption) (*xc.TxIntent, error) {
	opts := builderOptions{}
	for _, opt := range options {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}

	if len(msgs) == 0 {
		return nil, xc.WrapErr(xc.ErrInvalidIntent, "at least one message is required")
	}

	gas, ok := opts.GetGas()
	if !ok {
		gas = DefaultGasPerMsg * uint64(len(msgs))
	}

	var fee xc.StdFee
	if coins, ok := opts.GetFee(); ok {
		fee = xc.StdFee{Amount: SortCoins(coins), Gas: strconv.FormatUint(gas, 10)}
	} else {
		priority, _ := opts.GetPriority()
		var err error
		fee, err = FeeForGas(profile, priority, gas)
		if err != nil {
			return nil, err
		}
	}
	if granter, ok := opts.GetFeeGranter(); ok {
		fee.Granter = granter
	}
	if payer, ok := opts.GetFeePayer(); ok {
		fee.Payer = payer
	}

	memo, _ := opts.GetMemo()
	intent := &xc.TxIntent{
		Msgs: msgs,
		Fee:  fee,
		Memo: memo,
	}
	return intent, intent.Validate()
}
