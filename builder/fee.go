package builder

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// Gas limit per message when the caller does not set one
	DefaultGasPerMsg uint64 = 200_000
)

// FeeForGas prices gas at the profile's gas price step: ceil(gas * price) in the minimal denom
func FeeForGas(profile *xc.ChainProfile, priority xc.GasFeePriority, gas uint64) (xc.StdFee, error) {
	price, err := profile.GasPriceStep.Price(priority)
	if err != nil {
		return xc.StdFee{}, err
	}
	if price < 0 {
		return xc.StdFee{}, fmt.Errorf("negative gas price %v for priority %s", price, priority)
	}
	if price == 0 {
		zap.S().Warnw("gas price is zero, the transaction will pay no fee", "chain", profile.ChainID, "priority", priority)
	}

	amount := decimal.NewFromFloat(price).Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(gas), 0)).Ceil()

	return xc.StdFee{
		Amount: []xc.Coin{{Denom: profile.GasDenom(), Amount: amount.String()}},
		Gas:    strconv.FormatUint(gas, 10),
	}, nil
}

// SortCoins orders coins by denom, as the sdk requires for fee amounts
func SortCoins(coins []xc.Coin) []xc.Coin {
	sorted := append([]xc.Coin{}, coins...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Denom < sorted[j].Denom
	})
	return sorted
}
