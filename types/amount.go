package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BigInt is an amount in the minimal denom, as the chain expects it in a tx
type BigInt big.Int

// AmountHumanReadable is an amount in the display denom, e.g. FLIX rather than uflix
type AmountHumanReadable decimal.Decimal

func (amount BigInt) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an BigInt into *big.Int
func (amount BigInt) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

func (amount BigInt) Sign() int {
	bigInt := big.Int(amount)
	return bigInt.Sign()
}

func (amount *BigInt) ToHuman(decimals uint32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -int32(decimals))
	return AmountHumanReadable(dec)
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(str))
	return AmountHumanReadable(dec), err
}

// ToBlockchain fails when the amount has more fractional digits than decimals allows
func (amount AmountHumanReadable) ToBlockchain(decimals uint32) (BigInt, error) {
	raised := decimal.Decimal(amount).Shift(int32(decimals))
	if !raised.Equal(raised.Truncate(0)) {
		return BigInt{}, fmt.Errorf("amount %s has more than %d decimals", amount, decimals)
	}
	return BigInt(*raised.BigInt()), nil
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

func (amount AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte("\"" + amount.String() + "\""), nil
}

func (amount *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	dec, err := decimal.NewFromString(strings.Trim(string(p), "\""))
	if err != nil {
		return err
	}
	*amount = AmountHumanReadable(dec)
	return nil
}

// ToBaseAmount converts an amount of the profile's main currency to its minimal denom
func (p *ChainProfile) ToBaseAmount(display string) (string, error) {
	amount, err := NewAmountHumanReadableFromStr(display)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %v", display, err)
	}
	if decimal.Decimal(amount).IsNegative() {
		return "", fmt.Errorf("invalid amount %q: negative", display)
	}
	base, err := amount.ToBlockchain(p.CoinDecimals)
	if err != nil {
		return "", err
	}
	return base.String(), nil
}
