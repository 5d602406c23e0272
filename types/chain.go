package types

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

type GasPriceStep struct {
	Low     float64 `yaml:"low" mapstructure:"low" json:"low"`
	Average float64 `yaml:"average" mapstructure:"average" json:"average"`
	High    float64 `yaml:"high" mapstructure:"high" json:"high"`
}

type GasFeePriority string

const (
	Low     GasFeePriority = "low"
	Average GasFeePriority = "average"
	High    GasFeePriority = "high"
)

func NewPriority(input string) (GasFeePriority, error) {
	switch GasFeePriority(strings.ToLower(input)) {
	case Low:
		return Low, nil
	case Average, "":
		return Average, nil
	case High:
		return High, nil
	}
	return "", fmt.Errorf("invalid gas fee priority %q, expected one of low, average, high", input)
}

// Price returns the gas price of the step for priority
func (step GasPriceStep) Price(priority GasFeePriority) (float64, error) {
	switch priority {
	case Low:
		return step.Low, nil
	case Average, "":
		return step.Average, nil
	case High:
		return step.High, nil
	}
	return 0, fmt.Errorf("invalid gas fee priority %q", priority)
}

type Currency struct {
	CoinDenom        string `yaml:"coin_denom" mapstructure:"coin_denom" json:"coinDenom"`
	CoinMinimalDenom string `yaml:"coin_minimal_denom" mapstructure:"coin_minimal_denom" json:"coinMinimalDenom"`
	CoinDecimals     uint32 `yaml:"coin_decimals" mapstructure:"coin_decimals" json:"coinDecimals"`
	CoinGeckoID      string `yaml:"coingecko_id,omitempty" mapstructure:"coingecko_id" json:"coinGeckoId,omitempty"`
}

// ChainProfile describes the one network the bridge talks to. It is built once at startup
// and handed to the gateway and dispatcher; nothing mutates it afterwards.
type ChainProfile struct {
	ChainID     string `yaml:"chain_id" mapstructure:"chain_id"`
	ChainName   string `yaml:"chain_name" mapstructure:"chain_name"`
	NetworkName string `yaml:"network_name,omitempty" mapstructure:"network_name"`
	NetworkType string `yaml:"network_type,omitempty" mapstructure:"network_type"`

	RPCURL      string `yaml:"rpc_url" mapstructure:"rpc_url"`
	RESTURL     string `yaml:"rest_url" mapstructure:"rest_url"`
	GRPCURL     string `yaml:"grpc_url,omitempty" mapstructure:"grpc_url"`
	ExplorerURL string `yaml:"explorer_url,omitempty" mapstructure:"explorer_url"`
	StakingURL  string `yaml:"staking_url,omitempty" mapstructure:"staking_url"`

	Bech32Prefix     string `yaml:"bech32_prefix" mapstructure:"bech32_prefix"`
	CoinDenom        string `yaml:"coin_denom" mapstructure:"coin_denom"`
	CoinMinimalDenom string `yaml:"coin_minimal_denom" mapstructure:"coin_minimal_denom"`
	CoinDecimals     uint32 `yaml:"coin_decimals" mapstructure:"coin_decimals"`
	CoinType         uint32 `yaml:"coin_type" mapstructure:"coin_type"`
	CoinGeckoID      string `yaml:"coingecko_id,omitempty" mapstructure:"coingecko_id"`

	GasPriceStep GasPriceStep `yaml:"gas_price_step" mapstructure:"gas_price_step"`
	Features     []string     `yaml:"features,omitempty" mapstructure:"features"`

	// Optional; default to the main currency
	StakeCurrency *Currency  `yaml:"stake_currency,omitempty" mapstructure:"stake_currency"`
	FeeCurrencies []Currency `yaml:"fee_currencies,omitempty" mapstructure:"fee_currencies"`
}

type Bech32Config struct {
	Bech32PrefixAccAddr  string `json:"bech32PrefixAccAddr"`
	Bech32PrefixAccPub   string `json:"bech32PrefixAccPub"`
	Bech32PrefixValAddr  string `json:"bech32PrefixValAddr"`
	Bech32PrefixValPub   string `json:"bech32PrefixValPub"`
	Bech32PrefixConsAddr string `json:"bech32PrefixConsAddr"`
	Bech32PrefixConsPub  string `json:"bech32PrefixConsPub"`
}

func NewBech32Config(prefix string) Bech32Config {
	return Bech32Config{
		Bech32PrefixAccAddr:  prefix,
		Bech32PrefixAccPub:   prefix + "pub",
		Bech32PrefixValAddr:  prefix + "valoper",
		Bech32PrefixValPub:   prefix + "valoperpub",
		Bech32PrefixConsAddr: prefix + "valcons",
		Bech32PrefixConsPub:  prefix + "valconspub",
	}
}

func (p *ChainProfile) Bech32Config() Bech32Config {
	return NewBech32Config(p.Bech32Prefix)
}

// MainCurrency is the currency described by the Coin* fields
func (p *ChainProfile) MainCurrency() Currency {
	return Currency{
		CoinDenom:        p.CoinDenom,
		CoinMinimalDenom: p.CoinMinimalDenom,
		CoinDecimals:     p.CoinDecimals,
		CoinGeckoID:      p.CoinGeckoID,
	}
}

func (p *ChainProfile) GetStakeCurrency() Currency {
	if p.StakeCurrency != nil {
		return *p.StakeCurrency
	}
	return p.MainCurrency()
}

func (p *ChainProfile) GetFeeCurrencies() []Currency {
	if len(p.FeeCurrencies) > 0 {
		return p.FeeCurrencies
	}
	return []Currency{p.MainCurrency()}
}

// GasDenom is the minimal denom fees are paid in
func (p *ChainProfile) GasDenom() string {
	return p.GetFeeCurrencies()[0].CoinMinimalDenom
}

func (p *ChainProfile) HasFeature(feature string) bool {
	for _, f := range p.Features {
		if f == feature {
			return true
		}
	}
	return false
}

func (p *ChainProfile) String() string {
	return fmt.Sprintf(
		"ChainProfile(chain_id=%s name=%s rpc=%s rest=%s prefix=%s denom=%s)",
		p.ChainID,
		p.ChainName,
		p.RPCURL,
		p.RESTURL,
		p.Bech32Prefix,
		p.CoinMinimalDenom,
	)
}

func (p *ChainProfile) Validate() error {
	if strings.TrimSpace(p.ChainID) == "" {
		return WrapErr(ErrInvalidProfile, "chain id is required")
	}
	if strings.TrimSpace(p.Bech32Prefix) == "" {
		return WrapErr(ErrInvalidProfile, "bech32 prefix is required")
	}
	if p.CoinDenom == "" || p.CoinMinimalDenom == "" {
		return WrapErr(ErrInvalidProfile, "coin denoms are required")
	}
	for name, raw := range map[string]string{"rpc": p.RPCURL, "rest": p.RESTURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return WrapErr(ErrInvalidProfile, fmt.Sprintf("invalid %s url %q", name, raw))
		}
	}
	step := p.GasPriceStep
	if step.Low < 0 || step.Average < step.Low || step.High < step.Average {
		return WrapErr(ErrInvalidProfile, fmt.Sprintf("gas price steps must be ordered: %v", step))
	}
	return nil
}

// ValidateAddress checks that address is a bech32 account address of this chain
func (p *ChainProfile) ValidateAddress(address string) error {
	if len(strings.TrimSpace(address)) == 0 {
		return fmt.Errorf("empty address string is not allowed")
	}

	prefix, _, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return err
	}
	if prefix != p.Bech32Prefix {
		return fmt.Errorf("invalid bech32 prefix: expected %s, got %s", p.Bech32Prefix, prefix)
	}
	return nil
}
