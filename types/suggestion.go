package types

type Bip44 struct {
	CoinType uint32 `json:"coinType"`
}

// ChainInfo is the chain description a wallet expects when asked to add a chain.
type ChainInfo struct {
	RPC                 string       `json:"rpc"`
	REST                string       `json:"rest"`
	ChainID             string       `json:"chainId"`
	ChainName           string       `json:"chainName"`
	StakeCurrency       Currency     `json:"stakeCurrency"`
	Bip44               Bip44        `json:"bip44"`
	Bech32Config        Bech32Config `json:"bech32Config"`
	Currencies          []Currency   `json:"currencies"`
	FeeCurrencies       []Currency   `json:"feeCurrencies"`
	CoinType            uint32       `json:"coinType"`
	GasPriceStep        GasPriceStep `json:"gasPriceStep"`
	Features            []string     `json:"features,omitempty"`
	WalletURLForStaking string       `json:"walletUrlForStaking,omitempty"`
}

// Suggestion translates the profile into the wallet's chain registration schema
func (p *ChainProfile) Suggestion() ChainInfo {
	currencies := []Currency{p.MainCurrency()}
	stake := p.GetStakeCurrency()
	if stake.CoinMinimalDenom != p.CoinMinimalDenom {
		currencies = append(currencies, stake)
	}
	for _, fee := range p.GetFeeCurrencies() {
		if !containsDenom(currencies, fee.CoinMinimalDenom) {
			currencies = append(currencies, fee)
		}
	}

	features := make([]string, len(p.Features))
	copy(features, p.Features)

	return ChainInfo{
		RPC:                 p.RPCURL,
		REST:                p.RESTURL,
		ChainID:             p.ChainID,
		ChainName:           p.ChainName,
		StakeCurrency:       stake,
		Bip44:               Bip44{CoinType: p.CoinType},
		Bech32Config:        p.Bech32Config(),
		Currencies:          currencies,
		FeeCurrencies:       append([]Currency{}, p.GetFeeCurrencies()...),
		CoinType:            p.CoinType,
		GasPriceStep:        p.GasPriceStep,
		Features:            features,
		WalletURLForStaking: p.StakingURL,
	}
}

func containsDenom(currencies []Currency, denom string) bool {
	for _, c := range currencies {
		if c.CoinMinimalDenom == denom {
			return true
		}
	}
	return false
}
