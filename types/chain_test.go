package types_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/stretchr/testify/suite"
)

type ChainProfileTestSuite struct {
	suite.Suite
	profile *xc.ChainProfile
}

func (s *ChainProfileTestSuite) SetupTest() {
	s.profile = &xc.ChainProfile{
		ChainID:          "omniflixhub-1",
		ChainName:        "OmniFlix Hub",
		RPCURL:           "https://rpc.omniflix.network",
		RESTURL:          "https://rest.omniflix.network",
		StakingURL:       "https://flix.omniflix.co/stake",
		Bech32Prefix:     "omniflix",
		CoinDenom:        "FLIX",
		CoinMinimalDenom: "uflix",
		CoinDecimals:     6,
		CoinType:         118,
		GasPriceStep:     xc.GasPriceStep{Low: 0.0025, Average: 0.025, High: 0.04},
		Features:         []string{"stargate", "ibc-transfer", "no-legacy-stdTx", "ibc-go"},
	}
}

func TestChainProfile(t *testing.T) {
	suite.Run(t, new(ChainProfileTestSuite))
}

func (s *ChainProfileTestSuite) TestBech32Config() {
	require := s.Require()
	cfg := s.profile.Bech32Config()
	require.Equal("omniflix", cfg.Bech32PrefixAccAddr)
	require.Equal("omniflixpub", cfg.Bech32PrefixAccPub)
	require.Equal("omniflixvaloper", cfg.Bech32PrefixValAddr)
	require.Equal("omniflixvaloperpub", cfg.Bech32PrefixValPub)
	require.Equal("omniflixvalcons", cfg.Bech32PrefixConsAddr)
	require.Equal("omniflixvalconspub", cfg.Bech32PrefixConsPub)

	// pure function of the prefix
	require.Equal(cfg, xc.NewBech32Config("omniflix"))
}

func (s *ChainProfileTestSuite) TestSuggestionDefaults() {
	require := s.Require()
	info := s.profile.Suggestion()

	require.Equal("omniflixhub-1", info.ChainID)
	require.Equal("https://rpc.omniflix.network", info.RPC)
	require.Equal("https://rest.omniflix.network", info.REST)
	require.EqualValues(118, info.Bip44.CoinType)
	require.EqualValues(118, info.CoinType)
	require.Equal("uflix", info.StakeCurrency.CoinMinimalDenom)
	require.Len(info.Currencies, 1)
	require.Len(info.FeeCurrencies, 1)
	require.Equal("uflix", info.FeeCurrencies[0].CoinMinimalDenom)
	require.Equal(0.025, info.GasPriceStep.Average)
	require.Equal("https://flix.omniflix.co/stake", info.WalletURLForStaking)
	require.Equal("omniflixvaloper", info.Bech32Config.Bech32PrefixValAddr)
}

func (s *ChainProfileTestSuite) TestSuggestionExtraCurrencies() {
	require := s.Require()
	s.profile.StakeCurrency = &xc.Currency{CoinDenom: "CHT", CoinMinimalDenom: "ucht", CoinDecimals: 6}
	s.profile.FeeCurrencies = []xc.Currency{{CoinDenom: "CGAS", CoinMinimalDenom: "ucgas", CoinDecimals: 6}}

	info := s.profile.Suggestion()
	require.Equal("ucht", info.StakeCurrency.CoinMinimalDenom)
	require.Equal("ucgas", info.FeeCurrencies[0].CoinMinimalDenom)
	require.Len(info.Currencies, 3)
	require.Equal("ucgas", s.profile.GasDenom())
}

func (s *ChainProfileTestSuite) TestSuggestionDoesNotAliasFeatures() {
	require := s.Require()
	info := s.profile.Suggestion()
	info.Features[0] = "changed"
	require.Equal("stargate", s.profile.Features[0])
}

func (s *ChainProfileTestSuite) TestValidate() {
	require := s.Require()
	require.NoError(s.profile.Validate())

	bad := *s.profile
	bad.ChainID = ""
	require.ErrorIs(bad.Validate(), xc.ErrInvalidProfile)

	bad = *s.profile
	bad.RPCURL = "not a url"
	require.ErrorIs(bad.Validate(), xc.ErrInvalidProfile)

	bad = *s.profile
	bad.GasPriceStep = xc.GasPriceStep{Low: 0.1, Average: 0.01, High: 0.2}
	require.ErrorIs(bad.Validate(), xc.ErrInvalidProfile)
}

func (s *ChainProfileTestSuite) TestValidateAddress() {
	require := s.Require()
	require.Error(s.profile.ValidateAddress(""))
	require.Error(s.profile.ValidateAddress("omniflix1abc"))

	raw := make([]byte, 20)
	cosmosAddr, err := bech32.ConvertAndEncode("cosmos", raw)
	require.NoError(err)
	require.ErrorContains(s.profile.ValidateAddress(cosmosAddr), "invalid bech32 prefix")

	flixAddr, err := bech32.ConvertAndEncode("omniflix", raw)
	require.NoError(err)
	require.NoError(s.profile.ValidateAddress(flixAddr))
}

func (s *ChainProfileTestSuite) TestHasFeature() {
	require := s.Require()
	require.True(s.profile.HasFeature("ibc-go"))
	require.False(s.profile.HasFeature("cosmwasm"))
}
