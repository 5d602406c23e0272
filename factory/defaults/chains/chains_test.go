package chains_test

import (
	"testing"

	"github.com/openweb3-io/walletbridge/factory/defaults/chains"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/stretchr/testify/require"
)

func TestMainnetProfile(t *testing.T) {
	profile, err := chains.Get(chains.Mainnets, "omniflix")
	require.NoError(t, err)
	require.NoError(t, profile.Validate())

	require.Equal(t, "omniflixhub-1", profile.ChainID)
	require.Equal(t, "https://rpc.omniflix.network", profile.RPCURL)
	require.Equal(t, "https://rest.omniflix.network", profile.RESTURL)
	require.Equal(t, "https://flix.omniflix.co/stake", profile.StakingURL)
	require.Equal(t, "FLIX", profile.CoinDenom)
	require.Equal(t, "uflix", profile.CoinMinimalDenom)
	require.EqualValues(t, 6, profile.CoinDecimals)
	require.EqualValues(t, 118, profile.CoinType)
	require.Equal(t, "-", profile.CoinGeckoID)
	require.Equal(t, "-", profile.Suggestion().Currencies[0].CoinGeckoID)
	require.Equal(t, xc.GasPriceStep{Low: 0.0025, Average: 0.025, High: 0.04}, profile.GasPriceStep)
	require.Equal(t, []string{"stargate", "ibc-transfer", "no-legacy-stdTx", "ibc-go"}, profile.Features)
	require.Equal(t, "omniflixvaloper", profile.Bech32Config().Bech32PrefixValAddr)
}

func TestProfilesAreCopies(t *testing.T) {
	a, err := chains.Get(chains.Mainnets, "omniflix")
	require.NoError(t, err)
	a.ChainID = "changed"
	a.Features[0] = "changed"

	b, err := chains.Get("", "omniflix")
	require.NoError(t, err)
	require.Equal(t, "omniflixhub-1", b.ChainID)
	require.Equal(t, "stargate", b.Features[0])
}

func TestTestnetProfile(t *testing.T) {
	profile, err := chains.Get(chains.Testnets, "omniflix")
	require.NoError(t, err)
	require.NoError(t, profile.Validate())
	require.Equal(t, "testnet", profile.NetworkType)
	require.NotEqual(t, chains.Mainnet["omniflix"].ChainID, profile.ChainID)

	_, err = chains.Get(chains.Testnets, "cosmoshub")
	require.Error(t, err)
	_, err = chains.Get("devnet", "omniflix")
	require.Error(t, err)

	require.Equal(t, []string{"omniflix"}, chains.Names(chains.Mainnets))
}
