package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openweb3-io/walletbridge/config"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "walletbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEmbedded(t *testing.T) {
	profile, err := config.Load("", "omniflix")
	require.NoError(t, err)
	require.Equal(t, "omniflixhub-1", profile.ChainID)
	require.Equal(t, []string{"stargate", "ibc-transfer", "no-legacy-stdTx", "ibc-go"}, profile.Features)

	_, err = config.Load("", "cosmoshub")
	require.Error(t, err)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
rpc_url: http://localhost:26657
gas_price_step:
  average: 0.03
`)
	profile, err := config.Load(path, "omniflix")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:26657", profile.RPCURL)
	require.Equal(t, "https://rest.omniflix.network", profile.RESTURL)
	require.Equal(t, xc.GasPriceStep{Low: 0.0025, Average: 0.03, High: 0.04}, profile.GasPriceStep)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WB_REST_URL", "http://localhost:1317")
	t.Setenv("WB_NETWORK", "testnet")

	profile, err := config.Load("", "omniflix")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:1317", profile.RESTURL)
	require.Equal(t, "testnet", profile.NetworkType)
}

func TestLoadCustomChain(t *testing.T) {
	path := writeConfig(t, `
chain_id: localnet-1
rpc_url: http://localhost:26657
rest_url: http://localhost:1317
bech32_prefix: omniflix
coin_denom: FLIX
coin_minimal_denom: uflix
coin_decimals: 6
coin_type: 118
`)
	profile, err := config.Load(path, "local")
	require.NoError(t, err)
	require.Equal(t, "localnet-1", profile.ChainID)

	invalid := writeConfig(t, "chain_id: localnet-1\n")
	_, err = config.Load(invalid, "local")
	require.ErrorIs(t, err, xc.ErrInvalidProfile)
}
