package types_test

import (
	"encoding/json"
	"math/big"

	"github.com/openweb3-io/walletbridge/types"
)

func (s *ChainProfileTestSuite) TestToBaseAmount() {
	require := s.Require()
	profile := &types.ChainProfile{CoinMinimalDenom: "uflix", CoinDecimals: 6}

	vectors := map[string]string{
		"1":        "1000000",
		"1.5":      "1500000",
		"0.000001": "1",
		" 42 ":     "42000000",
		"0":        "0",
	}
	for display, base := range vectors {
		got, err := profile.ToBaseAmount(display)
		require.NoError(err, display)
		require.Equal(base, got, display)
	}

	for _, invalid := range []string{"0.0000001", "-1", "abc", ""} {
		_, err := profile.ToBaseAmount(invalid)
		require.Error(err, invalid)
	}
}

func (s *ChainProfileTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	base := types.BigInt(*big.NewInt(1_234_567))
	human := base.ToHuman(6)
	require.Equal("1.234567", human.String())

	bz, err := json.Marshal(human)
	require.NoError(err)
	require.Equal(`"1.234567"`, string(bz))

	var decoded types.AmountHumanReadable
	require.NoError(json.Unmarshal(bz, &decoded))
	back, err := decoded.ToBlockchain(6)
	require.NoError(err)
	require.Equal("1234567", back.String())
}
