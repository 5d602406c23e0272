package builder_test

import (
	"encoding/json"
	"testing"

	"github.com/openweb3-io/walletbridge/builder"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/stretchr/testify/suite"
)

type BuilderTestSuite struct {
	suite.Suite
	profile *xc.ChainProfile
}

func (s *BuilderTestSuite) SetupTest() {
	s.profile = &xc.ChainProfile{
		ChainID:          "omniflixhub-1",
		ChainName:        "OmniFlix Hub",
		RPCURL:           "https://rpc.omniflix.network",
		RESTURL:          "https://rest.omniflix.network",
		Bech32Prefix:     "omniflix",
		CoinDenom:        "FLIX",
		CoinMinimalDenom: "uflix",
		CoinDecimals:     6,
		CoinType:         118,
		GasPriceStep:     xc.GasPriceStep{Low: 0.0025, Average: 0.025, High: 0.04},
	}
}

func TestBuilder(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) TestFeeForGas() {
	vectors := []struct {
		priority xc.GasFeePriority
		gas      uint64
		amount   string
	}{
		{xc.Average, 200_000, "5000"},
		{"", 200_000, "5000"},
		{xc.Low, 200_000, "500"},
		{xc.High, 123_457, "4939"},
		{xc.Low, 1, "1"},
	}
	for _, v := range vectors {
		fee, err := builder.FeeForGas(s.profile, v.priority, v.gas)
		s.Require().NoError(err)
		s.Require().Equal([]xc.Coin{{Denom: "uflix", Amount: v.amount}}, fee.Amount, "priority %q gas %d", v.priority, v.gas)
		gas, err := fee.GasLimit()
		s.Require().NoError(err)
		s.Require().Equal(v.gas, gas)
	}

	_, err := builder.FeeForGas(s.profile, "urgent", 1)
	s.Require().Error(err)

	s.profile.GasPriceStep = xc.GasPriceStep{}
	fee, err := builder.FeeForGas(s.profile, xc.Average, 200_000)
	s.Require().NoError(err)
	s.Require().Equal("0", fee.Amount[0].Amount)
}

func (s *BuilderTestSuite) TestNewTxIntentDefaults() {
	require := s.Require()
	msgs := []xc.AminoMsg{
		{Type: "cosmos-sdk/MsgSend", Value: json.RawMessage(`{}`)},
		{Type: "cosmos-sdk/MsgSend", Value: json.RawMessage(`{}`)},
	}
	intent, err := builder.NewTxIntent(s.profile, msgs)
	require.NoError(err)
	require.Equal(msgs, intent.Messages())
	require.Equal("400000", intent.Fee.Gas)
	require.Equal([]xc.Coin{{Denom: "uflix", Amount: "10000"}}, intent.Fee.Amount)
	require.Empty(intent.Memo)
}

func (s *BuilderTestSuite) TestNewTxIntentOptions() {
	require := s.Require()
	msgs := []xc.AminoMsg{{Type: "cosmos-sdk/MsgSend", Value: json.RawMessage(`{}`)}}

	intent, err := builder.NewTxIntent(s.profile, msgs,
		builder.WithMemo("hello"),
		builder.WithGas(100_000),
		builder.WithGasPriority(xc.High),
		builder.WithFeeGranter("omniflix1granter"),
		builder.WithFeePayer("omniflix1payer"),
	)
	require.NoError(err)
	require.Equal("hello", intent.Memo)
	require.Equal("100000", intent.Fee.Gas)
	require.Equal([]xc.Coin{{Denom: "uflix", Amount: "4000"}}, intent.Fee.Amount)
	require.Equal("omniflix1granter", intent.Fee.Granter)
	require.Equal("omniflix1payer", intent.Fee.Payer)

	intent, err = builder.NewTxIntent(s.profile, msgs, builder.WithFee(
		xc.Coin{Denom: "uflix", Amount: "7"},
		xc.Coin{Denom: "ibc/ABC", Amount: "1"},
	))
	require.NoError(err)
	require.Equal([]xc.Coin{{Denom: "ibc/ABC", Amount: "1"}, {Denom: "uflix", Amount: "7"}}, intent.Fee.Amount)
	require.Equal("200000", intent.Fee.Gas)

	_, err = builder.NewTxIntent(s.profile, msgs, builder.WithGas(0))
	require.Error(err)
	_, err = builder.NewTxIntent(s.profile, msgs, builder.WithGasPriority("urgent"))
	require.Error(err)
	_, err = builder.NewTxIntent(s.profile, nil)
	require.ErrorIs(err, xc.ErrInvalidIntent)
}

func (s *BuilderTestSuite) TestMessages() {
	require := s.Require()
	b, err := builder.NewMsgBuilder(s.profile)
	require.NoError(err)

	const (
		delegator = "omniflix1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5c0k2s8"
		validator = "omniflixvaloper1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu"
	)

	send, err := b.BankSend(delegator, delegator, "1000", "")
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgSend", send.Type)
	var sendValue struct {
		FromAddress string    `json:"from_address"`
		ToAddress   string    `json:"to_address"`
		Amount      []xc.Coin `json:"amount"`
	}
	require.NoError(json.Unmarshal(send.Value, &sendValue))
	require.Equal(delegator, sendValue.FromAddress)
	require.Equal([]xc.Coin{{Denom: "uflix", Amount: "1000"}}, sendValue.Amount)

	_, err = b.BankSend(delegator, delegator, "-1", "")
	require.Error(err)
	_, err = b.BankSend(delegator, delegator, "1.5", "")
	require.Error(err)

	delegate, err := b.Delegate(delegator, validator, "5")
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgDelegate", delegate.Type)

	undelegate, err := b.Undelegate(delegator, validator, "5")
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgUndelegate", undelegate.Type)

	redelegate, err := b.Redelegate(delegator, validator, validator, "5")
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgBeginRedelegate", redelegate.Type)

	withdraw, err := b.WithdrawReward(delegator, validator)
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgWithdrawDelegationReward", withdraw.Type)

	vote, err := b.Vote(delegator, 12, "yes")
	require.NoError(err)
	require.Equal("cosmos-sdk/MsgVote", vote.Type)
	_, err = b.Vote(delegator, 12, "maybe")
	require.Error(err)

	cw20, err := b.CW20Transfer(delegator, "omniflix1contract", "omniflix1recipient", "42")
	require.NoError(err)
	require.Equal("wasm/MsgExecuteContract", cw20.Type)
	require.Contains(string(cw20.Value), "omniflix1recipient")
}
