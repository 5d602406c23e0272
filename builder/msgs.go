package builder

import (
	"encoding/json"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govv1beta1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	cosmostypes "github.com/openweb3-io/walletbridge/blockchain/cosmos/types"
	xc "github.com/openweb3-io/walletbridge/types"
)

// MsgBuilder turns sdk messages into their amino JSON form
type MsgBuilder struct {
	Profile *xc.ChainProfile
	amino   *codec.LegacyAmino
}

func NewMsgBuilder(profile *xc.ChainProfile) (*MsgBuilder, error) {
	encoding, err := cosmostypes.MakeEncodingConfig(profile.Bech32Prefix)
	if err != nil {
		return nil, err
	}
	return &MsgBuilder{Profile: profile, amino: encoding.Amino}, nil
}

// ToAmino encodes any message registered with the legacy amino codec
func (b *MsgBuilder) ToAmino(msg sdk.Msg) (xc.AminoMsg, error) {
	bz, err := b.amino.MarshalJSON(msg)
	if err != nil {
		return xc.AminoMsg{}, err
	}
	var out xc.AminoMsg
	if err := json.Unmarshal(bz, &out); err != nil {
		return xc.AminoMsg{}, err
	}
	if out.Type == "" {
		return xc.AminoMsg{}, fmt.Errorf("message %T has no amino name", msg)
	}
	return out, nil
}

func (b *MsgBuilder) coin(amount string, denom string) (sdk.Coin, error) {
	if denom == "" {
		denom = b.Profile.CoinMinimalDenom
	}
	amountInt, ok := math.NewIntFromString(amount)
	if !ok || amountInt.IsNegative() {
		return sdk.Coin{}, fmt.Errorf("invalid amount %q", amount)
	}
	return sdk.Coin{Denom: denom, Amount: amountInt}, nil
}

// BankSend is a x/bank MsgSend. An empty denom sends the chain's main coin.
func (b *MsgBuilder) BankSend(from, to, amount, denom string) (xc.AminoMsg, error) {
	coin, err := b.coin(amount, denom)
	if err != nil {
		return xc.AminoMsg{}, err
	}
	return b.ToAmino(&banktypes.MsgSend{
		FromAddress: from,
		ToAddress:   to,
		Amount:      sdk.Coins{coin},
	})
}

func (b *MsgBuilder) Delegate(delegator, validator, amount string) (xc.AminoMsg, error) {
	coin, err := b.coin(amount, b.stakeDenom())
	if err != nil {
		return xc.AminoMsg{}, err
	}
	return b.ToAmino(&stakingtypes.MsgDelegate{
		DelegatorAddress: delegator,
		ValidatorAddress: validator,
		Amount:           coin,
	})
}

func (b *MsgBuilder) Undelegate(delegator, validator, amount string) (xc.AminoMsg, error) {
	coin, err := b.coin(amount, b.stakeDenom())
	if err != nil {
		return xc.AminoMsg{}, err
	}
	return b.ToAmino(&stakingtypes.MsgUndelegate{
		DelegatorAddress: delegator,
		ValidatorAddress: validator,
		Amount:           coin,
	})
}

func (b *MsgBuilder) Redelegate(delegator, srcValidator, dstValidator, amount string) (xc.AminoMsg, error) {
	coin, err := b.coin(amount, b.stakeDenom())
	if err != nil {
		return xc.AminoMsg{}, err
	}
	return b.ToAmino(&stakingtypes.MsgBeginRedelegate{
		DelegatorAddress:    delegator,
		ValidatorSrcAddress: srcValidator,
		ValidatorDstAddress: dstValidator,
		Amount:              coin,
	})
}

func (b *MsgBuilder) WithdrawReward(delegator, validator string) (xc.AminoMsg, error) {
	return b.ToAmino(&distrtypes.MsgWithdrawDelegatorReward{
		DelegatorAddress: delegator,
		ValidatorAddress: validator,
	})
}

// Vote accepts yes, no, abstain and no_with_veto
func (b *MsgBuilder) Vote(voter string, proposalID uint64, option string) (xc.AminoMsg, error) {
	name := strings.ToUpper(strings.TrimSpace(option))
	if !strings.HasPrefix(name, "VOTE_OPTION_") {
		name = "VOTE_OPTION_" + name
	}
	voteOption, err := govv1beta1.VoteOptionFromString(name)
	if err != nil {
		return xc.AminoMsg{}, err
	}
	return b.ToAmino(&govv1beta1.MsgVote{
		ProposalId: proposalID,
		Voter:      voter,
		Option:     voteOption,
	})
}

// CW20Transfer executes a cw20 transfer on contract
func (b *MsgBuilder) CW20Transfer(sender, contract, recipient, amount string) (xc.AminoMsg, error) {
	if _, err := b.coin(amount, "cw20"); err != nil {
		return xc.AminoMsg{}, err
	}
	contractTransferMsg := fmt.Sprintf(`{"transfer": {"amount": "%s", "recipient": "%s"}}`, amount, recipient)
	return b.ToAmino(&wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      wasmtypes.RawContractMessage(json.RawMessage(contractTransferMsg)),
	})
}

func (b *MsgBuilder) stakeDenom() string {
	return b.Profile.GetStakeCurrency().CoinMinimalDenom
}
