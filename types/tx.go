package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AminoMsg is a message in its amino JSON form, e.g. {"type":"cosmos-sdk/MsgSend","value":{...}}
type AminoMsg struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type StdFee struct {
	Amount  []Coin `json:"amount"`
	Gas     string `json:"gas"`
	Granter string `json:"granter,omitempty"`
	Payer   string `json:"payer,omitempty"`
}

// withCoins returns the fee with a non-nil Amount. The chain serializes an empty fee as
// "amount":[], so a nil slice would sign different bytes.
func (fee StdFee) withCoins() StdFee {
	if fee.Amount == nil {
		fee.Amount = []Coin{}
	}
	return fee
}

// GasLimit parses the gas field
func (fee StdFee) GasLimit() (uint64, error) {
	return strconv.ParseUint(fee.Gas, 10, 64)
}

// TxIntent is a transaction the caller wants signed and broadcast.
// Msg is the older single message form; Msgs wins when both are set.
type TxIntent struct {
	Msgs []AminoMsg `json:"msgs,omitempty"`
	Msg  *AminoMsg  `json:"msg,omitempty"`
	Fee  StdFee     `json:"fee"`
	Memo string     `json:"memo"`
}

// Messages returns the ordered message sequence of the intent
func (intent *TxIntent) Messages() []AminoMsg {
	if len(intent.Msgs) > 0 {
		return intent.Msgs
	}
	if intent.Msg != nil {
		return []AminoMsg{*intent.Msg}
	}
	return nil
}

func (intent *TxIntent) Validate() error {
	if len(intent.Messages()) == 0 {
		return WrapErr(ErrInvalidIntent, "at least one message is required")
	}
	if _, err := intent.Fee.GasLimit(); err != nil {
		return WrapErr(ErrInvalidIntent, fmt.Sprintf("invalid gas %q", intent.Fee.Gas))
	}
	return nil
}

type AccountSequenceInfo struct {
	AccountNumber uint64 `json:"account_number"`
	Sequence      uint64 `json:"sequence"`
}

// AccountData is an account exposed by a wallet
type AccountData struct {
	Address string `json:"address"`
	PubKey  []byte `json:"pubkey"`
	Algo    string `json:"algo"`
}

// StdSignDoc is the amino JSON document an offline signer signs
type StdSignDoc struct {
	ChainID       string     `json:"chain_id"`
	AccountNumber string     `json:"account_number"`
	Sequence      string     `json:"sequence"`
	Fee           StdFee     `json:"fee"`
	Msgs          []AminoMsg `json:"msgs"`
	Memo          string     `json:"memo"`
}

func MakeSignDoc(msgs []AminoMsg, fee StdFee, chainID string, memo string, accountNumber uint64, sequence uint64) StdSignDoc {
	return StdSignDoc{
		ChainID:       chainID,
		AccountNumber: strconv.FormatUint(accountNumber, 10),
		Sequence:      strconv.FormatUint(sequence, 10),
		Fee:           fee.withCoins(),
		Msgs:          msgs,
		Memo:          memo,
	}
}

// Bytes is the canonical serialization: sorted keys, no whitespace, <>& escaped
func (doc StdSignDoc) Bytes() ([]byte, error) {
	doc.Fee = doc.Fee.withCoins()
	bz, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return sdk.SortJSON(bz)
}

type PubKey struct {
	Type  string `json:"type"`
	Value []byte `json:"value"`
}

// PubKeyTypeSecp256k1 is the amino name of a secp256k1 public key
const PubKeyTypeSecp256k1 = "tendermint/PubKeySecp256k1"

type StdSignature struct {
	PubKey    PubKey `json:"pub_key"`
	Signature []byte `json:"signature"`
}

// AminoSignResponse is what the wallet returns: the document it actually signed, which it may have
// changed (fee, memo), and the signature.
type AminoSignResponse struct {
	Signed    StdSignDoc   `json:"signed"`
	Signature StdSignature `json:"signature"`
}

type StdTx struct {
	Msg        []AminoMsg     `json:"msg"`
	Fee        StdFee         `json:"fee"`
	Signatures []StdSignature `json:"signatures"`
	Memo       string         `json:"memo"`
}

// NewStdTx reassembles a transaction from what the wallet signed
func NewStdTx(signed StdSignDoc, signatures ...StdSignature) StdTx {
	return StdTx{
		Msg:        signed.Msgs,
		Fee:        signed.Fee.withCoins(),
		Signatures: signatures,
		Memo:       signed.Memo,
	}
}
