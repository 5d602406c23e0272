package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	cosmostypes "github.com/openweb3-io/walletbridge/blockchain/cosmos/types"
	"github.com/openweb3-io/walletbridge/client"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	BroadcastModeSync  = "sync"
	BroadcastModeBlock = "block"
)

type Options struct {
	http   *http.Client
	mode   string
	logger logrus.FieldLogger
}

type Option func(*Options)

func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		o.http = c
	}
}

// WithBroadcastMode sets the "mode" field posted to /txs
func WithBroadcastMode(mode string) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// Client talks to a node's REST server on behalf of one address
type Client struct {
	opts    *Options
	URL     string
	chainID string
	address string
	signer  wallet.OfflineSigner
	codec   codec.Codec
}

var _ client.LegacyClient = &Client{}

func NewClient(profile *xc.ChainProfile, restURL string, address string, signer wallet.OfflineSigner, cdc codec.Codec, o ...Option) *Client {
	opts := &Options{
		http:   &http.Client{},
		mode:   BroadcastModeSync,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range o {
		opt(opts)
	}

	return &Client{
		opts:    opts,
		URL:     strings.TrimSuffix(restURL, "/"),
		chainID: profile.ChainID,
		address: address,
		signer:  signer,
		codec:   cdc,
	}
}

// NewFactory returns a client.LegacyClientFactory bound to the profile's chain
func NewFactory(profile *xc.ChainProfile, o ...Option) (client.LegacyClientFactory, error) {
	encoding, err := cosmostypes.MakeEncodingConfig(profile.Bech32Prefix)
	if err != nil {
		return nil, err
	}
	return func(restURL, address string, signer wallet.OfflineSigner) client.LegacyClient {
		return NewClient(profile, restURL, address, signer, encoding.Codec, o...)
	}, nil
}

type broadcastRequest struct {
	Tx   xc.StdTx `json:"tx"`
	Mode string   `json:"mode"`
}

type broadcastResponse struct {
	Height    string `json:"height"`
	TxHash    string `json:"txhash"`
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace"`
	RawLog    string `json:"raw_log"`
	GasWanted string `json:"gas_wanted"`
	GasUsed   string `json:"gas_used"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BroadcastTx posts a signed StdTx to /txs
func (client *Client) BroadcastTx(ctx context.Context, tx xc.StdTx) (*xc.BroadcastResult, error) {
	bz, err := client.ApiCall(ctx, http.MethodPost, "/txs", &broadcastRequest{Tx: tx, Mode: client.opts.mode})
	if err != nil {
		return nil, err
	}

	var r broadcastResponse
	if err := json.Unmarshal(bz, &r); err != nil {
		return nil, errors.Wrap(err, "decode broadcast response")
	}

	return &xc.BroadcastResult{
		Code:      r.Code,
		Codespace: r.Codespace,
		TxHash:    r.TxHash,
		Height:    parseInt(r.Height),
		RawLog:    r.RawLog,
		GasWanted: parseInt(r.GasWanted),
		GasUsed:   parseInt(r.GasUsed),
	}, nil
}

// GetAccount reads the bound address's account number and sequence
func (client *Client) GetAccount(ctx context.Context) (xc.AccountSequenceInfo, error) {
	bz, err := client.ApiCall(ctx, http.MethodGet, "/cosmos/auth/v1beta1/accounts/"+client.address, nil)
	if err != nil {
		return xc.AccountSequenceInfo{}, err
	}

	var resp authtypes.QueryAccountResponse
	if err := client.codec.UnmarshalJSON(bz, &resp); err != nil {
		return xc.AccountSequenceInfo{}, errors.Wrap(err, "decode account")
	}
	if resp.Account == nil {
		return xc.AccountSequenceInfo{}, errors.Errorf("account %s not found", client.address)
	}
	var account sdk.AccountI
	if err := client.codec.UnpackAny(resp.Account, &account); err != nil {
		return xc.AccountSequenceInfo{}, err
	}

	return xc.AccountSequenceInfo{
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
	}, nil
}

// SignAndBroadcast signs msgs through the wallet and posts the result
func (client *Client) SignAndBroadcast(ctx context.Context, msgs []xc.AminoMsg, fee xc.StdFee, memo string) (*xc.BroadcastResult, error) {
	account, err := client.GetAccount(ctx)
	if err != nil {
		return nil, err
	}

	signDoc := xc.MakeSignDoc(msgs, fee, client.chainID, memo, account.AccountNumber, account.Sequence)
	signed, err := client.signer.SignAmino(ctx, client.address, signDoc)
	if err != nil {
		return nil, err
	}
	if signed == nil {
		return nil, errors.New("wallet returned an empty signature")
	}

	return client.BroadcastTx(ctx, xc.NewStdTx(signed.Signed, signed.Signature))
}

func (client *Client) ApiCall(ctx context.Context, method string, path string, data interface{}) ([]byte, error) {
	url := client.URL + path

	var req *http.Request
	var err error
	if data != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(data); err != nil {
			return nil, err
		}
		req, err = http.NewRequestWithContext(ctx, method, url, buf)
	} else {
		// untyped nil, a typed nil body panics
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	logger := client.opts.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	})
	logger.Debug("rest request")

	res, err := client.opts.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()
	bz, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"body":   string(bz),
		"status": res.StatusCode,
	}).Debug("rest response")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var r errorResponse
		if err := json.Unmarshal(bz, &r); err == nil {
			if r.Error != "" {
				return nil, errors.New(r.Error)
			}
			if r.Message != "" {
				return nil, errors.New(r.Message)
			}
		}
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}

	return bz, nil
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
