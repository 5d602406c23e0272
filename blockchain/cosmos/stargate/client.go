package stargate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cosmossdk.io/math"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	sdkclient "github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/openweb3-io/walletbridge/blockchain/cosmos/address"
	cosmostypes "github.com/openweb3-io/walletbridge/blockchain/cosmos/types"
	"github.com/openweb3-io/walletbridge/client"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/sirupsen/logrus"
)

// RPC is the part of a CometBFT RPC client used here. *rpchttp.HTTP satisfies it.
type RPC interface {
	ABCIQueryWithOptions(ctx context.Context, path string, data cmtbytes.HexBytes, opts rpcclient.ABCIQueryOptions) (*coretypes.ResultABCIQuery, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)
}

type Options struct {
	grpcURL      string
	pollAttempts uint
	pollInterval time.Duration
	logger       logrus.FieldLogger
}

type Option func(*Options)

// WithGRPC reads accounts from a gRPC endpoint instead of ABCI queries
func WithGRPC(url string) Option {
	return func(o *Options) {
		o.grpcURL = url
	}
}

// WithPolling sets how long SignAndBroadcast waits for inclusion. Zero attempts returns the
// CheckTx result right away.
func WithPolling(attempts uint, interval time.Duration) Option {
	return func(o *Options) {
		o.pollAttempts = attempts
		o.pollInterval = interval
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func defaultOptions() *Options {
	return &Options{
		pollAttempts: 20,
		pollInterval: 3 * time.Second,
		logger:       logrus.StandardLogger(),
	}
}

// Client signs amino sign docs through an offline signer and broadcasts protobuf transactions over RPC
type Client struct {
	opts     *Options
	chainID  string
	rpc      RPC
	accounts AccountQuerier
	encoding cosmostypes.EncodingConfig
	signer   wallet.OfflineSigner
	closers  []io.Closer
}

var _ client.StargateClient = &Client{}

func NewClient(profile *xc.ChainProfile, rpc RPC, accounts AccountQuerier, encoding cosmostypes.EncodingConfig, signer wallet.OfflineSigner, o ...Option) *Client {
	opts := defaultOptions()
	for _, opt := range o {
		opt(opts)
	}
	return newClient(opts, profile, rpc, accounts, encoding, signer)
}

func newClient(opts *Options, profile *xc.ChainProfile, rpc RPC, accounts AccountQuerier, encoding cosmostypes.EncodingConfig, signer wallet.OfflineSigner) *Client {
	if accounts == nil {
		accounts = NewABCIQuerier(rpc, encoding.Codec)
	}

	return &Client{
		opts:     opts,
		chainID:  profile.ChainID,
		rpc:      rpc,
		accounts: accounts,
		encoding: encoding,
		signer:   signer,
	}
}

// NewConnector returns a client.StargateConnector for the profile. The profile's gRPC URL, when
// set, is used for account lookups.
func NewConnector(profile *xc.ChainProfile, o ...Option) (client.StargateConnector, error) {
	encoding, err := cosmostypes.MakeEncodingConfig(profile.Bech32Prefix)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, rpcURL string, signer wallet.OfflineSigner) (client.StargateClient, error) {
		opts := defaultOptions()
		opts.grpcURL = profile.GRPCURL
		for _, opt := range o {
			opt(opts)
		}

		rpc, err := sdkclient.NewClientFromNode(rpcURL)
		if err != nil {
			return nil, err
		}

		var accounts AccountQuerier
		var closers []io.Closer
		if opts.grpcURL != "" {
			conn, err := CreateGrpcConnection(opts.grpcURL)
			if err != nil {
				return nil, fmt.Errorf("error while creating a GRPC connection: %s", err)
			}
			accounts = NewGRPCQuerier(conn, encoding.Codec)
			closers = append(closers, conn)
		}

		opts.logger.WithFields(logrus.Fields{
			"rpc":  rpcURL,
			"grpc": opts.grpcURL,
		}).Debug("connected stargate client")

		c := newClient(opts, profile, rpc, accounts, encoding, signer)
		c.closers = closers
		return c, nil
	}, nil
}

// Close releases the gRPC connection dialed by the connector. Clients built with NewClient
// own nothing and Close is a no-op.
func (c *Client) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func (c *Client) GetSequence(ctx context.Context, address string) (xc.AccountSequenceInfo, error) {
	account, err := c.accounts.Account(ctx, address)
	if err != nil {
		return xc.AccountSequenceInfo{}, err
	}
	return xc.AccountSequenceInfo{
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
	}, nil
}

func (c *Client) SignAndBroadcast(ctx context.Context, address string, msgs []xc.AminoMsg, fee xc.StdFee, memo string) (*xc.BroadcastResult, error) {
	logger := c.opts.logger.WithFields(logrus.Fields{
		"chain_id": c.chainID,
		"address":  address,
	})

	account, err := c.GetSequence(ctx, address)
	if err != nil {
		return nil, err
	}

	signDoc := xc.MakeSignDoc(msgs, fee, c.chainID, memo, account.AccountNumber, account.Sequence)
	signed, err := c.signer.SignAmino(ctx, address, signDoc)
	if err != nil {
		return nil, err
	}
	if signed == nil {
		return nil, fmt.Errorf("wallet returned an empty signature")
	}

	txBytes, err := c.BuildTx(signed, account.Sequence)
	if err != nil {
		return nil, err
	}

	res, err := c.rpc.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, err
	}
	result := &xc.BroadcastResult{
		Code:      res.Code,
		Codespace: res.Codespace,
		TxHash:    res.Hash.String(),
		RawLog:    res.Log,
	}
	logger = logger.WithField("tx_hash", result.TxHash)
	if res.Code != 0 || c.opts.pollAttempts == 0 {
		logger.WithField("code", res.Code).Debug("broadcast returned without waiting for inclusion")
		return result, nil
	}

	return c.waitForInclusion(ctx, res.Hash, logger)
}

// BuildTx encodes a protobuf transaction carrying the wallet's amino signature
func (c *Client) BuildTx(signed *xc.AminoSignResponse, sequence uint64) ([]byte, error) {
	doc := signed.Signed

	sdkMsgs := make([]sdk.Msg, 0, len(doc.Msgs))
	for _, m := range doc.Msgs {
		bz, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		var msg sdk.Msg
		if err := c.encoding.Amino.UnmarshalJSON(bz, &msg); err != nil {
			return nil, fmt.Errorf("could not decode amino message %s: %v", m.Type, err)
		}
		sdkMsgs = append(sdkMsgs, msg)
	}

	gasLimit, err := doc.Fee.GasLimit()
	if err != nil {
		return nil, err
	}
	feeCoins, err := toCoins(doc.Fee.Amount)
	if err != nil {
		return nil, err
	}

	builder := c.encoding.TxConfig.NewTxBuilder()
	if err := builder.SetMsgs(sdkMsgs...); err != nil {
		return nil, err
	}
	builder.SetMemo(doc.Memo)
	builder.SetGasLimit(gasLimit)
	builder.SetFeeAmount(feeCoins)
	if doc.Fee.Granter != "" {
		granter, err := accAddress(doc.Fee.Granter)
		if err != nil {
			return nil, err
		}
		builder.SetFeeGranter(granter)
	}
	if doc.Fee.Payer != "" {
		payer, err := accAddress(doc.Fee.Payer)
		if err != nil {
			return nil, err
		}
		builder.SetFeePayer(payer)
	}

	pubKey, err := address.GetPublicKey(address.AlgoSecp256k1, signed.Signature.PubKey.Value)
	if err != nil {
		return nil, err
	}
	err = builder.SetSignatures(signingtypes.SignatureV2{
		PubKey: pubKey,
		Data: &signingtypes.SingleSignatureData{
			SignMode:  signingtypes.SignMode_SIGN_MODE_LEGACY_AMINO_JSON,
			Signature: signed.Signature.Signature,
		},
		Sequence: sequence,
	})
	if err != nil {
		return nil, err
	}

	return c.encoding.TxConfig.TxEncoder()(builder.GetTx())
}

func (c *Client) waitForInclusion(ctx context.Context, hash cmtbytes.HexBytes, logger logrus.FieldLogger) (*xc.BroadcastResult, error) {
	for attempt := uint(1); attempt <= c.opts.pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.opts.pollInterval):
		}

		res, err := c.rpc.Tx(ctx, hash, false)
		if err != nil {
			logger.WithError(err).WithField("attempt", attempt).Debug("transaction not yet included")
			continue
		}

		return &xc.BroadcastResult{
			Code:      res.TxResult.Code,
			Codespace: res.TxResult.Codespace,
			TxHash:    res.Hash.String(),
			Height:    res.Height,
			RawLog:    res.TxResult.Log,
			GasWanted: res.TxResult.GasWanted,
			GasUsed:   res.TxResult.GasUsed,
		}, nil
	}

	return nil, xc.WrapErr(xc.ErrTransport, fmt.Sprintf("transaction with ID %s was submitted but was not yet found on the chain", hash.String()))
}

func toCoins(coins []xc.Coin) (sdk.Coins, error) {
	out := make(sdk.Coins, 0, len(coins))
	for _, coin := range coins {
		amount, ok := math.NewIntFromString(coin.Amount)
		if !ok {
			return nil, fmt.Errorf("invalid fee amount %q", coin.Amount)
		}
		out = append(out, sdk.Coin{Denom: coin.Denom, Amount: amount})
	}
	return out.Sort(), nil
}

// accAddress decodes without consulting the global sdk bech32 config
func accAddress(addr string) (sdk.AccAddress, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("empty address string is not allowed")
	}
	_, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return nil, err
	}
	return sdk.AccAddress(bz), nil
}
