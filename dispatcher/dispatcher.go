package dispatcher

import (
	"context"
	"errors"

	"github.com/openweb3-io/walletbridge/client"
	"github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/util"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/sirupsen/logrus"
)

// SignerSource enables the chain and returns the wallet's signer. Satisfied by *wallet.Gateway.
type SignerSource interface {
	Signer(ctx context.Context) (wallet.OfflineSigner, error)
}

var _ SignerSource = &wallet.Gateway{}

type Options struct {
	strictSequence bool
	logger         logrus.FieldLogger
}

type Option func(*Options)

// WithStrictSequence fails the dispatch when the account sequence cannot be fetched,
// instead of signing with account number 0 and sequence 0.
func WithStrictSequence() Option {
	return func(o *Options) {
		o.strictSequence = true
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// Dispatcher signs and broadcasts transaction intents through one of several strategies.
// It holds no mutable state; concurrent dispatches are independent.
type Dispatcher struct {
	opts            *Options
	profile         *types.ChainProfile
	signers         SignerSource
	connectStargate client.StargateConnector
	newLegacy       client.LegacyClientFactory
}

func New(
	profile *types.ChainProfile,
	signers SignerSource,
	connectStargate client.StargateConnector,
	newLegacy client.LegacyClientFactory,
	o ...Option,
) *Dispatcher {
	opts := &Options{
		logger: logrus.StandardLogger(),
	}
	for _, opt := range o {
		opt(opts)
	}

	return &Dispatcher{
		opts:            opts,
		profile:         profile,
		signers:         signers,
		connectStargate: connectStargate,
		newLegacy:       newLegacy,
	}
}

// Dispatch runs strategy for intent on behalf of sender. It always returns exactly one result,
// also when a collaborator panics.
func (d *Dispatcher) Dispatch(ctx context.Context, strategy Strategy, intent *types.TxIntent, sender string) (result types.DispatchResult) {
	logger := d.opts.logger.WithFields(logrus.Fields{
		"chain_id": d.profile.ChainID,
		"strategy": strategy.Name,
		"sender":   sender,
	})

	defer func() {
		if r := recover(); r != nil {
			err := util.InterfaceToError(r)
			logger.WithError(err).Error("recovered from panic during dispatch")
			result = Normalize(nil, err)
		}
	}()

	res, err := d.run(ctx, strategy, intent, sender, logger)
	result = Normalize(res, err)
	if msg, failed := result.Failure(); failed {
		logger.WithField("reason", msg).Warn("dispatch failed")
	} else {
		logger.Info("dispatch succeeded")
	}
	return result
}

// SignTxAndBroadcast signs through a Stargate client and broadcasts over RPC
func (d *Dispatcher) SignTxAndBroadcast(ctx context.Context, intent *types.TxIntent, sender string) types.DispatchResult {
	return d.Dispatch(ctx, StargateBroadcast, intent, sender)
}

// CosmosSignTxAndBroadcast signs and broadcasts through the legacy REST client
func (d *Dispatcher) CosmosSignTxAndBroadcast(ctx context.Context, intent *types.TxIntent, sender string) types.DispatchResult {
	return d.Dispatch(ctx, LegacyBroadcast, intent, sender)
}

// AminoSignTxAndBroadcast builds the amino sign doc itself and broadcasts through REST
func (d *Dispatcher) AminoSignTxAndBroadcast(ctx context.Context, intent *types.TxIntent, sender string) types.DispatchResult {
	return d.Dispatch(ctx, AminoCoordinatedBroadcast, intent, sender)
}

// AminoSignTx only signs; the payload is the wallet's *types.AminoSignResponse
func (d *Dispatcher) AminoSignTx(ctx context.Context, intent *types.TxIntent, sender string) types.DispatchResult {
	return d.Dispatch(ctx, AminoSignOnly, intent, sender)
}

func (d *Dispatcher) run(ctx context.Context, s Strategy, intent *types.TxIntent, sender string, logger logrus.FieldLogger) (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, types.WrapErr(types.ErrInvalidIntent, "nil intent")
	}
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	msgs := intent.Messages()

	signer, err := d.signers.Signer(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("obtained offline signer")

	var legacy client.LegacyClient
	if s.Broadcast == BroadcastLegacy {
		legacy = d.newLegacy(d.profile.RESTURL, sender, signer)
	}

	if s.Sign == SignByClient {
		if s.Broadcast == BroadcastLegacy {
			return broadcastOutcome(legacy.SignAndBroadcast(ctx, msgs, intent.Fee, intent.Memo))
		}
		stargate, err := d.connectStargate(ctx, d.profile.RPCURL, signer)
		if err != nil {
			return nil, err
		}
		defer d.closeStargate(stargate, logger)
		return broadcastOutcome(stargate.SignAndBroadcast(ctx, sender, msgs, intent.Fee, intent.Memo))
	}

	var stargate client.StargateClient
	if s.FetchSequence {
		stargate, err = d.connectStargate(ctx, d.profile.RPCURL, signer)
		if err != nil {
			return nil, err
		}
		defer d.closeStargate(stargate, logger)
	}

	// fetched right before the sign doc is built so it is as fresh as possible
	account, err := d.fetchSequence(ctx, stargate, sender, logger)
	if err != nil {
		return nil, err
	}
	signDoc := types.MakeSignDoc(msgs, intent.Fee, d.profile.ChainID, intent.Memo, account.AccountNumber, account.Sequence)
	logger.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"sequence":       account.Sequence,
	}).Debug("requesting amino signature")

	signed, err := signer.SignAmino(ctx, sender, signDoc)
	if err != nil {
		return nil, err
	}
	if signed == nil {
		return nil, errors.New("wallet returned an empty signature")
	}

	if s.Broadcast == BroadcastNone {
		return signed, nil
	}

	tx := types.NewStdTx(signed.Signed, signed.Signature)
	return broadcastOutcome(legacy.BroadcastTx(ctx, tx))
}

func (d *Dispatcher) closeStargate(stargate client.StargateClient, logger logrus.FieldLogger) {
	if err := stargate.Close(); err != nil {
		logger.WithError(err).Warn("could not close stargate client")
	}
}

func (d *Dispatcher) fetchSequence(ctx context.Context, stargate client.StargateClient, sender string, logger logrus.FieldLogger) (types.AccountSequenceInfo, error) {
	if stargate == nil {
		return types.AccountSequenceInfo{}, nil
	}

	account, err := stargate.GetSequence(ctx, sender)
	if err != nil {
		if d.opts.strictSequence {
			return types.AccountSequenceInfo{}, types.WrapCause(types.ErrSequenceFetchFailed, err)
		}
		logger.WithError(err).Warn("could not fetch account sequence, signing with account number 0 and sequence 0")
		return types.AccountSequenceInfo{}, nil
	}
	return account, nil
}

// avoids handing a typed nil to the normalizer
func broadcastOutcome(res *types.BroadcastResult, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return res, nil
}
