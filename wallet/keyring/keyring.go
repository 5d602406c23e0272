package keyring

import (
	"context"
	"fmt"
	"sync"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/openweb3-io/walletbridge/blockchain/cosmos/address"
	cosmostypes "github.com/openweb3-io/walletbridge/blockchain/cosmos/types"
	"github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/sirupsen/logrus"
)

// Wallet is an in-process wallet backed by an in-memory cosmos-sdk keyring.
// It only signs for chains that were suggested to it and then enabled.
type Wallet struct {
	mu        sync.RWMutex
	kb        keyring.Keyring
	mnemonic  string
	suggested map[string]types.ChainInfo
	enabled   map[string]bool
	logger    logrus.FieldLogger
}

var (
	_ wallet.Wallet         = &Wallet{}
	_ wallet.SignerProvider = &Wallet{}
	_ wallet.ChainSuggester = &Wallet{}
)

type Option func(*Wallet)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(w *Wallet) {
		w.logger = logger
	}
}

// New restores a wallet from mnemonic, or generates a new mnemonic when it is empty
func New(mnemonic string, o ...Option) (*Wallet, error) {
	// the keyring codec only serializes key records
	encoding, err := cosmostypes.MakeEncodingConfig(sdk.Bech32MainPrefix)
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		kb:        keyring.NewInMemory(encoding.Codec),
		suggested: map[string]types.ChainInfo{},
		enabled:   map[string]bool{},
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range o {
		opt(w)
	}

	if mnemonic == "" {
		// generate once with the cosmos hub path; keys per coin type are derived from it later
		_, mnemonic, err = w.kb.NewMnemonic("seed", keyring.English, hdPath(sdk.CoinType), "", hd.Secp256k1)
		if err != nil {
			return nil, err
		}
		if err := w.kb.Delete("seed"); err != nil {
			return nil, err
		}
	}
	w.mnemonic = mnemonic
	return w, nil
}

// Creator adapts New to the wallet provider
func Creator(mnemonic string, o ...Option) wallet.Creator {
	return func(ctx context.Context, profile *types.ChainProfile) (wallet.Wallet, error) {
		return New(mnemonic, o...)
	}
}

func (w *Wallet) Mnemonic() string {
	return w.mnemonic
}

func hdPath(coinType uint32) string {
	return hd.CreateHDPath(coinType, 0, 0).String()
}

func keyName(coinType uint32) string {
	return fmt.Sprintf("coin-%d", coinType)
}

func (w *Wallet) ExperimentalSuggestChain(ctx context.Context, info types.ChainInfo) error {
	if info.ChainID == "" {
		return fmt.Errorf("chain id is required")
	}
	if info.Bech32Config.Bech32PrefixAccAddr == "" {
		return fmt.Errorf("bech32 prefix is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	name := keyName(info.Bip44.CoinType)
	if _, err := w.kb.Key(name); err != nil {
		if _, err := w.kb.NewAccount(name, w.mnemonic, "", hdPath(info.Bip44.CoinType), hd.Secp256k1); err != nil {
			return err
		}
	}
	w.suggested[info.ChainID] = info
	w.logger.WithField("chain_id", info.ChainID).Debug("chain suggested")
	return nil
}

func (w *Wallet) Enable(ctx context.Context, chainID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.suggested[chainID]; !ok {
		return fmt.Errorf("there is no chain info for %s", chainID)
	}
	w.enabled[chainID] = true
	return nil
}

func (w *Wallet) OfflineSignerOnlyAmino(chainID string) (wallet.OfflineSigner, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	info, ok := w.suggested[chainID]
	if !ok {
		return nil, fmt.Errorf("there is no chain info for %s", chainID)
	}
	return &signer{wallet: w, chainID: chainID, info: info}, nil
}

func (w *Wallet) isEnabled(chainID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.enabled[chainID]
}

type signer struct {
	wallet  *Wallet
	chainID string
	info    types.ChainInfo
}

var _ wallet.OfflineSigner = &signer{}

func (s *signer) account() (types.AccountData, error) {
	name := keyName(s.info.Bip44.CoinType)
	record, err := s.wallet.kb.Key(name)
	if err != nil {
		return types.AccountData{}, err
	}
	pub, err := record.GetPubKey()
	if err != nil {
		return types.AccountData{}, err
	}
	addr, err := address.NewAddressBuilder(s.info.Bech32Config.Bech32PrefixAccAddr).GetAddressFromPublicKey(pub.Bytes())
	if err != nil {
		return types.AccountData{}, err
	}
	return types.AccountData{
		Address: addr,
		PubKey:  pub.Bytes(),
		Algo:    address.AlgoSecp256k1,
	}, nil
}

func (s *signer) GetAccounts(ctx context.Context) ([]types.AccountData, error) {
	if !s.wallet.isEnabled(s.chainID) {
		return nil, fmt.Errorf("chain %s is not enabled", s.chainID)
	}
	account, err := s.account()
	if err != nil {
		return nil, err
	}
	return []types.AccountData{account}, nil
}

func (s *signer) SignAmino(ctx context.Context, signerAddress string, signDoc types.StdSignDoc) (*types.AminoSignResponse, error) {
	if !s.wallet.isEnabled(s.chainID) {
		return nil, fmt.Errorf("chain %s is not enabled", s.chainID)
	}
	if signDoc.ChainID != s.chainID {
		return nil, fmt.Errorf("sign doc chain id %s does not match signer chain id %s", signDoc.ChainID, s.chainID)
	}

	account, err := s.account()
	if err != nil {
		return nil, err
	}
	if account.Address != signerAddress {
		return nil, fmt.Errorf("unknown signer address %s", signerAddress)
	}

	bz, err := signDoc.Bytes()
	if err != nil {
		return nil, err
	}
	sig, pub, err := s.wallet.kb.Sign(keyName(s.info.Bip44.CoinType), bz, signing.SignMode_SIGN_MODE_LEGACY_AMINO_JSON)
	if err != nil {
		return nil, err
	}

	s.wallet.logger.WithFields(logrus.Fields{
		"chain_id": s.chainID,
		"address":  signerAddress,
	}).Debug("signed amino document")

	return &types.AminoSignResponse{
		Signed: signDoc,
		Signature: types.StdSignature{
			PubKey:    types.PubKey{Type: types.PubKeyTypeSecp256k1, Value: pub.Bytes()},
			Signature: sig,
		},
	}, nil
}
