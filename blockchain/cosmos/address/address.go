package address

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const AlgoSecp256k1 = "secp256k1"

// AddressBuilder for Cosmos
type AddressBuilder struct {
	Prefix string
}

// NewAddressBuilder creates a new Cosmos AddressBuilder for an account prefix
func NewAddressBuilder(prefix string) AddressBuilder {
	return AddressBuilder{
		Prefix: prefix,
	}
}

// GetPublicKey wraps raw public key bytes reported by a wallet
func GetPublicKey(algo string, publicKeyBytes []byte) (cryptotypes.PubKey, error) {
	switch algo {
	case "", AlgoSecp256k1:
		if len(publicKeyBytes) != secp256k1.PubKeySize {
			return nil, fmt.Errorf("invalid secp256k1 public key length %d", len(publicKeyBytes))
		}
		return &secp256k1.PubKey{Key: publicKeyBytes}, nil
	default:
		return nil, fmt.Errorf("unsupported key algorithm %q", algo)
	}
}

// GetAddressFromPublicKey returns an Address given a compressed secp256k1 public key
func (ab AddressBuilder) GetAddressFromPublicKey(publicKeyBytes []byte) (string, error) {
	publicKey, err := GetPublicKey(AlgoSecp256k1, publicKeyBytes)
	if err != nil {
		return "", err
	}
	rawAddress := publicKey.Address()

	err = sdk.VerifyAddressFormat(rawAddress)
	if err != nil {
		return "", err
	}
	return sdk.Bech32ifyAddressBytes(ab.Prefix, rawAddress)
}
