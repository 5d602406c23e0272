package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace for all errors raised by the bridge
const Codespace = "walletbridge"

var (
	// The wallet capability, or its offline signer provider, is missing
	ErrWalletNotInstalled = errorsmod.Register(Codespace, 2, "please install the wallet extension")
	// The wallet has no chain suggestion support
	ErrUnsupportedWalletVersion = errorsmod.Register(Codespace, 3, "please use a recent version of the wallet extension")
	// The wallet rejected the chain suggestion
	ErrChainSuggestionFailed = errorsmod.Register(Codespace, 4, "failed to suggest the chain")
	// Account number / sequence lookup failed. Recovered with zero values unless strict.
	ErrSequenceFetchFailed = errorsmod.Register(Codespace, 5, "failed to fetch account sequence")
	// The chain answered with a non-zero code
	ErrBroadcastRejected = errorsmod.Register(Codespace, 6, "transaction rejected")
	// Network failure or exception during an external call
	ErrTransport = errorsmod.Register(Codespace, 7, "transport error")

	ErrInvalidProfile = errorsmod.Register(Codespace, 8, "invalid chain profile")
	ErrInvalidIntent  = errorsmod.Register(Codespace, 9, "invalid transaction intent")
)

// WrapErr adds context to one of the registered errors. A nil base falls back to ErrTransport.
func WrapErr(base *errorsmod.Error, context string) error {
	if base == nil {
		base = ErrTransport
	}
	if context == "" {
		return base
	}
	return errorsmod.Wrap(base, context)
}

// WrapCause wraps cause under a registered error, keeping the cause's message.
func WrapCause(base *errorsmod.Error, cause error) error {
	if cause == nil {
		return base
	}
	return errorsmod.Wrap(base, cause.Error())
}
