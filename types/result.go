package types

import (
	"errors"
	"fmt"
)

// CodedResult is a result that carries a chain response code
type CodedResult interface {
	ResultCode() uint32
	ResultLog() string
	ResultRawLog() string
}

// BroadcastResult is the outcome of a broadcast, as reported by the node
type BroadcastResult struct {
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace,omitempty"`
	TxHash    string `json:"txhash"`
	Height    int64  `json:"height"`
	Log       string `json:"log,omitempty"`
	RawLog    string `json:"raw_log,omitempty"`
	GasWanted int64  `json:"gas_wanted,omitempty"`
	GasUsed   int64  `json:"gas_used,omitempty"`
}

var _ CodedResult = &BroadcastResult{}

// nil results report code 0
func (r *BroadcastResult) ResultCode() uint32 {
	if r == nil {
		return 0
	}
	return r.Code
}

func (r *BroadcastResult) ResultLog() string {
	if r == nil {
		return ""
	}
	return r.Log
}

func (r *BroadcastResult) ResultRawLog() string {
	if r == nil {
		return ""
	}
	return r.RawLog
}

// Err maps a non-zero code to ErrBroadcastRejected
func (r *BroadcastResult) Err() error {
	if r == nil || r.Code == 0 {
		return nil
	}
	msg := r.Log
	if msg == "" {
		msg = r.RawLog
	}
	return WrapErr(ErrBroadcastRejected, fmt.Sprintf("codespace=%s code=%d: %s", r.Codespace, r.Code, msg))
}

// DispatchResult is either a Success carrying the raw payload, or a Failure carrying a message.
type DispatchResult struct {
	ok      bool
	message string
	payload any
}

func NewSuccess(payload any) DispatchResult {
	return DispatchResult{ok: true, payload: payload}
}

func NewFailure(message string) DispatchResult {
	return DispatchResult{message: message}
}

func (r DispatchResult) IsSuccess() bool { return r.ok }

// Payload is nil for failures
func (r DispatchResult) Payload() any { return r.payload }

// Failure returns the failure message, and false on success
func (r DispatchResult) Failure() (string, bool) {
	return r.message, !r.ok
}

// Err turns a Failure into an error, nil on success
func (r DispatchResult) Err() error {
	if r.ok {
		return nil
	}
	return errors.New(r.message)
}

func (r DispatchResult) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.payload)
	}
	return fmt.Sprintf("Failure(%s)", r.message)
}
