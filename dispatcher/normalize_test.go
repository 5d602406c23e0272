package dispatcher_test

import (
	"errors"
	"testing"

	"github.com/openweb3-io/walletbridge/dispatcher"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	ok := &xc.BroadcastResult{Code: 0, TxHash: "ABCD", Height: 10}
	signed := &xc.AminoSignResponse{Signature: xc.StdSignature{Signature: []byte("sig1")}}

	vectors := []struct {
		name    string
		result  any
		err     error
		success bool
		message string
		payload any
	}{
		{name: "code zero", result: ok, success: true, payload: ok},
		{name: "log wins", result: &xc.BroadcastResult{Code: 5, Log: "insufficient funds", RawLog: "ignored"}, message: "insufficient funds"},
		{name: "raw log fallback", result: &xc.BroadcastResult{Code: 5, RawLog: "out of gas"}, message: "out of gas"},
		{name: "uncoded payload", result: signed, success: true, payload: signed},
		{name: "nil payload", result: nil, success: true, payload: nil},
		{name: "error", result: ok, err: errors.New("connection refused"), message: "connection refused"},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			require := require.New(t)
			res := dispatcher.Normalize(v.result, v.err)
			require.Equal(v.success, res.IsSuccess())
			if v.success {
				if v.payload == nil {
					require.Nil(res.Payload())
				} else {
					require.Same(v.payload, res.Payload())
				}
				return
			}
			msg, failed := res.Failure()
			require.True(failed)
			require.Equal(v.message, msg)
			require.Nil(res.Payload())
		})
	}
}

func TestStrategyByName(t *testing.T) {
	require := require.New(t)

	for _, s := range dispatcher.Strategies {
		require.NoError(s.Validate())
		found, ok := dispatcher.StrategyByName(s.Name)
		require.True(ok)
		require.Equal(s, found)
	}

	s, ok := dispatcher.StrategyByName("AMINO")
	require.True(ok)
	require.Equal(dispatcher.AminoCoordinatedBroadcast, s)

	_, ok = dispatcher.StrategyByName("ledger")
	require.False(ok)

	bad := dispatcher.Strategy{Name: "x", Sign: dispatcher.SignAmino, Broadcast: dispatcher.BroadcastStargate}
	require.Error(bad.Validate())
	bad = dispatcher.Strategy{Name: "y", Sign: dispatcher.SignByClient, Broadcast: dispatcher.BroadcastNone}
	require.Error(bad.Validate())
}
