package dispatcher

import (
	"fmt"
	"strings"
)

// SignPath selects who produces the signature
type SignPath int

const (
	// The client signs internally through the wallet
	SignByClient SignPath = iota
	// The dispatcher builds the sign doc and asks the wallet for an amino signature
	SignAmino
)

// BroadcastPath selects where the signed transaction goes
type BroadcastPath int

const (
	BroadcastStargate BroadcastPath = iota
	BroadcastLegacy
	// Stop after signing and hand back the wallet's response
	BroadcastNone
)

// Strategy describes one sign/broadcast pipeline. FetchSequence only applies to SignAmino:
// when it is false the sign doc uses account number and sequence 0.
type Strategy struct {
	Name          string
	FetchSequence bool
	Sign          SignPath
	Broadcast     BroadcastPath
}

var (
	StargateBroadcast = Strategy{
		Name:      "stargate",
		Sign:      SignByClient,
		Broadcast: BroadcastStargate,
	}
	LegacyBroadcast = Strategy{
		Name:      "legacy",
		Sign:      SignByClient,
		Broadcast: BroadcastLegacy,
	}
	AminoCoordinatedBroadcast = Strategy{
		Name:          "amino",
		FetchSequence: true,
		Sign:          SignAmino,
		Broadcast:     BroadcastLegacy,
	}
	AminoSignOnly = Strategy{
		Name:          "amino-sign",
		FetchSequence: true,
		Sign:          SignAmino,
		Broadcast:     BroadcastNone,
	}
)

var Strategies = []Strategy{
	StargateBroadcast,
	LegacyBroadcast,
	AminoCoordinatedBroadcast,
	AminoSignOnly,
}

func StrategyByName(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Strategy{}, false
}

func (s Strategy) Validate() error {
	switch s.Sign {
	case SignByClient:
		if s.Broadcast == BroadcastNone {
			return fmt.Errorf("strategy %s: client signing always broadcasts", s.Name)
		}
	case SignAmino:
		// amino signed transactions can only be posted to the REST server
		if s.Broadcast == BroadcastStargate {
			return fmt.Errorf("strategy %s: amino signed transactions cannot be broadcast over stargate", s.Name)
		}
	default:
		return fmt.Errorf("strategy %s: unknown sign path %d", s.Name, s.Sign)
	}
	return nil
}

func (s Strategy) String() string {
	return s.Name
}
