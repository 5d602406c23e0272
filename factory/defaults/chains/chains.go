package chains

import (
	_ "embed"
	"fmt"
	"sort"

	xc "github.com/openweb3-io/walletbridge/types"
	"gopkg.in/yaml.v3"
)

type NetworkSelector string

const (
	Mainnets NetworkSelector = "mainnet"
	Testnets NetworkSelector = "testnet"
)

type config struct {
	Network NetworkSelector             `yaml:"network"`
	Chains  map[string]*xc.ChainProfile `yaml:"chains"`
}

func unmarshal(data string) *config {
	cfg := &config{}
	if err := yaml.Unmarshal([]byte(data), cfg); err != nil {
		panic(fmt.Sprintf("invalid embedded chain profiles: %v", err))
	}
	return cfg
}

func init() {
	maincfg := unmarshal(mainnetData)
	testcfg := unmarshal(testnetData)

	Mainnet = maincfg.Chains
	Testnet = testcfg.Chains

	for _, chain := range Mainnet {
		if chain.NetworkType == "" {
			chain.NetworkType = string(maincfg.Network)
		}
	}
	for _, chain := range Testnet {
		if chain.NetworkType == "" {
			chain.NetworkType = string(testcfg.Network)
		}
	}
}

//go:embed mainnet.yaml
var mainnetData string

//go:embed testnet.yaml
var testnetData string

var Mainnet map[string]*xc.ChainProfile
var Testnet map[string]*xc.ChainProfile

// Get returns a copy of the named profile so callers can override fields freely
func Get(network NetworkSelector, name string) (*xc.ChainProfile, error) {
	var profiles map[string]*xc.ChainProfile
	switch network {
	case Mainnets, "":
		profiles = Mainnet
	case Testnets:
		profiles = Testnet
	default:
		return nil, fmt.Errorf("unknown network %q", network)
	}
	profile, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("no %s profile for chain %q", network, name)
	}
	clone := *profile
	clone.Features = append([]string{}, profile.Features...)
	return &clone, nil
}

// Names lists the embedded chain names of network, sorted
func Names(network NetworkSelector) []string {
	profiles := Mainnet
	if network == Testnets {
		profiles = Testnet
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
