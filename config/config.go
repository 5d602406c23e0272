package config

import (
	"fmt"
	"strings"

	"github.com/openweb3-io/walletbridge/factory/defaults/chains"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "WB"

// Load builds the profile of chain. Values are taken, lowest precedence first, from the embedded
// profile of the configured network, the YAML file at path (optional), and WB_* environment
// variables such as WB_RPC_URL or WB_GAS_PRICE_STEP_AVERAGE.
func Load(path string, chain string) (*xc.ChainProfile, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("network", string(chains.Mainnets))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config %s: %v", path, err)
		}
	}

	network := chains.NetworkSelector(v.GetString("network"))
	base, err := chains.Get(network, chain)
	if err != nil {
		if path == "" {
			return nil, err
		}
		// a chain that is not embedded has to be fully described by the file
		logrus.WithField("chain", chain).Debug("no embedded profile, using config file only")
		base = &xc.ChainProfile{}
	}
	defaults, err := toMap(base)
	if err != nil {
		return nil, err
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	profile := &xc.ChainProfile{}
	if err := v.Unmarshal(profile); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func toMap(profile *xc.ChainProfile) (map[string]interface{}, error) {
	bz, err := yaml.Marshal(profile)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &out); err != nil {
		return nil, err
	}
	return out, nil
}
