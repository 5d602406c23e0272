package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/openweb3-io/walletbridge/config"
	"github.com/openweb3-io/walletbridge/factory"
	"github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet"
	"github.com/openweb3-io/walletbridge/wallet/keyring"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ContextKey string

const (
	ContextBridge  ContextKey = "bridge"
	ContextProfile ContextKey = "profile"
)

const KeyringWallet = "keyring"

func WrapBridge(ctx context.Context, bridge *factory.Bridge) context.Context {
	return context.WithValue(ctx, ContextBridge, bridge)
}

func UnwrapBridge(ctx context.Context) *factory.Bridge {
	return ctx.Value(ContextBridge).(*factory.Bridge)
}

func WrapProfile(ctx context.Context, profile *types.ChainProfile) context.Context {
	return context.WithValue(ctx, ContextProfile, profile)
}

func UnwrapProfile(ctx context.Context) *types.ChainProfile {
	return ctx.Value(ContextProfile).(*types.ChainProfile)
}

func CreateContext(ctx context.Context, bridge *factory.Bridge, profile *types.ChainProfile) context.Context {
	ctx = WrapBridge(ctx, bridge)
	ctx = WrapProfile(ctx, profile)
	return ctx
}

type Args struct {
	Chain      string
	ConfigPath string
	LogLevel   string
	Mnemonic   string
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("chain", "omniflix", "Chain to use.")
	cmd.PersistentFlags().String("config", "", "YAML file overriding the chain profile. Optional.")
	cmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error).")
	cmd.PersistentFlags().String("mnemonic", "", "Mnemonic of the keyring wallet. A new one is generated when empty.")
}

// ArgsFromCmd reads the persistent flags, falling back to WB_* environment variables
func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"chain", "config", "log-level", "mnemonic"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	args := &Args{
		Chain:      v.GetString("chain"),
		ConfigPath: v.GetString("config"),
		LogLevel:   v.GetString("log-level"),
		Mnemonic:   v.GetString("mnemonic"),
	}
	if args.Chain == "" {
		return nil, fmt.Errorf("--chain required")
	}
	return args, nil
}

func SetupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}

func LoadProfile(args *Args) (*types.ChainProfile, error) {
	return config.Load(args.ConfigPath, args.Chain)
}

// LoadBridge wires the bridge with the in-process keyring wallet
func LoadBridge(ctx context.Context, args *Args, profile *types.ChainProfile) (*factory.Bridge, error) {
	if args.Mnemonic == "" {
		logrus.Warn("no mnemonic given, using a newly generated wallet")
	}
	provider := wallet.NewProvider()
	provider.Register(KeyringWallet, keyring.Creator(args.Mnemonic))

	return factory.NewFactory(provider, factory.WithLogger(logrus.StandardLogger())).NewBridge(ctx, KeyringWallet, profile)
}
