package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/openweb3-io/walletbridge/cmd/wb/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the wb command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wb",
		Short:        "Sign and broadcast OmniFlix transactions through a wallet",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			if err := setup.SetupLogging(args.LogLevel); err != nil {
				return err
			}

			profile, err := setup.LoadProfile(args)
			if err != nil {
				return err
			}

			bridge, err := setup.LoadBridge(cmd.Context(), args, profile)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"rpc":   profile.RPCURL,
				"rest":  profile.RESTURL,
				"chain": profile.ChainID,
			}).Debug("chain")

			cmd.SetContext(setup.CreateContext(cmd.Context(), bridge, profile))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(CmdChains())
	cmd.AddCommand(CmdSuggestion())
	cmd.AddCommand(CmdAccounts())
	cmd.AddCommand(CmdSend())
	cmd.AddCommand(CmdSign())
	return cmd
}

func main() {
	cmd := NewRootCmd()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
