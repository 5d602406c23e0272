package main

import (
	"encoding/json"
	"fmt"

	"github.com/openweb3-io/walletbridge/builder"
	"github.com/openweb3-io/walletbridge/cmd/wb/setup"
	"github.com/openweb3-io/walletbridge/dispatcher"
	"github.com/openweb3-io/walletbridge/factory/defaults/chains"
	"github.com/openweb3-io/walletbridge/types"
	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return nil
}

func CmdChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the embedded chain profiles.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := map[string]map[string]string{}
			for _, network := range []chains.NetworkSelector{chains.Mainnets, chains.Testnets} {
				out[string(network)] = map[string]string{}
				for _, name := range chains.Names(network) {
					profile, err := chains.Get(network, name)
					if err != nil {
						return err
					}
					out[string(network)][name] = profile.ChainID
				}
			}
			return printJSON(cmd, out)
		},
	}
}

func CmdSuggestion() *cobra.Command {
	return &cobra.Command{
		Use:   "suggestion",
		Short: "Print the chain suggestion sent to the wallet.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, setup.UnwrapProfile(cmd.Context()).Suggestion())
		},
	}
}

func CmdAccounts() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Initialize the wallet and list its accounts.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := setup.UnwrapBridge(cmd.Context()).Initialize(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, accounts)
		},
	}
}

func addIntentFlags(cmd *cobra.Command) {
	cmd.Flags().String("denom", "", "Minimal denom to send; the amount is then in that denom's base units")
	cmd.Flags().String("memo", "", "Transaction memo")
	cmd.Flags().Uint64("gas", 0, "Gas limit, defaults to 200000 per message")
	cmd.Flags().String("priority", "average", "Gas price step: low, average or high")
}

// bankSendIntent initializes the wallet and builds a bank send from its first account
func bankSendIntent(cmd *cobra.Command, to string, amount string) (*types.TxIntent, string, error) {
	ctx := cmd.Context()
	bridge := setup.UnwrapBridge(ctx)
	profile := setup.UnwrapProfile(ctx)

	accounts, err := bridge.Initialize(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(accounts) == 0 {
		return nil, "", fmt.Errorf("wallet has no accounts")
	}
	sender := accounts[0].Address
	if err := profile.ValidateAddress(to); err != nil {
		return nil, "", fmt.Errorf("invalid recipient: %v", err)
	}

	denom, _ := cmd.Flags().GetString("denom")
	memo, _ := cmd.Flags().GetString("memo")
	gas, _ := cmd.Flags().GetUint64("gas")
	priorityRaw, _ := cmd.Flags().GetString("priority")
	priority, err := types.NewPriority(priorityRaw)
	if err != nil {
		return nil, "", err
	}

	// without --denom the amount is in the display currency, e.g. 1.5 FLIX
	if denom == "" {
		amount, err = profile.ToBaseAmount(amount)
		if err != nil {
			return nil, "", err
		}
	}

	msgs, err := builder.NewMsgBuilder(profile)
	if err != nil {
		return nil, "", err
	}
	send, err := msgs.BankSend(sender, to, amount, denom)
	if err != nil {
		return nil, "", err
	}

	options := []builder.BuilderOption{builder.WithMemo(memo), builder.WithGasPriority(priority)}
	if gas > 0 {
		options = append(options, builder.WithGas(gas))
	}
	intent, err := builder.NewTxIntent(profile, []types.AminoMsg{send}, options...)
	if err != nil {
		return nil, "", err
	}
	return intent, sender, nil
}

func CmdSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <to> <amount>",
		Short: "Send coins from the wallet's first account.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategyName, _ := cmd.Flags().GetString("strategy")
			strategy, ok := dispatcher.StrategyByName(strategyName)
			if !ok {
				return fmt.Errorf("unknown strategy %q", strategyName)
			}

			intent, sender, err := bankSendIntent(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			result := setup.UnwrapBridge(cmd.Context()).Dispatch(cmd.Context(), strategy, intent, sender)
			if err := result.Err(); err != nil {
				return err
			}
			return printJSON(cmd, result.Payload())
		},
	}
	addIntentFlags(cmd)
	cmd.Flags().String("strategy", dispatcher.StargateBroadcast.Name, "One of stargate, legacy, amino, amino-sign")
	return cmd
}

func CmdSign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <to> <amount>",
		Short: "Sign a send with amino without broadcasting it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, sender, err := bankSendIntent(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			result := setup.UnwrapBridge(cmd.Context()).AminoSignTx(cmd.Context(), intent, sender)
			if err := result.Err(); err != nil {
				return err
			}
			return printJSON(cmd, result.Payload())
		},
	}
	addIntentFlags(cmd)
	return cmd
}
