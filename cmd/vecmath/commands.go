package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oxygene76/vecmath/internal/types"
	"github.com/oxygene76/vecmath/pkg/eval"
	"github.com/oxygene76/vecmath/pkg/utils"
)

// initCmd writes the default configuration file
func initCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = utils.GetConfigPath(); err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite an existing config file")

	return cmd
}

// opsCmd lists the available operations
func opsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, op := range a.evaluator.Operations() {
				fmt.Fprintf(w, "%s\t%s\n", op.Usage(), op.Short)
			}
			return w.Flush()
		},
	}
}

// operationCmd exposes one evaluator operation as a subcommand
func operationCmd(a *app, op eval.Operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.Usage(),
		Short: op.Short,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.evaluator.Evaluate(op.Name, args)
			if err != nil {
				return err
			}
			return a.printResult(cmd, res)
		},
	}

	// "-1" after the first vector is a value, not a flag
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) printResult(cmd *cobra.Command, res *types.Result) error {
	out := cmd.OutOrStdout()

	switch a.config.Output.Format {
	case utils.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		_, err := fmt.Fprintln(out, res.Text(a.config.Output.Precision))
		return err
	}
}
