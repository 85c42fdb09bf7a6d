package main

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oxygene76/vecmath/pkg/eval"
	"github.com/oxygene76/vecmath/pkg/utils"
)

const (
	appName = "vecmath"
	version = "v1.0.0"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	cfgFile string
	verbose bool

	v         *viper.Viper
	config    *utils.Config
	logger    log.Logger
	evaluator *eval.Evaluator
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "2D vector arithmetic",
		Long: `vecmath evaluates 2D vector operations: addition, subtraction, scaling,
dot and cross products, magnitude, normalization, distance, reflection and
angle conversion.

Vectors are written as "x,y", "(x, y)" or "[x y]". Scalars accept multiples
of pi such as "pi/2". Put vectors that start with a minus sign in brackets
or after "--" so they are not read as flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			return a.initialize(cmd)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.vecmath/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.Int("precision", -1, "digits after the decimal point (-1 for shortest exact form)")
	flags.StringP("output", "o", utils.FormatText, "output format (text|json)")

	_ = a.v.BindPFlag("output.precision", flags.Lookup("precision"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))

	rootCmd.AddCommand(
		initCmd(a),
		opsCmd(a),
	)
	// one subcommand per operation
	for _, op := range eval.NewEvaluator(nil).Operations() {
		rootCmd.AddCommand(operationCmd(a, op))
	}

	return rootCmd
}

// initialize loads configuration and builds the logger and evaluator
func (a *app) initialize(cmd *cobra.Command) error {
	utils.ConfigureViper(a.v, a.cfgFile)

	config, err := utils.LoadConfig(a.v)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if a.verbose {
		config.Log.Level = "debug"
	}

	logger, err := utils.NewLogger(config.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	a.config = config
	a.logger = logger
	a.evaluator = eval.NewEvaluator(logger)
	return nil
}
