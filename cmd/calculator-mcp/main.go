package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/calcmcp/calculator-mcp/pkg/calculator"
	"github.com/calcmcp/calculator-mcp/pkg/config"
	"github.com/calcmcp/calculator-mcp/pkg/logger"
	"github.com/calcmcp/calculator-mcp/pkg/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = "dev"

// app carries the flags and loaded config shared by every subcommand
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "calculator-mcp",
		Short: "Bounded arithmetic calculator, served over MCP",
		Long: `calculator-mcp performs add, subtract, multiply and divide on operands
between -1000000 and 1000000 inclusive.

Run "calculator-mcp serve" to expose the operations as MCP tools over stdio,
or call an operation directly:

  calculator-mcp add 2 3
  calculator-mcp divide -- -10 4`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.newServeCmd())
	for _, op := range calculator.Operations() {
		rootCmd.AddCommand(a.newOperationCmd(op))
	}
	rootCmd.AddCommand(newLimitsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the config and rebuilds the logger from it
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := logger.Setup(cfg.Logging); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.cfg = cfg
	return nil
}

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("Starting Calculator MCP", "name", a.cfg.Server.Name, "version", Version)

			calcServer := mcp.NewCalculatorServer(a.cfg.Server.Name, Version)

			logger.Info("Starting MCP server...")
			if err := server.ServeStdio(calcServer.Server()); err != nil {
				logger.Error("Server error", "error", err)
				return errors.Wrap(err, "server error")
			}
			return nil
		},
	}
}

func (a *app) newOperationCmd(op calculator.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <a> <b>", op),
		Short: fmt.Sprintf("Compute a %s b", op.Symbol()),
		Long: fmt.Sprintf(`Compute a %s b and print the result.

Both operands must be between %d and %d inclusive. Put "--" before
negative operands so they are not read as flags.`, op.Symbol(), calculator.MinValue, calculator.MaxValue),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			result, err := calculator.New().Apply(op, x, y)
			if err != nil {
				logger.Debug("Calculation failed", "operation", op, "a", x, "b", y, "error", err)
				return err
			}

			logger.Debug("Calculation complete", "operation", op, "a", x, "b", y, "result", result)
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		},
	}
}

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the inclusive operand range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d, %d]\n", calculator.MinValue, calculator.MaxValue)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}

func parseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid operand %q: not a number", s)
	}
	return f, nil
}

// formatNumber prints f the way encoding/json does: plain decimal, switching
// to exponent form below 1e-6 and from 1e21 up. ±Inf prints as "+Inf"/"-Inf".
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && !math.IsInf(f, 0) && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
