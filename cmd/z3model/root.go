package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vhavlena/z3model/internal/config"
	"github.com/vhavlena/z3model/internal/report"
)

// Version is set at build time.
var Version = "0.1.0"

type settingsKey struct{}

type settings struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "z3model",
		Short: "Inspect Z3 models of SMT-LIB2 problems",
		Long: `z3model checks an SMT-LIB2 file with the Z3 solver and prints the model
of a satisfiable result: every interpreted constant, or the values of the
terms passed to the eval command.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
			if cfg.File != "" {
				log.Debug("using config file", "path", cfg.File)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), settingsKey{}, &settings{cfg: cfg, log: log}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./z3model.yaml)")
	config.RegisterFlags(rootCmd.PersistentFlags())
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputSMT2, config.OutputYAML, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func getSettings(ctx context.Context) *settings {
	if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
		return s
	}
	return &settings{
		cfg: &config.Config{Completion: true, Output: config.DefaultOutput},
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Check an SMT-LIB2 file and print its model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSettings(cmd.Context())
			res, err := check(s.cfg, s.log, args[0], nil)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), s.cfg.Output, res)
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE TERM...",
		Short: "Check an SMT-LIB2 file and evaluate terms in its model",
		Example: `  z3model eval problem.smt2 x '(+ x y)'
  z3model eval --completion=false problem.smt2 z`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSettings(cmd.Context())
			res, err := check(s.cfg, s.log, args[0], args[1:])
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), s.cfg.Output, res)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = cmd.OutOrStdout().Write([]byte("z3model v" + Version + "\n"))
		},
	}
}
