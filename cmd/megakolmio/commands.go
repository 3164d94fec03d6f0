package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"svw.info/megakolmio/internal/config"
)

type options struct {
	stdout io.Writer
	stderr io.Writer

	logLevel     string
	format       string
	persistPath  string
	configPath   string
	addr         string
	servePersist string
	runName      string

	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "megakolmio",
		Short: "Enumerate every solution of the megakolmio triangle puzzle",
		Long: `megakolmio places nine triangular cards on a nine-cell triangle,
rotating each so that all touching edges interlock, and prints every
arrangement it finds, one per line, in the order the search finds them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := config.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			o.logger = slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
		RunE: o.runPrint,
	}
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.Flags().StringVar(&o.format, "format", "text", "output format: text|json")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Run the full search and print the number of solutions",
		Args:  cobra.NoArgs,
		RunE:  o.runCount,
	}

	checkCmd := &cobra.Command{
		Use:   "check CARD:ROT[,CARD:ROT...]",
		Short: "Check an arrangement given in position order, e.g. P1:0,P2:1",
		Args:  cobra.ExactArgs(1),
		RunE:  o.runCheck,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solutions over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE:  o.runServe,
	}
	serveCmd.Flags().StringVar(&o.configPath, "config", "", "YAML config file")
	serveCmd.Flags().StringVar(&o.addr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&o.servePersist, "persist-path", "", "run store directory (overrides config)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored enumeration runs",
		Args:  cobra.NoArgs,
		RunE:  o.runList,
	}
	runsCmd.PersistentFlags().StringVar(&o.persistPath, "persist-path", "./data", "run store directory")

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Run the search and store the result",
		Args:  cobra.NoArgs,
		RunE:  o.runSave,
	}
	saveCmd.Flags().StringVar(&o.runName, "name", "", "label for the stored run")
	runsCmd.AddCommand(saveCmd)

	rootCmd.AddCommand(countCmd, checkCmd, serveCmd, runsCmd)
	return rootCmd
}
