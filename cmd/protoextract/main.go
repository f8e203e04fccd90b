// Package main provides the CLI entry point for protoextract.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Javik0/protoextract-go/internal/config"
	"github.com/Javik0/protoextract-go/internal/logging"
	"github.com/Javik0/protoextract-go/pkg/protoextract"
	"github.com/Javik0/protoextract-go/pkg/protoextract/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	envFile      string
	outputPath   string
	pretty       bool
	protocolsDir string
	sheets       []string
	verbose      bool
	logFormat    string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protoextract [input.xlsx]",
		Short: "Extract dosage protocols and products from Excel workbooks",
		Long: `protoextract reads a treatment workbook, recognizes master plan and
BioEMS dosage sheets, and outputs their protocols plus a deduplicated
product catalog as JSON.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE:              run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded when present")
	flags.StringArrayVar(&sheets, "sheet", nil, "Process only the named sheet (repeatable)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&logFormat, "log-format", "", "Log format: console or json")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&protocolsDir, "protocols-dir", "", "Directory for per-protocol output files")

	rootCmd.AddCommand(newSheetsCmd())
	return rootCmd
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "Show how each sheet of a workbook is recognized",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
}

// setup loads configuration and builds the logger. Flags set on the
// command line take precedence over the configuration file.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath, envFile)
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output.Path = outputPath
	}
	if f := cmd.Flags().Lookup("pretty"); f != nil && f.Changed {
		cfg.Output.Pretty = pretty
	}
	if f := cmd.Flags().Lookup("protocols-dir"); f != nil && f.Changed {
		cfg.Output.ProtocolsDir = protocolsDir
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheets = sheets
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	return err
}

func teardown(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts := protoextract.Options{
		Logger: logger,
		Sheets: cfg.Sheets,
	}

	// Extract data
	res, err := protoextract.Extract(inputPath, opts)
	if err != nil {
		logger.Error("extraction failed", logging.Path(inputPath), zap.Error(err))
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(&res.Document, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if cfg.Output.Path != "" {
		if err := os.WriteFile(cfg.Output.Path, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("document written", logging.Path(cfg.Output.Path))
	} else if cfg.Output.ProtocolsDir == "" {
		writeLine(cmd.OutOrStdout(), jsonData)
	}

	// Write per-protocol files
	if cfg.Output.ProtocolsDir != "" {
		paths, err := output.WriteProtocolFiles(res.Document.Protocols, cfg.Output.ProtocolsDir, cfg.Output.Pretty)
		if err != nil {
			return fmt.Errorf("failed to write protocol files: %w", err)
		}
		logger.Info("protocol files written", logging.Path(cfg.Output.ProtocolsDir), zap.Int("files", len(paths)))
	}

	return nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	reports, err := protoextract.ClassifyFile(args[0], protoextract.Options{Sheets: cfg.Sheets})
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	jsonData, err := output.ReportToJSON(reports, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	writeLine(cmd.OutOrStdout(), jsonData)
	return nil
}

func writeLine(w io.Writer, data []byte) {
	fmt.Fprintln(w, string(data))
}
