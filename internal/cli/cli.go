// Package cli implements the mleventctl command tree.
package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mlkit-telemetry/mlevent/internal/config"
	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

var (
	cfg        = config.Default()
	configPath string
	logLevel   string
)

// NewRootCmd builds the mleventctl command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mleventctl",
		Short: "Convert and inspect ML model-download telemetry payloads",
		Long: `mleventctl works with captured telemetry event payloads for the ML
model-download feature: it converts between the binary wire form and
JSON, and renders payloads for human inspection.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file path")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides config")

	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewInspectCmd())

	return cmd
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg = loaded

	if cfg.Log.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

// readInput reads the payload from the named file, or stdin when no
// argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// writeOutput writes to the named file, or stdout when out is empty.
func writeOutput(out string, data []byte) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// fromHex decodes a hex dump, tolerating whitespace and newlines.
func fromHex(data []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(data)), "")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return raw, nil
}

// warnUnknownEnums logs out-of-set enum values without failing the
// command; the raw integers are preserved in the output.
func warnUnknownEnums(ev *mlevent.FirebaseMlLogEvent) {
	if err := ev.Validate(); err != nil {
		log.Warn().Err(err).Msg("payload carries enum values outside the declared sets")
	}
}
