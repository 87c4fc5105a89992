package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

// NewDecodeCmd creates the 'decode' command.
func NewDecodeCmd() *cobra.Command {
	var hexIn bool
	var out string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a binary event payload to JSON",
		Long: `Decode a proto3 binary event payload into its JSON form. The payload
is read from the named file, or from stdin when no file is given.`,
		Example: `  mleventctl decode event.bin
  xxd -p event.bin | mleventctl decode --hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args, hexIn, out)
		},
	}

	cmd.Flags().BoolVar(&hexIn, "hex", false, "input is a hex dump")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}

func runDecode(args []string, hexIn bool, out string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	if hexIn || cfg.Output.Hex {
		if data, err = fromHex(data); err != nil {
			return err
		}
	}

	ev := &mlevent.FirebaseMlLogEvent{}
	if err := ev.UnmarshalBinary(data); err != nil {
		return err
	}
	warnUnknownEnums(ev)

	text, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	text = append(text, '\n')

	return writeOutput(out, text)
}
