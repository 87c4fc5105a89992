package cli

import (
	"encoding/hex"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

// NewEncodeCmd creates the 'encode' command.
func NewEncodeCmd() *cobra.Command {
	var hexOut bool
	var out string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON event payload to binary",
		Long: `Encode the JSON form of an event into proto3 binary. Keys may be the
declared field names or their lowerCamelCase variants; enum values may
be symbolic names or numbers.`,
		Example: `  mleventctl encode event.json --out event.bin
  mleventctl encode event.json --hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args, hexOut, out)
		},
	}

	cmd.Flags().BoolVar(&hexOut, "hex", false, "emit a hex dump instead of raw bytes")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")

	return cmd
}

func runEncode(args []string, hexOut bool, out string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	ev := &mlevent.FirebaseMlLogEvent{}
	if err := json.Unmarshal(data, ev); err != nil {
		return err
	}
	warnUnknownEnums(ev)

	bin, err := ev.MarshalBinary()
	if err != nil {
		return err
	}

	if hexOut || cfg.Output.Hex {
		bin = []byte(hex.EncodeToString(bin) + "\n")
	}

	return writeOutput(out, bin)
}
