package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mlkit-telemetry/mlevent/internal/inspect"
	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

// NewInspectCmd creates the 'inspect' command.
func NewInspectCmd() *cobra.Command {
	var hexIn bool
	var jsonIn bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Render an event payload for human inspection",
		Example: `  mleventctl inspect event.bin
  mleventctl inspect event.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args, hexIn, jsonIn)
		},
	}

	cmd.Flags().BoolVar(&hexIn, "hex", false, "input is a hex dump")
	cmd.Flags().BoolVar(&jsonIn, "json", false, "input is JSON rather than binary")

	return cmd
}

func runInspect(args []string, hexIn, jsonIn bool) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	ev := &mlevent.FirebaseMlLogEvent{}
	if jsonIn {
		if err := json.Unmarshal(data, ev); err != nil {
			return err
		}
	} else {
		if hexIn || cfg.Output.Hex {
			if data, err = fromHex(data); err != nil {
				return err
			}
		}
		if err := ev.UnmarshalBinary(data); err != nil {
			return err
		}
	}

	for _, w := range inspect.Warnings(ev) {
		log.Warn().Msg(w)
	}

	fmt.Print(inspect.Summary(ev))
	return nil
}
