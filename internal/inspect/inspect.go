// Package inspect renders decoded telemetry events for terminal
// display.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

// Summary returns a field-by-field text rendering of an event. Absent
// sub-messages are left out entirely; default-valued scalars inside a
// present sub-message are shown, since on the wire they are the same
// as explicitly-set defaults.
func Summary(ev *mlevent.FirebaseMlLogEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "event:    %s\n", ev.EventName)

	if si := ev.SystemInfo; si != nil {
		fmt.Fprintf(&b, "app:      %s", si.AppID)
		if si.AppVersion != "" {
			fmt.Fprintf(&b, " (%s)", si.AppVersion)
		}
		b.WriteByte('\n')
		if si.FirebaseProjectID != "" {
			fmt.Fprintf(&b, "project:  %s\n", si.FirebaseProjectID)
		}
		if si.SDKVersion != "" {
			fmt.Fprintf(&b, "sdk:      %s\n", si.SDKVersion)
		}
	}

	if dl := ev.ModelDownloadLogEvent; dl != nil {
		b.WriteString("download:\n")
		if dl.Options != nil && dl.Options.ModelInfo != nil {
			mi := dl.Options.ModelInfo
			fmt.Fprintf(&b, "  model:   %s", mi.Name)
			if mi.Version != "" {
				fmt.Fprintf(&b, " v%s", mi.Version)
			}
			fmt.Fprintf(&b, " (%s)\n", mi.ModelType)
			if mi.Hash != "" {
				fmt.Fprintf(&b, "  hash:    %s\n", mi.Hash)
			}
		}
		fmt.Fprintf(&b, "  status:  %s\n", dl.DownloadStatus)
		fmt.Fprintf(&b, "  error:   %s\n", dl.ErrorCode)
		fmt.Fprintf(&b, "  rough:   %d ms\n", dl.RoughDownloadDurationMS)
		fmt.Fprintf(&b, "  exact:   %d ms\n", dl.ExactDownloadDurationMS)
		if dl.DownloadFailureStatus != 0 {
			fmt.Fprintf(&b, "  failure: %d\n", dl.DownloadFailureStatus)
		}
	}

	if del := ev.DeleteModelLogEvent; del != nil {
		b.WriteString("delete:\n")
		fmt.Fprintf(&b, "  model:   %s\n", del.ModelType)
		fmt.Fprintf(&b, "  success: %t\n", del.IsSuccessful)
	}

	return b.String()
}

// Warnings lists oddities worth surfacing to whoever is looking at a
// payload: enumeration integers outside the declared sets, and both
// sub-events set on one envelope.
func Warnings(ev *mlevent.FirebaseMlLogEvent) []string {
	var warnings []string

	if err := ev.Validate(); err != nil {
		var ue *mlevent.UnknownEnumError
		if errors.As(err, &ue) {
			for _, u := range ue.Unknown {
				warnings = append(warnings, fmt.Sprintf("unknown enum value %s=%d", u.Field, u.Value))
			}
		}
	}

	if ev.ModelDownloadLogEvent != nil && ev.DeleteModelLogEvent != nil {
		warnings = append(warnings, "both download and delete sub-events are set")
	}

	return warnings
}
