package inspect

import (
	"strings"
	"testing"

	"github.com/mlkit-telemetry/mlevent/pkg/mlevent"
)

func downloadEvent() *mlevent.FirebaseMlLogEvent {
	return &mlevent.FirebaseMlLogEvent{
		SystemInfo: &mlevent.SystemInfo{
			AppID:      "com.example.vision",
			AppVersion: "2.4.1",
			SDKVersion: "17.0.0",
		},
		EventName: mlevent.EventNameModelDownload,
		ModelDownloadLogEvent: &mlevent.ModelDownloadLogEvent{
			Options: &mlevent.ModelOptions{
				ModelInfo: &mlevent.ModelInfo{
					Name:      "scene-segmenter",
					Version:   "7",
					ModelType: mlevent.ModelTypeCustom,
				},
			},
			DownloadStatus:        mlevent.DownloadStatusFailed,
			ErrorCode:             mlevent.ErrorCodeDownloadFailed,
			DownloadFailureStatus: 404,
		},
	}
}

func TestSummary(t *testing.T) {
	out := Summary(downloadEvent())

	for _, want := range []string{
		"MODEL_DOWNLOAD",
		"com.example.vision (2.4.1)",
		"scene-segmenter v7 (CUSTOM)",
		"FAILED",
		"DOWNLOAD_FAILED",
		"failure: 404",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryDeleteEvent(t *testing.T) {
	out := Summary(&mlevent.FirebaseMlLogEvent{
		EventName: mlevent.EventNameModelUpdate,
		DeleteModelLogEvent: &mlevent.DeleteModelLogEvent{
			ModelType:    mlevent.ModelTypeCustom,
			IsSuccessful: true,
		},
	})

	if !strings.Contains(out, "delete:") || !strings.Contains(out, "success: true") {
		t.Errorf("summary missing delete section:\n%s", out)
	}
	if strings.Contains(out, "download:") {
		t.Errorf("summary has download section for a delete-only event:\n%s", out)
	}
}

func TestWarningsClean(t *testing.T) {
	if w := Warnings(downloadEvent()); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestWarningsUnknownEnum(t *testing.T) {
	ev := downloadEvent()
	ev.ModelDownloadLogEvent.ErrorCode = mlevent.ErrorCode(999)

	w := Warnings(ev)
	if len(w) != 1 || !strings.Contains(w[0], "error_code=999") {
		t.Errorf("got %v, want one error_code warning", w)
	}
}

func TestWarningsBothSubEvents(t *testing.T) {
	ev := downloadEvent()
	ev.DeleteModelLogEvent = &mlevent.DeleteModelLogEvent{}

	w := Warnings(ev)
	found := false
	for _, s := range w {
		if strings.Contains(s, "both") {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want both-sub-events warning", w)
	}
}
