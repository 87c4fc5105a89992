package mlevent

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func sampleEvent() *FirebaseMlLogEvent {
	return &FirebaseMlLogEvent{
		SystemInfo: &SystemInfo{
			AppID:             "com.example.vision",
			AppVersion:        "2.4.1",
			FirebaseProjectID: "vision-prod",
			SDKVersion:        "17.0.0",
			APIKey:            "AIzaSyExample",
		},
		EventName: EventNameModelDownload,
		ModelDownloadLogEvent: &ModelDownloadLogEvent{
			Options: &ModelOptions{
				ModelInfo: &ModelInfo{
					Name:      "scene-segmenter",
					Version:   "7",
					Hash:      "9f86d081884c7d659a2feaa0c55ad015",
					ModelType: ModelTypeCustom,
				},
			},
			RoughDownloadDurationMS: 1500,
			ErrorCode:               ErrorCodeDownloadFailed,
			ExactDownloadDurationMS: 1483,
			DownloadStatus:          DownloadStatusFailed,
			DownloadFailureStatus:   404,
		},
	}
}

func TestEventBinaryRoundTrip(t *testing.T) {
	want := sampleEvent()
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got := &FirebaseMlLogEvent{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestDeleteEventBinaryRoundTrip(t *testing.T) {
	want := &FirebaseMlLogEvent{
		SystemInfo: &SystemInfo{AppID: "com.example.vision"},
		EventName:  EventNameModelUpdate,
		DeleteModelLogEvent: &DeleteModelLogEvent{
			ModelType:    ModelTypeCustom,
			IsSuccessful: true,
		},
	}
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got := &FirebaseMlLogEvent{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestBothSubEventsPreserved(t *testing.T) {
	// The schema does not declare the sub-events disjoint; a payload
	// carrying both must survive a round trip unchanged.
	want := &FirebaseMlLogEvent{
		EventName:             EventNameModelDownload,
		ModelDownloadLogEvent: &ModelDownloadLogEvent{DownloadStatus: DownloadStatusSucceeded},
		DeleteModelLogEvent:   &DeleteModelLogEvent{IsSuccessful: true},
	}
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	got := &FirebaseMlLogEvent{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestEmptyPayloadYieldsDefaults(t *testing.T) {
	ev := &FirebaseMlLogEvent{}
	if err := ev.UnmarshalBinary(nil); err != nil {
		t.Fatalf("UnmarshalBinary(nil): %v", err)
	}
	if ev.SystemInfo != nil || ev.ModelDownloadLogEvent != nil || ev.DeleteModelLogEvent != nil {
		t.Error("empty payload produced non-nil sub-messages")
	}
	if ev.EventName != EventNameUnknown {
		t.Errorf("EventName = %v, want UNKNOWN_EVENT", ev.EventName)
	}

	si := &SystemInfo{}
	if err := si.UnmarshalBinary([]byte{}); err != nil {
		t.Fatalf("UnmarshalBinary(empty): %v", err)
	}
	if *si != (SystemInfo{}) {
		t.Errorf("empty payload produced %+v, want zero value", *si)
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	want := &SystemInfo{AppID: "com.hello.world", APIKey: "XYZ"}
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	// Append fields this schema has never heard of, one per wire type.
	data = appendVarintField(data, 99, 12345)
	data = appendStringField(data, 100, "future payload")
	data = appendTag(data, 101, wireFixed64)
	data = append(data, 1, 2, 3, 4, 5, 6, 7, 8)
	data = appendTag(data, 102, wireFixed32)
	data = append(data, 9, 10, 11, 12)

	got := &SystemInfo{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary with unknown fields: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", *got, *want)
	}
}

func TestUnknownGroupFieldIgnored(t *testing.T) {
	want := &SystemInfo{AppID: "com.hello.world"}
	data, _ := want.MarshalBinary()

	// Unknown field framed as a group, as a proto2-era producer might.
	data = appendTag(data, 77, wireStartGroup)
	data = appendVarintField(data, 1, 9)
	data = appendTag(data, 77, wireEndGroup)
	data = appendStringField(data, 4, "17.0.0")

	got := &SystemInfo{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary with group field: %v", err)
	}
	if got.AppID != "com.hello.world" || got.SDKVersion != "17.0.0" {
		t.Errorf("got %+v", *got)
	}
}

func TestUnknownEnumValueRetained(t *testing.T) {
	want := &ModelDownloadLogEvent{ErrorCode: ErrorCode(999)}
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got := &ModelDownloadLogEvent{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.ErrorCode != ErrorCode(999) {
		t.Errorf("ErrorCode = %d, want raw 999", int32(got.ErrorCode))
	}
	if got.ErrorCode.Known() {
		t.Error("ErrorCode(999).Known() = true, want false")
	}
	if got.ErrorCode.String() != "999" {
		t.Errorf("ErrorCode(999).String() = %q, want %q", got.ErrorCode.String(), "999")
	}
}

func TestNegativeFailureStatusRoundTrip(t *testing.T) {
	want := &ModelDownloadLogEvent{DownloadFailureStatus: -3}
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	// tag + ten-byte sign-extended varint
	if len(data) != 11 {
		t.Errorf("encoded length = %d, want 11", len(data))
	}

	got := &ModelDownloadLogEvent{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.DownloadFailureStatus != -3 {
		t.Errorf("DownloadFailureStatus = %d, want -3", got.DownloadFailureStatus)
	}
}

func TestGoldenBytes(t *testing.T) {
	si := &SystemInfo{AppID: "a"}
	data, _ := si.MarshalBinary()
	if !bytes.Equal(data, []byte{0x0a, 0x01, 'a'}) {
		t.Errorf("SystemInfo{AppID:\"a\"} = % x, want 0a 01 61", data)
	}

	// Field 40 needs a two-byte tag: (40<<3|2) = 322 = 0xc2 0x02.
	ev := &FirebaseMlLogEvent{DeleteModelLogEvent: &DeleteModelLogEvent{}}
	data, _ = ev.MarshalBinary()
	if !bytes.Equal(data, []byte{0xc2, 0x02, 0x00}) {
		t.Errorf("envelope with empty delete event = % x, want c2 02 00", data)
	}
}

func TestDefaultsOmittedOnWire(t *testing.T) {
	ev := &ModelDownloadLogEvent{}
	data, err := ev.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("all-defaults message encoded to % x, want empty", data)
	}
}

func TestTruncatedPayloadError(t *testing.T) {
	data, _ := sampleEvent().MarshalBinary()
	got := &FirebaseMlLogEvent{}
	err := got.UnmarshalBinary(data[:len(data)-4])
	if err == nil {
		t.Fatal("expected error for truncated payload")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestWireTypeMismatchSkipsField(t *testing.T) {
	// Field 1 arrives as a varint instead of a string. The field is
	// skipped; field 7 after it still decodes.
	var data []byte
	data = appendVarintField(data, 1, 7)
	data = appendStringField(data, 7, "XYZ")

	got := &SystemInfo{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.AppID != "" {
		t.Errorf("AppID = %q, want empty after wire-type mismatch", got.AppID)
	}
	if got.APIKey != "XYZ" {
		t.Errorf("APIKey = %q, want %q", got.APIKey, "XYZ")
	}
}

func TestEmptySubMessagePresence(t *testing.T) {
	// A present-but-empty sub-message is distinguishable from an
	// absent one.
	want := &ModelOptions{ModelInfo: &ModelInfo{}}
	data, _ := want.MarshalBinary()

	got := &ModelOptions{}
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.ModelInfo == nil {
		t.Fatal("ModelInfo = nil, want present empty message")
	}
	if *got.ModelInfo != (ModelInfo{}) {
		t.Errorf("ModelInfo = %+v, want zero value", *got.ModelInfo)
	}
}

func TestValidateReportsUnknownEnums(t *testing.T) {
	ev := &FirebaseMlLogEvent{
		EventName: EventName(42),
		ModelDownloadLogEvent: &ModelDownloadLogEvent{
			ErrorCode:      ErrorCode(999),
			DownloadStatus: DownloadStatusSucceeded,
		},
	}
	err := ev.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ue *UnknownEnumError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnknownEnumError, got %T", err)
	}
	if len(ue.Unknown) != 2 {
		t.Errorf("got %d unknown values, want 2: %v", len(ue.Unknown), ue.Unknown)
	}

	if err := sampleEvent().Validate(); err != nil {
		t.Errorf("sample event should validate, got %v", err)
	}
}
