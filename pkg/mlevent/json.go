package mlevent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// The JSON form mirrors proto3 JSON: encoding emits lowerCamelCase
// keys, symbolic names for known enum values, strings for 64-bit
// integers, and omits defaults. Decoding is laxer: keys may be the
// declared snake_case field name or the lowerCamelCase variant, enum
// values may be a symbolic name or a number, 64-bit integers may be
// quoted or bare, and unknown keys are ignored.

var (
	eventNameValues      = map[string]EventName{}
	modelTypeValues      = map[string]ModelType{}
	errorCodeValues      = map[string]ErrorCode{}
	downloadStatusValues = map[string]DownloadStatus{}
)

func init() {
	for v, n := range eventNameNames {
		eventNameValues[n] = v
	}
	for v, n := range modelTypeNames {
		modelTypeValues[n] = v
	}
	for v, n := range errorCodeNames {
		errorCodeValues[n] = v
	}
	for v, n := range downloadStatusNames {
		downloadStatusValues[n] = v
	}
}

// enumFromJSON accepts a numeric value or a symbolic name.
func enumFromJSON(data []byte, lookup func(string) (int32, bool)) (int32, error) {
	var n int32
	if err := json.Unmarshal(data, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	if v, ok := lookup(s); ok {
		return v, nil
	}
	return 0, fmt.Errorf("unrecognized enum name %q", s)
}

func (n EventName) MarshalJSON() ([]byte, error) {
	if s, ok := eventNameNames[n]; ok {
		return json.Marshal(s)
	}
	return json.Marshal(int32(n))
}

func (n *EventName) UnmarshalJSON(data []byte) error {
	v, err := enumFromJSON(data, func(s string) (int32, bool) {
		e, ok := eventNameValues[s]
		return int32(e), ok
	})
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("event_name: %w", err)}
	}
	*n = EventName(v)
	return nil
}

func (t ModelType) MarshalJSON() ([]byte, error) {
	if s, ok := modelTypeNames[t]; ok {
		return json.Marshal(s)
	}
	return json.Marshal(int32(t))
}

func (t *ModelType) UnmarshalJSON(data []byte) error {
	v, err := enumFromJSON(data, func(s string) (int32, bool) {
		e, ok := modelTypeValues[s]
		return int32(e), ok
	})
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("model_type: %w", err)}
	}
	*t = ModelType(v)
	return nil
}

func (c ErrorCode) MarshalJSON() ([]byte, error) {
	if s, ok := errorCodeNames[c]; ok {
		return json.Marshal(s)
	}
	return json.Marshal(int32(c))
}

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	v, err := enumFromJSON(data, func(s string) (int32, bool) {
		e, ok := errorCodeValues[s]
		return int32(e), ok
	})
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("error_code: %w", err)}
	}
	*c = ErrorCode(v)
	return nil
}

func (s DownloadStatus) MarshalJSON() ([]byte, error) {
	if n, ok := downloadStatusNames[s]; ok {
		return json.Marshal(n)
	}
	return json.Marshal(int32(s))
}

func (s *DownloadStatus) UnmarshalJSON(data []byte) error {
	v, err := enumFromJSON(data, func(n string) (int32, bool) {
		e, ok := downloadStatusValues[n]
		return int32(e), ok
	})
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("download_status: %w", err)}
	}
	*s = DownloadStatus(v)
	return nil
}

func jsonObject(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Offset: -1, Err: err}
	}
	return raw, nil
}

func jsonLookup(raw map[string]json.RawMessage, snake, camel string) (json.RawMessage, bool) {
	if msg, ok := raw[snake]; ok {
		return msg, true
	}
	if msg, ok := raw[camel]; ok {
		return msg, true
	}
	return nil, false
}

// jsonField decodes one field into dst when either key variant is
// present. A null value counts as absent.
func jsonField(raw map[string]json.RawMessage, snake, camel string, dst any) error {
	msg, ok := jsonLookup(raw, snake, camel)
	if !ok || string(msg) == "null" {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return err
		}
		return &DecodeError{Offset: -1, Err: fmt.Errorf("field %s: %w", snake, err)}
	}
	return nil
}

// jsonUint64 decodes a 64-bit unsigned field, quoted or bare.
func jsonUint64(raw map[string]json.RawMessage, snake, camel string, dst *uint64) error {
	msg, ok := jsonLookup(raw, snake, camel)
	if !ok || string(msg) == "null" {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("field %s: %w", snake, err)}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("field %s: %w", snake, err)}
	}
	*dst = v
	return nil
}

// jsonInt64 decodes a 64-bit signed field, quoted or bare.
func jsonInt64(raw map[string]json.RawMessage, snake, camel string, dst *int64) error {
	msg, ok := jsonLookup(raw, snake, camel)
	if !ok || string(msg) == "null" {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("field %s: %w", snake, err)}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &DecodeError{Offset: -1, Err: fmt.Errorf("field %s: %w", snake, err)}
	}
	*dst = v
	return nil
}

// UnmarshalJSON decodes the textual form of the message.
func (s *SystemInfo) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*s = SystemInfo{}
	if err := jsonField(raw, "app_id", "appId", &s.AppID); err != nil {
		return err
	}
	if err := jsonField(raw, "app_version", "appVersion", &s.AppVersion); err != nil {
		return err
	}
	if err := jsonField(raw, "firebase_project_id", "firebaseProjectId", &s.FirebaseProjectID); err != nil {
		return err
	}
	if err := jsonField(raw, "sdk_version", "sdkVersion", &s.SDKVersion); err != nil {
		return err
	}
	return jsonField(raw, "api_key", "apiKey", &s.APIKey)
}

// UnmarshalJSON decodes the textual form of the message.
func (m *ModelInfo) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*m = ModelInfo{}
	if err := jsonField(raw, "name", "name", &m.Name); err != nil {
		return err
	}
	if err := jsonField(raw, "version", "version", &m.Version); err != nil {
		return err
	}
	if err := jsonField(raw, "hash", "hash", &m.Hash); err != nil {
		return err
	}
	return jsonField(raw, "model_type", "modelType", &m.ModelType)
}

// UnmarshalJSON decodes the textual form of the message.
func (m *ModelOptions) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*m = ModelOptions{}
	return jsonField(raw, "model_info", "modelInfo", &m.ModelInfo)
}

// UnmarshalJSON decodes the textual form of the message.
func (e *ModelDownloadLogEvent) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*e = ModelDownloadLogEvent{}
	if err := jsonField(raw, "options", "options", &e.Options); err != nil {
		return err
	}
	if err := jsonUint64(raw, "rough_download_duration_ms", "roughDownloadDurationMs", &e.RoughDownloadDurationMS); err != nil {
		return err
	}
	if err := jsonField(raw, "error_code", "errorCode", &e.ErrorCode); err != nil {
		return err
	}
	if err := jsonUint64(raw, "exact_download_duration_ms", "exactDownloadDurationMs", &e.ExactDownloadDurationMS); err != nil {
		return err
	}
	if err := jsonField(raw, "download_status", "downloadStatus", &e.DownloadStatus); err != nil {
		return err
	}
	return jsonInt64(raw, "download_failure_status", "downloadFailureStatus", &e.DownloadFailureStatus)
}

// UnmarshalJSON decodes the textual form of the message.
func (e *DeleteModelLogEvent) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*e = DeleteModelLogEvent{}
	if err := jsonField(raw, "model_type", "modelType", &e.ModelType); err != nil {
		return err
	}
	return jsonField(raw, "is_successful", "isSuccessful", &e.IsSuccessful)
}

// UnmarshalJSON decodes the textual form of the envelope.
func (e *FirebaseMlLogEvent) UnmarshalJSON(data []byte) error {
	raw, err := jsonObject(data)
	if err != nil {
		return err
	}
	*e = FirebaseMlLogEvent{}
	if err := jsonField(raw, "system_info", "systemInfo", &e.SystemInfo); err != nil {
		return err
	}
	if err := jsonField(raw, "event_name", "eventName", &e.EventName); err != nil {
		return err
	}
	if err := jsonField(raw, "model_download_log_event", "modelDownloadLogEvent", &e.ModelDownloadLogEvent); err != nil {
		return err
	}
	return jsonField(raw, "delete_model_log_event", "deleteModelLogEvent", &e.DeleteModelLogEvent)
}
