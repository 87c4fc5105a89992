package mlevent

import "fmt"

// Encoding follows proto3 rules: zero-valued scalars are omitted so an
// absent field and an explicitly-set default are indistinguishable on
// the wire. Sub-messages are emitted whenever the pointer is non-nil,
// even when empty. Output is not canonical across implementations;
// the contract is the round-trip law, not byte equality.

// MarshalBinary encodes the message in proto3 binary form.
func (s *SystemInfo) MarshalBinary() ([]byte, error) {
	var data []byte
	data = appendStringField(data, 1, s.AppID)
	data = appendStringField(data, 2, s.AppVersion)
	data = appendStringField(data, 3, s.FirebaseProjectID)
	data = appendStringField(data, 4, s.SDKVersion)
	data = appendStringField(data, 7, s.APIKey)
	return data, nil
}

// MarshalBinary encodes the message in proto3 binary form.
func (m *ModelInfo) MarshalBinary() ([]byte, error) {
	var data []byte
	data = appendStringField(data, 1, m.Name)
	data = appendStringField(data, 2, m.Version)
	data = appendStringField(data, 5, m.Hash)
	data = appendVarintField(data, 6, uint64(int64(m.ModelType)))
	return data, nil
}

// MarshalBinary encodes the message in proto3 binary form.
func (m *ModelOptions) MarshalBinary() ([]byte, error) {
	var data []byte
	if m.ModelInfo != nil {
		sub, err := m.ModelInfo.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal model_info: %w", err)
		}
		data = appendMessageField(data, 1, sub)
	}
	return data, nil
}

// MarshalBinary encodes the message in proto3 binary form.
func (e *ModelDownloadLogEvent) MarshalBinary() ([]byte, error) {
	var data []byte
	if e.Options != nil {
		sub, err := e.Options.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal options: %w", err)
		}
		data = appendMessageField(data, 1, sub)
	}
	data = appendVarintField(data, 2, e.RoughDownloadDurationMS)
	data = appendVarintField(data, 3, uint64(int64(e.ErrorCode)))
	data = appendVarintField(data, 4, e.ExactDownloadDurationMS)
	data = appendVarintField(data, 5, uint64(int64(e.DownloadStatus)))
	// Signed field: negative platform codes sign-extend to a ten-byte
	// varint, per proto3 int64 rules.
	data = appendVarintField(data, 6, uint64(e.DownloadFailureStatus))
	return data, nil
}

// MarshalBinary encodes the message in proto3 binary form.
func (e *DeleteModelLogEvent) MarshalBinary() ([]byte, error) {
	var data []byte
	data = appendVarintField(data, 1, uint64(int64(e.ModelType)))
	if e.IsSuccessful {
		data = appendVarintField(data, 2, 1)
	}
	return data, nil
}

// MarshalBinary encodes the envelope in proto3 binary form.
func (e *FirebaseMlLogEvent) MarshalBinary() ([]byte, error) {
	var data []byte
	if e.SystemInfo != nil {
		sub, err := e.SystemInfo.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal system_info: %w", err)
		}
		data = appendMessageField(data, 1, sub)
	}
	data = appendVarintField(data, 2, uint64(int64(e.EventName)))
	if e.ModelDownloadLogEvent != nil {
		sub, err := e.ModelDownloadLogEvent.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal model_download_log_event: %w", err)
		}
		data = appendMessageField(data, 3, sub)
	}
	if e.DeleteModelLogEvent != nil {
		sub, err := e.DeleteModelLogEvent.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal delete_model_log_event: %w", err)
		}
		data = appendMessageField(data, 40, sub)
	}
	return data, nil
}
