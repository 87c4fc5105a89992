package mlevent

import "fmt"

// Decoding resets the receiver, then walks the tag stream. Unknown
// field numbers are skipped and dropped (forward compatibility); a
// known field carrying the wrong wire type is skipped the same way so
// sibling fields still decode. Absent fields keep their defaults.
// Decoding an empty payload therefore yields the all-defaults value.

// UnmarshalBinary decodes a proto3 binary payload.
func (s *SystemInfo) UnmarshalBinary(data []byte) error {
	*s = SystemInfo{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		if wt == wireBytes {
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			switch field {
			case 1:
				s.AppID = string(v)
			case 2:
				s.AppVersion = string(v)
			case 3:
				s.FirebaseProjectID = string(v)
			case 4:
				s.SDKVersion = string(v)
			case 7:
				s.APIKey = string(v)
			}
			continue
		}

		pos, err = skipField(data, pos, wt)
		if err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalBinary decodes a proto3 binary payload.
func (m *ModelInfo) UnmarshalBinary(data []byte) error {
	*m = ModelInfo{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		switch {
		case field == 1 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			m.Name = string(v)
		case field == 2 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			m.Version = string(v)
		case field == 5 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			m.Hash = string(v)
		case field == 6 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			m.ModelType = ModelType(int32(v))
		default:
			pos, err = skipField(data, pos, wt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalBinary decodes a proto3 binary payload.
func (m *ModelOptions) UnmarshalBinary(data []byte) error {
	*m = ModelOptions{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		switch {
		case field == 1 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			info := &ModelInfo{}
			if err := info.UnmarshalBinary(v); err != nil {
				return fmt.Errorf("decode model_info: %w", err)
			}
			m.ModelInfo = info
		default:
			pos, err = skipField(data, pos, wt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalBinary decodes a proto3 binary payload.
func (e *ModelDownloadLogEvent) UnmarshalBinary(data []byte) error {
	*e = ModelDownloadLogEvent{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		switch {
		case field == 1 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			opts := &ModelOptions{}
			if err := opts.UnmarshalBinary(v); err != nil {
				return fmt.Errorf("decode options: %w", err)
			}
			e.Options = opts
		case field == 2 && wt == wireVarint:
			e.RoughDownloadDurationMS, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
		case field == 3 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.ErrorCode = ErrorCode(int32(v))
		case field == 4 && wt == wireVarint:
			e.ExactDownloadDurationMS, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
		case field == 5 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.DownloadStatus = DownloadStatus(int32(v))
		case field == 6 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.DownloadFailureStatus = int64(v)
		default:
			pos, err = skipField(data, pos, wt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalBinary decodes a proto3 binary payload.
func (e *DeleteModelLogEvent) UnmarshalBinary(data []byte) error {
	*e = DeleteModelLogEvent{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		switch {
		case field == 1 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.ModelType = ModelType(int32(v))
		case field == 2 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.IsSuccessful = v != 0
		default:
			pos, err = skipField(data, pos, wt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// UnmarshalBinary decodes a proto3 binary envelope.
func (e *FirebaseMlLogEvent) UnmarshalBinary(data []byte) error {
	*e = FirebaseMlLogEvent{}
	pos := 0
	for pos < len(data) {
		field, wt, next, err := readTag(data, pos)
		if err != nil {
			return err
		}
		pos = next

		switch {
		case field == 1 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			info := &SystemInfo{}
			if err := info.UnmarshalBinary(v); err != nil {
				return fmt.Errorf("decode system_info: %w", err)
			}
			e.SystemInfo = info
		case field == 2 && wt == wireVarint:
			var v uint64
			v, pos, err = readVarint(data, pos)
			if err != nil {
				return err
			}
			e.EventName = EventName(int32(v))
		case field == 3 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			dl := &ModelDownloadLogEvent{}
			if err := dl.UnmarshalBinary(v); err != nil {
				return fmt.Errorf("decode model_download_log_event: %w", err)
			}
			e.ModelDownloadLogEvent = dl
		case field == 40 && wt == wireBytes:
			var v []byte
			v, pos, err = readBytes(data, pos)
			if err != nil {
				return err
			}
			del := &DeleteModelLogEvent{}
			if err := del.UnmarshalBinary(v); err != nil {
				return fmt.Errorf("decode delete_model_log_event: %w", err)
			}
			e.DeleteModelLogEvent = del
		default:
			pos, err = skipField(data, pos, wt)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate reports enumeration fields holding integers outside the
// declared sets. The result is a *UnknownEnumError and is non-fatal:
// the raw values stay on the message and callers may log and proceed.
func (e *FirebaseMlLogEvent) Validate() error {
	var unknown []UnknownEnum
	if !e.EventName.Known() {
		unknown = append(unknown, UnknownEnum{Field: "event_name", Value: int32(e.EventName)})
	}
	if dl := e.ModelDownloadLogEvent; dl != nil {
		if !dl.ErrorCode.Known() {
			unknown = append(unknown, UnknownEnum{Field: "error_code", Value: int32(dl.ErrorCode)})
		}
		if !dl.DownloadStatus.Known() {
			unknown = append(unknown, UnknownEnum{Field: "download_status", Value: int32(dl.DownloadStatus)})
		}
		if dl.Options != nil && dl.Options.ModelInfo != nil && !dl.Options.ModelInfo.ModelType.Known() {
			unknown = append(unknown, UnknownEnum{Field: "model_type", Value: int32(dl.Options.ModelInfo.ModelType)})
		}
	}
	if del := e.DeleteModelLogEvent; del != nil && !del.ModelType.Known() {
		unknown = append(unknown, UnknownEnum{Field: "delete_model_log_event.model_type", Value: int32(del.ModelType)})
	}
	if len(unknown) > 0 {
		return &UnknownEnumError{Unknown: unknown}
	}
	return nil
}
