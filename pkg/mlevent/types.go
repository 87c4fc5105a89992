// Package mlevent implements the telemetry event schema for the ML
// model-download feature: message types, their proto3 binary wire
// encoding, and the JSON encoding used by tooling and tests.
//
// Messages are plain value records. Encoding and decoding are pure,
// stateless transformations and are safe for concurrent use.
package mlevent

import "strconv"

// EventName classifies a log entry's purpose.
type EventName int32

const (
	EventNameUnknown       EventName = 0
	EventNameModelDownload EventName = 100
	EventNameModelUpdate   EventName = 101
)

// ModelType identifies the kind of model an event refers to.
type ModelType int32

const (
	ModelTypeUnknown ModelType = 0
	ModelTypeCustom  ModelType = 1
)

// ErrorCode is the closed set of failure categories a download event
// may report. Numeric values are part of the wire contract and are
// never reassigned; new codes must use unused integers.
type ErrorCode int32

const (
	ErrorCodeNoError                                 ErrorCode = 0
	ErrorCodeTimeOut                                 ErrorCode = 5
	ErrorCodeURIExpired                              ErrorCode = 101
	ErrorCodeNoNetworkConnection                     ErrorCode = 102
	ErrorCodeDownloadFailed                          ErrorCode = 104
	ErrorCodeModelInfoDownloadUnsuccessfulHTTPStatus ErrorCode = 105
	ErrorCodeModelInfoDownloadConnectionFailed       ErrorCode = 107
	ErrorCodeModelHashMismatch                       ErrorCode = 116
	ErrorCodeUnknownError                            ErrorCode = 9999
)

// DownloadStatus tracks a model download through its lifecycle. Values
// are non-contiguous; the gaps are reservations for removed or future
// states and must not be reused.
type DownloadStatus int32

const (
	DownloadStatusUnknown                  DownloadStatus = 0
	DownloadStatusExplicitlyRequested      DownloadStatus = 1
	DownloadStatusModelInfoRetrievalFailed DownloadStatus = 3
	DownloadStatusScheduled                DownloadStatus = 4
	DownloadStatusDownloading              DownloadStatus = 5
	DownloadStatusSucceeded                DownloadStatus = 6
	DownloadStatusFailed                   DownloadStatus = 7
	DownloadStatusUpdateAvailable          DownloadStatus = 10
)

// SystemInfo identifies the app and SDK that produced an event.
type SystemInfo struct {
	AppID             string `json:"appId,omitempty"`
	AppVersion        string `json:"appVersion,omitempty"`
	FirebaseProjectID string `json:"firebaseProjectId,omitempty"`
	SDKVersion        string `json:"sdkVersion,omitempty"`
	APIKey            string `json:"apiKey,omitempty"`
}

// ModelInfo identifies a specific downloadable model artifact.
type ModelInfo struct {
	Name      string    `json:"name,omitempty"`
	Version   string    `json:"version,omitempty"`
	Hash      string    `json:"hash,omitempty"`
	ModelType ModelType `json:"modelType,omitempty"`
}

// ModelOptions wraps the model a download event refers to.
type ModelOptions struct {
	ModelInfo *ModelInfo `json:"modelInfo,omitempty"`
}

// ModelDownloadLogEvent reports the outcome of one model download.
// DownloadFailureStatus is platform-dependent (an HTTP status or an
// OS-specific reason code) and may be negative.
type ModelDownloadLogEvent struct {
	Options                 *ModelOptions  `json:"options,omitempty"`
	RoughDownloadDurationMS uint64         `json:"roughDownloadDurationMs,omitempty,string"`
	ErrorCode               ErrorCode      `json:"errorCode,omitempty"`
	ExactDownloadDurationMS uint64         `json:"exactDownloadDurationMs,omitempty,string"`
	DownloadStatus          DownloadStatus `json:"downloadStatus,omitempty"`
	DownloadFailureStatus   int64          `json:"downloadFailureStatus,omitempty,string"`
}

// DeleteModelLogEvent reports the outcome of a model deletion.
type DeleteModelLogEvent struct {
	ModelType    ModelType `json:"modelType,omitempty"`
	IsSuccessful bool      `json:"isSuccessful,omitempty"`
}

// FirebaseMlLogEvent is the top-level envelope. The two sub-events are
// independently optional; the schema does not forbid both being set on
// one envelope and the codec preserves whatever a producer sent.
type FirebaseMlLogEvent struct {
	SystemInfo            *SystemInfo            `json:"systemInfo,omitempty"`
	EventName             EventName              `json:"eventName,omitempty"`
	ModelDownloadLogEvent *ModelDownloadLogEvent `json:"modelDownloadLogEvent,omitempty"`
	DeleteModelLogEvent   *DeleteModelLogEvent   `json:"deleteModelLogEvent,omitempty"`
}

// Enumerations are closed in this source but open on the wire: a newer
// producer may emit integers this package has no name for. Decoders
// keep the raw value; Known reports whether the value is in the
// declared set.

var eventNameNames = map[EventName]string{
	EventNameUnknown:       "UNKNOWN_EVENT",
	EventNameModelDownload: "MODEL_DOWNLOAD",
	EventNameModelUpdate:   "MODEL_UPDATE",
}

var modelTypeNames = map[ModelType]string{
	ModelTypeUnknown: "TYPE_UNKNOWN",
	ModelTypeCustom:  "CUSTOM",
}

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeNoError:                                 "NO_ERROR",
	ErrorCodeTimeOut:                                 "TIME_OUT",
	ErrorCodeURIExpired:                              "URI_EXPIRED",
	ErrorCodeNoNetworkConnection:                     "NO_NETWORK_CONNECTION",
	ErrorCodeDownloadFailed:                          "DOWNLOAD_FAILED",
	ErrorCodeModelInfoDownloadUnsuccessfulHTTPStatus: "MODEL_INFO_DOWNLOAD_UNSUCCESSFUL_HTTP_STATUS",
	ErrorCodeModelInfoDownloadConnectionFailed:       "MODEL_INFO_DOWNLOAD_CONNECTION_FAILED",
	ErrorCodeModelHashMismatch:                       "MODEL_HASH_MISMATCH",
	ErrorCodeUnknownError:                            "UNKNOWN_ERROR",
}

var downloadStatusNames = map[DownloadStatus]string{
	DownloadStatusUnknown:                  "UNKNOWN_STATUS",
	DownloadStatusExplicitlyRequested:      "EXPLICITLY_REQUESTED",
	DownloadStatusModelInfoRetrievalFailed: "MODEL_INFO_RETRIEVAL_FAILED",
	DownloadStatusScheduled:                "SCHEDULED",
	DownloadStatusDownloading:              "DOWNLOADING",
	DownloadStatusSucceeded:                "SUCCEEDED",
	DownloadStatusFailed:                   "FAILED",
	DownloadStatusUpdateAvailable:          "UPDATE_AVAILABLE",
}

// String returns the symbolic name, or the decimal value for integers
// outside the declared set.
func (n EventName) String() string {
	if s, ok := eventNameNames[n]; ok {
		return s
	}
	return strconv.FormatInt(int64(n), 10)
}

// Known reports whether the value is in the declared set.
func (n EventName) Known() bool {
	_, ok := eventNameNames[n]
	return ok
}

func (t ModelType) String() string {
	if s, ok := modelTypeNames[t]; ok {
		return s
	}
	return strconv.FormatInt(int64(t), 10)
}

func (t ModelType) Known() bool {
	_, ok := modelTypeNames[t]
	return ok
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return strconv.FormatInt(int64(c), 10)
}

func (c ErrorCode) Known() bool {
	_, ok := errorCodeNames[c]
	return ok
}

func (s DownloadStatus) String() string {
	if n, ok := downloadStatusNames[s]; ok {
		return n
	}
	return strconv.FormatInt(int64(s), 10)
}

func (s DownloadStatus) Known() bool {
	_, ok := downloadStatusNames[s]
	return ok
}
