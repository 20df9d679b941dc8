package wire

import (
	"github.com/ties/voltdb-client-go/voltdb/common"
)

// ResponseStatus is the server status code of a response envelope.
type ResponseStatus int8

const (
	StatusSuccess           ResponseStatus = 1
	StatusUserAbort         ResponseStatus = -1
	StatusGracefulFailure   ResponseStatus = -2
	StatusUnexpectedFailure ResponseStatus = -3
	StatusConnectionLost    ResponseStatus = -4
)

// String returns the string representation of a ResponseStatus
func (s ResponseStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUserAbort:
		return "user abort"
	case StatusGracefulFailure:
		return "graceful failure"
	case StatusUnexpectedFailure:
		return "unexpected failure"
	case StatusConnectionLost:
		return "connection lost"
	default:
		return "unknown"
	}
}

// Optional-field bits of the fieldsPresent byte
const (
	fieldStatusString    byte = 1 << 5
	fieldAppStatusString byte = 1 << 7
)

// ResponseInfo is the decoded envelope of one response frame. The reserved
// byte and the handle precede the envelope and are consumed by the receive
// loop before ParseResponse is called.
type ResponseInfo struct {
	Handle           int64
	Status           ResponseStatus
	StatusString     string
	AppStatus        int8
	AppStatusString  string
	ClusterRoundTrip int32
	TableCount       int16
}

// ParseResponse decodes the response envelope following the handle
func ParseResponse(r *Reader, handle int64) (*ResponseInfo, error) {
	fields, err := r.ReadUint8("fields-present byte")
	if err != nil {
		return nil, err
	}

	status, err := r.ReadInt8("status")
	if err != nil {
		return nil, err
	}

	info := &ResponseInfo{
		Handle: handle,
		Status: ResponseStatus(status),
	}

	if fields&fieldStatusString != 0 {
		if info.StatusString, err = r.ReadString("status string"); err != nil {
			return nil, err
		}
	}

	if info.AppStatus, err = r.ReadInt8("app status"); err != nil {
		return nil, err
	}

	if fields&fieldAppStatusString != 0 {
		if info.AppStatusString, err = r.ReadString("app status string"); err != nil {
			return nil, err
		}
	}

	if info.ClusterRoundTrip, err = r.ReadInt32("cluster round trip"); err != nil {
		return nil, err
	}

	if info.TableCount, err = r.ReadInt16("table count"); err != nil {
		return nil, err
	}
	if info.TableCount < 0 {
		return nil, common.NewDecodeError("negative table count")
	}

	return info, nil
}

// Err converts a non-success status into a ServerError, nil otherwise
func (i *ResponseInfo) Err() error {
	if i.Status == StatusSuccess {
		return nil
	}
	return &common.ServerError{Status: int8(i.Status), Message: i.StatusString}
}
