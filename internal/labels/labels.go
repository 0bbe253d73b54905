package labels

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/ydb-platform/ydb-go-sdk/v3"
)

type Label struct {
	Tag   string
	Value string
}

const (
	TagVersion    = "sdk"
	TagError      = "error"
	TagID         = "ID"
	TagIdempotent = "idempotent"
	TagSuccess    = "success"
	TagStage      = "stage"
)

func KeyValue(labels ...Label) map[string]string {
	kv := make(map[string]string, len(labels))
	for _, l := range labels {
		kv[l.Tag] = l.Value
	}
	return kv
}

// Err appends an error label classifying err.
func Err(err error, lbls ...Label) []Label {
	return append(lbls, Label{
		Tag:   TagError,
		Value: errorKind(err),
	})
}

func errorKind(err error) string {
	var netErr *net.OpError
	switch {
	case errors.As(err, &netErr):
		return "network/" + netErr.Op
	case errors.Is(err, io.EOF):
		return "io/EOF"
	case errors.Is(err, context.DeadlineExceeded):
		return "context/DeadlineExceeded"
	case errors.Is(err, context.Canceled):
		return "context/Canceled"
	case ydb.IsTransportError(err):
		return "transport"
	case ydb.IsOperationError(err):
		return "operation"
	default:
		return "unknown/" + strings.ReplaceAll(err.Error(), " ", "_")
	}
}
