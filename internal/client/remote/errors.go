package remote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNoSession      = errors.New("no persisted token")
	ErrSessionInvalid = errors.New("persisted token rejected by server")
)

// Kind classifies adapter failures.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindTransport
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the single failure type returned by the adapter. Message is
// always fit to show to the user as is.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	unreachableMessage = "Unable to reach the server"
	cancelledMessage   = "Request cancelled"
)

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: unreachableMessage, Err: err}
}

type validationDetail struct {
	Msg string `json:"msg"`
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// detailMessage extracts a readable message from a {detail: ...} body.
// detail may be a string or a list of {msg} objects, which are joined.
func detailMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}

	var items []validationDetail
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func statusError(status int, body []byte, fallback string) *Error {
	msg := detailMessage(body)
	if msg == "" {
		msg = fallback
	}

	kind := KindAuth
	switch {
	case status == http.StatusUnprocessableEntity:
		kind = KindValidation
	case status >= 500:
		kind = KindServer
	}
	return &Error{Kind: kind, Status: status, Message: msg}
}
