package go_openrpc_near

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/rpc/v2/json2"
)

// Error names NEAR nodes put in the "name" field of a JSON-RPC error.
const (
	HandlerError           = "HANDLER_ERROR"
	RequestValidationError = "REQUEST_VALIDATION_ERROR"
	InternalError          = "INTERNAL_ERROR"
)

var ErrMalformedEnvelope = errors.New("malformed json-rpc envelope")

// TransportError is returned when the request never produced an HTTP response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("near rpc: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is returned when the response is not a JSON-RPC 2.0 envelope,
// including non-2xx responses without one.
type ProtocolError struct {
	StatusCode int
	Body       []byte
	Err        error
}

const maxErrorBody = 256

func (e *ProtocolError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("near rpc: http %d: %v: %q", e.StatusCode, e.Err, body)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// DecodeError is returned when a result does not fit the method's response type.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("near rpc: decode %s result: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RPCError is the error object of a JSON-RPC response. Name and Cause are
// NEAR extensions; Cause.Name is the specific failure, eg. UNKNOWN_ACCOUNT.
type RPCError struct {
	Code    json2.ErrorCode `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Name    string          `json:"name,omitempty"`
	Cause   *ErrorCause     `json:"cause,omitempty"`
}

type ErrorCause struct {
	Name string          `json:"name"`
	Info json.RawMessage `json:"info,omitempty"`
}

func (e *RPCError) Error() string {
	s := fmt.Sprintf("near rpc: %d", e.Code)
	if e.Name != "" {
		s += " " + e.Name
	}
	if e.Cause != nil && e.Cause.Name != "" {
		s += "/" + e.Cause.Name
	}
	return s + ": " + e.Message
}

// CauseName returns the cause name, or "" when the node sent none.
func (e *RPCError) CauseName() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Name
}

func rpcErrorNamed(err error, name string) bool {
	var e *RPCError
	return errors.As(err, &e) && e.Name == name
}

func IsHandlerError(err error) bool { return rpcErrorNamed(err, HandlerError) }

func IsRequestValidationError(err error) bool { return rpcErrorNamed(err, RequestValidationError) }

func IsInternalError(err error) bool { return rpcErrorNamed(err, InternalError) }
