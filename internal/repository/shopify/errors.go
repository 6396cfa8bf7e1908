package shopify

import "fmt"

// failure kinds, used for logging and metric labels only.
const (
	kindConfig    = "config"
	kindTransport = "transport"
	kindStatus    = "status"
	kindDecode    = "decode"
	kindGraphQL   = "graphql"
	kindSchema    = "schema"
)

// UpstreamError is the single error type returned by CustomerShopify.
// Callers must treat it as opaque; the wrapped cause is for server logs.
type UpstreamError struct {
	kind string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("shopify %s failure: %v", e.kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamErr(kind string, err error) *UpstreamError {
	return &UpstreamError{kind: kind, Err: err}
}

func upstreamErrf(kind, format string, args ...any) *UpstreamError {
	return &UpstreamError{kind: kind, Err: fmt.Errorf(format, args...)}
}
