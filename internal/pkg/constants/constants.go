package constants

import "net/http"

// viper keys
const (
	ViperListenAddr  = "listen_addr"
	ViperPostgresDSN = "postgres_dsn"
	ViperSampleDir   = "sample_dir"
	ViperSecretKey   = "admin_secret"
	ViperLogLevel    = "log_level"
)

const CookieKeySecretToken = "secret_token"

// CodedError is an error carrying the HTTP status it should surface with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
)

// NewInvalidFilterError builds the terminal error for an unknown station or
// daypart filter; the query returns no partial payload.
func NewInvalidFilterError(msg string) *CodedError {
	return NewCodedError(http.StatusBadRequest, msg)
}
