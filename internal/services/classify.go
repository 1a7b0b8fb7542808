package services

import (
	"strings"

	"github.com/Archemasachika7/Algorythm-auth/internal/toasts"
)

// ErrorKind buckets an authentication failure for presentation.
type ErrorKind int

const (
	ErrorGeneric ErrorKind = iota
	ErrorNetwork
	ErrorInvalidCredentials
)

// Toast messages per error kind.
const (
	MsgToastNetwork     = "Network error. Please check your connection and try again."
	MsgToastCredentials = "Invalid email or password. Please try again."
	MsgToastGeneric     = "Something went wrong. Please try again."
)

// ClassifyAuthError buckets a failure by substring match on its message,
// the same way the demo page routes raw backend errors to toasts.
func ClassifyAuthError(err error) ErrorKind {
	if err == nil {
		return ErrorGeneric
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "network"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "unreachable"):
		return ErrorNetwork
	case strings.Contains(msg, "invalid"),
		strings.Contains(msg, "credentials"):
		return ErrorInvalidCredentials
	default:
		return ErrorGeneric
	}
}

// ToastMessage is the user-facing text shown for this kind of failure.
func (k ErrorKind) ToastMessage() string {
	switch k {
	case ErrorNetwork:
		return MsgToastNetwork
	case ErrorInvalidCredentials:
		return MsgToastCredentials
	default:
		return MsgToastGeneric
	}
}

// Severity is the toast severity used for this kind of failure.
func (k ErrorKind) Severity() toasts.Severity {
	if k == ErrorNetwork {
		return toasts.SeverityWarning
	}
	return toasts.SeverityError
}
