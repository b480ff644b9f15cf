package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Kind classifies backend failures so callers can branch on the failure
// class instead of inspecting message text.
type Kind string

const (
	// KindAuth covers missing or rejected credentials.
	KindAuth Kind = "auth"
	// KindSafety covers content-policy rejections of the prompt.
	KindSafety Kind = "safety"
	// KindEmpty covers calls that succeeded but produced no usable output.
	KindEmpty Kind = "empty"
	// KindUnavailable is the catch-all for transient backend trouble.
	KindUnavailable Kind = "unavailable"
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gemini: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("gemini: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure class of err, defaulting to KindUnavailable
// for errors that did not come from this package.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnavailable
}

// classify wraps an error from the genai SDK, mapping structured API codes
// to a Kind. Message content is never inspected.
func classify(op string, err error) *Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindAuth, Op: op, Err: err}
		}
		switch apiErr.Status {
		case "UNAUTHENTICATED", "PERMISSION_DENIED":
			return &Error{Kind: KindAuth, Op: op, Err: err}
		}
	}
	return &Error{Kind: KindUnavailable, Op: op, Err: err}
}

func blocked(op string, reason genai.BlockedReason) *Error {
	return &Error{Kind: KindSafety, Op: op, Err: fmt.Errorf("prompt blocked: %s", reason)}
}

func empty(op string) *Error {
	return &Error{Kind: KindEmpty, Op: op}
}
