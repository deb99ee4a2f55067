// Package errors turns failures into user-facing messages for the console
// and the interactive browser.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/cristianoliveira/hrdesk/internal/apiclient"
	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// ErrorHandler receives user-facing messages.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Describe renders err as a short message a user can act on.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *apiclient.APIError
	switch {
	case stderrors.Is(err, domain.ErrUnknownKind):
		kinds := make([]string, len(domain.AllKinds))
		for i, k := range domain.AllKinds {
			kinds[i] = k.String()
		}
		return fmt.Sprintf("%v (known kinds: %s)", err, strings.Join(kinds, ", "))
	case stderrors.As(err, &apiErr):
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Sprintf("%v; check api_token", err)
		case http.StatusNotFound:
			return fmt.Sprintf("%v; check api_base_url", err)
		}
		return err.Error()
	case stderrors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("%v; the API did not answer within request_timeout", err)
	case stderrors.Is(err, context.Canceled):
		return "canceled"
	case stderrors.Is(err, apiclient.ErrUnexpectedShape):
		return fmt.Sprintf("%v; is api_base_url pointing at the HR API?", err)
	case stderrors.Is(err, domain.ErrRecordNotFound):
		return fmt.Sprintf("%v; run sync first", err)
	default:
		return err.Error()
	}
}

// Report sends the description of err to h. A nil err is ignored.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	h.Error(Describe(err))
}

// ColorOutput is the console surface CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages through a ColorOutput and counts errors so a
// command can pick its exit status.
type CLIHandler struct {
	out    ColorOutput
	mu     sync.Mutex
	errors int
}

func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{out: out}
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	h.errors++
	h.mu.Unlock()
	h.out.Error(msg)
}

func (h *CLIHandler) Warning(msg string) { h.out.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.out.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.out.Success(msg) }

// Errors returns how many errors were reported.
func (h *CLIHandler) Errors() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errors
}
