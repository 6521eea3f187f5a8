// Package errors routes user-facing notices to the console or to the TUI status line.
package errors

import (
	"github.com/eallis/wiifolio/internal/colors"
)

// Handler receives user-facing notices of increasing severity.
// Implementations decide where they end up.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// Output is the console sink used by CLIHandler.
type Output interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// colorsOutput forwards to the colors package.
type colorsOutput struct{}

func (colorsOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (colorsOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (colorsOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (colorsOutput) Success(msgs ...string) { colors.Success(msgs...) }

// CLIHandler prints notices for subcommands.
type CLIHandler struct {
	out Output
}

var _ Handler = (*CLIHandler)(nil)

// NewCLIHandler creates a handler that writes to out.
func NewCLIHandler(out Output) *CLIHandler {
	return &CLIHandler{out: out}
}

// NewDefaultCLIHandler creates a handler backed by the colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colorsOutput{})
}

func (h *CLIHandler) Error(msg string)   { h.out.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.out.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.out.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.out.Success(msg) }

// Report sends err to h as an error notice, prefixed with action.
// A nil err is ignored so callers can pass results straight through.
func Report(h Handler, action string, err error) {
	if err == nil || h == nil {
		return
	}
	if action == "" {
		h.Error(err.Error())
		return
	}
	h.Error(action + ": " + err.Error())
}
