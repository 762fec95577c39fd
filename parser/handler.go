package parser

import (
	"fmt"
	"io"
	"os"
)

// Handler receives the diagnostics emitted while reading a control file.
// Warnings never stop a read; critical errors are reported here and also
// returned as an *Error from the read that detected them. The context is
// nil for diagnostics with no position in the input, such as file
// permission problems.
type Handler interface {
	Warn(ctx *Context, message string)
	Critical(ctx *Context, message string)
}

// DefaultHandler renders diagnostics to standard error.
var DefaultHandler Handler = consoleHandler{w: os.Stderr}

type consoleHandler struct {
	w io.Writer
}

func (h consoleHandler) Warn(ctx *Context, message string) {
	h.emit("warning: ", ctx, message)
}

func (h consoleHandler) Critical(ctx *Context, message string) {
	h.emit("critical error: ", ctx, message)
}

func (h consoleHandler) emit(prefix string, ctx *Context, message string) {
	fmt.Fprint(h.w, prefix, message)
	if ctx != nil {
		fmt.Fprintf(h.w, " at %s line %d", ctx.Path, ctx.Line)
	}
	fmt.Fprintln(h.w)
}

// HandlerFuncs adapts plain functions to the Handler interface. A nil
// function falls back to the corresponding DefaultHandler callback, so one
// side can be replaced without the other.
type HandlerFuncs struct {
	WarnFunc     func(ctx *Context, message string)
	CriticalFunc func(ctx *Context, message string)
}

func (h HandlerFuncs) Warn(ctx *Context, message string) {
	if h.WarnFunc != nil {
		h.WarnFunc(ctx, message)
		return
	}
	DefaultHandler.Warn(ctx, message)
}

func (h HandlerFuncs) Critical(ctx *Context, message string) {
	if h.CriticalFunc != nil {
		h.CriticalFunc(ctx, message)
		return
	}
	DefaultHandler.Critical(ctx, message)
}
