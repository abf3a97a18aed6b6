package ports

import (
	"context"
	"io"

	"statplug/domain/core"
	"statplug/domain/table"
)

// ActionFunc executes one host-invoked action: a single synchronous
// request/response with no state retained across calls.
type ActionFunc func(ctx context.Context, in table.Model) (table.Model, error)

// Action is one named, host-invokable entry point with its declared
// input model types and menu placement.
type Action struct {
	ID    core.ActionID
	Title string
	Menus []string
	Types []table.ModelType
	Run   ActionFunc
}

// FileType associates a file slug with reader and writer callbacks so the
// host's open/save dialogs can round-trip a model through a local file.
type FileType struct {
	Slug       string
	Title      string
	Extensions []string
	Read       func(r io.Reader) (table.Model, error)
	Write      func(m table.Model, w io.Writer) error
}

// Host is the registration surface the plugin sees of the desktop
// application. The host owns discovery, dispatch, and presentation;
// the plugin only contributes named capabilities.
type Host interface {
	RegisterAction(action Action) error
	RegisterFileType(ft FileType) error
}
