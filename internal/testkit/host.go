package testkit

import (
	"context"
	"fmt"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// InMemoryHost is a fake host registry for tests: it records every
// registration and dispatches invocations the way the real host would.
type InMemoryHost struct {
	actions   map[core.ActionID]ports.Action
	order     []core.ActionID
	fileTypes map[string]ports.FileType
}

// NewInMemoryHost creates an empty fake host
func NewInMemoryHost() *InMemoryHost {
	return &InMemoryHost{
		actions:   make(map[core.ActionID]ports.Action),
		fileTypes: make(map[string]ports.FileType),
	}
}

// RegisterAction records an action registration
func (h *InMemoryHost) RegisterAction(action ports.Action) error {
	if action.ID.IsEmpty() {
		return fmt.Errorf("action ID cannot be empty")
	}
	if action.Run == nil {
		return fmt.Errorf("action %s has no Run function", action.ID)
	}
	if _, exists := h.actions[action.ID]; exists {
		return fmt.Errorf("action %s registered twice", action.ID)
	}
	h.actions[action.ID] = action
	h.order = append(h.order, action.ID)
	return nil
}

// RegisterFileType records a file-type registration
func (h *InMemoryHost) RegisterFileType(ft ports.FileType) error {
	if ft.Slug == "" {
		return fmt.Errorf("file type slug cannot be empty")
	}
	if _, exists := h.fileTypes[ft.Slug]; exists {
		return fmt.Errorf("file type %s registered twice", ft.Slug)
	}
	h.fileTypes[ft.Slug] = ft
	return nil
}

// ActionIDs returns the registered action IDs in registration order
func (h *InMemoryHost) ActionIDs() []core.ActionID {
	out := make([]core.ActionID, len(h.order))
	copy(out, h.order)
	return out
}

// FileType returns a registered file type by slug
func (h *InMemoryHost) FileType(slug string) (ports.FileType, bool) {
	ft, ok := h.fileTypes[slug]
	return ft, ok
}

// Invoke dispatches a registered action the way the host would
func (h *InMemoryHost) Invoke(ctx context.Context, id core.ActionID, in table.Model) (table.Model, error) {
	action, ok := h.actions[id]
	if !ok {
		return table.Model{}, fmt.Errorf("no action registered as %s", id)
	}
	return action.Run(ctx, in)
}
