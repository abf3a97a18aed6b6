package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ActionID names a host-invokable entry point, e.g. "statplug:test:t-test"
type ActionID string

// DistKind names a registered probability distribution, e.g. "normal"
type DistKind string

func (id ActionID) String() string { return string(id) }
func (id ActionID) IsEmpty() bool  { return id == "" }
func (k DistKind) String() string  { return string(k) }
func (k DistKind) IsEmpty() bool   { return k == "" }

// ParseActionID parses a string into an ActionID
func ParseActionID(s string) (ActionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("action ID cannot be empty")
	}
	return ActionID(s), nil
}

// ParseDistKind parses a string into a DistKind
func ParseDistKind(s string) (DistKind, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("distribution kind cannot be empty")
	}
	return DistKind(strings.ToLower(strings.TrimSpace(s))), nil
}
