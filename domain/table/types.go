package table

import (
	"fmt"

	"statplug/domain/core"
)

// ModelType identifies the host data-exchange shape of a Model payload
type ModelType string

const (
	TypeTable        ModelType = "table"
	TypeArray        ModelType = "array"
	TypeParams       ModelType = "params"
	TypeDistribution ModelType = "distribution"
	TypeText         ModelType = "text"
)

// Model is the unit of data exchange with the host. Every action receives
// one Model and returns one Model; the Type field tells the host which
// widget renders the payload.
type Model struct {
	ID    core.ID
	Type  ModelType
	Title string
	Value any
}

// NewTableModel wraps rows of display cells in a table model
func NewTableModel(title string, rows [][]string) Model {
	return Model{ID: core.NewID(), Type: TypeTable, Title: title, Value: rows}
}

// NewArrayModel wraps a numeric array in an array model
func NewArrayModel(title string, values []float64) Model {
	return Model{ID: core.NewID(), Type: TypeArray, Title: title, Value: values}
}

// NewParamsModel wraps a parameter mapping in a params model
func NewParamsModel(title string, params map[string]float64) Model {
	return Model{ID: core.NewID(), Type: TypeParams, Title: title, Value: params}
}

// NewDistributionModel wraps an opaque distribution payload in a distribution model
func NewDistributionModel(title string, value any) Model {
	return Model{ID: core.NewID(), Type: TypeDistribution, Title: title, Value: value}
}

// NewTextModel wraps plain text in a text model
func NewTextModel(title, text string) Model {
	return Model{ID: core.NewID(), Type: TypeText, Title: title, Value: text}
}

// AsTable returns the payload as table rows
func (m Model) AsTable() ([][]string, error) {
	rows, ok := m.Value.([][]string)
	if !ok {
		return nil, core.NewInvalidInputError(fmt.Sprintf("model %q is %s, not a table", m.Title, m.Type))
	}
	return rows, nil
}

// AsArray returns the payload as a numeric array
func (m Model) AsArray() ([]float64, error) {
	values, ok := m.Value.([]float64)
	if !ok {
		return nil, core.NewInvalidInputError(fmt.Sprintf("model %q is %s, not an array", m.Title, m.Type))
	}
	return values, nil
}

// AsParams returns the payload as a parameter mapping
func (m Model) AsParams() (map[string]float64, error) {
	params, ok := m.Value.(map[string]float64)
	if !ok {
		return nil, core.NewInvalidInputError(fmt.Sprintf("model %q is %s, not a parameter mapping", m.Title, m.Type))
	}
	return params, nil
}
