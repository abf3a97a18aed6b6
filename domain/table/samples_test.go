package table

import (
	"errors"
	"testing"

	"statplug/domain/core"
)

func TestParseColumn(t *testing.T) {
	s, err := ParseColumn("a", []string{"1", " 2.5 ", "", "3e1"})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2.5, 30}
	if len(s.Values) != len(want) {
		t.Fatalf("got %d values, want %d", len(s.Values), len(want))
	}
	for i := range want {
		if s.Values[i] != want[i] {
			t.Errorf("value %d = %f, want %f", i, s.Values[i], want[i])
		}
	}

	if _, err := ParseColumn("a", []string{"1", "abc"}); !errors.Is(err, core.ErrNonNumericCell) {
		t.Errorf("non-numeric cell: got %v", err)
	}
	if _, err := ParseColumn("a", []string{"", "  "}); !errors.Is(err, core.ErrEmptySample) {
		t.Errorf("blank column: got %v", err)
	}
	if _, err := ParseColumn("a", nil); !core.IsInvalidInput(err) {
		t.Errorf("empty column must be InvalidInput, got %v", err)
	}
}

func TestSamplesFromRows_HeaderDetection(t *testing.T) {
	rows := [][]string{
		{"ctrl", "drug"},
		{"1", "4"},
		{"2", "5"},
	}
	samples, err := SamplesFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples", len(samples))
	}
	if samples[0].Name != "ctrl" || samples[1].Name != "drug" {
		t.Errorf("names = %q, %q", samples[0].Name, samples[1].Name)
	}
	if samples[0].Len() != 2 || samples[0].Values[1] != 2 {
		t.Errorf("ctrl = %v", samples[0].Values)
	}
}

func TestSamplesFromRows_NoHeader(t *testing.T) {
	samples, err := SamplesFromRows([][]string{{"1", "4"}, {"2", "5"}})
	if err != nil {
		t.Fatal(err)
	}
	if samples[0].Name != "col1" || samples[1].Name != "col2" {
		t.Errorf("names = %q, %q", samples[0].Name, samples[1].Name)
	}
	if samples[0].Len() != 2 {
		t.Errorf("col1 = %v", samples[0].Values)
	}
}

func TestSamplesFromRows_RaggedRows(t *testing.T) {
	samples, err := SamplesFromRows([][]string{
		{"a", "b"},
		{"1", "4"},
		{"2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if samples[0].Len() != 2 || samples[1].Len() != 1 {
		t.Errorf("lengths = %d, %d", samples[0].Len(), samples[1].Len())
	}
}

func TestSamplesFromRows_Errors(t *testing.T) {
	if _, err := SamplesFromRows(nil); !core.IsInvalidInput(err) {
		t.Errorf("no rows: got %v", err)
	}
	if _, err := SamplesFromRows([][]string{{"a"}, {"oops"}}); !errors.Is(err, core.ErrNonNumericCell) {
		t.Errorf("non-numeric body: got %v", err)
	}
}

func TestSplitByGroup(t *testing.T) {
	values := Sample{Name: "value", Values: []float64{1, 2, 3, 4, 5}}
	groups := []string{"b", "a", "b", "a", "b"}

	samples, err := SplitByGroup(values, groups)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d groups", len(samples))
	}
	// First-occurrence order, not sorted.
	if samples[0].Name != "b" || samples[1].Name != "a" {
		t.Errorf("order = %q, %q", samples[0].Name, samples[1].Name)
	}
	if samples[0].Len() != 3 || samples[0].Values[2] != 5 {
		t.Errorf("group b = %v", samples[0].Values)
	}
	if samples[1].Len() != 2 || samples[1].Values[0] != 2 {
		t.Errorf("group a = %v", samples[1].Values)
	}
}

func TestSplitByGroup_Errors(t *testing.T) {
	values := Sample{Values: []float64{1, 2}}
	if _, err := SplitByGroup(values, []string{"a"}); !errors.Is(err, core.ErrLengthMismatch) {
		t.Errorf("length mismatch: got %v", err)
	}
	if _, err := SplitByGroup(values, []string{"a", " "}); !core.IsInvalidInput(err) {
		t.Errorf("blank label: got %v", err)
	}
}

func TestRequirePaired(t *testing.T) {
	x := Sample{Name: "x", Values: []float64{1, 2, 3}}
	y := Sample{Name: "y", Values: []float64{4, 5, 6}}
	if err := RequirePaired(x, y); err != nil {
		t.Errorf("equal lengths: %v", err)
	}
	if err := RequirePaired(x, Sample{Name: "y", Values: []float64{1}}); !errors.Is(err, core.ErrLengthMismatch) {
		t.Errorf("mismatch: got %v", err)
	}
	if err := RequirePaired(Sample{}, y); !errors.Is(err, core.ErrEmptySample) {
		t.Errorf("empty: got %v", err)
	}
}
