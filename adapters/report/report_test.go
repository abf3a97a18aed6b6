package report

import (
	"strings"
	"testing"

	"statplug/domain/table"
)

func resultModel() table.Model {
	return table.NewTableModel("t-test (ctrl vs drug)", [][]string{
		{"p-value", "0.0023"},
		{"", "**"},
		{"t-statistic", "-3.5121"},
	})
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(resultModel())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(md, "## t-test (ctrl vs drug)\n") {
		t.Errorf("missing heading:\n%s", md)
	}
	if !strings.Contains(md, "| p-value | 0.0023 |") {
		t.Errorf("missing p-value row:\n%s", md)
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Errorf("missing separator row:\n%s", md)
	}
	if !strings.Contains(md, "| t-statistic | -3.5121 |") {
		t.Errorf("missing statistic row:\n%s", md)
	}
}

func TestMarkdown_PadsRaggedRows(t *testing.T) {
	m := table.NewTableModel("r", [][]string{
		{"a", "b", "c"},
		{"only"},
	})
	md, err := Markdown(m)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "| only |  |  |") {
		t.Errorf("short row not padded:\n%s", md)
	}
}

func TestMarkdown_RejectsNonTable(t *testing.T) {
	if _, err := Markdown(table.NewTextModel("note", "hello")); err == nil {
		t.Error("non-table model must fail")
	}
}

func TestHTML(t *testing.T) {
	out, err := HTML(resultModel())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("no table element:\n%s", out)
	}
	if !strings.Contains(out, "t-test (ctrl vs drug)") {
		t.Errorf("no heading text:\n%s", out)
	}
	if !strings.Contains(out, "0.0023") {
		t.Errorf("no p-value:\n%s", out)
	}
}
