package testtools

import (
	"fmt"
	"strconv"

	"statplug/domain/table"
	"statplug/ports"
)

// PValueAsterisks maps a p-value to its conventional significance marker
func PValueAsterisks(pval float64) string {
	switch {
	case pval > 0.05:
		return "n.s."
	case pval > 0.01:
		return "*"
	case pval > 0.001:
		return "**"
	case pval > 0.0001:
		return "***"
	default:
		return "****"
	}
}

func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}

// RenderResult builds the host table for a single test result: p-value,
// significance marker, statistic, then degrees of freedom and effect size
// where the test defines them, followed by any caller rows.
func RenderResult(title string, res *ports.TestResult, extraRows [][]string) table.Model {
	label := "statistic"
	if l, ok := res.Details["statistic_label"].(string); ok {
		label = l
	}
	rows := [][]string{
		{"p-value", formatG(res.PValue)},
		{"", PValueAsterisks(res.PValue)},
		{label, formatG(res.Statistic)},
	}
	if res.HasDF {
		rows = append(rows, []string{"degrees of freedom", formatG(res.DF)})
	}
	if res.HasEffect {
		rows = append(rows, []string{"effect size", formatG(res.EffectSize)})
	}
	rows = append(rows, extraRows...)
	return table.NewTableModel(title, rows)
}

// RenderPairwise builds the host table for an all-pairs result: group
// names on the borders, formatted p-values in the upper triangle, and
// significance markers mirrored in the lower triangle.
func RenderPairwise(title string, res *ports.PairwiseResult) table.Model {
	k := len(res.Groups)
	rows := make([][]string, k+1)
	for i := range rows {
		rows[i] = make([]string, k+1)
	}
	for i := 1; i <= k; i++ {
		rows[0][i] = res.Groups[i-1]
		rows[i][0] = res.Groups[i-1]
		for j := 1; j <= k; j++ {
			switch {
			case i == j:
				rows[i][j] = "1.0"
			case i > j:
				rows[i][j] = PValueAsterisks(res.PValues[i-1][j-1])
			default:
				rows[i][j] = formatG(res.PValues[i-1][j-1])
			}
		}
	}
	return table.NewTableModel(title, rows)
}

// RenderBattery builds the host table summarizing a battery run, one row
// per tool.
func RenderBattery(title string, items []BatteryItem) table.Model {
	rows := [][]string{{"test", "statistic", "p-value", ""}}
	for _, item := range items {
		if item.Err != nil {
			rows = append(rows, []string{item.Title, "", "", fmt.Sprintf("skipped: %v", item.Err)})
			continue
		}
		rows = append(rows, []string{
			item.Title,
			formatG(item.Res.Statistic),
			formatG(item.Res.PValue),
			PValueAsterisks(item.Res.PValue),
		})
	}
	return table.NewTableModel(title, rows)
}
