package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/sparseprim/mst"
)

// renderSummary builds one row per graph and a footer with the batch time.
func renderSummary(inputs []input, results []mst.Result, elapsed time.Duration) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Graph", "Vertices", "Stored", "Components", "Tree Edges", "Total Weight"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", WidthMax: 6},
		{Name: "Vertices", Align: text.AlignRight},
		{Name: "Stored", Align: text.AlignRight},
		{Name: "Components", Align: text.AlignRight},
		{Name: "Tree Edges", Align: text.AlignRight},
		{Name: "Total Weight", Align: text.AlignRight},
	})

	for i, in := range inputs {
		r := results[i]
		t.AppendRow(table.Row{
			i + 1,
			in.name,
			in.g.Rows(),
			in.g.Nvals(),
			len(mst.Roots(r.Parents)),
			r.Parents.Nvals(),
			formatWeight(r.TotalWeight),
		})
	}
	t.AppendFooter(table.Row{"", "elapsed", elapsed.Round(time.Microsecond).String()})

	return t.Render()
}

// renderEdges lists the forest edges of one graph.
func renderEdges(name string, edges []mst.Edge) string {
	t := table.NewWriter()
	t.SetTitle(name)
	t.AppendHeader(table.Row{"Parent", "Vertex", "Weight"})
	for _, e := range edges {
		t.AppendRow(table.Row{e.From, e.To, formatWeight(e.Weight)})
	}

	return t.Render()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
