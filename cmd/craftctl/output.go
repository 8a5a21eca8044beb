package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

const absent = "-"

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatCost(v *int64) string {
	if v == nil {
		return absent
	}
	return strconv.FormatInt(*v, 10)
}

func (p *printer) summary(s *domain.CostSummary) error {
	if p.format == FormatJSON {
		return p.json(s)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "item\t%d\n", s.ItemID)
	fmt.Fprintf(tw, "server\t%d\n", s.ServerID)
	fmt.Fprintf(tw, "direct price\t%s\n", formatCost(s.DirectPrice))
	fmt.Fprintf(tw, "craft cost\t%s\n", formatCost(s.CraftCost))
	fmt.Fprintf(tw, "optimal cost\t%s\n", formatCost(s.OptimalCost))
	fmt.Fprintf(tw, "method\t%s\n", s.Method)
	return tw.Flush()
}

func (p *printer) breakdown(tree *domain.CostBreakdown) error {
	if p.format == FormatJSON {
		return p.json(tree)
	}
	var b strings.Builder
	writeNode(&b, tree, 0)
	_, err := fmt.Fprint(p.w, b.String())
	return err
}

// writeNode renders one breakdown node per line, indented by depth.
func writeNode(b *strings.Builder, n *domain.CostBreakdown, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.Quantity > 0 {
		fmt.Fprintf(b, "%d x ", n.Quantity)
	}
	fmt.Fprintf(b, "%s [%s] unit=%s", n.ItemName, n.Method, formatCost(n.UnitCost))
	if n.TotalCost != nil {
		fmt.Fprintf(b, " total=%s", formatCost(n.TotalCost))
	}
	b.WriteByte('\n')
	for _, child := range n.Ingredients {
		writeNode(b, child, depth+1)
	}
}

func (p *printer) ranking(rows []domain.RankedRecipe) error {
	if p.format == FormatJSON {
		if rows == nil {
			rows = []domain.RankedRecipe{}
		}
		return p.json(rows)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\trecipe\titem\tcost\trevenue\tprofit\tmargin %\t")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%d\t%.1f\t\n",
			i+1, r.Profitability.RecipeID, r.ItemName,
			r.Profitability.Cost, r.Profitability.Revenue, r.Profitability.Profit, r.Profitability.Margin)
	}
	return tw.Flush()
}
