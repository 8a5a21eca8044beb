package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "craftctl", cmd.Use)

	for _, name := range []string{"migrate", "seed", "cost", "breakdown", "rank"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"up", "down", "status"} {
		sub, _, err := cmd.Find([]string{"migrate", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	flags := cmd.PersistentFlags()
	require.NotNil(t, flags.Lookup("verbose"))
	require.NotNil(t, flags.Lookup("format"))
	assert.Equal(t, FormatText, flags.Lookup("format").DefValue)
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		path  []string
		flags []string
	}{
		{[]string{"seed"}, []string{"file", "dry-run"}},
		{[]string{"cost"}, []string{"server", "item"}},
		{[]string{"breakdown"}, []string{"server", "item"}},
		{[]string{"rank"}, []string{"server", "profession", "min-level", "max-level", "sort", "limit"}},
	}

	root := NewRootCommand()
	for _, tt := range tests {
		cmd, _, err := root.Find(tt.path)
		require.NoError(t, err)
		for _, f := range tt.flags {
			assert.NotNil(t, cmd.Flags().Lookup(f), "%v --%s", tt.path, f)
		}
	}
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "seed", "--file", "x.yaml", "--dry-run"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSeedDryRun(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed", "--file", "../../internal/catalog/testdata/catalog.yaml", "--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "valid:")
}

func TestSeedRequiresFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed"})

	assert.Error(t, cmd.Execute())
}

func newTestPrinter(format string) (*printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &printer{format: format, w: &buf}, &buf
}

func i64(v int64) *int64 { return &v }

func TestPrintBreakdownText(t *testing.T) {
	tree := &domain.CostBreakdown{
		ItemID: 3, ItemName: "Iron Sword", Method: domain.MethodCraft,
		DirectPrice: i64(40), CraftCost: i64(30), UnitCost: i64(30),
		Ingredients: []*domain.CostBreakdown{
			{ItemID: 2, ItemName: "Iron Ingot", Quantity: 2, Method: domain.MethodBuy, DirectPrice: i64(15), UnitCost: i64(15), TotalCost: i64(30)},
			{ItemID: 9, ItemName: "Rune", Quantity: 1, Method: domain.MethodUnavailable},
		},
	}

	p, buf := newTestPrinter(FormatText)
	require.NoError(t, p.breakdown(tree))

	want := "Iron Sword [craft] unit=30\n" +
		"  2 x Iron Ingot [buy] unit=15 total=30\n" +
		"  1 x Rune [unavailable] unit=-\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	s := &domain.CostSummary{ItemID: 3, ServerID: 1, DirectPrice: i64(40), CraftCost: i64(30), OptimalCost: i64(30), Method: domain.MethodCraft}

	p, buf := newTestPrinter(FormatText)
	require.NoError(t, p.summary(s))
	assert.Contains(t, buf.String(), "optimal cost  30")
	assert.Contains(t, buf.String(), "method        craft")

	p, buf = newTestPrinter(FormatJSON)
	require.NoError(t, p.summary(&domain.CostSummary{ItemID: 3, ServerID: 1, Method: domain.MethodUnavailable}))
	assert.Contains(t, buf.String(), `"optimal_cost": null`)
}

func TestPrintRankingEmptyJSON(t *testing.T) {
	p, buf := newTestPrinter(FormatJSON)
	require.NoError(t, p.ranking(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintRankingText(t *testing.T) {
	rows := []domain.RankedRecipe{{
		ItemName:      "Iron Sword",
		Profitability: domain.Profitability{RecipeID: 7, ItemID: 3, Cost: 30, Revenue: 40, Profit: 10, Margin: 33.333},
	}}

	p, buf := newTestPrinter(FormatText)
	require.NoError(t, p.ranking(rows))
	assert.Contains(t, buf.String(), "Iron Sword")
	assert.Contains(t, buf.String(), "33.3")
}
