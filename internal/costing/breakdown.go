package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// BuildCostBreakdown explains OptimalCost as a tree. Only nodes where craft was
// chosen expand into their ingredients.
func (s *service) BuildCostBreakdown(ctx context.Context, itemID, serverID int) (*domain.CostBreakdown, error) {
	start := time.Now()
	res, _, err := s.begin(ctx, s.snapshotGraph(), itemID, serverID)
	if err != nil {
		return nil, err
	}

	tree, err := res.breakdown(itemID)
	s.observe(ctx, res, OpBreakdown, itemID, start, tree != nil && tree.UnitCost != nil, err)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// breakdown resolves rootID and builds its tree from the nodes the cost was summed from.
func (r *resolution) breakdown(rootID int) (*domain.CostBreakdown, error) {
	n, err := r.optimal(rootID)
	if err != nil {
		return nil, err
	}
	return r.explain(rootID, n, 0)
}

// explain follows the child nodes recorded during resolution, so the tree matches
// the scalar cost exactly even where a cycle made a result path dependent.
func (r *resolution) explain(itemID int, n *node, quantity int) (*domain.CostBreakdown, error) {
	name, err := r.itemName(itemID)
	if err != nil {
		return nil, err
	}

	b := &domain.CostBreakdown{
		ItemID:   itemID,
		ItemName: name,
		Quantity: quantity,
		Method:   domain.MethodUnavailable,
	}
	if n == nil {
		return b, nil
	}

	b.DirectPrice = n.direct
	b.CraftCost = n.craft
	b.UnitCost = n.cost
	b.Method = n.method
	if quantity > 0 && n.cost != nil {
		total := *n.cost * int64(quantity)
		b.TotalCost = &total
	}

	if n.method != domain.MethodCraft {
		return b, nil
	}

	b.Ingredients = make([]*domain.CostBreakdown, 0, len(n.recipe.Ingredients))
	for i, ing := range n.recipe.Ingredients {
		child, err := r.explain(ing.ItemID, n.children[i], ing.Quantity)
		if err != nil {
			return nil, err
		}
		b.Ingredients = append(b.Ingredients, child)
	}
	return b, nil
}

func (r *resolution) itemName(itemID int) (string, error) {
	item, err := r.graph.Item(r.ctx, itemID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetItemFmt, itemID, err)
	}
	if item == nil {
		return "", nil
	}
	return item.Name, nil
}
