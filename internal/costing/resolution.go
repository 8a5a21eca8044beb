package costing

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// node is the result for one item within a resolution. children holds the
// ingredient results, in recipe order, that craft was summed from.
type node struct {
	direct   *int64
	craft    *int64
	cost     *int64
	method   domain.Method
	recipe   *domain.Recipe
	children []*node
}

func nodeCraft(n *node) *int64 {
	if n == nil {
		return nil
	}
	return n.craft
}

func nodeCost(n *node) *int64 {
	if n == nil {
		return nil
	}
	return n.cost
}

// noCycle marks a result that did not reach any item on the stack.
const noCycle = math.MaxInt

// resolution is the state of one top-level call on one server.
//
// visiting maps each item still on the stack to its depth. Reaching an item in
// visiting means the recipe graph has a cycle; that edge resolves to nothing and the
// walk continues. A result that reached an ancestor depends on the current path and
// is not memoized. memo only holds results that are the same from any path.
type resolution struct {
	ctx      context.Context
	serverID int
	graph    RecipeGraph
	prices   PriceSource

	memo     map[int]*node
	visiting map[int]int
	direct   map[int]*int64
}

func newResolution(ctx context.Context, serverID int, graph RecipeGraph, prices PriceSource) *resolution {
	return &resolution{
		ctx:      ctx,
		serverID: serverID,
		graph:    graph,
		prices:   prices,
		memo:     make(map[int]*node),
		visiting: make(map[int]int),
		direct:   make(map[int]*int64),
	}
}

// optimal resolves itemID to its cheapest acquisition. It returns nil, nil when the
// item is already being resolved further up the stack.
func (r *resolution) optimal(itemID int) (*node, error) {
	n, _, err := r.resolve(itemID)
	return n, err
}

// resolve returns the node for itemID and the shallowest stack depth its walk
// reached through a cycle, or noCycle.
func (r *resolution) resolve(itemID int) (*node, int, error) {
	if n, ok := r.memo[itemID]; ok {
		return n, noCycle, nil
	}
	if depth, ok := r.visiting[itemID]; ok {
		return nil, depth, nil
	}
	if err := r.ctx.Err(); err != nil {
		return nil, noCycle, err
	}

	depth := len(r.visiting)
	r.visiting[itemID] = depth
	defer delete(r.visiting, itemID)

	direct, err := r.directPrice(itemID)
	if err != nil {
		return nil, noCycle, err
	}

	recipe, err := r.graph.RecipeFor(r.ctx, itemID)
	if err != nil {
		return nil, noCycle, fmt.Errorf(ErrMsgGetRecipeFmt, itemID, err)
	}

	var (
		craft    *int64
		children []*node
	)
	low := noCycle
	if recipe != nil {
		if craft, children, low, err = r.craftCost(recipe); err != nil {
			return nil, noCycle, err
		}
	}

	method, cost := domain.ChooseMethod(direct, craft)
	n := &node{
		direct:   direct,
		craft:    craft,
		cost:     cost,
		method:   method,
		recipe:   recipe,
		children: children,
	}
	if low >= depth {
		r.memo[itemID] = n
		low = noCycle
	}
	return n, low, nil
}

// craftCost sums ingredient optimal costs for one craft of recipe.
// Any unsourceable ingredient, a non-positive edge quantity or an empty
// ingredient list leaves the craft cost undefined. low is the shallowest
// stack depth reached through a cycle by the ingredients walked.
func (r *resolution) craftCost(recipe *domain.Recipe) (craft *int64, children []*node, low int, err error) {
	low = noCycle
	if len(recipe.Ingredients) == 0 {
		return nil, nil, low, nil
	}

	var total int64
	children = make([]*node, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		if ing.Quantity <= 0 {
			return nil, nil, low, nil
		}
		child, childLow, err := r.resolve(ing.ItemID)
		if err != nil {
			return nil, nil, noCycle, err
		}
		low = min(low, childLow)
		cost := nodeCost(child)
		if cost == nil {
			return nil, nil, low, nil
		}
		total += *cost * int64(ing.Quantity)
		children = append(children, child)
	}
	return &total, children, low, nil
}

// directPrice returns the approved current price of itemID, fetched at most once per resolution.
func (r *resolution) directPrice(itemID int) (*int64, error) {
	if p, ok := r.direct[itemID]; ok {
		return p, nil
	}

	price, err := r.prices.CurrentPrice(r.ctx, itemID, r.serverID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPriceFmt, itemID, err)
	}

	var v *int64
	if price.IsApproved() {
		p := price.Price
		v = &p
	}
	r.direct[itemID] = v
	return v, nil
}
