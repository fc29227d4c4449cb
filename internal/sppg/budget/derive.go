package budget

import (
	"math"
	"sort"
)

// IngredientLine is one ingredient of one scheduled menu, with the quantity
// needed per portion and the current unit cost.
type IngredientLine struct {
	InventoryItemID    string
	ItemName           string
	Unit               string
	QuantityPerPortion float64
	UnitCost           float64
	CategoryTag        string
}

// AssignmentSnapshot is one menu scheduled on one day of a menu plan.
type AssignmentSnapshot struct {
	MenuID          string
	PlannedPortions int
	Ingredients     []IngredientLine
}

// MenuPlanSnapshot is the read-only view of an approved menu plan the ledger
// derives a procurement budget from.
type MenuPlanSnapshot struct {
	ID                 string
	TotalMenus         int
	TotalDays          int
	TotalEstimatedCost float64
	Assignments        []AssignmentSnapshot
}

// SuggestedItem is one aggregated procurement line of a derivation.
type SuggestedItem struct {
	InventoryItemID string   `json:"inventory_item_id"`
	ItemName        string   `json:"item_name"`
	Unit            string   `json:"unit"`
	TotalQuantity   float64  `json:"total_quantity"`
	UnitCost        float64  `json:"unit_cost"`
	EstimatedCost   float64  `json:"estimated_cost"`
	Category        Category `json:"category"`
	MenuCount       int      `json:"menu_count"`
}

// Derivation is the plan-shaped result of DeriveFromMenuPlan. Empty marks a
// menu plan with no assignments or no cost; callers surface it as a warning so
// a zero-budget plan is completed manually instead of silently approved.
type Derivation struct {
	Categories       CategoryBudgets `json:"categories"`
	TotalBudget      float64         `json:"total_budget"`
	TargetMeals      int             `json:"target_meals"`
	TargetRecipients int             `json:"target_recipients"`
	Items            []SuggestedItem `json:"items"`
	Empty            bool            `json:"empty"`
}

// DeriveFromMenuPlan aggregates a menu plan's ingredient lines into category
// budgets and suggested procurement items. Pure function of the snapshot:
// deriving twice yields identical budgets.
func DeriveFromMenuPlan(plan MenuPlanSnapshot) Derivation {
	items := make(map[string]*SuggestedItem)
	menusPerItem := make(map[string]map[string]struct{})

	for _, a := range plan.Assignments {
		portions := float64(a.PlannedPortions)
		for _, line := range a.Ingredients {
			qty := line.QuantityPerPortion * portions
			cost := qty * line.UnitCost

			item, ok := items[line.InventoryItemID]
			if !ok {
				item = &SuggestedItem{
					InventoryItemID: line.InventoryItemID,
					ItemName:        line.ItemName,
					Unit:            line.Unit,
					UnitCost:        line.UnitCost,
					Category:        Classify(line.CategoryTag),
				}
				items[line.InventoryItemID] = item
				menusPerItem[line.InventoryItemID] = make(map[string]struct{})
			}
			item.TotalQuantity += qty
			item.EstimatedCost += cost
			menusPerItem[line.InventoryItemID][a.MenuID] = struct{}{}
		}
	}

	var d Derivation
	for id, item := range items {
		item.MenuCount = len(menusPerItem[id])
		switch item.Category {
		case CategoryProtein:
			d.Categories.Protein += item.EstimatedCost
		case CategoryCarb:
			d.Categories.Carb += item.EstimatedCost
		case CategoryVegetable:
			d.Categories.Vegetable += item.EstimatedCost
		case CategoryFruit:
			d.Categories.Fruit += item.EstimatedCost
		default:
			d.Categories.Other += item.EstimatedCost
		}
		d.Items = append(d.Items, *item)
	}

	// Largest spend first for presentation.
	sort.Slice(d.Items, func(i, j int) bool {
		if d.Items[i].EstimatedCost != d.Items[j].EstimatedCost {
			return d.Items[i].EstimatedCost > d.Items[j].EstimatedCost
		}
		return d.Items[i].ItemName < d.Items[j].ItemName
	})

	d.TotalBudget = d.Categories.Sum()
	if plan.TotalEstimatedCost > 0 {
		d.TotalBudget = plan.TotalEstimatedCost
	}

	if plan.TotalMenus > 0 {
		d.TargetMeals = plan.TotalMenus
		if plan.TotalDays > 0 {
			d.TargetRecipients = int(math.Ceil(float64(plan.TotalMenus) / float64(plan.TotalDays)))
		}
	}

	if len(plan.Assignments) == 0 || d.Categories.Sum() == 0 {
		d.Empty = true
	}
	return d
}
