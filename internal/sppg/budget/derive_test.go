package budget

import (
	"reflect"
	"testing"
)

func twoAssignmentPlan() MenuPlanSnapshot {
	return MenuPlanSnapshot{
		ID:         "mp-001",
		TotalMenus: 2,
		TotalDays:  2,
		Assignments: []AssignmentSnapshot{
			{
				MenuID:          "menu-a",
				PlannedPortions: 100,
				Ingredients: []IngredientLine{
					{
						InventoryItemID:    "item-ayam",
						ItemName:           "Daging Ayam",
						Unit:               "kg",
						QuantityPerPortion: 0.2,
						UnitCost:           20_000,
						CategoryTag:        "PROTEIN_HEWANI",
					},
				},
			},
			{
				MenuID:          "menu-b",
				PlannedPortions: 50,
				Ingredients: []IngredientLine{
					{
						InventoryItemID:    "item-bayam",
						ItemName:           "Bayam Segar",
						Unit:               "kg",
						QuantityPerPortion: 0.1,
						UnitCost:           8_000,
						CategoryTag:        "SAYURAN",
					},
				},
			},
		},
	}
}

func TestDeriveFromMenuPlan(t *testing.T) {
	d := DeriveFromMenuPlan(twoAssignmentPlan())

	// 100 portions x 0.2 kg x 20000 = 400000
	if d.Categories.Protein != 400_000 {
		t.Errorf("protein budget = %v, want 400000", d.Categories.Protein)
	}
	// 50 portions x 0.1 kg x 8000 = 40000
	if d.Categories.Vegetable != 40_000 {
		t.Errorf("vegetable budget = %v, want 40000", d.Categories.Vegetable)
	}
	if d.TotalBudget != 440_000 {
		t.Errorf("total budget = %v, want 440000", d.TotalBudget)
	}
	if d.Empty {
		t.Error("expected non-empty derivation")
	}

	if len(d.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(d.Items))
	}
	// Sorted by estimated cost descending.
	if d.Items[0].InventoryItemID != "item-ayam" || d.Items[1].InventoryItemID != "item-bayam" {
		t.Errorf("items not sorted by estimated cost: %v, %v", d.Items[0].ItemName, d.Items[1].ItemName)
	}
	if d.Items[0].TotalQuantity != 20 {
		t.Errorf("ayam quantity = %v, want 20 kg", d.Items[0].TotalQuantity)
	}
	if d.Items[0].MenuCount != 1 {
		t.Errorf("ayam menu count = %d, want 1", d.Items[0].MenuCount)
	}
}

func TestDeriveFromMenuPlanTargets(t *testing.T) {
	plan := twoAssignmentPlan()
	plan.TotalMenus = 45
	plan.TotalDays = 22

	d := DeriveFromMenuPlan(plan)
	if d.TargetMeals != 45 {
		t.Errorf("target meals = %d, want 45", d.TargetMeals)
	}
	// ceil(45/22) = 3
	if d.TargetRecipients != 3 {
		t.Errorf("target recipients = %d, want 3", d.TargetRecipients)
	}
}

func TestDeriveFromMenuPlanPrefersPrecomputedTotal(t *testing.T) {
	plan := twoAssignmentPlan()
	plan.TotalEstimatedCost = 500_000

	d := DeriveFromMenuPlan(plan)
	if d.TotalBudget != 500_000 {
		t.Errorf("total budget = %v, want precomputed 500000", d.TotalBudget)
	}
}

func TestDeriveFromMenuPlanGroupsSharedIngredients(t *testing.T) {
	plan := twoAssignmentPlan()
	// Second menu also uses chicken: 50 portions x 0.1 kg.
	plan.Assignments[1].Ingredients = append(plan.Assignments[1].Ingredients, IngredientLine{
		InventoryItemID:    "item-ayam",
		ItemName:           "Daging Ayam",
		Unit:               "kg",
		QuantityPerPortion: 0.1,
		UnitCost:           20_000,
		CategoryTag:        "PROTEIN_HEWANI",
	})

	d := DeriveFromMenuPlan(plan)
	if len(d.Items) != 2 {
		t.Fatalf("items = %d, want 2 after grouping", len(d.Items))
	}
	if d.Items[0].TotalQuantity != 25 {
		t.Errorf("ayam quantity = %v, want 25 kg", d.Items[0].TotalQuantity)
	}
	if d.Items[0].MenuCount != 2 {
		t.Errorf("ayam menu count = %d, want 2", d.Items[0].MenuCount)
	}
	if d.Categories.Protein != 500_000 {
		t.Errorf("protein budget = %v, want 500000", d.Categories.Protein)
	}
}

func TestDeriveFromMenuPlanIdempotent(t *testing.T) {
	plan := twoAssignmentPlan()
	first := DeriveFromMenuPlan(plan)
	second := DeriveFromMenuPlan(plan)
	if !reflect.DeepEqual(first, second) {
		t.Error("deriving twice from the same snapshot must yield identical results")
	}
}

func TestDeriveFromMenuPlanEmpty(t *testing.T) {
	d := DeriveFromMenuPlan(MenuPlanSnapshot{ID: "mp-empty"})
	if !d.Empty {
		t.Error("expected empty flag for a plan without assignments")
	}
	if d.TotalBudget != 0 || d.Categories.Sum() != 0 {
		t.Errorf("expected all-zero budgets, got total %v", d.TotalBudget)
	}

	zeroCost := twoAssignmentPlan()
	for i := range zeroCost.Assignments {
		for j := range zeroCost.Assignments[i].Ingredients {
			zeroCost.Assignments[i].Ingredients[j].UnitCost = 0
		}
	}
	d = DeriveFromMenuPlan(zeroCost)
	if !d.Empty {
		t.Error("expected empty flag for a zero-cost plan")
	}
}
