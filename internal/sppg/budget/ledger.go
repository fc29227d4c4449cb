// Package budget is the single place procurement budget figures are computed.
// Services and handlers depend on it instead of re-deriving sums, so the
// stored and displayed totals cannot drift apart.
package budget

// CategoryBudgets holds the five sub-allocations of a plan's total budget.
type CategoryBudgets struct {
	Protein   float64 `json:"protein_budget"`
	Carb      float64 `json:"carb_budget"`
	Vegetable float64 `json:"vegetable_budget"`
	Fruit     float64 `json:"fruit_budget"`
	Other     float64 `json:"other_budget"`
}

// Sum returns the total of the five category budgets.
func (c CategoryBudgets) Sum() float64 {
	return c.Protein + c.Carb + c.Vegetable + c.Fruit + c.Other
}

// AllocationInput is the monetary state of a plan the ledger computes from.
type AllocationInput struct {
	TotalBudget float64
	UsedBudget  float64
	Categories  CategoryBudgets
}

// Allocation is the derived view of a plan's budget. RemainingBudget is
// clamped at zero; overspend is surfaced through IsOverBudget, never as a
// negative number.
type Allocation struct {
	AllocatedBudget    float64 `json:"allocated_budget"`
	RemainingBudget    float64 `json:"remaining_budget"`
	IsOverBudget       bool    `json:"is_over_budget"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

// ComputeAllocation derives allocated/remaining/utilization from a plan's
// budget fields. Pure function, no error conditions.
func ComputeAllocation(in AllocationInput) Allocation {
	allocated := in.Categories.Sum()

	remaining := in.TotalBudget - in.UsedBudget
	if remaining < 0 {
		remaining = 0
	}

	utilization := 0.0
	if in.TotalBudget > 0 {
		utilization = in.UsedBudget / in.TotalBudget * 100
	}

	return Allocation{
		AllocatedBudget:    allocated,
		RemainingBudget:    remaining,
		IsOverBudget:       allocated > in.TotalBudget,
		UtilizationPercent: utilization,
	}
}
