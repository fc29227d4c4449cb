package budget

import "testing"

func TestComputeAllocationSumsCategories(t *testing.T) {
	got := ComputeAllocation(AllocationInput{
		TotalBudget: 10_000_000,
		UsedBudget:  2_500_000,
		Categories: CategoryBudgets{
			Protein:   4_000_000,
			Carb:      2_000_000,
			Vegetable: 1_500_000,
			Fruit:     1_000_000,
			Other:     500_000,
		},
	})

	if got.AllocatedBudget != 9_000_000 {
		t.Errorf("allocated = %v, want 9000000", got.AllocatedBudget)
	}
	if got.RemainingBudget != 7_500_000 {
		t.Errorf("remaining = %v, want 7500000", got.RemainingBudget)
	}
	if got.IsOverBudget {
		t.Error("expected not over budget")
	}
	if got.UtilizationPercent != 25 {
		t.Errorf("utilization = %v, want 25", got.UtilizationPercent)
	}
}

func TestComputeAllocationOverBudget(t *testing.T) {
	got := ComputeAllocation(AllocationInput{
		TotalBudget: 900_000,
		Categories:  CategoryBudgets{Protein: 1_000_000},
	})
	if !got.IsOverBudget {
		t.Error("expected over budget when allocated > total")
	}
	if got.AllocatedBudget != 1_000_000 {
		t.Errorf("allocated = %v, want 1000000", got.AllocatedBudget)
	}
}

func TestComputeAllocationRemainingClampedAtZero(t *testing.T) {
	got := ComputeAllocation(AllocationInput{TotalBudget: 100_000, UsedBudget: 150_000})
	if got.RemainingBudget != 0 {
		t.Errorf("remaining = %v, want 0 (never negative)", got.RemainingBudget)
	}
	if got.UtilizationPercent != 150 {
		t.Errorf("utilization = %v, want 150", got.UtilizationPercent)
	}
}

func TestComputeAllocationZeroTotal(t *testing.T) {
	got := ComputeAllocation(AllocationInput{UsedBudget: 5000})
	if got.UtilizationPercent != 0 {
		t.Errorf("utilization = %v, want 0 when total budget is 0", got.UtilizationPercent)
	}
	if got.RemainingBudget != 0 {
		t.Errorf("remaining = %v, want 0", got.RemainingBudget)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		tag  string
		want Category
	}{
		{"PROTEIN_HEWANI", CategoryProtein},
		{"Protein Nabati", CategoryProtein},
		{"KARBOHIDRAT", CategoryCarb},
		{"Sayuran", CategoryVegetable},
		{"Buah-buahan", CategoryFruit},
		{"Fruit", CategoryFruit},
		{"Bumbu Dapur", CategoryOther},
		{"", CategoryOther},
	}
	for _, c := range cases {
		if got := Classify(c.tag); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.tag, got, c.want)
		}
	}
}
