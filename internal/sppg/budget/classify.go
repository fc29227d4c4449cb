package budget

import "strings"

// Category is one of the five budget buckets an ingredient falls into.
type Category string

const (
	CategoryProtein   Category = "PROTEIN"
	CategoryCarb      Category = "CARB"
	CategoryVegetable Category = "VEGETABLE"
	CategoryFruit     Category = "FRUIT"
	CategoryOther     Category = "OTHER"
)

// Keyword sets matched against food-category tags. Tags come from seed data in
// both Indonesian and English, so both spellings are listed.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryProtein, []string{"protein", "hewani", "nabati", "animal", "meat"}},
	{CategoryCarb, []string{"karbohidrat", "carb", "staple"}},
	{CategoryVegetable, []string{"sayur", "vegetable"}},
	{CategoryFruit, []string{"buah", "fruit"}},
}

// Classify maps a food-category tag to a budget category. Unmatched tags fall
// through to OTHER.
func Classify(categoryTag string) Category {
	tag := strings.ToLower(categoryTag)
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(tag, kw) {
				return set.category
			}
		}
	}
	return CategoryOther
}
