package entity

// Category is the fixed set of labels a transaction or subscription can carry.
// Assistant output is validated against this set before it reaches the store.
type Category string

const (
	// Income categories.
	CategorySalary     Category = "salary"
	CategoryFreelance  Category = "freelance"
	CategoryInvestment Category = "investment"

	// Expense categories.
	CategoryHousing       Category = "housing"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategorySoftware      Category = "software"
	CategoryFitness       Category = "fitness"
	CategoryShopping      Category = "shopping"
	CategoryDebt          Category = "debt"
	CategoryOther         Category = "other"
)

// AllCategories lists every valid category, income categories first.
func AllCategories() []Category {
	return []Category{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryHousing,
		CategoryTransport,
		CategoryFood,
		CategoryEntertainment,
		CategoryUtilities,
		CategorySoftware,
		CategoryFitness,
		CategoryShopping,
		CategoryDebt,
		CategoryOther,
	}
}

// IsValidCategory reports whether the given category is one of the fixed set.
func IsValidCategory(category Category) bool {
	for _, c := range AllCategories() {
		if c == category {
			return true
		}
	}
	return false
}
