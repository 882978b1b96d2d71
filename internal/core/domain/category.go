package domain

// Uncategorized is the reserved category that receives expenses orphaned by a
// category deletion. It is created on demand and can itself be deleted like
// any other category.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#999999"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#007bff"

// Category is a named expense bucket. Name is the business key: expenses
// reference categories by name, not by surrogate id.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
