package enums

import "fmt"

// ProductCategory buckets catalog listings for the storefront filters.
type ProductCategory string

const (
	ProductCategoryFood        ProductCategory = "food"
	ProductCategoryFashion     ProductCategory = "fashion"
	ProductCategoryCraft       ProductCategory = "craft"
	ProductCategoryElectronics ProductCategory = "electronics"
	ProductCategoryBeauty      ProductCategory = "beauty"
)

var validProductCategories = []ProductCategory{
	ProductCategoryFood,
	ProductCategoryFashion,
	ProductCategoryCraft,
	ProductCategoryElectronics,
	ProductCategoryBeauty,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
