package domain

import "fmt"

// Category is a closed set of product categories. The string values are
// stable wire tags: persisted state and the HTTP surface both rely on them,
// so they must never change between releases.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food & Beverages"
	CategoryHome        Category = "Home & Garden"
	CategorySports      Category = "Sports & Outdoors"
	CategoryBeauty      Category = "Beauty & Personal Care"
	CategoryToys        Category = "Toys & Games"
	CategoryBooks       Category = "Books"
	CategoryAutomotive  Category = "Automotive"
	CategoryOther       Category = "Other"
)

var categoryIcons = map[Category]string{
	CategoryElectronics: "laptopcomputer",
	CategoryClothing:    "tshirt",
	CategoryFood:        "cart",
	CategoryHome:        "house",
	CategorySports:      "sportscourt",
	CategoryBeauty:      "sparkles",
	CategoryToys:        "gamecontroller",
	CategoryBooks:       "book",
	CategoryAutomotive:  "car",
	CategoryOther:       "tag",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFood,
		CategoryHome,
		CategorySports,
		CategoryBeauty,
		CategoryToys,
		CategoryBooks,
		CategoryAutomotive,
		CategoryOther,
	}
}

// ParseCategory maps a wire tag back to its Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("parse category %q: %w", s, ErrInvalidInput)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := categoryIcons[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// Icon returns the icon reference associated with the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return categoryIcons[CategoryOther]
}
