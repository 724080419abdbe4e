package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for admin-editable fields.
const (
	MaxNameLength        = 120
	MaxDescriptionLength = 500
)

// Domain errors
var (
	ErrEmptyItemName     = errors.New("menu item name cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrNameTooLong       = errors.New("name cannot exceed 120 characters")
	ErrDescTooLong       = errors.New("description cannot exceed 500 characters")
)

// Item is a single dish or drink on the menu. Price is either a number in
// francs or free-form text ("auf Anfrage"); PriceText is used verbatim when
// set, otherwise Price is formatted.
type Item struct {
	ID          string
	Name        string
	Price       float64
	PriceText   string
	Description string
	Tags        []string
	Allergens   []string
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyItemName
	}
	if len(i.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(i.Description) > MaxDescriptionLength {
		return ErrDescTooLong
	}
	return nil
}

// DisplayPrice formats the price for rendering: free-form text wins, a zero
// numeric price renders empty, otherwise "NN.NN fr".
// INVARIANT: Item fields are not mutated
func (i Item) DisplayPrice() string {
	if i.PriceText != "" {
		return i.PriceText
	}
	if i.Price == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f fr", i.Price)
}

// Category is an ordered group of menu items. An ordered list of categories
// forms the full menu.
type Category struct {
	ID       string
	Name     string
	Position int
	Items    []Item
}

// Validate checks if the Category has valid data.
// PRE: Category struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	for _, item := range c.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %q: %w", item.Name, err)
		}
	}
	return nil
}

// ItemCount returns the total number of items across all given categories.
func ItemCount(categories []Category) int {
	n := 0
	for _, c := range categories {
		n += len(c.Items)
	}
	return n
}
