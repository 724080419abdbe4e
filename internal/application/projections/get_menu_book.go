package projections

import (
	"context"

	"feldiserhof/internal/domain/featureflag"
	"feldiserhof/internal/domain/flipbook"
	"feldiserhof/internal/domain/menu"
)

// MenuStoreForBook defines the store interface needed by this projection.
type MenuStoreForBook interface {
	ListCategories(ctx context.Context) ([]menu.Category, error)
}

// FlagReaderForBook defines the flag interface needed by this projection.
type FlagReaderForBook interface {
	IsEnabled(ctx context.Context, key string) bool
}

// GetMenuBookDeps holds dependencies for the projection.
type GetMenuBookDeps struct {
	MenuStore MenuStoreForBook
	Flags     FlagReaderForBook
}

// BookItem is one dish on a rendered page side.
type BookItem struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

// BookSide is one face of a rendered sheet.
type BookSide struct {
	Title      string     `json:"title"`
	Items      []BookItem `json:"items"`
	PageNumber int        `json:"pageNumber"`
}

// BookSheet is a two-sided page unit as sent to the client.
type BookSheet struct {
	Index int       `json:"index"`
	Front BookSide  `json:"front"`
	Back  *BookSide `json:"back,omitempty"`
}

// MenuBookResult is the paginated menu for a given viewport width. Locked
// reports that page turning is disabled by the feature flag; the client then
// renders the first sheet statically.
type MenuBookResult struct {
	Sheets       []BookSheet `json:"sheets"`
	ItemsPerSide int         `json:"itemsPerSide"`
	Locked       bool        `json:"locked"`
}

// QueryMenuBook lays out the current menu as a flipbook for the given
// viewport width. Back sides are used on every breakpoint; width only
// changes how many items fit per side.
func QueryMenuBook(ctx context.Context, width int, deps GetMenuBookDeps) (MenuBookResult, error) {
	categories, err := deps.MenuStore.ListCategories(ctx)
	if err != nil {
		return MenuBookResult{}, err
	}

	perSide := flipbook.ItemsPerSideForWidth(width)
	sheets := flipbook.Paginate(categories, flipbook.FixedCapacity(perSide), true)

	result := MenuBookResult{
		ItemsPerSide: perSide,
		Locked:       !deps.Flags.IsEnabled(ctx, featureflag.KeyMenuBook),
	}
	for _, s := range sheets {
		sheet := BookSheet{Index: s.Index, Front: bookSide(s.Front)}
		if s.Back != nil {
			back := bookSide(*s.Back)
			sheet.Back = &back
		}
		result.Sheets = append(result.Sheets, sheet)
	}
	return result, nil
}

func bookSide(s flipbook.Side) BookSide {
	side := BookSide{Title: s.Title, PageNumber: s.PageNumber}
	for _, item := range s.Items {
		side.Items = append(side.Items, BookItem{
			Name:        item.Name,
			Price:       item.DisplayPrice(),
			Description: item.Description,
			Tags:        item.Tags,
			Allergens:   item.Allergens,
		})
	}
	return side
}
