package featureflag

import "errors"

// Flag keys referenced by routes and templates.
const (
	KeyMenuBook     = "menu_book_enabled"
	KeyHeroBox      = "hero_box_enabled"
	KeyReservations = "reservations_enabled"
	KeyWellness     = "wellness_enabled"
)

var (
	ErrMissingKey = errors.New("feature flag key is required")
)

// FeatureFlag is a server-enforced availability switch for a public-site
// feature. The key is stable and referenced by code.
type FeatureFlag struct {
	Key         string
	Description string
	Enabled     bool
}

// Validate checks required fields for a FeatureFlag.
// PRE: FeatureFlag struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (f *FeatureFlag) Validate() error {
	if f.Key == "" {
		return ErrMissingKey
	}
	return nil
}
