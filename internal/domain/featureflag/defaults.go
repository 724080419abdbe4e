package featureflag

// Defaults returns the flags seeded on first startup. Saves in the admin
// dashboard overwrite these; unknown keys read as disabled.
func Defaults() []FeatureFlag {
	return []FeatureFlag{
		{Key: KeyMenuBook, Description: "Menu flipbook page turning on the public site", Enabled: true},
		{Key: KeyHeroBox, Description: "Promotional hero box on the home page", Enabled: true},
		{Key: KeyReservations, Description: "Reservation form submissions", Enabled: true},
		{Key: KeyWellness, Description: "Wellness page and navigation entry", Enabled: true},
	}
}
