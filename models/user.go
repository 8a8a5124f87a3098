package models

type UserType string

const (
	UserCustomer UserType = "customer"
	UserVendor   UserType = "vendor"
)

// User is an authenticated account. Vendors are bound to exactly one of the
// four vendor location codes; customers carry no location.
type User struct {
	Name     string         `json:"name"`
	Type     UserType       `json:"type"`
	Location VendorLocation `json:"location,omitempty"`
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeForest Theme = "forest"
	ThemeOcean  Theme = "ocean"
)

// ValidThemes lists the selectable UI themes.
var ValidThemes = []Theme{ThemeLight, ThemeDark, ThemeForest, ThemeOcean}

// IsValidTheme reports whether the theme is selectable.
func IsValidTheme(theme Theme) bool {
	for _, valid := range ValidThemes {
		if theme == valid {
			return true
		}
	}
	return false
}

type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageTamil     Language = "ta"
	LanguageHindi     Language = "hi"
	LanguageTelugu    Language = "te"
	LanguageMalayalam Language = "ml"
)

// ValidLanguages lists the selectable display languages.
var ValidLanguages = []Language{
	LanguageEnglish,
	LanguageTamil,
	LanguageHindi,
	LanguageTelugu,
	LanguageMalayalam,
}

// IsValidLanguage reports whether the language is selectable.
func IsValidLanguage(language Language) bool {
	for _, valid := range ValidLanguages {
		if language == valid {
			return true
		}
	}
	return false
}
