package catalog

// DefaultLanguage is the fallback language for localized text.
const DefaultLanguage = "en"

// Category tags a scheme with the life area it serves. Used for grouping in
// recommendations and for topic-specific chat responses.
type Category string

const (
	CategoryAgriculture Category = "agriculture"
	CategoryEducation   Category = "education"
	CategoryHealth      Category = "health"
	CategoryHousing     Category = "housing"
	CategoryPension     Category = "pension"
	CategoryBusiness    Category = "business"
	CategoryWomen       Category = "women"
	CategoryInsurance   Category = "insurance"
)

// Location classes a profile can declare and a scheme can restrict to.
const (
	LocationUrban = "urban"
	LocationRural = "rural"
)

// LocalizedText maps a language code to a translation. Treated as opaque by
// evaluation logic; only presentation code resolves it.
type LocalizedText map[string]string

// Resolve returns the text for lang, falling back to the default language.
func (t LocalizedText) Resolve(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[DefaultLanguage]
}

// LocalizedList maps a language code to an ordered list of strings, used for
// required-document lists.
type LocalizedList map[string][]string

// Resolve returns the list for lang, falling back to the default language.
func (l LocalizedList) Resolve(lang string) []string {
	if items, ok := l[lang]; ok && len(items) > 0 {
		return items
	}
	return l[DefaultLanguage]
}

// EligibilitySpec is a sparse, multi-criteria eligibility specification.
// Any field left unset means "not a constraint for this scheme".
type EligibilitySpec struct {
	MinAge                *int     `json:"min_age,omitempty"`
	MaxAge                *int     `json:"max_age,omitempty"`
	MaxIncome             *float64 `json:"max_income,omitempty"`
	Occupations           []string `json:"occupations,omitempty"`
	Locations             []string `json:"locations,omitempty"`
	SocialCategories      []string `json:"social_categories,omitempty"`
	RequiresDisability    *bool    `json:"requires_disability,omitempty"`
	RequiresLandOwnership *bool    `json:"requires_land_ownership,omitempty"`
	EducationLevels       []string `json:"education_levels,omitempty"`
}

// Scheme is one immutable welfare program record. Loaded once at startup and
// never mutated at runtime.
type Scheme struct {
	ID          string        `json:"id"`
	Category    Category      `json:"category"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Benefits    LocalizedText `json:"benefits"`
	Documents   LocalizedList `json:"documents"`

	Eligibility EligibilitySpec `json:"eligibility"`

	// Descriptive fields carried through unchanged; they never affect scoring.
	Difficulty      string  `json:"difficulty"`
	Rating          float64 `json:"rating"`
	SuccessRate     int     `json:"success_rate"`
	ProcessingTime  string  `json:"processing_time"`
	ApplicationLink string  `json:"application_link"`
	Deadline        string  `json:"deadline,omitempty"`
}
