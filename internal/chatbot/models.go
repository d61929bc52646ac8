package chatbot

// Category is the topic label the classifier assigns to an utterance.
type Category string

const (
	CategoryGreeting       Category = "greeting"
	CategoryEligibility    Category = "eligibility"
	CategorySchemes        Category = "schemes"
	CategoryApplication    Category = "application_help"
	CategoryDocuments      Category = "documents"
	CategoryFarmer         Category = "farmer"
	CategoryEducation      Category = "education"
	CategoryHealth         Category = "health"
	CategoryHousing        Category = "housing"
	CategoryPension        Category = "pension"
	CategoryBusiness       Category = "business"
	CategoryWomen          Category = "women"
	CategoryThanks         Category = "thanks"
	CategoryHelp           Category = "help"
	CategorySpecificScheme Category = "specific_scheme"
	CategoryIrrelevant     Category = "irrelevant"
	CategoryUnknown        Category = "unknown"
)

// Classification is the transient result of classifying one utterance.
// No state survives between calls.
type Classification struct {
	Category Category `json:"category"`
	Priority int      `json:"priority"`
	// SchemeID is set when the category is specific_scheme.
	SchemeID string `json:"scheme_id,omitempty"`
}

// MaxQuickReplies bounds the suggested quick-reply chips in every response.
const MaxQuickReplies = 6

// SchemeRef is a lightweight scheme reference rendered as a card by the chat
// UI.
type SchemeRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Probability int    `json:"probability,omitempty"`
	Eligible    bool   `json:"eligible,omitempty"`
}

// Response is what a builder returns: non-empty guidance text, at most
// MaxQuickReplies chips, and optional scheme references.
type Response struct {
	Text         string      `json:"text"`
	QuickReplies []string    `json:"quick_replies"`
	Schemes      []SchemeRef `json:"schemes,omitempty"`
}
