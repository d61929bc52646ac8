package chatbot

import "schemesathi/internal/catalog"

// irrelevantKeywords short-circuit classification before any topic rule runs.
// Topics outside the welfare domain get a polite redirect instead of a forced
// scheme answer.
var irrelevantKeywords = []string{
	"weather",
	"sports",
	"cricket",
	"football",
	"movie",
	"film",
	"music",
	"song",
	"game",
	"joke",
	"recipe",
	"stock market",
	"share market",
	"election",
}

// rule is one row of the intent table: if any keyword appears as a substring
// of the utterance the rule matches, and the highest declared priority wins.
type rule struct {
	keywords []string
	category Category
	priority int
}

// rules is the fixed, ordered intent table. Order matters twice: ties on
// priority go to the first-declared rule, and tests depend on the table being
// stable. The classifier pads the utterance with spaces, so keywords written
// with surrounding spaces match whole words only; the rest match as plain
// substrings.
var rules = []rule{
	{keywords: []string{"hello", " hi ", "hii", " hey ", "namaste", "namaskar", "good morning", "good evening"}, category: CategoryGreeting, priority: 10},
	{keywords: []string{"eligible", "eligibility", "qualify", "can i get", "am i able"}, category: CategoryEligibility, priority: 9},
	{keywords: []string{"scheme", "yojana", "yojna", "program", "benefit", "sarkari"}, category: CategorySchemes, priority: 8},
	{keywords: []string{"apply", "application", "how to", "register", "enroll", " form "}, category: CategoryApplication, priority: 7},
	{keywords: []string{"document", "certificate", "aadhaar", "aadhar", "papers", "proof"}, category: CategoryDocuments, priority: 6},
	{keywords: []string{"farmer", "farming", "agriculture", "kisan", "crop", "land"}, category: CategoryFarmer, priority: 5},
	{keywords: []string{"scholarship", "student", "education", "study", "school", "college"}, category: CategoryEducation, priority: 5},
	{keywords: []string{"health", "hospital", "medical", "treatment", "illness"}, category: CategoryHealth, priority: 5},
	{keywords: []string{"house", "housing", "home", "awas", "shelter"}, category: CategoryHousing, priority: 5},
	{keywords: []string{"pension", "old age", "retirement", "elderly", "senior citizen"}, category: CategoryPension, priority: 5},
	{keywords: []string{"business", "loan", "startup", "enterprise", "shop"}, category: CategoryBusiness, priority: 5},
	{keywords: []string{"women", "woman", "girl", "mahila", "daughter", "mother"}, category: CategoryWomen, priority: 5},
	{keywords: []string{"thank", "thanks", "dhanyawad", "dhanyavad"}, category: CategoryThanks, priority: 4},
	{keywords: []string{"help", "support", "guide", "what can you do", "confused"}, category: CategoryHelp, priority: 3},
}

// alias maps user phrasings of a scheme's name to its catalog identifier.
type alias struct {
	phrases  []string
	schemeID string
}

// schemeAliases resolve before the rule table: when a user names a scheme the
// answer should be about that scheme even if generic keywords also appear.
var schemeAliases = []alias{
	{phrases: []string{"pm kisan", "pm-kisan", "pmkisan", "kisan samman"}, schemeID: "PM-KISAN"},
	{phrases: []string{"fasal bima", "crop insurance", "pmfby"}, schemeID: "PMFBY"},
	{phrases: []string{"kisan credit", " kcc "}, schemeID: "KCC"},
	{phrases: []string{"ayushman", "pm-jay", "pmjay", "jan arogya"}, schemeID: "PM-JAY"},
	{phrases: []string{"awas yojana", "pmay", "awaas"}, schemeID: "PMAY-G"},
	{phrases: []string{"ujjwala", "pmuy"}, schemeID: "PMUY"},
	{phrases: []string{"atal pension", " apy "}, schemeID: "APY"},
	{phrases: []string{"old age pension", "ignoaps"}, schemeID: "IGNOAPS"},
	{phrases: []string{"disability pension", "igndps"}, schemeID: "IGNDPS"},
	{phrases: []string{"post matric", "post-matric"}, schemeID: "NSP-POST-MATRIC"},
	{phrases: []string{"mudra"}, schemeID: "PM-MUDRA"},
	{phrases: []string{"stand up india", "stand-up india", "standup india"}, schemeID: "STANDUP-INDIA"},
}

// topicCategories maps chat topic categories to catalog categories for the
// topic-specific builders.
var topicCategories = map[Category]catalog.Category{
	CategoryFarmer:    catalog.CategoryAgriculture,
	CategoryEducation: catalog.CategoryEducation,
	CategoryHealth:    catalog.CategoryHealth,
	CategoryHousing:   catalog.CategoryHousing,
	CategoryPension:   catalog.CategoryPension,
	CategoryBusiness:  catalog.CategoryBusiness,
	CategoryWomen:     catalog.CategoryWomen,
}
