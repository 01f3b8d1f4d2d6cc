package model

import "slices"

// Language is a supported output language for the coach
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages lists the language codes the coach may be asked to answer in
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi (हिन्दी)"},
	{Code: "bn", Name: "Bengali (বাংলা)"},
	{Code: "te", Name: "Telugu (తెలుగు)"},
	{Code: "mr", Name: "Marathi (मराठी)"},
	{Code: "ta", Name: "Tamil (தமிழ்)"},
	{Code: "ur", Name: "Urdu (اردو)"},
	{Code: "kn", Name: "Kannada (ಕನ್ನಡ)"},
	{Code: "gu", Name: "Gujarati (ગુજરાતી)"},
	{Code: "ml", Name: "Malayalam (മലയാളം)"},
	{Code: "pa", Name: "Punjabi (ਪੰਜਾਬੀ)"},
}

// LanguageName returns the display name for code, or code itself when unknown
func LanguageName(code string) string {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// IsSupportedLanguage reports whether code is in SupportedLanguages
func IsSupportedLanguage(code string) bool {
	return slices.ContainsFunc(SupportedLanguages, func(l Language) bool { return l.Code == code })
}

// Valid reports whether g is one of the known genders
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Valid reports whether l is one of the known activity levels
func (l Lifestyle) Valid() bool {
	return slices.Contains(Lifestyles, l)
}

// Valid reports whether m is one of the known moods
func (m Mood) Valid() bool {
	return slices.Contains(Moods, m)
}
