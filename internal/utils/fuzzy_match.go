package utils

import (
	"strings"
)

// featureAliases maps a lowercased search keyword to the inventory feature
// phrasings it should be judged equivalent to.
var featureAliases = map[string][]string{
	"gps":            {"navigation", "gps"},
	"navigation":     {"navigation", "gps"},
	"carplay":        {"apple carplay", "carplay"},
	"android auto":   {"android auto"},
	"bluetooth":      {"bluetooth"},
	"awd":            {"all-wheel drive", "awd", "4wd"},
	"4wd":            {"all-wheel drive", "awd", "4wd"},
	"all wheel":      {"all-wheel drive"},
	"heated seats":   {"heated seats", "seat heating"},
	"sunroof":        {"panoramic roof", "sunroof", "moonroof"},
	"moonroof":       {"panoramic roof", "sunroof", "moonroof"},
	"backup camera":  {"backup camera", "rear camera", "rearview camera"},
	"rear camera":    {"backup camera", "rear camera"},
	"cruise control": {"cruise control", "adaptive cruise"},
	"adaptive":       {"adaptive cruise control"},
	"autopilot":      {"autopilot"},
	"towing":         {"towing package", "tow hitch"},
	"third row":      {"third row seats", "7 seats"},
	"7 seats":        {"third row seats"},
	"off-road":       {"off-road mode", "offroad"},
	"offroad":        {"off-road mode"},
	"audio":          {"premium audio", "bose audio", "burmester audio", "harman kardon audio", "bang & olufsen audio"},
	"sound system":   {"premium audio", "bose audio", "burmester audio", "harman kardon audio"},
	"massage":        {"massage seats"},
	"charging":       {"fast charging"},
}

// FuzzyMatchFeature reports whether a requested feature string matches an
// inventory feature. Matching is case-insensitive: exact, containment in
// either direction, then the alias table.
func FuzzyMatchFeature(searchTerm, feature string) bool {
	searchLower := strings.ToLower(strings.TrimSpace(searchTerm))
	featureLower := strings.ToLower(strings.TrimSpace(feature))
	if searchLower == "" || featureLower == "" {
		return false
	}

	// Exact match
	if searchLower == featureLower {
		return true
	}

	// Containment in either direction
	if strings.Contains(featureLower, searchLower) || strings.Contains(searchLower, featureLower) {
		return true
	}

	// Check aliases
	for key, values := range featureAliases {
		if !strings.Contains(searchLower, key) {
			continue
		}
		for _, alias := range values {
			if strings.Contains(featureLower, alias) {
				return true
			}
		}
	}

	return false
}

// MatchesAnyFeature reports whether at least one requested feature matches at
// least one of the car's features (match-ANY semantics).
func MatchesAnyFeature(requested, carFeatures []string) bool {
	for _, want := range requested {
		for _, have := range carFeatures {
			if FuzzyMatchFeature(want, have) {
				return true
			}
		}
	}
	return false
}
