package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseAIJSON extracts and parses a JSON object from model output that may be:
// - Pure JSON
// - JSON wrapped in markdown code fences (```json ... ```)
// - JSON surrounded by conversational prose
// - JSON with trailing commas
// The caller handles the error case; a failure here must never propagate as
// anything worse than "no structured directive".
func ParseAIJSON(input string, target interface{}) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("empty input")
	}

	// Try direct parsing first (most common case)
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	// Try to extract from markdown code fences
	if extracted := extractFromMarkdown(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	// Take the span from the first '{' to the last '}'; this tolerates
	// models that wrap their object in prose on both sides.
	if span := OuterObjectSpan(input); span != "" {
		if err := json.Unmarshal([]byte(span), target); err == nil {
			return nil
		}
		// Trailing commas are the most common way models break the span.
		if cleaned := stripTrailingCommas(span); cleaned != span {
			if err := json.Unmarshal([]byte(cleaned), target); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncateString(input, 100))
}

// OuterObjectSpan returns the substring from the first '{' to the last '}'
// inclusive, or "" when no such span exists.
func OuterObjectSpan(input string) string {
	start := strings.Index(input, "{")
	end := strings.LastIndex(input, "}")
	if start < 0 || end < start {
		return ""
	}
	return input[start : end+1]
}

// extractFromMarkdown extracts JSON from markdown code fences.
// Supports ```json {...} ``` and bare ``` {...} ```.
func extractFromMarkdown(input string) string {
	re1 := regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	if matches := re1.FindStringSubmatch(input); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	re2 := regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
	if matches := re2.FindStringSubmatch(input); len(matches) > 1 {
		content := strings.TrimSpace(matches[1])
		if strings.HasPrefix(content, "{") {
			return content
		}
	}

	return ""
}

// stripTrailingCommas removes commas that directly precede a closing brace or
// bracket (a common model mistake the stdlib decoder rejects).
func stripTrailingCommas(input string) string {
	re := regexp.MustCompile(`,\s*([}\]])`)
	return re.ReplaceAllString(input, "$1")
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
