package validation

import (
	"net/http"
	"regexp"
	"strings"
)

var (
	yearRegex = regexp.MustCompile(`^\d{4}$`)
)

// normalizeMime lowercases a content type and strips its parameters.
// http.DetectContentType appends charset parameters.
func normalizeMime(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}

// AllowedImageMime reports whether a content type is on the upload
// allow-list.
func AllowedImageMime(mimeType string, allowed []string) bool {
	mimeType = normalizeMime(mimeType)
	for _, a := range allowed {
		if mimeType == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// AllowedImageContent checks the declared content type against the
// allow-list and sniffs the leading bytes so a renamed file cannot ride
// in under an image type. DetectContentType cannot identify SVG, it
// reports xml or plain text, so those sniffs pass for a declared SVG.
func AllowedImageContent(declared string, head []byte, allowed []string) bool {
	if !AllowedImageMime(declared, allowed) {
		return false
	}
	detected := normalizeMime(http.DetectContentType(head))
	if AllowedImageMime(detected, allowed) {
		return true
	}
	if normalizeMime(declared) == "image/svg+xml" {
		return detected == "text/xml" || detected == "text/plain"
	}
	return false
}

// ValidateYearOrPresent accepts a four digit year or the literal "Present"
func ValidateYearOrPresent(value string) bool {
	if value == "Present" {
		return true
	}
	return yearRegex.MatchString(value)
}

// SanitizeString removes potentially harmful characters
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
