package completion

import (
	"regexp"
	"strings"
)

var (
	markerReplacer = strings.NewReplacer(
		PlaceholderOpen, "",
		PlaceholderClose, "",
		OptionalPlaceholderOpen, "",
		OptionalPlaceholderClose, "",
	)

	cvQualifierRe = regexp.MustCompile(`\s*\b(?:const|volatile)\b\s*`)
)

// StripDoubleUnderscore removes every "__". Identifiers containing it are
// reserved for the implementation, so library parameters like "__pos" read as
// "pos" without clashing with user code.
func StripDoubleUnderscore(text string) string {
	return strings.ReplaceAll(text, "__", "")
}

// StripPlaceholderMarkers removes both placeholder delimiter pairs.
func StripPlaceholderMarkers(text string) string {
	return markerReplacer.Replace(text)
}

// StripQualifiers removes whole-word const and volatile together with the
// whitespace around them.
func StripQualifiers(text string) string {
	return cvQualifierRe.ReplaceAllString(text, "")
}
