package utils

// TruncateRunes shortens text to at most limit runes, appending an ellipsis
// when anything was cut. Truncation is by rune so multi-byte scripts are
// never split mid-character.
func TruncateRunes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
