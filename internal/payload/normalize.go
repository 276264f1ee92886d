package payload

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxDescriptionLength is Discord's embed description limit
	MaxDescriptionLength = 4096

	ellipsis = "..."

	// timestampOutputLayout renders UTC timestamps with millisecond
	// precision, e.g. "2024-01-01T00:00:00.000Z"
	timestampOutputLayout = "2006-01-02T15:04:05.000Z0700"
)

// timestampLayouts are tried in order when parsing timestamp inputs
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeValue applies the shared per-field normalization rule: timestamps
// are rewritten to canonical ISO-8601, descriptions are truncated to the
// Discord limit, everything else passes through. Empty values are returned
// unchanged; callers treat them as absent.
func NormalizeValue(field, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	switch field {
	case "timestamp":
		return NormalizeTimestamp(value)
	case "description":
		return TruncateDescription(value), nil
	default:
		return value, nil
	}
}

// NormalizeTimestamp parses value as a date and rewrites it to canonical
// ISO-8601 in UTC. Integer values are treated as Unix epoch seconds, or
// milliseconds when large enough to only make sense as such.
func NormalizeTimestamp(value string) (string, error) {
	trimmed := strings.TrimSpace(value)

	if epoch, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		t := time.Unix(epoch, 0)
		if epoch >= 1e12 {
			t = time.UnixMilli(epoch)
		}
		return t.UTC().Format(timestampOutputLayout), nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(timestampOutputLayout), nil
		}
	}

	return "", NewInvalidTimestampError(value)
}

// TruncateDescription caps a description at MaxDescriptionLength characters,
// replacing the trailing characters with an ellipsis marker when truncation
// occurs. The limit counts runes, not bytes, so multibyte input never gets cut
// mid-character. The result is exactly MaxDescriptionLength runes for
// over-long inputs.
func TruncateDescription(value string) string {
	if utf8.RuneCountInString(value) <= MaxDescriptionLength {
		return value
	}
	runes := []rune(value)
	return string(runes[:MaxDescriptionLength-len(ellipsis)]) + ellipsis
}

// parseColor converts a color input to Discord's integer representation.
// Decimal values and hex values with a "#" or "0x" prefix are accepted.
func parseColor(value string) (int, error) {
	trimmed := strings.TrimSpace(value)

	if strings.HasPrefix(trimmed, "#") {
		parsed, err := strconv.ParseInt(trimmed[1:], 16, 64)
		return int(parsed), err
	}
	if strings.HasPrefix(strings.ToLower(trimmed), "0x") {
		parsed, err := strconv.ParseInt(trimmed[2:], 16, 64)
		return int(parsed), err
	}

	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	return int(parsed), err
}
