package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/fnoltriage/internal/model"
)

var (
	dateTokenRe   = regexp.MustCompile(`\d{4}[/\-]\d{1,2}[/\-]\d{1,2}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
	moneyStripRe  = regexp.MustCompile(`[^0-9.]`)
	vinRe         = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	punctOnlyRe   = regexp.MustCompile(`^[\s.:\-#]+$`)
	inlineMakeRe  = regexp.MustCompile(`(?i)\s+(?:MODEL|YEAR|BODY)\b.*$`)
	inlineModelRe = regexp.MustCompile(`(?i)\s+(?:BODY|TYPE|YEAR)\b.*$`)
)

// placeholderWords are generic form words that appear as values on blank
// forms (e.g. "NUMBER" under a policy-number box). They never count as data.
var placeholderWords = map[string]bool{
	"number":  true,
	"name":    true,
	"date":    true,
	"address": true,
	"other":   true,
	"n/a":     true,
	"none":    true,
}

// isPlaceholder reports whether a captured value looks like a form label or
// placeholder rather than real data.
func isPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || punctOnlyRe.MatchString(s) {
		return true
	}
	return placeholderWords[strings.ToLower(s)]
}

var policyTokenRe = regexp.MustCompile(`^[A-Za-z0-9\-]+`)

// normalizePolicyNumber takes the leading identifier token of the captured
// value, so trailing annotations ("POL-123 (renewed)") do not leak in.
func normalizePolicyNumber(s string) string {
	s = strings.TrimSpace(s)
	token := policyTokenRe.FindString(s)
	if isPlaceholder(token) {
		return ""
	}
	return token
}

// normalizeText trims a free-text value; placeholders count as absent.
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if isPlaceholder(s) {
		return ""
	}
	return s
}

// normalizeDate canonicalizes a date-bearing value to ISO YYYY-MM-DD.
// The value may carry a trailing time ("01/15/2024 10:30 AM"); only the
// date token is used. Returns "" when no token parses.
func normalizeDate(s string) string {
	token := dateTokenRe.FindString(s)
	if token == "" {
		return ""
	}
	token = strings.ReplaceAll(token, "-", "/")
	// Month-first layouts are tried before day-first, so day-first only
	// applies when the first component cannot be a month (e.g. 25/12/2024).
	layouts := []string{"2006/1/2", "1/2/2006", "1/2/06", "2/1/2006", "2/1/06"}
	for _, layout := range layouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		return t.Format("2006-01-02")
	}
	return ""
}

// normalizeMoney parses a monetary amount, stripping currency symbols and
// thousand separators. A value that fails to parse, or is negative, is
// treated as absent (nil), never as zero.
func normalizeMoney(s string) *float64 {
	stripped := moneyStripRe.ReplaceAllString(s, "")
	if stripped == "" {
		return nil
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// normalizeClaimType maps a raw claim-type value onto the closed category
// set. Unrecognized values are preserved verbatim; routing treats them as
// not matching injury.
func normalizeClaimType(s string) string {
	s = strings.TrimSpace(s)
	if isPlaceholder(s) && strings.ToLower(s) != "other" {
		return ""
	}
	switch strings.ToLower(strings.TrimRight(s, ".")) {
	case "injury", "bodily injury", "personal injury", "injured":
		return string(model.ClaimTypeInjury)
	case "collision", "auto", "automobile", "vehicle", "accident", "crash":
		return string(model.ClaimTypeCollision)
	case "theft", "stolen", "burglary":
		return string(model.ClaimTypeTheft)
	case "other", "property":
		return string(model.ClaimTypeOther)
	}
	return s
}

// normalizeVIN validates a 17-character VIN (no I, O, Q).
func normalizeVIN(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	if !vinRe.MatchString(s) {
		return ""
	}
	return s
}

// normalizeMake cuts inline follow-on labels ("MAKE: Honda MODEL: Accord").
func normalizeMake(s string) string {
	return normalizeText(inlineMakeRe.ReplaceAllString(s, ""))
}

// normalizeModel cuts inline follow-on labels after the model value.
func normalizeModel(s string) string {
	return normalizeText(inlineModelRe.ReplaceAllString(s, ""))
}
