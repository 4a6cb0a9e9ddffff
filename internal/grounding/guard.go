package grounding

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OmissionNote is appended to generated text that cites ungrounded figures.
const OmissionNote = "[Note: Certain figures omitted to maintain accuracy.]"

var (
	numberPattern    = regexp.MustCompile(`-?\d+(?:,\d{3})*(?:\.\d+)?%?`)
	scorelinePattern = regexp.MustCompile(`\b(\d+)\s*[-–]\s*(\d+)\b`)
)

// allowed numbers may appear in text without a backing fact: common match
// minutes, small counts and recent seasons.
var allowed = map[string]struct{}{
	"120": {}, "90": {}, "75": {}, "60": {}, "45": {}, "30": {}, "25": {},
	"20": {}, "15": {}, "10": {}, "5": {}, "3": {}, "2": {}, "1": {},
	"2019": {}, "2020": {}, "2021": {}, "2022": {}, "2023": {}, "2024": {},
	"2025": {}, "2026": {},
}

// UngroundedNumbers returns the numeric tokens of body that match no fact
// value, unique and in order of appearance. Matching tolerates thousands
// separators, percent signs and rounding to 0, 1 or 2 decimals.
func UngroundedNumbers(body string, facts []Fact) []string {
	index := indexFactNumbers(facts)

	missing := make([]string, 0)
	for _, pair := range scorelinePattern.FindAllStringSubmatch(body, -1) {
		for _, part := range pair[1:] {
			if !isGrounded(part, index) {
				missing = append(missing, part)
			}
		}
	}
	for _, tok := range numberTokens(body) {
		if !isGrounded(tok, index) {
			missing = append(missing, tok)
		}
	}

	return uniqueInOrder(missing)
}

// AppendOmissionNote adds OmissionNote to body when ungrounded is non-empty.
func AppendOmissionNote(body string, ungrounded []string) string {
	if len(ungrounded) == 0 {
		return body
	}
	return body + "\n\n" + OmissionNote
}

func isGrounded(token string, index map[string]struct{}) bool {
	norm := normalizeNumber(token)
	if _, ok := allowed[norm]; ok {
		return true
	}
	if _, ok := allowed[strings.TrimSuffix(token, "%")]; ok {
		return true
	}
	for _, v := range numberVariants(norm) {
		if _, ok := index[v]; ok {
			return true
		}
	}
	return false
}

func indexFactNumbers(facts []Fact) map[string]struct{} {
	index := make(map[string]struct{}, len(facts)*4)
	add := func(tok string) {
		for _, v := range numberVariants(normalizeNumber(tok)) {
			index[v] = struct{}{}
		}
	}

	for _, f := range facts {
		for _, pair := range scorelinePattern.FindAllStringSubmatch(f.Value, -1) {
			add(pair[1])
			add(pair[2])
		}
		for _, tok := range numberTokens(f.Value) {
			add(tok)
		}
	}
	return index
}

// numberTokens finds standalone numbers: not glued to letters, and a leading
// minus only counts as a sign when it does not follow a digit.
func numberTokens(text string) []string {
	locs := numberPattern.FindAllStringIndex(text, -1)
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if text[start] == '-' && start > 0 && isDigitOrLetter(lastRune(text[:start])) {
			start++
		}
		if start > 0 && unicode.IsLetter(lastRune(text[:start])) {
			continue
		}
		if end < len(text) && unicode.IsLetter(firstRune(text[end:])) {
			continue
		}
		out = append(out, text[start:end])
	}
	return out
}

func normalizeNumber(tok string) string {
	tok = strings.ReplaceAll(tok, ",", "")
	return strings.TrimRight(tok, "%")
}

func numberVariants(n string) []string {
	out := []string{n}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return out
	}

	out = append(out,
		strconv.FormatFloat(math.RoundToEven(f), 'f', 0, 64),
		strconv.FormatFloat(f, 'f', 1, 64),
		strconv.FormatFloat(f, 'f', 2, 64),
	)
	if strings.Contains(n, ".") {
		if trimmed := strings.TrimRight(strings.TrimRight(n, "0"), "."); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func uniqueInOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func isDigitOrLetter(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsLetter(r)
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
