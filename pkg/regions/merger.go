// Package regions canonicalises region sets. Events carry regions as a
// comma-joined string; news items contribute free-form city names. The
// merger is pure and deterministic so region updates are idempotent.
package regions

import (
	"encoding/json"
	"sort"
	"strings"
)

// Merge combines an existing region set with city names from news items
// and returns a canonical comma-joined, sorted, de-duplicated set.
// The existing set may be a JSON array or a comma-joined string. Empty,
// "null", and "None" tokens are dropped. A single-element result carries
// no commas.
func Merge(existing string, cities []string) string {
	seen := make(map[string]struct{})
	var out []string

	add := func(token string) {
		token = strings.TrimSpace(token)
		if !validToken(token) {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	for _, token := range Tokens(existing) {
		add(token)
	}
	for _, city := range cities {
		for _, token := range splitJoined(city) {
			add(token)
		}
	}

	sort.Strings(out)
	return strings.Join(out, ",")
}

// Tokens splits a stored region value into raw tokens. A value starting
// with '[' is tried as a JSON array first; everything else (including a
// JSON array that fails to parse) splits on commas.
func Tokens(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if strings.HasPrefix(value, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(value), &arr); err == nil {
			return arr
		}
	}
	return splitJoined(value)
}

func splitJoined(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func validToken(token string) bool {
	switch token {
	case "", "null", "None":
		return false
	}
	return true
}
