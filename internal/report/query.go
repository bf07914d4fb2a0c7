package report

import (
	"fmt"
	"strings"
)

// Detail is the verbosity level requested for a city query
type Detail string

const (
	DetailBasic    Detail = "basic"
	DetailExtended Detail = "extended"
	DetailFull     Detail = "full"
)

// Query is a parsed city query
type Query struct {
	City   string `json:"city"`
	Detail Detail `json:"detail"`
}

// ParseQuery splits a raw city query into the city name and detail level.
// The "++" suffix is checked before "+", and stripping is not recursive:
// "london+++" yields city "london+" at full detail.
func ParseQuery(raw string) (Query, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	detail := DetailBasic
	if strings.HasSuffix(s, "++") {
		detail = DetailFull
		s = strings.TrimSuffix(s, "++")
	} else if strings.HasSuffix(s, "+") {
		detail = DetailExtended
		s = strings.TrimSuffix(s, "+")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Query{}, fmt.Errorf("empty city in query %q", raw)
	}

	return Query{City: s, Detail: detail}, nil
}

// Suffix returns the query suffix for the detail level ("", "+" or "++")
func (d Detail) Suffix() string {
	switch d {
	case DetailExtended:
		return "+"
	case DetailFull:
		return "++"
	default:
		return ""
	}
}

// String returns the query in its raw form, suffix included
func (q Query) String() string {
	return q.City + q.Detail.Suffix()
}
