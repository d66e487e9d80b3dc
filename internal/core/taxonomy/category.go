// Package taxonomy defines the closed topical category enumeration and the
// dictionary-based classifier that maps text to one category
package taxonomy

import (
	"fmt"
	"strings"
)

// Category is a topical category. The zero value is not valid; Other is the
// explicit fallback and never a dictionary target
type Category string

// Categories in declared order. The order is load-bearing: it is the
// classifier tie-break for equal scores
const (
	Technology    Category = "TECHNOLOGY"
	Finance       Category = "FINANCE"
	Health        Category = "HEALTH"
	Lifestyle     Category = "LIFESTYLE"
	Business      Category = "BUSINESS"
	Education     Category = "EDUCATION"
	Entertainment Category = "ENTERTAINMENT"
	Marketing     Category = "MARKETING"
	SaaS          Category = "SAAS"
	AIML          Category = "AI_ML"
	Other         Category = "OTHER"
)

// All lists every category in declared order, Other last
func All() []Category {
	return []Category{
		Technology, Finance, Health, Lifestyle, Business,
		Education, Entertainment, Marketing, SaaS, AIML, Other,
	}
}

// Parse maps a wire string onto a Category.
// Unknown values are a caller contract violation, not a fallback to Other
func Parse(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range All() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("taxonomy: unknown category %q", s)
}

// ParseSet parses a slice of wire strings, rejecting the first unknown value
func ParseSet(ss []string) ([]Category, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	out := make([]Category, 0, len(ss))
	for _, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Strings converts categories back to their wire form
func Strings(cs []Category) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// Contains reports whether set includes c
func Contains(set []Category, c Category) bool {
	for _, x := range set {
		if x == c {
			return true
		}
	}
	return false
}

// Intersects reports whether a and b share any category
func Intersects(a, b []Category) bool {
	for _, x := range a {
		if Contains(b, x) {
			return true
		}
	}
	return false
}
