package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the fixed set of goal categories. CategoryAll is the
// "no filter" sentinel and never appears on a stored goal.
type Category int

const (
	CategoryAll Category = iota
	CategoryPersonalDevelopment
	CategoryHealthFitness
	CategoryCareer
	CategoryFinance
	CategoryEducation
	CategoryRelationship
	CategoryFunEntertainment
	CategoryMiscellaneous
	categoryCount // sentinel
)

var categoryNames = [categoryCount]string{
	"--Sort by category--",
	"Personal Development",
	"Health & Fitness",
	"Career",
	"Finance",
	"Education",
	"Relationship",
	"Fun & Entertainment",
	"Miscellaneous",
}

// Short names accepted on the command line.
var categorySlugs = [categoryCount]string{
	"all",
	"personal",
	"health",
	"career",
	"finance",
	"education",
	"relationship",
	"fun",
	"misc",
}

// Categories returns the concrete categories in display order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount-1)
	for c := CategoryPersonalDevelopment; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the display name.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Slug returns the short command-line name.
func (c Category) Slug() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categorySlugs[c]
}

// Concrete reports whether c is a real category rather than the sentinel.
func (c Category) Concrete() bool {
	return c > CategoryAll && c < categoryCount
}

// ParseCategory resolves a display name or slug, case-insensitively.
// The empty string resolves to CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}
	for c := CategoryAll; c < categoryCount; c++ {
		if strings.EqualFold(s, categoryNames[c]) || strings.EqualFold(s, categorySlugs[c]) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("unknown category %q", s)
}

// MarshalJSON encodes the display name, which is what the service stores.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Concrete() {
		return []byte(`""`), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a display name. Names the client does not know
// fall back to Miscellaneous so one odd record cannot fail a whole fetch.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	parsed, err := ParseCategory(s)
	if err != nil || !parsed.Concrete() {
		*c = CategoryMiscellaneous
		return nil
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the display name.
func (c Category) MarshalYAML() (any, error) {
	return c.String(), nil
}
