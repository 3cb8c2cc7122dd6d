package dto

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/mikosha12/Hulu-beand-mern-b/errors"
)

// Sort options accepted by the search endpoint
const (
	SortStarRating        = "starRating"
	SortPricePerNightAsc  = "pricePerNightAsc"
	SortPricePerNightDesc = "pricePerNightDesc"
)

// SearchFilter is a parsed listing search. Nil and empty fields impose no
// constraint.
type SearchFilter struct {
	Destination string   `json:"destination,omitempty"`
	AdultCount  *int     `json:"adultCount,omitempty"`
	ChildCount  *int     `json:"childCount,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	Types       []string `json:"types,omitempty"`
	Stars       []int    `json:"stars,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	SortOption  string   `json:"sortOption,omitempty"`
	Page        int      `json:"page"`
}

var searchKeys = map[string]bool{
	"destination": true,
	"adultCount":  true,
	"childCount":  true,
	"facilities":  true,
	"types":       true,
	"stars":       true,
	"maxPrice":    true,
	"sortOption":  true,
	"page":        true,
}

// ParseSearchFilter reads a search query string. Unknown keys and malformed
// values are rejected rather than ignored.
func ParseSearchFilter(values url.Values) (SearchFilter, error) {
	f := SearchFilter{Page: 1}
	fields := map[string]string{}

	lists := map[string][]string{}
	for key, vals := range values {
		name := strings.TrimSuffix(key, "[]")
		if !searchKeys[name] {
			fields[name] = "unknown parameter"
			continue
		}
		lists[name] = append(lists[name], vals...)
	}

	single := func(name string) (string, bool) {
		vals := nonEmpty(lists[name])
		if len(vals) == 0 {
			return "", false
		}
		if len(vals) > 1 {
			fields[name] = "must be given once"
			return "", false
		}
		return vals[0], true
	}

	if v, ok := single("destination"); ok {
		f.Destination = strings.TrimSpace(v)
	}
	if v, ok := single("adultCount"); ok {
		f.AdultCount = parseCount(v, "adultCount", fields)
	}
	if v, ok := single("childCount"); ok {
		f.ChildCount = parseCount(v, "childCount", fields)
	}
	f.Facilities = dedupe(nonEmpty(lists["facilities"]))
	f.Types = dedupe(nonEmpty(lists["types"]))

	for _, raw := range nonEmpty(lists["stars"]) {
		star, err := strconv.Atoi(raw)
		if err != nil || star < 1 || star > 5 {
			fields["stars"] = "must be integers from 1 to 5"
			break
		}
		if !containsInt(f.Stars, star) {
			f.Stars = append(f.Stars, star)
		}
	}
	sort.Ints(f.Stars)

	if v, ok := single("maxPrice"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			fields["maxPrice"] = "must be a non-negative number"
		} else {
			f.MaxPrice = &price
		}
	}
	if v, ok := single("sortOption"); ok {
		switch v {
		case SortStarRating, SortPricePerNightAsc, SortPricePerNightDesc:
			f.SortOption = v
		default:
			fields["sortOption"] = fmt.Sprintf("must be one of %s, %s, %s", SortStarRating, SortPricePerNightAsc, SortPricePerNightDesc)
		}
	}
	if v, ok := single("page"); ok {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			fields["page"] = "must be a positive integer"
		} else {
			f.Page = page
		}
	}

	if len(fields) > 0 {
		return SearchFilter{}, errors.ValidationFields("Invalid search parameters", fields)
	}
	return f, nil
}

// CacheKey renders the filter canonically; equal filters give equal keys
func (f SearchFilter) CacheKey() string {
	facilities := append([]string(nil), f.Facilities...)
	types := append([]string(nil), f.Types...)
	sort.Strings(facilities)
	sort.Strings(types)

	var b strings.Builder
	fmt.Fprintf(&b, "d=%s|", strings.ToLower(f.Destination))
	if f.AdultCount != nil {
		fmt.Fprintf(&b, "a=%d|", *f.AdultCount)
	}
	if f.ChildCount != nil {
		fmt.Fprintf(&b, "c=%d|", *f.ChildCount)
	}
	fmt.Fprintf(&b, "f=%s|t=%s|s=%v|", strings.Join(facilities, ","), strings.Join(types, ","), f.Stars)
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, "p=%g|", *f.MaxPrice)
	}
	fmt.Fprintf(&b, "o=%s|pg=%d", f.SortOption, f.Page)
	return b.String()
}

func parseCount(v, name string, fields map[string]string) *int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		fields[name] = "must be a non-negative integer"
		return nil
	}
	return &n
}

func nonEmpty(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func dedupe(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
