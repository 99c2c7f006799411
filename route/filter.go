package route

import (
	"errors"
	"sort"
)

var ErrConflictingFilter = errors.New("include and exclude symbols are mutually exclusive")

// SymbolFilter selects points of interest by symbol. At most one of Include
// and Exclude may be set; with neither set every symbol is selected.
type SymbolFilter struct {
	Include []string
	Exclude []string
}

func (f SymbolFilter) Validate() error {
	if len(f.Include) > 0 && len(f.Exclude) > 0 {
		return ErrConflictingFilter
	}
	return nil
}

// Allows reports whether points of interest tagged with symbol are selected.
func (f SymbolFilter) Allows(symbol string) bool {
	if len(f.Include) > 0 {
		return contains(f.Include, symbol)
	}
	return !contains(f.Exclude, symbol)
}

// Apply returns the selected points of interest in their original order.
func (f SymbolFilter) Apply(pois []*PointOfInterest) []*PointOfInterest {
	var selected []*PointOfInterest
	for _, poi := range pois {
		if f.Allows(poi.Symbol) {
			selected = append(selected, poi)
		}
	}
	return selected
}

// Symbols returns the sorted distinct symbols of pois.
func Symbols(pois []*PointOfInterest) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, poi := range pois {
		if !seen[poi.Symbol] {
			seen[poi.Symbol] = true
			symbols = append(symbols, poi.Symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
