package models

import "sort"

// SpecialRenames maps fully-qualified old names to new names for classes
// that moved outside the old -> new namespace convention.
type SpecialRenames map[string]string

// DefaultSpecialRenames returns the hand-curated renames shipped with the tool
func DefaultSpecialRenames() SpecialRenames {
	return SpecialRenames{
		"com.vaadin.data.fieldgroup.PropertyId": "com.vaadin.annotations.PropertyId",
		"com.vaadin.shared.ui.grid.Range":       "com.vaadin.shared.Range",
	}
}

// Merge returns a copy of r with extra applied on top
func (r SpecialRenames) Merge(extra SpecialRenames) SpecialRenames {
	merged := make(SpecialRenames, len(r)+len(extra))
	for from, to := range r {
		merged[from] = to
	}
	for from, to := range extra {
		merged[from] = to
	}
	return merged
}

// Keys returns the old names in lexical order
func (r SpecialRenames) Keys() []string {
	keys := make([]string, 0, len(r))
	for from := range r {
		keys = append(keys, from)
	}
	sort.Strings(keys)
	return keys
}
