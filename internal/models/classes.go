package models

import (
	"sort"
	"strings"
)

// ClassSet is a set of fully-qualified dotted class names such as
// "com.vaadin.v7.ui.Button".
type ClassSet map[string]struct{}

// NewClassSet creates a set holding the given names
func NewClassSet(names ...string) ClassSet {
	set := make(ClassSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts a class name into the set
func (s ClassSet) Add(name string) {
	s[name] = struct{}{}
}

// AddAll inserts every name of other into the set
func (s ClassSet) AddAll(other ClassSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Remove deletes a class name from the set
func (s ClassSet) Remove(name string) {
	delete(s, name)
}

// Has reports whether the set contains name
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set
func (s ClassSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order
func (s ClassSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns a new set holding the names accepted by keep
func (s ClassSet) Filter(keep func(name string) bool) ClassSet {
	result := make(ClassSet)
	for name := range s {
		if keep(name) {
			result.Add(name)
		}
	}
	return result
}

// Union returns a new set holding the names of all given sets
func Union(sets ...ClassSet) ClassSet {
	result := make(ClassSet)
	for _, set := range sets {
		result.AddAll(set)
	}
	return result
}

// SimpleName returns the unqualified part of a dotted class name
func SimpleName(className string) string {
	return className[strings.LastIndex(className, ".")+1:]
}
