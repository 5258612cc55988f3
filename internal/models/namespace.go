package models

import "strings"

const (
	// DefaultOldNamespace is the package root classes are migrated away from
	DefaultOldNamespace = "com.vaadin"
	// DefaultNewNamespace is the compatibility package root classes move into
	DefaultNewNamespace = "com.vaadin.v7"
)

// Namespace pairs the old and new package roots of a migration.
// The new root is expected to live below the old one, e.g. "com.vaadin"
// and "com.vaadin.v7".
type Namespace struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// DefaultNamespace returns the com.vaadin -> com.vaadin.v7 namespace pair
func DefaultNamespace() Namespace {
	return Namespace{Old: DefaultOldNamespace, New: DefaultNewNamespace}
}

// OldPrefix returns the old root followed by a dot
func (n Namespace) OldPrefix() string {
	return n.Old + "."
}

// NewPrefix returns the new root followed by a dot
func (n Namespace) NewPrefix() string {
	return n.New + "."
}

// IsNew reports whether name lives below the new root
func (n Namespace) IsNew(name string) bool {
	return strings.HasPrefix(name, n.NewPrefix())
}

// IsOld reports whether name lives below the old root but not below the new one
func (n Namespace) IsOld(name string) bool {
	return strings.HasPrefix(name, n.OldPrefix()) && !n.IsNew(name)
}

// ToOld maps a new-namespace name to its old-namespace form.
// Names outside the new root are returned unchanged.
func (n Namespace) ToOld(name string) string {
	if !n.IsNew(name) {
		return name
	}
	return n.OldPrefix() + strings.TrimPrefix(name, n.NewPrefix())
}

// ToNew maps an old-namespace name to its new-namespace form.
// Names outside the old root, or already in the new root, are returned unchanged.
func (n Namespace) ToNew(name string) string {
	if !n.IsOld(name) {
		return name
	}
	return n.NewPrefix() + strings.TrimPrefix(name, n.OldPrefix())
}
