package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassSet(t *testing.T) {
	set := NewClassSet("b.C", "a.B", "a.B")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has("a.B"))
	assert.Equal(t, []string{"a.B", "b.C"}, set.Sorted())

	set.Remove("b.C")
	assert.False(t, set.Has("b.C"))

	union := Union(set, NewClassSet("c.D"))
	assert.Equal(t, []string{"a.B", "c.D"}, union.Sorted())
	assert.Equal(t, 1, set.Len(), "union must not change its inputs")

	filtered := union.Filter(func(name string) bool { return name != "a.B" })
	assert.Equal(t, []string{"c.D"}, filtered.Sorted())
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Button", SimpleName("com.vaadin.v7.ui.Button"))
	assert.Equal(t, "Button", SimpleName("Button"))
}

func TestNamespace(t *testing.T) {
	ns := DefaultNamespace()

	tests := []struct {
		name  string
		isNew bool
		isOld bool
		toOld string
		toNew string
	}{
		{"com.vaadin.v7.ui.Button", true, false, "com.vaadin.ui.Button", "com.vaadin.v7.ui.Button"},
		{"com.vaadin.ui.Button", false, true, "com.vaadin.ui.Button", "com.vaadin.v7.ui.Button"},
		{"com.vaadinx.Foo", false, false, "com.vaadinx.Foo", "com.vaadinx.Foo"},
		{"org.example.Foo", false, false, "org.example.Foo", "org.example.Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNew, ns.IsNew(tt.name))
			assert.Equal(t, tt.isOld, ns.IsOld(tt.name))
			assert.Equal(t, tt.toOld, ns.ToOld(tt.name))
			assert.Equal(t, tt.toNew, ns.ToNew(tt.name))
		})
	}
}

func TestSpecialRenamesMerge(t *testing.T) {
	defaults := DefaultSpecialRenames()
	merged := defaults.Merge(SpecialRenames{
		"com.vaadin.shared.ui.grid.Range": "com.example.Range",
		"com.vaadin.ui.Old":               "com.vaadin.ui.New",
	})

	assert.Equal(t, "com.example.Range", merged["com.vaadin.shared.ui.grid.Range"])
	assert.Equal(t, "com.vaadin.shared.Range", defaults["com.vaadin.shared.ui.grid.Range"])
	assert.Equal(t, []string{
		"com.vaadin.data.fieldgroup.PropertyId",
		"com.vaadin.shared.ui.grid.Range",
		"com.vaadin.ui.Old",
	}, merged.Keys())
}
