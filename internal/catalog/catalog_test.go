package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Builtins(t *testing.T) {
	r := NewRegistry(nil, nil)

	cats := r.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, WebDevelopment, cats[0])
	assert.Equal(t, Blockchain, cats[5])
	assert.True(t, r.HasTechTag("Go"))
	assert.False(t, r.HasTechTag("go"))
}

func TestNewRegistry_Extras(t *testing.T) {
	r := NewRegistry([]string{"Games", " ", "DevOps", "Games"}, []string{"Zig", "Go", ""})

	cats := r.Categories()
	require.Len(t, cats, 7)
	assert.Equal(t, Category("Games"), cats[6])

	tags := r.TechTags()
	assert.Equal(t, "Zig", tags[len(tags)-1])
	assert.Len(t, tags, len(NewRegistry(nil, nil).TechTags())+1)
}

func TestRegistry_AccessorsReturnCopies(t *testing.T) {
	r := NewRegistry(nil, nil)
	cats := r.Categories()
	cats[0] = "Changed"
	assert.Equal(t, WebDevelopment, r.Categories()[0])
}

func TestParseCategory(t *testing.T) {
	r := NewRegistry([]string{"Games"}, nil)

	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"", "", true},
		{"All Projects", "", true},
		{"all projects", "", true},
		{"ai/ml", AIML, true},
		{"  DevOps ", DevOps, true},
		{"games", "Games", true},
		{"Cooking", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := r.ParseCategory(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTechTag(t *testing.T) {
	r := NewRegistry(nil, []string{"Zig"})

	tag, ok := r.ResolveTechTag(" zig ")
	assert.True(t, ok)
	assert.Equal(t, "Zig", tag)

	tag, ok = r.ResolveTechTag("node.js")
	assert.True(t, ok)
	assert.Equal(t, "Node.js", tag)

	_, ok = r.ResolveTechTag("COBOL")
	assert.False(t, ok)

	_, ok = NewRegistry(nil, nil).ResolveTechTag("Zig")
	assert.False(t, ok)
}

func TestSortCategories(t *testing.T) {
	r := NewRegistry(nil, nil)
	cs := []Category{"Zeta", Blockchain, "Alpha", WebDevelopment, AIML}

	r.SortCategories(cs)

	assert.Equal(t, []Category{WebDevelopment, AIML, Blockchain, "Zeta", "Alpha"}, cs)
}
