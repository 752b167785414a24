package assembler

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
)

func layoutFromJSON(t *testing.T, raw string) *config.LayoutManifest {
	t.Helper()
	var layout config.LayoutManifest
	require.NoError(t, json.Unmarshal([]byte(raw), &layout))
	return &layout
}

func buildIndex(t *testing.T, layout *config.LayoutManifest, files map[string]string) *content.Index {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	ix := content.NewIndex()
	require.NoError(t, ix.Build(context.Background(), content.NewLoader(&content.DirFetcher{Root: dir}), layout, nil))
	return ix
}

const heroSkillsLayout = `{
	"layout": {"sections": [
		{"id": "hero", "component": "Hero", "file": "hero.md", "width": "full", "navbar": false},
		{"id": "skills", "component": "SkillsGrid", "files": ["s1.md", "s2.md"], "width": "dynamic", "navbar": false}
	]}
}`

func TestAssemble_ResolvesInManifestOrder(t *testing.T) {
	layout := layoutFromJSON(t, heroSkillsLayout)
	ix := buildIndex(t, layout, map[string]string{
		"hero.md": "---\ntitle: Hi\n---\nhero body",
		"s1.md":   "---\norder: 2\n---\nfirst in manifest",
		"s2.md":   "---\norder: 1\n---\nsecond in manifest",
	})

	sections := Assemble(layout, ix)

	require.Len(t, sections, 2)
	assert.Equal(t, "hero", sections[0].ID)
	require.NotNil(t, sections[0].Content)
	assert.Equal(t, "hero body", sections[0].Content.Body)
	assert.Nil(t, sections[0].Contents)

	require.Len(t, sections[1].Contents, 2)
}

func TestAssemble_SkillsSortAscendingByOrder(t *testing.T) {
	layout := layoutFromJSON(t, heroSkillsLayout)
	ix := buildIndex(t, layout, map[string]string{
		"hero.md": "---\ntitle: Hi\n---\n",
		"s1.md":   "---\norder: 2\n---\nskill one",
		"s2.md":   "---\norder: 1\n---\nskill two",
	})

	sections := Assemble(layout, ix)
	sorted := SortByOrder(sections[1].Contents)

	require.Len(t, sorted, 2)
	assert.Equal(t, "s2", sorted[0].ID, "s2 (order 1) lists before s1 (order 2)")
	assert.Equal(t, "s1", sorted[1].ID)
}

func TestSortByOrder_StableForMissingAndEqualOrders(t *testing.T) {
	records := []*content.Record{
		{ID: "a", Metadata: map[string]any{}},
		{ID: "b", Metadata: map[string]any{"order": 0}},
		{ID: "c", Metadata: map[string]any{"order": 1}},
		{ID: "d", Metadata: map[string]any{}},
	}

	sorted := SortByOrder(records)

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids)

	// input slice untouched
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "c", records[2].ID)
}

func TestAssemble_UnboundSectionHasNoContent(t *testing.T) {
	layout := layoutFromJSON(t, `{
		"layout": {"sections": [
			{"id": "divider", "component": "Divider", "width": "full", "navbar": false}
		]}
	}`)
	ix := buildIndex(t, layout, nil)

	sections := Assemble(layout, ix)

	require.Len(t, sections, 1)
	assert.Nil(t, sections[0].Content)
	assert.Empty(t, sections[0].Contents)
}

func TestNavEntries_FilteredAndSorted(t *testing.T) {
	layout := layoutFromJSON(t, `{
		"layout": {"sections": [
			{"id": "contact", "component": "Contact", "width": "full", "navbar": {"label": "Contact", "order": 30}},
			{"id": "hero", "component": "Hero", "width": "full", "navbar": false},
			{"id": "about", "component": "About", "width": "full", "navbar": {"label": "About", "order": 10}},
			{"id": "skills", "component": "SkillsGrid", "width": "full", "navbar": {"label": "Skills", "order": 20}}
		]}
	}`)

	entries := NavEntries(layout)

	require.Len(t, entries, 3)
	assert.Equal(t, "about", entries[0].ID)
	assert.Equal(t, "skills", entries[1].ID)
	assert.Equal(t, "contact", entries[2].ID)
	assert.Equal(t, "About", entries[0].Label)
}

func TestRegistry_KnownRenderers(t *testing.T) {
	registry := NewRegistry()

	hero := RenderableSection{
		ID:        "hero",
		Component: "Hero",
		Content: &content.Record{
			Metadata: map[string]any{"title": "Robert <Zeijlon>", "subtitle": "AI Developer"},
			Body:     "Welcome to my site.",
		},
	}
	out := string(registry.Render(hero, nil))
	assert.Contains(t, out, `<section id="hero" class="hero">`)
	assert.Contains(t, out, "Robert &lt;Zeijlon&gt;")
	assert.Contains(t, out, "AI Developer")
	assert.Contains(t, out, "<p>Welcome to my site.</p>")

	grid := RenderableSection{
		ID:        "skills",
		Component: "SkillsGrid",
		Width:     "dynamic",
		Contents: []*content.Record{
			{ID: "s1", Metadata: map[string]any{"order": 2}, Body: "## One"},
			{ID: "s2", Metadata: map[string]any{"order": 1}, Body: "## Two"},
		},
	}
	out = string(registry.Render(grid, nil))
	assert.Contains(t, out, "dynamic-width")
	assert.Less(t, strings.Index(out, "Two"), strings.Index(out, "One"), "order metadata wins")
}

func TestRegistry_UnknownComponentFallsBack(t *testing.T) {
	registry := NewRegistry()

	single := RenderableSection{
		ID:        "mystery",
		Component: "Carousel3000",
		Content:   &content.Record{Body: "plain **doc**"},
	}
	out := string(registry.Render(single, nil))
	assert.Contains(t, out, `<article id="mystery" class="document">`)
	assert.Contains(t, out, "<strong>doc</strong>")

	many := single
	many.Content = nil
	many.Contents = []*content.Record{
		{Metadata: map[string]any{}, Body: "one"},
		{Metadata: map[string]any{}, Body: "two"},
	}
	out = string(registry.Render(many, nil))
	assert.Contains(t, out, "document-list")

	none := RenderableSection{ID: "empty", Component: "Carousel3000"}
	assert.Empty(t, string(registry.Render(none, nil)))
}

func TestRenderContact_UsesPersonalInfo(t *testing.T) {
	registry := NewRegistry()

	personal := &config.PersonalInfo{Name: "Robert", Email: "rob@example.com", Location: "Sweden"}
	personal.Social.GitHub.URL = "https://github.com/RZeijlon"

	section := RenderableSection{ID: "contact", Component: "Contact"}
	out := string(registry.Render(section, &RenderContext{Personal: personal}))

	assert.Contains(t, out, "mailto:rob@example.com")
	assert.Contains(t, out, "Sweden")
	assert.Contains(t, out, "https://github.com/RZeijlon")

	assert.Empty(t, string(registry.Render(section, nil)), "no personal info, nothing to render")
}
