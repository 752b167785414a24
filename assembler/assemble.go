package assembler

import (
	"sort"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
)

// RenderableSection is one layout entry with its content resolved. Zero, one
// or many records may be bound depending on the descriptor.
type RenderableSection struct {
	ID        string
	Component string
	Width     string
	Content   *content.Record
	Contents  []*content.Record
}

// Assemble walks the layout manifest in order and resolves each descriptor
// against the index. Descriptors whose content is absent still produce a
// section; the renderer decides what an empty section looks like.
func Assemble(layout *config.LayoutManifest, ix *content.Index) []RenderableSection {
	sections := make([]RenderableSection, 0, len(layout.Layout.Sections))
	for _, descriptor := range layout.Layout.Sections {
		section := RenderableSection{
			ID:        descriptor.ID,
			Component: descriptor.Component,
			Width:     descriptor.Width,
		}
		if descriptor.File != "" {
			if record, ok := ix.Lookup(descriptor.File); ok {
				section.Content = record
			}
		}
		if len(descriptor.Files) > 0 {
			section.Contents = ix.LookupAll(descriptor.Files)
		}
		sections = append(sections, section)
	}
	return sections
}

// NavEntry is one navigation item derived from the layout.
type NavEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// NavEntries filters descriptors without a navbar binding and sorts the rest
// ascending by order. Pure function of the manifest.
func NavEntries(layout *config.LayoutManifest) []NavEntry {
	var entries []NavEntry
	for _, section := range layout.Layout.Sections {
		if section.Navbar.Entry == nil {
			continue
		}
		entries = append(entries, NavEntry{
			ID:    section.ID,
			Label: section.Navbar.Entry.Label,
			Order: section.Navbar.Entry.Order,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Order < entries[j].Order
	})
	return entries
}

// SortByOrder orders records ascending by the optional numeric "order"
// metadata field, absent values counting as zero. The sort is stable so ties
// keep encounter order.
func SortByOrder(records []*content.Record) []*content.Record {
	sorted := make([]*content.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOf(sorted[i]) < orderOf(sorted[j])
	})
	return sorted
}

func orderOf(record *content.Record) float64 {
	switch v := record.Metadata["order"].(type) {
	case int:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
