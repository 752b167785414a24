package config

// The content manifests are static JSON documents under the content root.
// Their shapes mirror what the renderers consume; there is no validation
// beyond well-formed JSON matching these structs.

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// SiteSettings holds feature flags and page metadata from config/site.json.
type SiteSettings struct {
	Meta struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Keywords    []string `json:"keywords"`
		Author      string   `json:"author"`
	} `json:"meta"`
	Features struct {
		ChatBot struct {
			Enabled     bool   `json:"enabled"`
			WelcomeFile string `json:"welcomeFile"`
			RagEnabled  bool   `json:"ragEnabled"`
		} `json:"chatBot"`
		Accessibility struct {
			HighVisibilityMode bool `json:"highVisibilityMode"`
			NoAnimationMode    bool `json:"noAnimationMode"`
			KeyboardNavigation bool `json:"keyboardNavigation"`
		} `json:"accessibility"`
		MatrixBackground struct {
			Enabled   bool    `json:"enabled"`
			Particles int     `json:"particles"`
			Speed     float64 `json:"speed"`
		} `json:"matrixBackground"`
	} `json:"features"`
	Version string `json:"version"`
}

// ThemeEffects toggles the decorative behaviours a theme opts into.
type ThemeEffects struct {
	MatrixBackground bool `json:"matrixBackground"`
	Animations       bool `json:"animations"`
}

// Theme is one palette from config/theme.json. Colors always carries the
// five named slots; extra slots are projected as-is.
type Theme struct {
	Name    string            `json:"name"`
	Colors  map[string]string `json:"colors"`
	Effects ThemeEffects      `json:"effects"`
}

type ThemeManifest struct {
	Themes        map[string]Theme `json:"themes"`
	Customization struct {
		AllowUserColors bool                `json:"allowUserColors"`
		ColorMappings   map[string][]string `json:"colorMappings"`
	} `json:"customization"`
}

// NavbarEntry is a section's navigation binding: a label plus the ascending
// display order.
type NavbarEntry struct {
	Label string `json:"label"`
	Order int    `json:"order"`
}

// Navbar is either the JSON literal false (section excluded from
// navigation) or a NavbarEntry object.
type Navbar struct {
	Entry *NavbarEntry
}

func (n *Navbar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		n.Entry = nil
		return nil
	}

	var entry NavbarEntry
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return err
	}
	n.Entry = &entry
	return nil
}

func (n Navbar) MarshalJSON() ([]byte, error) {
	if n.Entry == nil {
		return []byte("false"), nil
	}
	return json.Marshal(n.Entry)
}

// Section is one descriptor from the layout manifest. At most one of File
// and Files is set; with neither, the section renders without bound content.
type Section struct {
	ID        string   `json:"id"`
	Component string   `json:"component"`
	File      string   `json:"file,omitempty"`
	Files     []string `json:"files,omitempty"`
	Width     string   `json:"width"`
	Navbar    Navbar   `json:"navbar"`
}

type LayoutManifest struct {
	Layout struct {
		Sections []Section `json:"sections"`
	} `json:"layout"`
	Responsive struct {
		Breakpoints  map[string]string            `json:"breakpoints"`
		GridSettings map[string]map[string]string `json:"gridSettings"`
	} `json:"responsive"`
}

// DesignTokens are applied verbatim as style variables.
type DesignTokens struct {
	Spacing struct {
		BoxPadding string `json:"box_padding"`
		BoxMargin  string `json:"box_margin"`
		SectionGap string `json:"section_gap"`
		GridGap    string `json:"grid_gap"`
	} `json:"spacing"`
	Typography struct {
		FontFamily struct {
			Primary   string `json:"primary"`
			Monospace string `json:"monospace"`
		} `json:"font_family"`
		FontSizes struct {
			HeroTitle    string `json:"hero_title"`
			SectionTitle string `json:"section_title"`
			Body         string `json:"body"`
		} `json:"font_sizes"`
	} `json:"typography"`
	Borders struct {
		Radius string `json:"radius"`
		Width  string `json:"width"`
		Style  string `json:"style"`
	} `json:"borders"`
	Effects struct {
		BoxShadow       string `json:"box_shadow"`
		TransitionSpeed string `json:"transition_speed"`
	} `json:"effects"`
}

type SocialLink struct {
	URL      string `json:"url"`
	Username string `json:"username"`
}

// PersonalInfo feeds the contact renderer directly.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Social   struct {
		LinkedIn SocialLink `json:"linkedin"`
		GitHub   SocialLink `json:"github"`
	} `json:"social"`
	Professional struct {
		Specialization string `json:"specialization"`
		Focus          string `json:"focus"`
	} `json:"professional"`
}

// Manifests bundles the five configuration documents loaded at startup.
type Manifests struct {
	Site     *SiteSettings
	Theme    *ThemeManifest
	Layout   *LayoutManifest
	Design   *DesignTokens
	Personal *PersonalInfo
}

// ValidateLayout rejects descriptors that bind both a single file and a file
// list, and duplicate section ids.
func ValidateLayout(layout *LayoutManifest) error {
	seen := make(map[string]bool, len(layout.Layout.Sections))
	for _, section := range layout.Layout.Sections {
		if section.ID == "" {
			return errors.New("layout section with empty id")
		}
		if seen[section.ID] {
			return errors.Errorf("duplicate layout section id %q", section.ID)
		}
		seen[section.ID] = true

		if section.File != "" && len(section.Files) > 0 {
			return errors.Errorf("layout section %q sets both file and files", section.ID)
		}
	}
	return nil
}
