package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
)

// RenderCSS writes the projection and the design tokens as a :root custom
// property block. Output is sorted so rebuilds are byte-stable.
func RenderCSS(p Projection, design *config.DesignTokens) string {
	vars := make(map[string]string, len(p.Variables)+16)
	for k, v := range p.Variables {
		vars[k] = v
	}

	if design != nil {
		vars["--box-padding"] = design.Spacing.BoxPadding
		vars["--box-margin"] = design.Spacing.BoxMargin
		vars["--section-gap"] = design.Spacing.SectionGap
		vars["--grid-gap"] = design.Spacing.GridGap
		vars["--font-family-primary"] = design.Typography.FontFamily.Primary
		vars["--font-family-monospace"] = design.Typography.FontFamily.Monospace
		vars["--font-size-hero-title"] = design.Typography.FontSizes.HeroTitle
		vars["--font-size-section-title"] = design.Typography.FontSizes.SectionTitle
		vars["--font-size-body"] = design.Typography.FontSizes.Body
		vars["--border-radius"] = design.Borders.Radius
		vars["--border-width"] = design.Borders.Width
		vars["--border-style"] = design.Borders.Style
		vars["--box-shadow"] = design.Effects.BoxShadow
		vars["--transition-speed"] = design.Effects.TransitionSpeed
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		if vars[name] != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")

	if !p.Animations {
		b.WriteString("\n* { transition: none !important; animation: none !important; }\n")
	}

	return b.String()
}
