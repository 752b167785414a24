package assembler

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
)

// RenderContext carries the flat configuration some renderers consume
// directly.
type RenderContext struct {
	Personal *config.PersonalInfo
}

// RenderFunc turns one resolved section into HTML.
type RenderFunc func(section RenderableSection, rc *RenderContext) template.HTML

// Registry dispatches on the component-type tag. Unknown tags render
// generically, so new section types are additive.
type Registry struct {
	renderers map[string]RenderFunc
	fallback  RenderFunc
}

// NewRegistry registers the built-in section renderers.
func NewRegistry() *Registry {
	r := &Registry{
		renderers: map[string]RenderFunc{},
		fallback:  renderGeneric,
	}
	r.Register("Hero", renderHero)
	r.Register("About", renderAbout)
	r.Register("SkillsGrid", renderSkillsGrid)
	r.Register("Philosophy", renderPhilosophy)
	r.Register("Projects", renderProjectsHeader)
	r.Register("ProjectGrid", renderProjectGrid)
	r.Register("Contact", renderContact)
	return r
}

func (r *Registry) Register(componentType string, fn RenderFunc) {
	r.renderers[componentType] = fn
}

func (r *Registry) Render(section RenderableSection, rc *RenderContext) template.HTML {
	if fn, ok := r.renderers[section.Component]; ok {
		return fn(section, rc)
	}
	return r.fallback(section, rc)
}

func markdownToHTML(body string) template.HTML {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	return template.HTML(markdown.ToHTML([]byte(body), p, nil))
}

func metaString(record *content.Record, key string) string {
	if record == nil {
		return ""
	}
	if v, ok := record.Metadata[key].(string); ok {
		return v
	}
	return ""
}

func widthClass(width string) string {
	if width == "dynamic" {
		return "dynamic-width"
	}
	return "full-width"
}

func renderHero(section RenderableSection, _ *RenderContext) template.HTML {
	if section.Content == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section id="%s" class="hero">`, html.EscapeString(section.ID))
	fmt.Fprintf(&b, `<div class="hero-title"><h1>%s</h1></div>`, html.EscapeString(metaString(section.Content, "title")))
	if subtitle := metaString(section.Content, "subtitle"); subtitle != "" {
		fmt.Fprintf(&b, `<div class="hero-text"><p>%s</p></div>`, html.EscapeString(subtitle))
	}
	if body := strings.TrimSpace(section.Content.Body); body != "" {
		fmt.Fprintf(&b, `<div class="hero-text">%s</div>`, markdownToHTML(body))
	}
	b.WriteString(`</section>`)
	return template.HTML(b.String())
}

func renderAbout(section RenderableSection, _ *RenderContext) template.HTML {
	if section.Content == nil {
		return ""
	}

	// The section heading comes from metadata; drop a duplicate top-level
	// markdown heading from the body.
	body := section.Content.Body
	if strings.HasPrefix(body, "# ") {
		if idx := strings.Index(body, "\n"); idx != -1 {
			body = strings.TrimSpace(body[idx+1:])
		} else {
			body = ""
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section id="%s" class="about">`, html.EscapeString(section.ID))
	fmt.Fprintf(&b, `<div class="about-header"><h2>%s</h2></div>`, html.EscapeString(metaString(section.Content, "title")))
	fmt.Fprintf(&b, `<div class="about-content"><div class="about-intro">%s</div></div>`, markdownToHTML(body))
	b.WriteString(`</section>`)
	return template.HTML(b.String())
}

func renderSkillsGrid(section RenderableSection, _ *RenderContext) template.HTML {
	if len(section.Contents) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id="%s" class="skills-grid %s">`, html.EscapeString(section.ID), widthClass(section.Width))
	for _, record := range SortByOrder(section.Contents) {
		fmt.Fprintf(&b, `<div class="skill-category">%s</div>`, markdownToHTML(record.Body))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderPhilosophy(section RenderableSection, _ *RenderContext) template.HTML {
	if section.Content == nil {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<div id="%s" class="philosophy-statement">%s</div>`,
		html.EscapeString(section.ID), markdownToHTML(section.Content.Body)))
}

func renderProjectsHeader(section RenderableSection, _ *RenderContext) template.HTML {
	title := metaString(section.Content, "title")
	if title == "" {
		title = "Featured Projects"
	}
	return template.HTML(fmt.Sprintf(
		`<section id="%s" class="projects"><div class="projects-header"><h2>%s</h2></div></section>`,
		html.EscapeString(section.ID), html.EscapeString(title)))
}

func renderProjectGrid(section RenderableSection, _ *RenderContext) template.HTML {
	if len(section.Contents) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div id="%s" class="project-grid">`, html.EscapeString(section.ID))
	for _, record := range SortByOrder(section.Contents) {
		b.WriteString(`<div class="project-card">`)
		if image := metaString(record, "image"); image != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s" class="project-image">`,
				html.EscapeString(image), html.EscapeString(metaString(record, "title")))
		}
		if title := metaString(record, "title"); title != "" {
			fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(title))
		}
		fmt.Fprintf(&b, `<div class="project-body">%s</div>`, markdownToHTML(record.Body))
		if tech := metaString(record, "tech"); tech != "" {
			fmt.Fprintf(&b, `<p class="project-tech">%s</p>`, html.EscapeString(tech))
		}
		if link := metaString(record, "link"); link != "" {
			fmt.Fprintf(&b, `<a href="%s" class="project-link">View project</a>`, html.EscapeString(link))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderContact(section RenderableSection, rc *RenderContext) template.HTML {
	if rc == nil || rc.Personal == nil {
		return ""
	}
	info := rc.Personal

	var b strings.Builder
	fmt.Fprintf(&b, `<section id="%s" class="contact">`, html.EscapeString(section.ID))
	if section.Content != nil {
		fmt.Fprintf(&b, `<div class="contact-header"><h2>%s</h2></div>`,
			html.EscapeString(metaString(section.Content, "title")))
		fmt.Fprintf(&b, `<div class="contact-intro">%s</div>`, markdownToHTML(section.Content.Body))
	}
	b.WriteString(`<ul class="contact-details">`)
	if info.Email != "" {
		fmt.Fprintf(&b, `<li><a href="mailto:%s">%s</a></li>`, html.EscapeString(info.Email), html.EscapeString(info.Email))
	}
	if info.Phone != "" {
		fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(info.Phone))
	}
	if info.Location != "" {
		fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(info.Location))
	}
	if u := info.Social.LinkedIn.URL; u != "" {
		fmt.Fprintf(&b, `<li><a href="%s">LinkedIn</a></li>`, html.EscapeString(u))
	}
	if u := info.Social.GitHub.URL; u != "" {
		fmt.Fprintf(&b, `<li><a href="%s">GitHub</a></li>`, html.EscapeString(u))
	}
	b.WriteString(`</ul></section>`)
	return template.HTML(b.String())
}

// renderGeneric is the fixed fallback for unknown component types: a single
// record becomes a plain document view, multiple records a list of document
// views, neither renders nothing.
func renderGeneric(section RenderableSection, _ *RenderContext) template.HTML {
	switch {
	case section.Content != nil:
		return template.HTML(fmt.Sprintf(`<article id="%s" class="document">%s</article>`,
			html.EscapeString(section.ID), markdownToHTML(section.Content.Body)))
	case len(section.Contents) > 0:
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="document-list">`, html.EscapeString(section.ID))
		for _, record := range SortByOrder(section.Contents) {
			fmt.Fprintf(&b, `<article class="document">%s</article>`, markdownToHTML(record.Body))
		}
		b.WriteString(`</div>`)
		return template.HTML(b.String())
	default:
		return ""
	}
}
