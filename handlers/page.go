package handlers

import (
	"fmt"
	"html"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobuffalo/plush"

	"github.com/RZeijlon/ResumeRobertZeijlon/assembler"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
	"github.com/RZeijlon/ResumeRobertZeijlon/theme"
)

const baseLayoutPath = "templates/layouts/base.plush.html"

// PageHandler renders the whole single-page site: sections assembled from
// the layout manifest, wrapped in the base plush layout.
func PageHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manifests, index, scripts, loadErr := app.snapshot()

		// The app has no meaningful partial-content mode: a failed initial
		// load blocks the whole page.
		if loadErr != nil || index.State() == content.StateFailed {
			err := loadErr
			if err == nil {
				err = index.Err()
			}
			renderErrorPage(w, err)
			return
		}
		if manifests == nil || index.State() != content.StateReady {
			renderErrorPage(w, fmt.Errorf("content is still loading"))
			return
		}

		sections := assembler.Assemble(manifests.Layout, index)
		rc := &assembler.RenderContext{Personal: manifests.Personal}

		var body strings.Builder
		for _, section := range sections {
			body.WriteString(string(app.Registry.Render(section, rc)))
		}

		projection, _ := app.Resolver.Projection()

		ctx := plush.NewContext()
		ctx.Set("title", manifests.Site.Meta.Title)
		ctx.Set("description", manifests.Site.Meta.Description)
		ctx.Set("author", manifests.Site.Meta.Author)
		ctx.Set("keywords", strings.Join(manifests.Site.Meta.Keywords, ", "))
		ctx.Set("navEntries", assembler.NavEntries(manifests.Layout))
		ctx.Set("matrixBackground", projection.MatrixBackground)
		ctx.Set("chatEnabled", manifests.Site.Features.ChatBot.Enabled)
		ctx.Set("appOrigin", app.Engine.Origin)

		var scriptPaths []string
		for _, path := range scripts {
			scriptPaths = append(scriptPaths, path)
		}
		ctx.Set("scripts", scriptPaths)

		ctx.Set("yield", template.HTML(body.String()))

		baseContent, err := os.ReadFile(filepath.FromSlash(baseLayoutPath))
		if err != nil {
			http.Error(w, fmt.Sprintf("Error reading base layout: %v", err), http.StatusInternalServerError)
			return
		}

		baseLayout, err := plush.Parse(string(baseContent))
		if err != nil {
			http.Error(w, fmt.Sprintf("Error parsing base layout: %v", err), http.StatusInternalServerError)
			return
		}

		pageHTML, err := baseLayout.Exec(ctx)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error executing base layout: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(pageHTML))
	}
}

// renderErrorPage is the blocking full-page error state, naming the failure.
func renderErrorPage(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Unable to load site</title></head>
<body class="load-error">
<h1>Unable to load site content</h1>
<p>%s</p>
<p>Please reload the page to try again.</p>
</body>
</html>`, html.EscapeString(err.Error()))
}

// ThemeCSSHandler serves the active theme and design tokens as a stylesheet
// of custom properties.
func ThemeCSSHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manifests, _, _, _ := app.snapshot()

		projection, ok := app.Resolver.Projection()
		if !ok {
			http.Error(w, "theme manifest not loaded", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		var css string
		if manifests != nil {
			css = theme.RenderCSS(projection, manifests.Design)
		} else {
			css = theme.RenderCSS(projection, nil)
		}
		w.Write([]byte(css))
	}
}
