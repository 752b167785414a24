package handlers

import (
	"html/template"
	"net/http"
	"os"

	"github.com/gobuffalo/plush"

	"github.com/RZeijlon/ResumeRobertZeijlon/assembler"
)

func Custom404Handler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)

	ctx := plush.NewContext()

	notFoundContent, err := renderPlushFile("templates/404.plush.html", ctx)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx.Set("yield", template.HTML(notFoundContent))
	ctx.Set("title", "Page not found")
	ctx.Set("description", "")
	ctx.Set("author", "")
	ctx.Set("keywords", "")
	ctx.Set("navEntries", []assembler.NavEntry{})
	ctx.Set("matrixBackground", false)
	ctx.Set("chatEnabled", false)
	ctx.Set("appOrigin", "")
	ctx.Set("scripts", []string{})

	pageHTML, err := renderPlushFile(baseLayoutPath, ctx)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Write([]byte(pageHTML))
}

func renderPlushFile(path string, ctx *plush.Context) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	tmpl, err := plush.Parse(string(raw))
	if err != nil {
		return "", err
	}

	return tmpl.Exec(ctx)
}
