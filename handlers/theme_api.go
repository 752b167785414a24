package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/RZeijlon/ResumeRobertZeijlon/theme"
)

// themeState is the JSON surface of the resolver for the switcher widget.
type themeState struct {
	ActiveID          string         `json:"activeId"`
	IsDarkMode        bool           `json:"isDarkMode"`
	AnimationsEnabled bool           `json:"animationsEnabled"`
	Themes            []theme.Option `json:"themes"`
}

func writeThemeState(w http.ResponseWriter, app *App) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(themeState{
		ActiveID:          app.Resolver.ActiveID(),
		IsDarkMode:        app.Resolver.IsDarkMode(),
		AnimationsEnabled: app.Resolver.AnimationsEnabled(),
		Themes:            app.Resolver.AvailableThemes(),
	})
}

func ThemeStateHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeThemeState(w, app)
	}
}

func ThemeSwitchHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			http.Error(w, "missing theme id", http.StatusBadRequest)
			return
		}

		app.Resolver.SwitchTheme(req.ID)
		writeThemeState(w, app)
	}
}

func ThemeToggleDarkHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.Resolver.ToggleDarkMode()
		writeThemeState(w, app)
	}
}

func ThemeToggleAnimationsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.Resolver.ToggleAnimations()
		writeThemeState(w, app)
	}
}

func ThemeCustomHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name   string            `json:"name"`
			Colors map[string]string `json:"colors"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Colors) == 0 {
			http.Error(w, "missing colors", http.StatusBadRequest)
			return
		}

		app.Resolver.CreateOverrideTheme(req.Colors, req.Name)
		writeThemeState(w, app)
	}
}
