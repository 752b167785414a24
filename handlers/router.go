package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RZeijlon/ResumeRobertZeijlon/utils"
)

// SetupRouter wires the page, the theme and chat APIs, static files and the
// sitemap onto a mux router.
func SetupRouter(app *App) (*mux.Router, error) {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(Custom404Handler)

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	router.HandleFunc("/", PageHandler(app)).Methods("GET")
	router.HandleFunc("/theme.css", ThemeCSSHandler(app)).Methods("GET")

	router.HandleFunc("/api/v1/theme", ThemeStateHandler(app)).Methods("GET")
	router.HandleFunc("/api/v1/theme/switch", ThemeSwitchHandler(app)).Methods("POST")
	router.HandleFunc("/api/v1/theme/toggle-dark", ThemeToggleDarkHandler(app)).Methods("POST")
	router.HandleFunc("/api/v1/theme/toggle-animations", ThemeToggleAnimationsHandler(app)).Methods("POST")
	router.HandleFunc("/api/v1/theme/custom", ThemeCustomHandler(app)).Methods("POST")

	router.HandleFunc("/api/v1/chat/message", ChatMessageHandler(app)).Methods("POST")
	router.HandleFunc("/api/v1/chat/welcome", ChatWelcomeHandler(app)).Methods("GET")

	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		var sectionIDs []string
		for _, entry := range app.NavEntries() {
			sectionIDs = append(sectionIDs, entry.ID)
		}
		sitemap, err := utils.GenerateSitemapContent(app.Engine.Origin, sectionIDs)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(sitemap))
	}).Methods("GET")

	return router, nil
}
