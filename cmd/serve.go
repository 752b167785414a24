package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/RZeijlon/ResumeRobertZeijlon/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		fmt.Printf("Starting server on port %s\n", port)

		ctx := context.Background()
		app, err := loadApp(ctx)
		if app == nil {
			return err
		}
		if err != nil {
			// Served as the blocking error page; a content fix plus
			// reload (or a file change in watch mode) recovers.
			log.Printf("initial load failed: %v", err)
		}

		router, err := handlers.SetupRouter(app)
		if err != nil {
			return err
		}

		if watcher := watchContent(ctx, app); watcher != nil {
			defer watcher.Close()
		}

		log.Fatal(http.ListenAndServe(":"+port, router))
		return nil
	},
}

// watchContent rebuilds the index when the local content root changes.
// Remote content roots are not watched. Events are debounced so one save
// triggers one rebuild.
func watchContent(ctx context.Context, app *handlers.App) *fsnotify.Watcher {
	root := app.Engine.ContentRoot
	if strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://") {
		return nil
	}
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("file watcher unavailable: %v", err)
		return nil
	}

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.IsDir() {
			watcher.Add(path)
		}
		return nil
	})

	go func() {
		var rebuildTimer *time.Timer
		debounce := 500 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())
					if rebuildTimer != nil {
						rebuildTimer.Stop()
					}
					rebuildTimer = time.AfterFunc(debounce, func() {
						log.Println("Rebuilding content index...")
						if err := app.Reload(ctx); err == nil {
							log.Println("Rebuild successful.")
						}
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watcher error: %v", err)
			}
		}
	}()

	return watcher
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
