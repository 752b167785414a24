package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RZeijlon/ResumeRobertZeijlon/handlers"
	"github.com/RZeijlon/ResumeRobertZeijlon/utils"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Building static site...")

		app, err := loadApp(context.Background())
		if err != nil {
			return fmt.Errorf("loading site content: %w", err)
		}

		router, err := handlers.SetupRouter(app)
		if err != nil {
			return fmt.Errorf("setting up router: %w", err)
		}

		if err := os.MkdirAll("./public", os.ModePerm); err != nil {
			return fmt.Errorf("creating public directory: %w", err)
		}

		// Copy static files
		err = filepath.Walk("./static", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				destPath := filepath.Join("public", path)
				if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
					return err
				}
				fmt.Printf("%s -> %s\n", path, destPath)
				return copyFile(path, destPath)
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("copying static files: %w", err)
		}

		// Render through a live server so the output matches serve mode.
		server := httptest.NewServer(router)
		defer server.Close()

		pages := map[string]string{
			"/":          "index.html",
			"/theme.css": "theme.css",
		}
		for route, outFile := range pages {
			if err := generateStaticPage(server, route, outFile); err != nil {
				return fmt.Errorf("generating %s: %w", route, err)
			}
		}

		var sectionIDs []string
		for _, entry := range app.NavEntries() {
			sectionIDs = append(sectionIDs, entry.ID)
		}
		if err := utils.GenerateSitemaps(app.Engine.Origin, sectionIDs, "public"); err != nil {
			return fmt.Errorf("generating sitemap: %w", err)
		}

		fmt.Println("Static site generated successfully in the ./public directory")
		return nil
	},
}

func generateStaticPage(server *httptest.Server, route, outFile string) error {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("route %s returned status %d", route, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	filePath := filepath.Join("public", outFile)
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return err
	}

	fmt.Printf("Generated %s\n", filePath)
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, input, 0644)
}
