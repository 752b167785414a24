package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
	"github.com/RZeijlon/ResumeRobertZeijlon/handlers"
	"github.com/RZeijlon/ResumeRobertZeijlon/javascript"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site engine with themed sections and a chat widget",
	Long: `A content-driven portfolio site. Sections, themes and design tokens are
described by JSON manifests and Markdown files under the content root; the
engine resolves them into a themed single page, serves it, and proxies the
chat widget to the conversational API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "site.yaml", "engine config file")
}

// loadApp builds the application from the engine config: manifests and
// content are fetched, client scripts bundled. The load error is returned
// alongside the app so serve can keep going with the error page.
func loadApp(ctx context.Context) (*handlers.App, error) {
	engine, err := config.LoadEngine(cfgFile)
	if err != nil {
		return nil, err
	}

	app := handlers.NewApp(engine)
	loadErr := app.Load(ctx)

	if len(engine.JavascriptTargets) > 0 {
		scripts, err := javascript.CompileTargets(engine.JavascriptTargets)
		if err != nil {
			return app, err
		}
		app.SetScripts(scripts)
	}

	return app, loadErr
}
