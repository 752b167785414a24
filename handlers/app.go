package handlers

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/RZeijlon/ResumeRobertZeijlon/assembler"
	"github.com/RZeijlon/ResumeRobertZeijlon/chat"
	"github.com/RZeijlon/ResumeRobertZeijlon/config"
	"github.com/RZeijlon/ResumeRobertZeijlon/content"
	"github.com/RZeijlon/ResumeRobertZeijlon/theme"
)

// Manifest paths under the content root. Fixed, convention-based contract
// shared with the content authors.
const (
	siteManifestPath     = "config/site.json"
	themeManifestPath    = "config/theme.json"
	layoutManifestPath   = "config/layout.json"
	designManifestPath   = "config/design.json"
	personalManifestPath = "personal/contact-info.json"
)

// App owns the loaded manifests, the content index, the theme resolver and
// the chat sessions. The index is rebuilt wholesale on Reload; everything
// else mutates only through the resolver or the session table.
type App struct {
	Engine   *config.Engine
	Resolver *theme.Resolver
	Registry *assembler.Registry

	mu        sync.RWMutex
	manifests *config.Manifests
	index     *content.Index
	scripts   map[string]string
	loadErr   error

	chatClient *chat.Client
	sessionMu  sync.Mutex
	sessions   map[string]*chat.Session
}

func NewApp(engine *config.Engine) *App {
	return &App{
		Engine:     engine,
		Resolver:   theme.NewResolver(theme.NewStore(engine.PreferencesFile)),
		Registry:   assembler.NewRegistry(),
		index:      content.NewIndex(),
		chatClient: chat.NewClient(engine.ChatEndpoint),
		sessions:   map[string]*chat.Session{},
		scripts:    map[string]string{},
	}
}

// Load fetches the five manifests concurrently, hands the theme manifest to
// the resolver and builds the content index. Manifests always load before
// any content fetch is issued: the layout manifest decides which files to
// request. A failure leaves the index in its terminal failed state; the
// page handler presents that as a blocking error page.
func (a *App) Load(ctx context.Context) error {
	loader := content.NewLoader(content.NewFetcher(a.Engine.ContentRoot))

	manifests := &config.Manifests{
		Site:     &config.SiteSettings{},
		Theme:    &config.ThemeManifest{},
		Layout:   &config.LayoutManifest{},
		Design:   &config.DesignTokens{},
		Personal: &config.PersonalInfo{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loader.LoadConfig(gctx, siteManifestPath, manifests.Site) })
	g.Go(func() error { return loader.LoadConfig(gctx, themeManifestPath, manifests.Theme) })
	g.Go(func() error { return loader.LoadConfig(gctx, layoutManifestPath, manifests.Layout) })
	g.Go(func() error { return loader.LoadConfig(gctx, designManifestPath, manifests.Design) })
	g.Go(func() error { return loader.LoadConfig(gctx, personalManifestPath, manifests.Personal) })

	index := content.NewIndex()

	if err := g.Wait(); err != nil {
		a.setState(manifests, index, err)
		return err
	}

	if err := config.ValidateLayout(manifests.Layout); err != nil {
		a.setState(manifests, index, err)
		return err
	}

	a.Resolver.SetManifest(manifests.Theme)

	if err := index.Build(ctx, loader, manifests.Layout, manifests.Site); err != nil {
		a.setState(manifests, index, err)
		return err
	}

	a.setState(manifests, index, nil)
	return nil
}

func (a *App) setState(manifests *config.Manifests, index *content.Index, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.manifests = manifests
	a.index = index
	a.loadErr = err
}

// Reload rebuilds manifests and index from scratch. Used by the serve
// command when the content root changes on disk.
func (a *App) Reload(ctx context.Context) error {
	err := a.Load(ctx)
	if err != nil {
		log.Printf("reload failed: %v", err)
	}
	return err
}

// SetScripts records the compiled client script paths for the page shell.
func (a *App) SetScripts(scripts map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scripts = scripts
}

func (a *App) snapshot() (*config.Manifests, *content.Index, map[string]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.manifests, a.index, a.scripts, a.loadErr
}

// NavEntries derives the navigation from the loaded layout manifest.
func (a *App) NavEntries() []assembler.NavEntry {
	manifests, _, _, _ := a.snapshot()
	if manifests == nil || manifests.Layout == nil {
		return nil
	}
	return assembler.NavEntries(manifests.Layout)
}
