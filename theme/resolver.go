package theme

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
)

// Definition is a resolved theme: palette plus effect flags.
type Definition = config.Theme

// Built-in theme identifiers. Custom names the user-defined override; it is
// never present in the theme manifest.
const (
	DefaultDark  = "default-dark"
	DefaultLight = "default-light"
	HighContrast = "high-contrast"
	Custom       = "custom"
)

// State tracks theme application. Uninitialized until the manifest arrives,
// then Applying on every switch until the variables are projected.
type State int

const (
	StateUninitialized State = iota
	StateApplying
	StateApplied
)

// Option is one switchable entry for theme pickers.
type Option struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// Resolver owns the active theme, merges it with user overrides and projects
// the result. All mutations run through the resolver; observers receive the
// projection after every successful application.
type Resolver struct {
	mu        sync.Mutex
	store     *Store
	manifest  *config.ThemeManifest
	state     State
	activeID  string
	custom    *Definition
	darkMode  bool
	anims     bool
	observers []func(Projection)
}

// NewResolver seeds state from the preference store. Corrupt persisted
// values are silently replaced by defaults.
func NewResolver(store *Store) *Resolver {
	r := &Resolver{
		store:    store,
		state:    StateUninitialized,
		activeID: DefaultDark,
		darkMode: true,
		anims:    true,
	}

	if saved := store.GetString(keyTheme); saved != "" {
		r.activeID = saved
	}
	if saved := store.GetString(keyCustomTheme); saved != "" {
		var def Definition
		if err := json.Unmarshal([]byte(saved), &def); err != nil {
			log.Printf("theme: discarding corrupt saved custom theme: %v", err)
		} else {
			r.custom = &def
		}
	}
	if saved, ok := store.GetBool(keyDarkMode); ok {
		r.darkMode = saved
	}
	if saved, ok := store.GetBool(keyAnimations); ok {
		r.anims = saved
	}

	return r
}

// Observe registers a callback invoked with the projection on every
// application.
func (r *Resolver) Observe(fn func(Projection)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// SetManifest hands the resolver the loaded theme manifest and applies the
// active theme. Operations called before this point only mutate state; no
// variables are written until the manifest arrives.
func (r *Resolver) SetManifest(manifest *config.ThemeManifest) {
	r.mu.Lock()
	r.manifest = manifest
	r.mu.Unlock()
	r.apply()
}

// SwitchTheme activates the given identifier. For built-in themes the dark
// flag is recomputed; the override keeps its own stored flag.
func (r *Resolver) SwitchTheme(id string) {
	r.mu.Lock()
	r.activeID = id
	r.store.Set(keyTheme, id)

	if id != Custom {
		r.darkMode = id == DefaultDark || id == HighContrast
		r.store.Set(keyDarkMode, r.darkMode)
	}
	r.mu.Unlock()

	r.apply()
}

// ToggleDarkMode flips between the two default identifiers. Toggling is
// undefined for arbitrary user palettes, so it is a no-op on the override.
func (r *Resolver) ToggleDarkMode() {
	r.mu.Lock()
	if r.activeID == Custom {
		r.mu.Unlock()
		return
	}
	dark := r.darkMode
	r.mu.Unlock()

	if dark {
		r.SwitchTheme(DefaultLight)
	} else {
		r.SwitchTheme(DefaultDark)
	}
}

// ToggleAnimations flips the user preference, independent of theme identity.
func (r *Resolver) ToggleAnimations() {
	r.mu.Lock()
	r.anims = !r.anims
	r.store.Set(keyAnimations, r.anims)
	r.mu.Unlock()

	r.apply()
}

// CreateOverrideTheme stores a user-authored palette and switches to it. The
// matrix background follows the darkness of the darkest slot.
func (r *Resolver) CreateOverrideTheme(colors map[string]string, name string) {
	if name == "" {
		name = "Custom Theme"
	}

	def := Definition{
		Name:   name,
		Colors: colors,
		Effects: config.ThemeEffects{
			MatrixBackground: !IsLightColor(colors[SlotDarkerBackground]),
			Animations:       true,
		},
	}

	r.mu.Lock()
	r.custom = &def
	r.activeID = Custom
	if raw, err := json.Marshal(def); err == nil {
		r.store.Set(keyCustomTheme, string(raw))
	}
	r.store.Set(keyTheme, Custom)
	r.mu.Unlock()

	r.apply()
}

// EffectiveTheme resolves the active definition with the animation toggle
// folded in: effective animations = preference AND theme flag. Theme returns
// false until the manifest has loaded.
func (r *Resolver) EffectiveTheme() (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.effectiveLocked()
}

func (r *Resolver) effectiveLocked() (Definition, bool) {
	if r.manifest == nil {
		return Definition{}, false
	}

	def, ok := r.resolveLocked()
	if !ok {
		return Definition{}, false
	}

	def.Effects.Animations = r.anims && def.Effects.Animations
	return def, true
}

// resolveLocked picks the active definition. An active override identifier
// with no stored override, or an identifier missing from the manifest, falls
// back to the default dark theme.
func (r *Resolver) resolveLocked() (Definition, bool) {
	if r.activeID == Custom && r.custom != nil {
		return *r.custom, true
	}

	id := r.activeID
	if id == Custom {
		id = DefaultDark
	}
	if def, ok := r.manifest.Themes[id]; ok {
		return def, true
	}
	def, ok := r.manifest.Themes[DefaultDark]
	return def, ok
}

// apply projects the effective theme and notifies observers.
func (r *Resolver) apply() {
	r.mu.Lock()
	if r.manifest == nil {
		r.mu.Unlock()
		return
	}
	r.state = StateApplying

	def, ok := r.effectiveLocked()
	if !ok {
		r.mu.Unlock()
		return
	}

	projection := Project(def)
	r.state = StateApplied
	observers := make([]func(Projection), len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(projection)
	}
}

// Projection returns the current projection, false before the manifest has
// loaded.
func (r *Resolver) Projection() (Projection, bool) {
	def, ok := r.EffectiveTheme()
	if !ok {
		return Projection{}, false
	}
	return Project(def), true
}

// AvailableThemes lists built-in themes (sorted by identifier for stable
// presentation) plus the override when one exists.
func (r *Resolver) AvailableThemes() []Option {
	r.mu.Lock()
	defer r.mu.Unlock()

	var options []Option
	if r.manifest != nil {
		ids := make([]string, 0, len(r.manifest.Themes))
		for id := range r.manifest.Themes {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			def := r.manifest.Themes[id]
			options = append(options, Option{ID: id, Name: def.Name, Colors: def.Colors})
		}
	}
	if r.custom != nil {
		options = append(options, Option{ID: Custom, Name: r.custom.Name, Colors: r.custom.Colors})
	}
	return options
}

func (r *Resolver) ActiveID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeID
}

func (r *Resolver) IsDarkMode() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.darkMode
}

func (r *Resolver) AnimationsEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anims
}

func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
