package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ajgould/bookdeck/internal/catalog"
	"github.com/ajgould/bookdeck/internal/config"
	"github.com/ajgould/bookdeck/internal/prefs"
	"github.com/ajgould/bookdeck/internal/state"
	"github.com/ajgould/bookdeck/internal/ui"
)

// Options configure the bookdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookdeck/prefs.toml
	APIURL     string // overrides config and environment when set
}

// Run boots the bookdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if override := strings.TrimSpace(opts.APIURL); override != "" {
		cfg.APIURL = override
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := &state.Store{}

	return ui.Run(ui.Options{
		Context:    ctx,
		Client:     client,
		Store:      store,
		BackendURL: cfg.APIURL,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}
