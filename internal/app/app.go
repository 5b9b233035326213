package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/config"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/i18n"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/logging"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/metrics"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/prefs"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/server"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/ui"
)

// Options configure the presenter.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/covid-presenter/prefs.toml
	DeckPath   string // overrides deck_file
	Language   string // overrides the saved language
}

// Session is everything a presenter run shares between its drivers.
type Session struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Language  i18n.Language
	Catalog   *i18n.Catalog
	Machine   *navigation.Machine
	Metrics   *metrics.Collector

	// active mirrors the UI language for the remote API's goroutines.
	active *atomic.String
}

// Run boots the terminal presenter until the user quits or the context is
// cancelled. The remote API and auto-advance run alongside it when enabled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog := openLog(cfg)
	defer closeLog()

	sess, err := NewSession(cfg, opts, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.RemoteEnabled {
		srv := server.New(sess.Machine, server.Options{
			Metrics:   sess.Metrics,
			Logger:    logger,
			Direction: sess.Direction,
		})
		defer srv.Close()
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.APIBind); err != nil {
				logger.Error("remote api stopped", "error", err)
			}
		}()
	}

	StartAdvancer(ctx, sess.Machine, cfg.AutoAdvance, logger)

	final, err := ui.Run(ui.Options{
		Context:        ctx,
		Machine:        sess.Machine,
		Catalog:        sess.Catalog,
		Language:       sess.Language,
		ThemeName:      sess.Prefs.Theme,
		SwipeThreshold: cfg.SwipeThreshold,
		PrefsPath:      sess.PrefsPath,
		OnLanguage:     sess.SetLanguage,
		Logger:         logger,
	})
	sess.SetLanguage(final.Language())
	sess.Prefs.Theme = final.ThemeName()
	if saveErr := sess.SavePrefs(); saveErr != nil {
		logger.Warn("save prefs failed", "error", saveErr)
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Serve runs the remote API without a terminal UI, logging to w.
func Serve(ctx context.Context, opts Options, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(w, logging.ParseLevel(cfg.LogLevel))

	sess, err := NewSession(cfg, opts, logger)
	if err != nil {
		return err
	}

	srv := server.New(sess.Machine, server.Options{
		Metrics:   sess.Metrics,
		Logger:    logger,
		Direction: sess.Direction,
	})
	defer srv.Close()

	StartAdvancer(ctx, sess.Machine, cfg.AutoAdvance, logger)
	logger.Info("presenter serving", "slides", sess.Machine.TotalSlides(), "start", sess.Machine.State().SlideID)
	return srv.ListenAndServe(ctx, cfg.APIBind)
}

// NewSession loads preferences and the deck and builds the machine.
func NewSession(cfg config.Config, opts Options, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	reg, err := LoadDeck(cfg, opts.DeckPath)
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	langName := strings.TrimSpace(opts.Language)
	if langName == "" {
		langName = userPrefs.Language
	}

	machineOpts := []navigation.Option{navigation.WithStart(userPrefs.LastSlide)}
	if cfg.StrictNavigation {
		machineOpts = append(machineOpts, navigation.WithStrict(logger))
	}
	machine := navigation.New(reg, machineOpts...)

	collector := metrics.New()
	collector.Attach(machine)

	lang := i18n.ParseLanguage(langName)
	return &Session{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Language:  lang,
		Catalog:   catalog,
		Machine:   machine,
		Metrics:   collector,
		active:    atomic.NewString(string(lang)),
	}, nil
}

// SetLanguage records the language the presenter switched to.
func (s *Session) SetLanguage(l i18n.Language) {
	s.Language = l
	s.active.Store(string(l))
}

// Direction is the reading direction of the active language. It is safe to
// call from any goroutine.
func (s *Session) Direction() gesture.Direction {
	return i18n.Language(s.active.Load()).Direction()
}

// LoadDeck returns the deck named by override, then deck_file, then the
// built-in deck.
func LoadDeck(cfg config.Config, override string) (*deck.Registry, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = cfg.DeckFile
	}
	if path == "" {
		return deck.Default(), nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve deck path: %w", err)
	}
	reg, err := deck.LoadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", expanded, err)
	}
	return reg, nil
}

// SavePrefs records the theme, language and current slide.
func (s *Session) SavePrefs() error {
	s.Prefs.Language = string(s.Language)
	s.Prefs.LastSlide = s.Machine.State().SlideID
	return prefs.Save(s.PrefsPath, s.Prefs)
}

// openLog opens the configured log file. The TUI owns the terminal, so a
// log file that cannot be opened silences logging instead of failing.
func openLog(cfg config.Config) (*slog.Logger, func()) {
	logger, file, err := logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return logging.NewNop(), func() {}
	}
	return logger, func() { _ = file.Close() }
}
