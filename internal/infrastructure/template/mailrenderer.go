// Package template renders mail views with liquid. Default views are
// embedded in the binary; files in the override directory replace them.
package template

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/osteele/liquid"

	"github.com/cragbase/cragbase/internal/application/mailer"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

//go:embed templates/mailers
var embedded embed.FS

const (
	embeddedRoot = "templates/mailers"
	extension    = ".liquid"
	layoutsDir   = "layouts"
)

var formats = []string{"html", "text"}

// MailRenderer implements mailer.Renderer. Templates are named
// <mailer>/<action>.<format>.liquid and layouts
// layouts/<layout>.<format>.liquid, where format is html or text.
type MailRenderer struct {
	translator *i18n.Translator
	path       string
	logger     logger.Interface

	mu        sync.RWMutex
	templates map[string]string // name without extension -> source
}

func NewMailRenderer(translator *i18n.Translator, overridePath string, logger logger.Interface) *MailRenderer {
	return &MailRenderer{
		translator: translator,
		path:       overridePath,
		logger:     logger,
		templates:  make(map[string]string),
	}
}

// Load reads the embedded views, then any overrides.
func (r *MailRenderer) Load() error {
	templates := make(map[string]string)

	root, err := fs.Sub(embedded, embeddedRoot)
	if err != nil {
		return fmt.Errorf("failed to open embedded mail templates: %w", err)
	}
	if err := collect(root, templates); err != nil {
		return fmt.Errorf("failed to load embedded mail templates: %w", err)
	}
	builtin := len(templates)

	overridden := 0
	if r.path != "" {
		if _, err := os.Stat(r.path); os.IsNotExist(err) {
			r.logger.Debugw("mail template directory not found, using built-in views", "path", r.path)
		} else {
			before := make(map[string]string, len(templates))
			for k, v := range templates {
				before[k] = v
			}
			if err := collect(os.DirFS(r.path), templates); err != nil {
				return fmt.Errorf("failed to load mail templates from %s: %w", r.path, err)
			}
			for name, src := range templates {
				if before[name] != src {
					overridden++
				}
			}
		}
	}

	r.mu.Lock()
	r.templates = templates
	r.mu.Unlock()

	r.logger.Infow("mail templates loaded",
		"builtin", builtin,
		"overridden", overridden,
		"total", len(templates),
	)
	return nil
}

func collect(fsys fs.FS, into map[string]string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != extension {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		into[strings.TrimSuffix(filepath.ToSlash(p), extension)] = string(content)
		return nil
	})
}

// Render produces the HTML and text parts of view. At least one part must
// have a template; a missing layout for a part renders the body alone.
func (r *MailRenderer) Render(ctx context.Context, view mailer.View) (*mailer.Rendered, error) {
	tr := r.translator.FromContext(ctx)
	if view.Locale != "" {
		tr = r.translator.ForLocale(view.Locale)
	}
	engine := r.newEngine(tr, view.Data)

	out := make(map[string]string, len(formats))
	for _, format := range formats {
		body, ok := r.lookup(path.Join(view.Mailer, view.Action) + "." + format)
		if !ok {
			continue
		}

		rendered, err := render(engine, body, view.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s/%s.%s: %w", view.Mailer, view.Action, format, err)
		}

		if view.Layout != "" {
			if layout, ok := r.lookup(path.Join(layoutsDir, view.Layout) + "." + format); ok {
				bindings := i18n.ReverseMerge(i18n.Options{"content": rendered}, view.Data)
				rendered, err = render(engine, layout, bindings)
				if err != nil {
					return nil, fmt.Errorf("failed to render layout %s.%s: %w", view.Layout, format, err)
				}
			}
		}

		out[format] = strings.TrimSpace(rendered)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no mail template for %s/%s", view.Mailer, view.Action)
	}

	return &mailer.Rendered{HTML: out["html"], Text: out["text"]}, nil
}

// newEngine builds an engine whose t filter translates through tr with the
// view data as interpolation variables.
func (r *MailRenderer) newEngine(tr *i18n.Translator, data map[string]any) *liquid.Engine {
	engine := liquid.NewEngine()
	engine.RegisterFilter("t", func(key string) (string, error) {
		return tr.T(key, i18n.Options(data))
	})
	return engine
}

func render(engine *liquid.Engine, source string, bindings map[string]any) (string, error) {
	return engine.ParseAndRenderString(source, liquid.Bindings(bindings))
}

func (r *MailRenderer) lookup(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.templates[name]
	return src, ok
}

// HasTemplate reports whether a template or layout is loaded under name,
// e.g. "test_mailer/test_email.html".
func (r *MailRenderer) HasTemplate(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// LoadedTemplates lists the loaded template names.
func (r *MailRenderer) LoadedTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
