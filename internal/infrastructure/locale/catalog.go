// Package locale is the localization engine behind i18n.Translator. It loads
// YAML message files (one top-level key per locale, nested keys joined with
// dots), negotiates locales with golang.org/x/text/language, picks plural
// forms with CLDR rules and interpolates {{ variables }} with liquid. Default
// texts supplied by callers only get plain placeholder substitution.
package locale

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/osteele/liquid"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// ErrMissingTranslation is returned when a key exists in neither the
// requested nor the default locale and no default was supplied.
var ErrMissingTranslation = errors.New("translation missing")

// entry is either a plain message or a set of plural forms.
type entry struct {
	text   string
	plural map[string]string
}

type Catalog struct {
	path       string
	defaultTag language.Tag
	engine     *liquid.Engine
	logger     logger.Interface

	mu       sync.RWMutex
	tags     []language.Tag
	matcher  language.Matcher
	messages map[string]map[string]entry
}

// NewCatalog loads every *.yml / *.yaml file under path.
func NewCatalog(path, defaultLocale string, log logger.Interface) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	c := &Catalog{
		path:       path,
		defaultTag: tag,
		engine:     liquid.NewEngine(),
		logger:     log,
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}

	return c, nil
}

// Reload re-reads the locale directory and swaps the loaded messages atomically.
func (c *Catalog) Reload() error {
	files, err := localeFiles(c.path)
	if err != nil {
		return err
	}

	messages := make(map[string]map[string]entry)
	for _, file := range files {
		if err := loadFile(file, messages); err != nil {
			return err
		}
	}

	tags := []language.Tag{c.defaultTag}
	for name := range messages {
		if name != c.defaultTag.String() {
			tags = append(tags, language.Make(name))
		}
	}
	sort.Slice(tags[1:], func(i, j int) bool { return tags[i+1].String() < tags[j+1].String() })

	c.mu.Lock()
	c.messages = messages
	c.tags = tags
	c.matcher = language.NewMatcher(tags)
	c.mu.Unlock()

	c.logger.Infow("locales loaded", "path", c.path, "locales", len(messages), "files", len(files))
	return nil
}

func localeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func loadFile(file string, into map[string]map[string]entry) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	for name, tree := range doc {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("invalid locale %q in %s: %w", name, file, err)
		}
		key := tag.String()
		if into[key] == nil {
			into[key] = make(map[string]entry)
		}
		if node, ok := tree.(map[string]any); ok {
			flatten("", node, into[key])
		}
	}
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]entry) {
	if forms, ok := pluralForms(node); ok && prefix != "" {
		out[prefix] = entry{plural: forms}
		return
	}

	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = entry{text: fmt.Sprint(val)}
		}
	}
}

// Lookup implements i18n.Lookup.
func (c *Catalog) Lookup(key string, opts i18n.Options) (string, error) {
	tag := c.resolveTag(opts[i18n.KeyLocale])

	c.mu.RLock()
	e, found := c.messages[tag.String()][key]
	if !found {
		e, found = c.messages[c.defaultTag.String()][key]
	}
	c.mu.RUnlock()

	var text string
	switch {
	case found && e.plural != nil:
		text = selectPlural(tag, e.plural, opts[i18n.KeyCount])
	case found:
		text = e.text
	default:
		def, ok := opts[i18n.KeyDefault].(string)
		if !ok {
			return "", fmt.Errorf("%w: %s.%s", ErrMissingTranslation, tag, key)
		}
		return substitute(def, opts), nil
	}

	return c.interpolate(text, opts)
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// substitute replaces bare {{ name }} placeholders in caller-supplied text.
// Anything else, liquid tags included, is left as literal text.
func substitute(text string, opts i18n.Options) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		v, ok := opts[name]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	})
}

func (c *Catalog) interpolate(text string, opts i18n.Options) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	out, err := c.engine.ParseAndRenderString(text, liquid.Bindings(opts))
	if err != nil {
		return "", fmt.Errorf("failed to interpolate translation: %w", err)
	}
	return out, nil
}

func (c *Catalog) resolveTag(v any) language.Tag {
	switch l := v.(type) {
	case language.Tag:
		return c.match(l)
	case string:
		if l == "" {
			return c.defaultTag
		}
		tag, err := language.Parse(l)
		if err != nil {
			return c.defaultTag
		}
		return c.match(tag)
	default:
		return c.defaultTag
	}
}

func (c *Catalog) match(tags ...language.Tag) language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultTag
	}
	return c.tags[idx]
}

// MatchLocale negotiates an Accept-Language header against the loaded
// locales and returns the best match, or the default locale.
func (c *Catalog) MatchLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultTag.String()
	}
	return c.match(tags...).String()
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultTag.String()
}

// Locales lists the locales currently loaded.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.messages))
	for name := range c.messages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Path returns the directory the catalog was loaded from.
func (c *Catalog) Path() string {
	return c.path
}
