// Package i18n provides a YAML-backed message catalog implementing
// render.Translator. Locale negotiation uses golang.org/x/text/language so a
// request for "es-AR" is served by "es" and unknown locales fall back to the
// catalog default.
package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-listingwizard/pkg/render"
)

//go:embed locales.yaml
var defaultLocalesYAML []byte

// ErrMissingKey is returned when no locale in the fallback chain defines key.
var ErrMissingKey = errors.New("i18n: missing key")

// Catalog stores messages per locale.
type Catalog struct {
	mu            sync.RWMutex
	messages      map[language.Tag]map[string]string
	defaultLocale language.Tag
	matcher       language.Matcher
	tags          []language.Tag
}

var _ render.Translator = (*Catalog)(nil)

// NewCatalog creates an empty catalog whose fallback locale is defaultLocale.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(strings.TrimSpace(defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("i18n: parse default locale %q: %w", defaultLocale, err)
	}
	c := &Catalog{
		messages:      make(map[language.Tag]map[string]string),
		defaultLocale: tag,
	}
	c.rebuildMatcherLocked()
	return c, nil
}

// Default returns a catalog loaded with the embedded English and Spanish
// messages.
func Default() *Catalog {
	c, err := NewCatalog("en")
	if err != nil {
		panic(err)
	}
	if err := c.LoadYAML(defaultLocalesYAML); err != nil {
		panic(err)
	}
	return c
}

// Add merges messages for locale into the catalog.
func (c *Catalog) Add(locale string, messages map[string]string) error {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return fmt.Errorf("i18n: parse locale %q: %w", locale, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.messages[tag]
	if !ok {
		bucket = make(map[string]string, len(messages))
		c.messages[tag] = bucket
	}
	for key, msg := range messages {
		bucket[strings.TrimSpace(key)] = msg
	}
	if !ok {
		c.rebuildMatcherLocked()
	}
	return nil
}

// LoadYAML merges a `locale -> key -> message` document.
func (c *Catalog) LoadYAML(data []byte) error {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("i18n: decode messages: %w", err)
	}
	locales := make([]string, 0, len(doc))
	for locale := range doc {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	for _, locale := range locales {
		if err := c.Add(locale, doc[locale]); err != nil {
			return err
		}
	}
	return nil
}

// LoadFS merges the YAML document at path in fsys.
func (c *Catalog) LoadFS(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("i18n: read messages %q: %w", path, err)
	}
	return c.LoadYAML(data)
}

// Locales lists the catalog locales in BCP 47 form, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for tag := range c.messages {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Translate implements render.Translator. Positional args are applied with
// fmt.Sprintf when the message has verbs.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, tag := range c.chainLocked(locale) {
		if msg, ok := c.messages[tag][key]; ok && msg != "" {
			return format(msg, args), nil
		}
	}
	return "", fmt.Errorf("%w: %q (locale %q)", ErrMissingKey, key, locale)
}

// chainLocked returns the lookup order for locale: the best catalog match,
// its parents, then the default locale.
func (c *Catalog) chainLocked(locale string) []language.Tag {
	var chain []language.Tag
	seen := make(map[language.Tag]struct{}, 4)
	push := func(tag language.Tag) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		chain = append(chain, tag)
	}

	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil && c.matcher != nil {
		_, index, confidence := c.matcher.Match(requested)
		if confidence != language.No && index < len(c.tags) {
			matched := c.tags[index]
			for tag := matched; ; tag = tag.Parent() {
				push(tag)
				if tag.IsRoot() {
					break
				}
			}
		}
	}
	push(c.defaultLocale)
	return chain
}

func (c *Catalog) rebuildMatcherLocked() {
	tags := []language.Tag{c.defaultLocale}
	others := make([]language.Tag, 0, len(c.messages))
	for tag := range c.messages {
		if tag == c.defaultLocale {
			continue
		}
		others = append(others, tag)
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	tags = append(tags, others...)
	c.tags = tags
	c.matcher = language.NewMatcher(tags)
}

// format applies positional args to msg. Map arguments carry template
// metadata such as fallbacks and are not formatting operands.
func format(msg string, args []any) string {
	if !strings.Contains(msg, "%") {
		return msg
	}
	operands := make([]any, 0, len(args))
	for _, arg := range args {
		switch arg.(type) {
		case map[string]any, map[string]string:
			continue
		}
		operands = append(operands, arg)
	}
	if len(operands) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, operands...)
}
