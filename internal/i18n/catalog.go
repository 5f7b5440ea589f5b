package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en-US"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds user-facing strings for every supported locale
type Catalog struct {
	locales  map[string]map[string]string
	names    []string
	matcher  language.Matcher
	printers map[string]*message.Printer
}

// LoadEmbedded loads the catalogs compiled into the binary
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/*.yaml file in fsys. The file name must
// match the locale it declares.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := c.add(path, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// Base locale first so the matcher falls back to it.
	tags := []language.Tag{language.MustParse(BaseLocale)}
	c.names = []string{BaseLocale}
	for _, name := range sortedKeys(c.locales) {
		if name == BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(name))
		c.names = append(c.names, name)
	}
	c.matcher = language.NewMatcher(tags)

	if err := c.register(); err != nil {
		return nil, err
	}

	return c, nil
}

// register loads every message into an x/text catalog and builds one
// printer per locale. Keys missing from a locale are registered with the
// base locale's text.
func (c *Catalog) register() error {
	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	base := c.locales[BaseLocale]

	c.printers = make(map[string]*message.Printer, len(c.names))
	for _, name := range c.names {
		tag := language.MustParse(name)
		messages := c.locales[name]
		for _, key := range sortedMessageKeys(base, messages) {
			value, ok := messages[key]
			if !ok {
				value = base[key]
			}
			if err := builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s message %q: %w", name, key, err)
			}
		}
		c.printers[name] = message.NewPrinter(tag, message.Catalog(builder))
	}
	return nil
}

func (c *Catalog) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	want := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ".yaml")
	if locale != want {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", path, locale, want)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", path, locale, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", path)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		messages[key] = value
	}
	c.locales[locale] = messages
	return nil
}

// Locales returns the supported locales, base locale first
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.names...)
}

// Has reports whether locale has its own catalog
func (c *Catalog) Has(locale string) bool {
	_, ok := c.locales[locale]
	return ok
}

// Printer returns the message printer for locale. Unsupported locales get
// the closest match, or the base locale.
func (c *Catalog) Printer(locale string) *message.Printer {
	return c.printers[c.normalize(locale)]
}

// Message returns the text for key in locale, falling back to the base
// locale and finally to the key itself
func (c *Catalog) Message(locale, key string, args ...any) string {
	return c.Printer(locale).Sprintf(key, args...)
}

// Match returns the supported locale closest to value
func (c *Catalog) Match(value string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return c.matchTags(tag)
}

func (c *Catalog) matchTags(tags ...language.Tag) (string, bool) {
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return c.names[index], true
}

func sortedMessageKeys(maps ...map[string]string) []string {
	seen := map[string]bool{}
	var keys []string
	for _, m := range maps {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
