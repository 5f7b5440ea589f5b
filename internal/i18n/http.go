package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "showcase_lang"
)

// ResolveRequest picks the locale for r: the lang query parameter, then the
// language cookie, then Accept-Language, then fallback. The bool reports
// whether the choice came from the query and should be persisted.
func (c *Catalog) ResolveRequest(r *http.Request, fallback string) (string, bool) {
	if r == nil {
		return c.normalize(fallback), false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if locale, ok := c.Match(value); ok {
			return locale, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if locale, ok := c.Match(cookie.Value); ok {
			return locale, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if locale, ok := c.matchTags(tags...); ok {
				return locale, false
			}
		}
	}

	return c.normalize(fallback), false
}

// SetCookie persists locale on the response
func SetCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *Catalog) normalize(locale string) string {
	if c.Has(locale) {
		return locale
	}
	if matched, ok := c.Match(locale); ok {
		return matched
	}
	return BaseLocale
}
