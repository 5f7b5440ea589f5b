package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"dconn.dev/showcase/internal/card"
	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/services"
	"dconn.dev/showcase/internal/view"
)

// PageHandler serves the HTML surfaces
type PageHandler struct {
	projectService *services.ProjectService
	catalog        *i18n.Catalog
	defaultLocale  string
	caps           card.Capabilities
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, catalog *i18n.Catalog, defaultLocale string, caps card.Capabilities) *PageHandler {
	return &PageHandler{
		projectService: ps,
		catalog:        catalog,
		defaultLocale:  defaultLocale,
		caps:           caps,
	}
}

// Index handles GET / - one card per project
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(w, r)
	labels := h.catalog.CardLabels(locale)

	projects := h.projectService.Showcase()
	cards := make([]g.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, card.Render(p, h.caps, labels))
	}

	render(w, r, http.StatusOK, view.Page(view.PageData{
		Lang:     locale,
		Title:    h.catalog.Message(locale, "page.title"),
		Subtitle: h.catalog.Message(locale, "page.subtitle"),
		Empty:    h.catalog.Message(locale, "page.empty"),
		Cards:    cards,
		Locales:  h.localeLinks(r, locale),
	}))
}

// Card handles GET /projects/{id}/card - a single card without layout
func (h *PageHandler) Card(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locale := h.locale(w, r)
	render(w, r, http.StatusOK, view.Fragment(card.Render(*project, h.caps, h.catalog.CardLabels(locale))))
}

func (h *PageHandler) locale(w http.ResponseWriter, r *http.Request) string {
	locale, persist := h.catalog.ResolveRequest(r, h.defaultLocale)
	if persist {
		i18n.SetCookie(w, locale)
	}
	return locale
}

func (h *PageHandler) localeLinks(r *http.Request, active string) []view.LocaleLink {
	locales := h.catalog.Locales()
	links := make([]view.LocaleLink, 0, len(locales))
	for _, locale := range locales {
		query := url.Values{}
		query.Set(i18n.LangParam, locale)
		links = append(links, view.LocaleLink{
			Locale: locale,
			URL:    (&url.URL{Path: r.URL.Path, RawQuery: query.Encode()}).String(),
			Active: locale == active,
		})
	}
	return links
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
