package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"dconn.dev/showcase/internal/card"
	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/models"
	"dconn.dev/showcase/internal/services"
	"dconn.dev/showcase/internal/view"
)

type renderOptions struct {
	id   string
	lang string
	out  string
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the projects page (or one card) as static HTML",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w := cmd.OutOrStdout()
			if opts.out != "" {
				var f *os.File
				f, err = os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.out, err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close %s: %w", opts.out, cerr)
					}
				}()
				w = f
			}
			if err := renderStatic(cmd, w, a, opts); err != nil {
				return err
			}
			a.logger.Debug("rendered static page", zap.String("out", opts.out), zap.String("id", opts.id))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.id, "id", "", "render only this project's card")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "locale (default DEFAULT_LOCALE)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func renderStatic(cmd *cobra.Command, w io.Writer, a *app, opts renderOptions) error {
	locale := opts.lang
	if locale == "" {
		locale = a.cfg.DefaultLocale
	}
	if !a.catalog.Has(locale) {
		matched, ok := a.catalog.Match(locale)
		if !ok {
			return fmt.Errorf("unsupported locale %q", locale)
		}
		locale = matched
	}
	labels := a.catalog.CardLabels(locale)
	caps := card.DefaultCapabilities()
	projects := services.NewProjectService(a.cfg.Projects)

	if opts.id != "" {
		p, err := projects.GetByID(opts.id)
		if err != nil {
			return err
		}
		return view.Fragment(card.Render(*p, caps, labels)).Render(cmd.Context(), w)
	}

	return view.Page(view.PageData{
		Lang:     locale,
		Title:    a.catalog.Message(locale, "page.title"),
		Subtitle: a.catalog.Message(locale, "page.subtitle"),
		Empty:    a.catalog.Message(locale, "page.empty"),
		Cards:    renderCards(projects.Showcase(), caps, labels),
	}).Render(cmd.Context(), w)
}

func renderCards(projects []models.Project, caps card.Capabilities, labels i18n.CardLabels) []g.Node {
	cards := make([]g.Node, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, card.Render(p, caps, labels))
	}
	return cards
}
