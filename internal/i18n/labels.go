package i18n

import "golang.org/x/text/message"

// CardLabels are the user-facing strings on a project card
type CardLabels struct {
	Demo    string
	Code    string
	printer *message.Printer
}

// PreviewOf returns the accessible label for a project's preview
func (l CardLabels) PreviewOf(title string) string {
	if l.printer == nil {
		return title
	}
	return l.printer.Sprintf("card.preview", title)
}

// CardLabels returns the card strings for locale
func (c *Catalog) CardLabels(locale string) CardLabels {
	return CardLabels{
		Demo:    c.Message(locale, "card.demo"),
		Code:    c.Message(locale, "card.code"),
		printer: c.Printer(locale),
	}
}
