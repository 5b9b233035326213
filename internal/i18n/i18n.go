// Package i18n holds the English and Farsi string catalogues and the
// language model (tag, reading direction, localised numbers).
package i18n

import (
	"embed"
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Language is a supported presentation language.
type Language string

const (
	English Language = "en"
	Farsi   Language = "fa"
)

// Languages lists supported languages in toggle order.
var Languages = []Language{English, Farsi}

// ParseLanguage accepts "en", "fa" and tags such as "fa-IR". Unsupported
// input falls back to English.
func ParseLanguage(s string) Language {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	for _, l := range Languages {
		if base.String() == string(l) {
			return l
		}
	}
	return English
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// Direction returns the reading direction of the language.
func (l Language) Direction() gesture.Direction {
	return gesture.DirectionOf(l.Tag())
}

// Next returns the language after l in toggle order.
func (l Language) Next() Language {
	for i, cand := range Languages {
		if cand == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}

// Catalog resolves message ids for every supported language.
type Catalog struct {
	bundle     *goi18n.Bundle
	localizers map[Language]*goi18n.Localizer
	printers   map[Language]*message.Printer
}

// NewCatalog loads the embedded catalogues.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	c := &Catalog{
		bundle:     bundle,
		localizers: make(map[Language]*goi18n.Localizer, len(Languages)),
		printers:   make(map[Language]*message.Printer, len(Languages)),
	}
	for _, l := range Languages {
		path := fmt.Sprintf("locales/active.%s.toml", l)
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load %s catalogue: %w", l, err)
		}
		c.localizers[l] = goi18n.NewLocalizer(bundle, string(l), string(English))
		c.printers[l] = message.NewPrinter(l.Tag())
	}
	return c, nil
}

// MustCatalog is NewCatalog for the embedded catalogues, which are known to
// parse.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// T translates id. Unknown ids return the id itself.
func (c *Catalog) T(lang Language, id string) string {
	return c.TData(lang, id, nil)
}

// TData translates id with template data.
func (c *Catalog) TData(lang Language, id string, data map[string]any) string {
	loc, ok := c.localizers[lang]
	if !ok {
		loc = c.localizers[English]
	}
	out, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || out == "" {
		return id
	}
	return out
}

// Has reports whether id exists in lang's catalogue or the English fallback.
func (c *Catalog) Has(lang Language, id string) bool {
	return c.T(lang, id) != id
}

// Number formats n using the language's digits.
func (c *Catalog) Number(lang Language, n int) string {
	p, ok := c.printers[lang]
	if !ok {
		p = c.printers[English]
	}
	return p.Sprint(n)
}

// SlideCounter renders "Slide N of M" with a one-based N.
func (c *Catalog) SlideCounter(lang Language, index, total int) string {
	return c.TData(lang, "common.slideCounter", map[string]any{
		"Current": c.Number(lang, index+1),
		"Total":   c.Number(lang, total),
	})
}

// SlideBodyKey returns the message id of a slide's markdown body.
func SlideBodyKey(slideID string) string {
	return "slides." + slideID + ".body"
}
