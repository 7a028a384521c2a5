// Package locale localizes user-facing strings from embedded TOML message files
// and negotiates the response language from Accept-Language headers.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Localizer resolves message ids for the language a client prefers.
// It is immutable after New and safe for concurrent use.
type Localizer struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	tags    []language.Tag
}

// New loads every embedded message file into a bundle whose default
// language is cfg.Default.
func New(cfg *Config) (*Localizer, error) {
	return load(cfg, localeFS, "locales")
}

func load(cfg *Config, fsys fs.FS, dir string) (*Localizer, error) {
	def, err := language.Parse(cfg.Default)
	if err != nil {
		return nil, fmt.Errorf("parse default language: %w", err)
	}

	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read message files: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(dir, entry.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}

	// the default language leads so the matcher falls back to it
	tags := []language.Tag{def}
	for _, tag := range bundle.LanguageTags() {
		if tag != def {
			tags = append(tags, tag)
		}
	}

	return &Localizer{
		bundle:  bundle,
		matcher: language.NewMatcher(tags),
		tags:    tags,
	}, nil
}

// Languages returns the supported language tags, default first.
func (l *Localizer) Languages() []string {
	out := make([]string, len(l.tags))
	for i, tag := range l.tags {
		out[i] = tag.String()
	}
	return out
}

// Lang returns the base language best matching the Accept-Language header value.
func (l *Localizer) Lang(accept string) string {
	tag, _ := language.MatchStrings(l.matcher, accept)
	base, _ := tag.Base()
	return base.String()
}

// Title localizes messageID for accept, returning fallback when no
// translation exists in either the matched or the default language.
func (l *Localizer) Title(accept, messageID, fallback string) string {
	loc := i18n.NewLocalizer(l.bundle, l.Lang(accept))
	msg, _ := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if msg == "" {
		return fallback
	}
	return msg
}
