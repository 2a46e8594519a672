package boon

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

// Validation messages are keyed by the EvaluationError.Code values the
// keyword evaluators emit; locales/ carries one catalog per supported
// locale, each covering the full code set. English is the source catalog:
// its entries mirror the message templates built into the errors, so an
// unlocalized result and the "en" localizer render identically.
//
//go:embed locales/*.json
var localesFS embed.FS

const defaultLocale = "en"

// supportedLocales names the catalogs embedded under locales/. Adding a
// language means adding its catalog file and listing it here.
var supportedLocales = []string{"en", "zh-Hans"}

// I18n loads the embedded message catalogs into a bundle. Build a localizer
// from it and hand that to EvaluationResult.ToLocalizeList or
// EvaluationError.Localize:
//
//	bundle, err := boon.I18n()
//	if err != nil { ... }
//	list := result.ToLocalizeList(bundle.NewLocalizer("zh-Hans"))
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale(defaultLocale),
		i18n.WithLocales(supportedLocales...),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}
