package schemaengine

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.I18n
	bundleErr  error
)

// messageBundle lazily builds the package's i18n bundle, mirroring the
// teacher's GetI18n: a default "en" locale plus "zh-Hans", loaded from the
// embedded locales directory.
func messageBundle() (*i18n.I18n, error) {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		bundleErr = bundle.LoadFS(localesFS, "locales/*.json")
	})
	return bundle, bundleErr
}

// Message keys used across the Validation Analyzer and Orchestrator's
// advisory/warning output.
const (
	msgLowSampleWarning    = "low_sample_warning"
	msgFetchMoreSamples    = "fetch_more_samples"
	msgConsiderRequired    = "consider_required"
	msgSchemaMergedSamples = "schema_merged_samples"
)

// localize renders msgKey for locale with the given template variables,
// returning msgKey itself if the bundle fails to load (the
// engine's own analyzers never depend on localized text to function —
// only display-facing advisory strings route through here).
func localize(locale, msgKey string, vars map[string]any) string {
	b, err := messageBundle()
	if err != nil {
		return msgKey
	}
	localizer := b.NewLocalizer(locale)
	return localizer.Get(msgKey, i18n.Vars(vars))
}
