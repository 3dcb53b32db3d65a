package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-analogclock/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves translation keys for the terminal UI.
type Translator struct {
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Lang       string

	SupportedLanguages []string
}

// NewTranslator loads the embedded locales and selects the UI language.
// requested wins when it matches a shipped locale; otherwise getenv is
// consulted for LC_ALL, LC_MESSAGES and LANG, in that order.
func NewTranslator(requested string, getenv func(string) string) *Translator {
	tr := &Translator{}
	tr.SetupI18n()
	tr.SetLanguage(ResolveLanguage(requested, getenv, tr.SupportedLanguages))
	return tr
}

// SetupI18n initializes the translation bundle and detects available languages.
func (tr *Translator) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFormat, json.Unmarshal)
	tr.I18nBundle = bundle

	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		path := config.LocalesDir + "/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	tr.SupportedLanguages = detectedLangs
}

// SetLanguage switches the localizer. An empty lang selects the default.
func (tr *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tr.Lang = lang
	if tr.I18nBundle != nil {
		tr.Localizer = i18n.NewLocalizer(tr.I18nBundle, lang, config.DefaultLanguage)
	}
	slog.Debug(config.MsgLangSelected,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang,
	)
}

// GetMsg is a helper to translate a key safely.
func (tr *Translator) GetMsg(key string) string {
	return tr.GetMsgData(key, nil)
}

// GetMsgData translates a key whose message is a template.
// The key itself is returned when no translation exists.
func (tr *Translator) GetMsgData(key string, data map[string]any) string {
	if tr == nil || tr.Localizer == nil {
		return key
	}
	msg, err := tr.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// ResolveLanguage picks the first candidate that matches a supported
// language: requested, then the locale environment. Values such as
// "fr_CA.UTF-8" are accepted. Falls back to config.DefaultLanguage.
func ResolveLanguage(requested string, getenv func(string) string, supported []string) string {
	if len(supported) == 0 {
		return config.DefaultLanguage
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}
	matcher := language.NewMatcher(tags)

	candidates := []string{requested}
	if getenv != nil {
		candidates = append(candidates,
			getenv(config.EnvLCAll),
			getenv(config.EnvLCMessages),
			getenv(config.EnvLang),
		)
	}

	for _, raw := range candidates {
		value := cleanLocale(raw)
		if value == "" {
			continue
		}
		tag, err := language.Parse(value)
		if err != nil {
			slog.Debug(config.MsgLangInvalid,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyValue, raw,
				config.LogKeyError, err,
			)
			continue
		}
		if _, idx, conf := matcher.Match(tag); conf != language.No {
			return supported[idx]
		}
	}
	return config.DefaultLanguage
}

// cleanLocale turns a POSIX locale ("fr_FR.UTF-8@euro") into a BCP 47
// candidate ("fr-FR"). "C" and "POSIX" carry no language and yield "".
func cleanLocale(raw string) string {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
