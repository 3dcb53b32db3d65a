package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-analogclock/internal/config"
)

// loadLocale reads a locale file relative to this package.
func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()

	name := config.LocalePrefix + lang + config.LocaleSuffix
	path := filepath.Join(config.LocalesDir, name)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Fallback for running tests from different CWD
		path = filepath.Join("..", "..", "internal", "ui", config.LocalesDir, name)
		content, err = os.ReadFile(path)
	}
	require.NoError(t, err, "Must load %s", name)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every shipped locale file.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyTitleTimeInput,
		config.TKeyErrInvalidTime,
		config.TKeyExitHint,
		config.TKeyPromptHours,
		config.TKeyPromptMinutes,
		config.TKeyPromptSeconds,
		config.TKeyRangeHours,
		config.TKeyRangeMinutes,
		config.TKeyRangeSeconds,
		config.TKeyErrNotANumber,
		config.TKeyDigitalTime,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nTemplatesMatch checks that each translation keeps the template
// fields of the English source.
func TestI18nTemplatesMatch(t *testing.T) {
	en := loadLocale(t, config.DefaultLanguage)

	for _, lang := range config.SupportedLanguages {
		if lang == config.DefaultLanguage {
			continue
		}
		other := loadLocale(t, lang)
		for key, v := range en {
			src, _ := v.(string)
			dst, _ := other[key].(string)
			for _, field := range []string{config.TDataMin, config.TDataMax, config.TDataValue, config.TDataTime} {
				placeholder := "{{." + field + "}}"
				assert.Equalf(t, strings.Contains(src, placeholder), strings.Contains(dst, placeholder),
					"%s/%s: placeholder %s mismatch", lang, key, placeholder)
			}
		}
	}
}
