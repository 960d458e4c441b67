package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

var (
	supported = []string{LanguageEn}
	matcher   = language.NewMatcher([]language.Tag{language.English})
)

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
	LanguageVi = "vi"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupported(cfg.SupportedLanguages)

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		lang := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		if !isSupported(lang) {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", f.Name()))
			continue
		}

		path := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Match returns the supported language that best fits an Accept-Language
// header, falling back to English.
func Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return LanguageEn
	}
	_, index := language.MatchStrings(matcher, acceptLanguage)
	if index < 0 || index >= len(supported) {
		return LanguageEn
	}
	return supported[index]
}

// English always comes first so it is the matcher's default.
func setSupported(languages []string) {
	list := []string{LanguageEn}
	for _, lang := range languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || contains(list, lang) {
			continue
		}
		list = append(list, lang)
	}

	tags := make([]language.Tag, 0, len(list))
	for _, lang := range list {
		tags = append(tags, language.Make(lang))
	}
	supported = list
	matcher = language.NewMatcher(tags)
}

func isSupported(lang string) bool {
	return contains(supported, strings.ToLower(lang))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
