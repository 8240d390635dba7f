package domain

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported toolchain.
type Language string

const (
	LanguageAutoDetect Language = "auto-detect"
	LanguageJava       Language = "java"
	LanguagePython     Language = "python"
	LanguagePHP        Language = "php"
	LanguageJavaScript Language = "javascript"
)

// extensionLanguages maps file extensions to languages for auto-detection.
var extensionLanguages = map[string]Language{
	".java": LanguageJava,
	".py":   LanguagePython,
	".php":  LanguagePHP,
	".js":   LanguageJavaScript,
}

// displayNames are the user-facing selector labels.
var displayNames = map[Language]string{
	LanguageAutoDetect: "Auto-detect",
	LanguageJava:       "Java",
	LanguagePython:     "Python",
	LanguagePHP:        "PHP",
	LanguageJavaScript: "JavaScript",
}

// ParseLanguage maps a selector value to a Language. It accepts both the
// flag spellings ("java", "javascript") and the display labels ("Java",
// "JavaScript", "Auto-detect").
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "auto-detect", "autodetect":
		return LanguageAutoDetect, true
	case "java":
		return LanguageJava, true
	case "python", "py":
		return LanguagePython, true
	case "php":
		return LanguagePHP, true
	case "javascript", "js", "node":
		return LanguageJavaScript, true
	}
	return "", false
}

// DetectLanguage infers the language from path's extension.
func DetectLanguage(path string) (Language, bool) {
	lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// SupportedLanguages lists the explicit languages in display order.
func SupportedLanguages() []Language {
	return []Language{LanguageJava, LanguagePython, LanguagePHP, LanguageJavaScript}
}

// DisplayName returns the selector label for the language.
func (l Language) DisplayName() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return string(l)
}
