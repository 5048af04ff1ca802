// Package i18n provides internationalization support for the waitlist service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var supportedLocales = map[string]struct{}{"en": {}, "pt": {}, "nl": {}}

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := supportedLocales[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.invalid_credentials":   "Invalid email or password",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.entry_not_found":       "Queue entry not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.service_unavailable":   "Service temporarily unavailable",
			"error.stream_unavailable":    "Too many live subscribers, please try again later",
			"error.validation.name":       "name: must be between 1 and 100 characters",
			"error.validation.party_size": "party_size: must be a positive integer",
			"error.validation.status":     "status: must be one of waiting, seated, no_show, cancelled",
			"error.validation.id":         "id: must be a positive integer",
			"error.validation.seating":    "Invalid seating input",
			"error.invalid_token":         "Invalid or expired token",
			"error.token_required":        "Authentication token is required",
			"error.timeout":               "The request timed out",
		},
		"pt": {
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.invalid_credentials":   "E-mail ou senha inválidos",
			"error.api_key_required":      "Chave de API é obrigatória",
			"error.invalid_api_key":       "Chave de API inválida",
			"error.entry_not_found":       "Entrada da fila não encontrada",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.service_unavailable":   "Serviço temporariamente indisponível",
			"error.stream_unavailable":    "Muitos assinantes ao vivo, tente novamente mais tarde",
			"error.validation.name":       "name: deve ter entre 1 e 100 caracteres",
			"error.validation.party_size": "party_size: deve ser um inteiro positivo",
			"error.validation.status":     "status: deve ser waiting, seated, no_show ou cancelled",
			"error.validation.id":         "id: deve ser um inteiro positivo",
			"error.validation.seating":    "Dados de alocação de mesas inválidos",
			"error.invalid_token":         "Token inválido ou expirado",
			"error.token_required":        "Token de autenticação é obrigatório",
			"error.timeout":               "A requisição expirou",
		},
		"nl": {
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.invalid_credentials":   "Ongeldig e-mailadres of wachtwoord",
			"error.api_key_required":      "API-sleutel is vereist",
			"error.invalid_api_key":       "Ongeldige API-sleutel",
			"error.entry_not_found":       "Wachtrijvermelding niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.service_unavailable":   "Dienst tijdelijk niet beschikbaar",
			"error.stream_unavailable":    "Te veel live abonnees, probeer het later opnieuw",
			"error.validation.name":       "name: moet tussen 1 en 100 tekens lang zijn",
			"error.validation.party_size": "party_size: moet een positief geheel getal zijn",
			"error.validation.status":     "status: moet waiting, seated, no_show of cancelled zijn",
			"error.validation.id":         "id: moet een positief geheel getal zijn",
			"error.validation.seating":    "Ongeldige tafelindeling",
			"error.invalid_token":         "Ongeldig of verlopen token",
			"error.token_required":        "Authenticatietoken is vereist",
			"error.timeout":               "Het verzoek is verlopen",
		},
	}
}
