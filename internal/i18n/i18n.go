// Package i18n provides internationalization support for the nutrition lookup tool.
// It translates backend error messages as well as the client's notices and control labels.
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

var (
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
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[NormalizeLocale(locale)][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// NormalizeLocale reduces a language tag such as "pt-BR" to its lowercase base ("pt").
// Unsupported languages map to DefaultLocale.
func NormalizeLocale(tag string) string {
	lang := strings.TrimSpace(strings.Split(tag, ";")[0])
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

// GetLocale extracts the locale from the gin context's Accept-Language header.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}
	// Only the first preference is honoured, e.g. "pt-BR" in "pt-BR,en;q=0.8".
	return NormalizeLocale(strings.Split(acceptLang, ",")[0])
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.timeout":              "Request timeout",
			"error.validation.query":     "Query parameter is required",
			"error.validation.calculate": "fdcId and weight are required",
			"error.food_not_found":       "Food details not found",
			"error.upstream_unavailable": "The food database is unavailable, please try again later",

			"notice.no_foods":         "No foods found. Try a different term.",
			"notice.search_failed":    "Something went wrong searching.",
			"notice.invalid_weight":   "Please enter a valid weight",
			"notice.calculate_failed": "Error calculating nutrition",

			"label.analyze":           "Analyze",
			"label.calculate":         "Calculate",
			"label.title":             "Nutrition Lookup",
			"label.query_placeholder": "Enter a food, e.g. chicken curry",
			"label.weight":            "Weight (g)",
			"label.details":           "Detailed nutrients",
			"label.dismiss":           "Press enter to continue",
			"label.help":              "enter: search/select  tab: switch focus  esc: close  ctrl+c: quit",
		},
		"pt": {
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.timeout":              "Tempo limite da requisição excedido",
			"error.validation.query":     "O parâmetro query é obrigatório",
			"error.validation.calculate": "fdcId e weight são obrigatórios",
			"error.food_not_found":       "Detalhes do alimento não encontrados",
			"error.upstream_unavailable": "A base de alimentos está indisponível, tente novamente mais tarde",

			"notice.no_foods":         "Nenhum alimento encontrado. Tente outro termo.",
			"notice.search_failed":    "Algo deu errado na busca.",
			"notice.invalid_weight":   "Informe um peso válido",
			"notice.calculate_failed": "Erro ao calcular a nutrição",

			"label.analyze":           "Analisar",
			"label.calculate":         "Calcular",
			"label.title":             "Consulta Nutricional",
			"label.query_placeholder": "Digite um alimento, ex. frango ao curry",
			"label.weight":            "Peso (g)",
			"label.details":           "Nutrientes detalhados",
			"label.dismiss":           "Pressione enter para continuar",
			"label.help":              "enter: buscar/selecionar  tab: trocar foco  esc: fechar  ctrl+c: sair",
		},
		"nl": {
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":              "Time-out van verzoek",
			"error.validation.query":     "De query parameter is verplicht",
			"error.validation.calculate": "fdcId en weight zijn verplicht",
			"error.food_not_found":       "Voedingsmiddel niet gevonden",
			"error.upstream_unavailable": "De voedingsdatabase is niet beschikbaar, probeer het later opnieuw",

			"notice.no_foods":         "Geen voedingsmiddelen gevonden. Probeer een andere term.",
			"notice.search_failed":    "Er ging iets mis bij het zoeken.",
			"notice.invalid_weight":   "Voer een geldig gewicht in",
			"notice.calculate_failed": "Fout bij het berekenen van de voedingswaarden",

			"label.analyze":           "Analyseren",
			"label.calculate":         "Berekenen",
			"label.title":             "Voedingswaarde Opzoeken",
			"label.query_placeholder": "Voer een voedingsmiddel in, bijv. kipcurry",
			"label.weight":            "Gewicht (g)",
			"label.details":           "Gedetailleerde voedingsstoffen",
			"label.dismiss":           "Druk op enter om door te gaan",
			"label.help":              "enter: zoeken/kiezen  tab: focus wisselen  esc: sluiten  ctrl+c: stoppen",
		},
	}
}
