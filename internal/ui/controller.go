package ui

import (
	"context"

	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RemoteClient is the pair of backend endpoints the controller calls.
type RemoteClient interface {
	// Search returns the foods matching query. No foods is not an error.
	Search(ctx context.Context, query string) ([]model.FoodSummary, error)
	// Calculate returns the breakdown of food id for weightGrams, or a response carrying Error.
	Calculate(ctx context.Context, id model.FoodID, weightGrams float64) (*dto.CalculateResponse, error)
}

type options struct {
	translator *i18n.Translator
	locale     string
	logger     zerolog.Logger
	order      []string
	text       func(key string) string
}

// Option configures a Controller.
type Option func(*options)

// WithLocale sets the language of notices and labels.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = i18n.NormalizeLocale(locale)
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDisplayOrder overrides the detailed list order.
func WithDisplayOrder(order []string) Option {
	return func(o *options) {
		o.order = order
	}
}

// Controller wires the search list, the selection modal and the presenter together.
type Controller struct {
	Search    *SearchController
	Modal     *SelectionModal
	Presenter *NutritionPresenter
	display   Display
	text      func(key string) string
}

// NewController creates the components sharing client and display.
// Activating a search result opens it in the modal.
func NewController(client RemoteClient, display Display, opts ...Option) *Controller {
	o := &options{
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.text = func(key string) string {
		return o.translator.Translate(key, o.locale)
	}

	presenter := NewNutritionPresenter(o.order)
	search := newSearchController(client, display, o)
	modal := newSelectionModal(client, display, presenter, o)
	search.OnSelect(modal.Open)

	return &Controller{
		Search:    search,
		Modal:     modal,
		Presenter: presenter,
		display:   display,
		text:      o.text,
	}
}

// Init writes the idle labels and hides the panels that start hidden.
func (c *Controller) Init() {
	c.display.Apply(
		Idle(SearchButton, c.text(i18n.LabelKeyAnalyze)),
		Idle(CalculateButton, c.text(i18n.LabelKeyCalculate)),
		Hide(ResultsSection),
		Hide(ModalOverlay),
		Hide(NutritionResults),
	)
}
