package ui

import (
	"context"
	"strings"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/rs/zerolog"
)

// SelectHandler receives the food a user activated in the result list.
type SelectHandler func(ctx context.Context, food model.FoodSummary) error

// SearchController owns the query and the current result list.
type SearchController struct {
	client   RemoteClient
	display  Display
	text     func(key string) string
	log      zerolog.Logger
	results  []model.FoodSummary
	onSelect SelectHandler
}

func newSearchController(client RemoteClient, display Display, o *options) *SearchController {
	return &SearchController{
		client:  client,
		display: display,
		text:    o.text,
		log:     o.logger.With().Str("component", "search").Logger(),
	}
}

// OnSelect registers the handler activated results are handed to.
func (s *SearchController) OnSelect(h SelectHandler) {
	s.onSelect = h
}

// Search looks up foods matching query and shows them as result cards.
//
// A blank query returns ErrEmptyQuery without a request. Otherwise the previous results are
// cleared first, the search control is busy while the request runs, and zero results or a
// failure end in a notice with the result panel hidden.
func (s *SearchController) Search(ctx context.Context, query string) ([]model.FoodSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	release := acquireBusy(s.display, SearchButton, s.text(i18n.LabelKeyAnalyze))
	defer release()

	s.results = nil
	s.display.Apply(Hide(ResultsSection), Clear(ResultsList))

	foods, err := s.client.Search(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("Food search failed")
		s.display.Apply(Notice(s.text(i18n.NoticeKeySearchFailed)))
		return nil, err
	}

	if len(foods) == 0 {
		s.log.Debug().Str("query", query).Msg("Food search returned no results")
		s.display.Apply(Notice(s.text(i18n.NoticeKeyNoFoods)))
		return foods, nil
	}

	s.results = foods
	cmds := make([]Command, 0, len(foods)+1)
	for _, food := range foods {
		cmds = append(cmds, Append(ResultsList, Item{Primary: food.Description, Secondary: food.Brand()}))
	}
	s.display.Apply(append(cmds, Show(ResultsSection))...)

	s.log.Debug().Str("query", query).Int("results", len(foods)).Msg("Food search completed")
	return foods, nil
}

// Results returns the foods currently listed.
func (s *SearchController) Results() []model.FoodSummary {
	out := make([]model.FoodSummary, len(s.results))
	copy(out, s.results)
	return out
}

// Activate hands the result at index to the select handler.
func (s *SearchController) Activate(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.results) {
		return ErrNoSuchResult
	}
	if s.onSelect == nil {
		return nil
	}
	return s.onSelect(ctx, s.results[index])
}
