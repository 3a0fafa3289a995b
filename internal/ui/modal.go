package ui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/rs/zerolog"
)

// ModalState is the state of the selection modal.
type ModalState int

const (
	// ModalClosed means no food is selected.
	ModalClosed ModalState = iota
	// ModalAwaitingCalc means a food is selected and no breakdown has been shown yet.
	ModalAwaitingCalc
	// ModalDisplaying means a breakdown for the selected food is on screen.
	ModalDisplaying
)

// String returns the state name.
func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalAwaitingCalc:
		return "awaiting-calc"
	case ModalDisplaying:
		return "displaying"
	default:
		return "unknown"
	}
}

// DefaultWeightInput is written into the weight input when a food is opened.
var DefaultWeightInput = strconv.FormatFloat(model.DefaultWeightGrams, 'f', -1, 64)

// SelectionModal owns the selected food and the weight it is calculated for.
type SelectionModal struct {
	client    RemoteClient
	display   Display
	presenter *NutritionPresenter
	text      func(key string) string
	log       zerolog.Logger
	selection model.SelectionState
	state     ModalState
}

func newSelectionModal(client RemoteClient, display Display, presenter *NutritionPresenter, o *options) *SelectionModal {
	return &SelectionModal{
		client:    client,
		display:   display,
		presenter: presenter,
		text:      o.text,
		log:       o.logger.With().Str("component", "modal").Logger(),
	}
}

// Selection returns the current selection. Active is false while the modal is closed.
func (m *SelectionModal) Selection() model.SelectionState {
	return m.selection
}

// State returns the modal state.
func (m *SelectionModal) State() ModalState {
	return m.state
}

// Open selects food, resets the weight to the default, shows the modal and
// immediately calculates the breakdown for the default weight.
func (m *SelectionModal) Open(ctx context.Context, food model.FoodSummary) error {
	m.selection = model.NewSelection(food.FdcID)
	m.state = ModalAwaitingCalc

	m.display.Apply(
		Text(ModalFoodName, food.Description),
		Text(ModalBrand, food.Brand()),
		Value(WeightInput, DefaultWeightInput),
		Hide(NutritionResults),
		Show(ModalOverlay),
	)

	return m.Recompute(ctx, DefaultWeightInput)
}

// Close hides the modal and clears the selection.
func (m *SelectionModal) Close() {
	m.display.Apply(Hide(ModalOverlay))
	m.selection = model.SelectionState{}
	m.state = ModalClosed
}

// HandleClick closes the modal for clicks on the close control or on the scrim.
// Clicks on anything inside the modal content are ignored. It reports whether the modal closed.
func (m *SelectionModal) HandleClick(target WidgetID) bool {
	if m.state == ModalClosed {
		return false
	}
	if target != ModalOverlay && target != CloseModalButton {
		return false
	}
	m.Close()
	return true
}

// Recompute calculates the breakdown of the selected food for the weight typed in weightInput.
//
// Without a selection it returns ErrNoSelection; an invalid weight shows a notice and returns
// ErrInvalidWeight. Neither issues a request. A response carrying an error is shown as a notice
// and never reaches the presenter.
func (m *SelectionModal) Recompute(ctx context.Context, weightInput string) error {
	if !m.selection.Active {
		return ErrNoSelection
	}

	grams, err := ParseWeight(weightInput)
	if err != nil {
		m.display.Apply(Notice(m.text(i18n.NoticeKeyInvalidWeight)))
		return err
	}

	release := acquireBusy(m.display, CalculateButton, m.text(i18n.LabelKeyCalculate))
	defer release()

	id := m.selection.FoodID
	m.selection.WeightGrams = grams

	resp, err := m.client.Calculate(ctx, id, grams)
	if err == nil && (resp == nil || (resp.Error == "" && resp.Nutrients == nil)) {
		err = ErrMalformedResponse
	}
	if err != nil {
		m.log.Error().Err(err).Int("fdc_id", int(id)).Float64("weight", grams).Msg("Nutrition calculation failed")
		m.display.Apply(Notice(m.text(i18n.NoticeKeyCalculateFailed)))
		return err
	}

	if resp.Error != "" {
		m.log.Warn().Str("error", resp.Error).Int("fdc_id", int(id)).Msg("Calculation service reported an error")
		m.display.Apply(Notice(resp.Error))
		return &RemoteError{Message: resp.Error}
	}

	m.presenter.Present(m.display, resp.Nutrients)
	m.state = ModalDisplaying
	return nil
}

// ParseWeight parses a weight input in grams from its leading number, so "150 g" reads as 150.
// Only finite numbers above zero are accepted.
func ParseWeight(input string) (float64, error) {
	lead := numberPrefix(strings.TrimLeftFunc(input, unicode.IsSpace))
	grams, err := strconv.ParseFloat(lead, 64)
	if err != nil || math.IsNaN(grams) || math.IsInf(grams, 0) || grams <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, input)
	}
	return grams, nil
}

// numberPrefix returns the longest prefix of s that is a decimal number:
// an optional sign, digits with an optional fraction, and an optional exponent.
func numberPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		// A bare "e" is not part of the number.
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
