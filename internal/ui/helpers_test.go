//go:build !integration

package ui

import (
	"io"

	"github.com/guttosm/nutrition-lookup/internal/domain/model"
	"github.com/guttosm/nutrition-lookup/internal/mocks"
	"github.com/rs/zerolog"
)

// recorder keeps every command it was given on top of a live Screen.
type recorder struct {
	*Screen
	cmds []Command
}

func newRecorder() *recorder {
	return &recorder{Screen: NewScreen()}
}

func (r *recorder) Apply(cmds ...Command) {
	r.cmds = append(r.cmds, cmds...)
	r.Screen.Apply(cmds...)
}

func (r *recorder) count(match func(Command) bool) int {
	n := 0
	for _, c := range r.cmds {
		if match(c) {
			n++
		}
	}
	return n
}

func (r *recorder) busyCount(id WidgetID) int {
	return r.count(func(c Command) bool { return c.Op == OpSetBusy && c.Widget == id && c.Busy })
}

func (r *recorder) idleCount(id WidgetID) int {
	return r.count(func(c Command) bool { return c.Op == OpSetBusy && c.Widget == id && !c.Busy })
}

func (r *recorder) reset() {
	r.cmds = nil
}

func newTestController(client *mocks.MockRemoteClient) (*Controller, *recorder) {
	rec := newRecorder()
	c := NewController(client, rec, WithLogger(zerolog.New(io.Discard)))
	c.Init()
	rec.reset()
	return c, rec
}

func macroNutrients() model.Nutrients {
	return model.Nutrients{
		model.NutrientCalories: {Amount: 260, Unit: "kcal"},
		model.NutrientProtein:  {Amount: 10, Unit: "g", Percent: model.Float(20)},
		model.NutrientFat:      {Amount: 5, Unit: "g", Percent: model.Float(15)},
		model.NutrientCarbs:    {Amount: 30, Unit: "g", Percent: model.Float(65)},
	}
}
