// Package main is the entry point of the nutrition lookup backend.
//
// @title           Nutrition Lookup API
// @version         1.0.0
// @description     Backend of the nutrition lookup tool. Searches USDA FoodData Central and scales nutrient data to a serving weight.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/nutrition-lookup
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Foods
// @tag.description Food search and nutrition calculation
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/nutrition-lookup/docs" // swagger docs

	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	defer application.Close()

	server := app.NewServer(application.Router, cfg.Server)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
