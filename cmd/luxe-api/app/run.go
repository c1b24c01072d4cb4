package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/configs"
	"github.com/nuelxcodev/luxe/internal/adapter/catalog"
	"github.com/nuelxcodev/luxe/internal/adapter/clipboard"
	genaiadapter "github.com/nuelxcodev/luxe/internal/adapter/genai"
	lhttp "github.com/nuelxcodev/luxe/internal/adapter/http"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/adapter/repo"
	"github.com/nuelxcodev/luxe/internal/logging"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	log := logging.New("app")

	log.Info("luxe-api: starting up")

	// all state is in memory; a restart wipes every session
	store := catalog.NewStore()
	sessions := repo.NewMemorySessionRepo()

	var gen usecase.TextGenerator
	if cfg.GenAI.APIKey != "" {
		client, err := genaiadapter.NewClient(context.Background(), cfg.GenAI.APIKey, cfg.GenAI.Model)
		if err != nil {
			return nil, nil, err
		}
		gen = client
	} else {
		// no key: the assistant degrades to its canned fallback lines
		log.Warn("genai api key missing, assistant runs in fallback mode")
		gen = offlineGenerator{}
	}

	carts := usecase.NewCartService(store, logging.New("cart"))
	nav := usecase.NewNavigator(store, logging.New("navigation"))
	flow := usecase.NewCheckoutFlow(cfg.Checkout.ProcessingDelay, logging.New("checkout"))
	profiles := usecase.NewProfileService(clipboard.NewSystem(), logging.New("profile"))
	assistant := usecase.NewAssistant(gen, store, cfg.GenAI.Timeout, cfg.Assistant.SuggestionProbability, logging.New("assistant"))

	authz := middleware.NewAuthz(cfg, sessions)
	handlers := lhttp.Handlers{
		Auth:       lhttp.NewAuthHandler(cfg, store, sessions, nav),
		Catalog:    lhttp.NewCatalogHandler(store),
		Cart:       lhttp.NewCartHandler(carts),
		Checkout:   lhttp.NewCheckoutHandler(flow),
		Navigation: lhttp.NewNavigationHandler(nav),
		Profile:    lhttp.NewProfileHandler(profiles),
		Assistant:  lhttp.NewAssistantHandler(assistant, store),
	}

	router := lhttp.NewRouter(handlers, authz, logging.New("http"))

	cleanup := func() {}
	return &App{Router: router}, cleanup, nil
}

type offlineGenerator struct{}

func (offlineGenerator) Generate(context.Context, usecase.GenerateRequest) (usecase.GenerateResult, error) {
	return usecase.GenerateResult{}, errors.New("text generation unavailable")
}
