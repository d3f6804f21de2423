package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/acquire"
	apiv1 "github.com/Rishi-raj-19/Visual-Product-Matcher/internal/api/v1"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/catalog"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/gemini"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/search"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/pkg/config"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/pkg/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	log.Printf("Catalog loaded: %d products, %d categories", store.Len(), len(store.Categories()))

	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.ModelTimeout)
	if err != nil {
		log.Fatal("Failed to create Gemini client: ", err)
	}

	fetcher := acquire.NewFetcher(cfg.ImageProxyPrefix, cfg.MaxImageBytes, cfg.ModelTimeout)

	selector := search.NewSelector(store, client, fetcher, cfg.CategorizeModel, cfg.CandidateCap, nil)
	requester := search.NewRequester(client, cfg.DirectMatchModel, cfg.MatchModel)
	pipeline := search.NewPipeline(selector, requester, search.NewReconciler(store))
	sessions := search.NewSessionManager(pipeline)

	r := gin.Default()
	r.Use(apiv1.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.SetTrustedProxies(nil)

	v1 := r.Group("/api/v1")
	apiv1.RegisterRoutes(v1, apiv1.NewHandler(store, sessions, fetcher))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
