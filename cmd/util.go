package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"assetrisk/api"
	"assetrisk/internal/repository"
	"assetrisk/internal/service"
	"assetrisk/internal/util"
	"assetrisk/pkg/binance"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.OpenAIApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAssetRepository := repository.NewUserAssetRepository(dbConn)

	// alpaca is optional; without credentials stock quotes go straight to
	// yahoo, then the static fallback
	var alpacaRepository repository.AlpacaRepository
	if secrets.Alpaca.ApiKey != "" {
		alpacaRepository = repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	}
	yahooQuoteRepository := repository.NewYahooQuoteRepository()
	binanceClient := binance.NewClient(http.DefaultClient)

	priceService := service.NewPriceService(alpacaRepository, yahooQuoteRepository, binanceClient)
	assetService := service.NewAssetService(dbConn, userAssetRepository, priceService)
	riskService := service.NewRiskService(userAssetRepository, priceService)
	recommendationService := service.NewRecommendationService(userAssetRepository, priceService)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		AssetService:          assetService,
		RiskService:           riskService,
		RecommendationService: recommendationService,
		GptRepository:         gptRepository,
		ApiRequestRepository:  repository.NewApiRequestRepository(),
	}

	return apiHandler, nil
}
