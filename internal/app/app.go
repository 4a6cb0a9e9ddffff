package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/match-recap/external/llm"
	"github.com/riskibarqy/match-recap/internal/config"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
	"github.com/riskibarqy/match-recap/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
	"github.com/riskibarqy/match-recap/internal/usecase"
)

// NewHTTPServer wires the fact store, services and router. The returned
// close func releases the fact store and must be called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closeRepos, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	analyticsSvc := usecase.NewAnalyticsService(
		repos.matches,
		repos.teams,
		repos.players,
		repos.stats,
		usecase.AnalyticsConfig{
			PlayerMinMinutes:     cfg.Analytics.PlayerMinMinutes,
			GoalkeeperMinMinutes: cfg.Analytics.GKMinMinutes,
			FormWindow:           cfg.Analytics.FormWindow,
			LeadersLimit:         cfg.Analytics.LeadersLimit,
			GoalkeepersLimit:     cfg.Analytics.GoalkeepersLimit,
		},
		logger,
	)
	contextSvc := usecase.NewRoundContextService(analyticsSvc, cfg.Analytics.Workers, logger)
	summarySvc := usecase.NewSummaryService(
		contextSvc,
		newGenerator(cfg, logger),
		usecase.SummaryConfig{MaxTokens: cfg.LLM.MaxTokens, Temperature: cfg.LLM.Temperature},
		logger,
	)

	handler := httpapi.NewHandler(analyticsSvc, contextSvc, summarySvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeRepos, nil
}

// newGenerator returns nil when generation is disabled; the summary
// endpoint then answers 503.
func newGenerator(cfg config.Config, logger *logging.Logger) recap.Generator {
	if !cfg.LLM.Enabled {
		logger.Info("llm disabled", "reason", "LLM_ENABLED=false")
		return nil
	}

	logger.Info("llm enabled",
		"base_url", cfg.LLM.BaseURL,
		"model", cfg.LLM.Model,
		"circuit_enabled", cfg.LLM.Circuit.Enabled,
	)
	return llm.NewClient(llm.ClientConfig{
		BaseURL:        cfg.LLM.BaseURL,
		APIKey:         cfg.LLM.APIKey,
		Model:          cfg.LLM.Model,
		Timeout:        cfg.LLM.Timeout,
		MaxRetries:     cfg.LLM.MaxRetries,
		Logger:         logger,
		CircuitBreaker: cfg.LLM.Circuit,
	})
}
