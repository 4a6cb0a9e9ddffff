package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-recap/internal/config"
	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
	"github.com/riskibarqy/match-recap/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-recap/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	matches match.Repository
	teams   team.Repository
	players player.Repository
	stats   playerstats.Repository
}

func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.FactStore {
	case config.FactStorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("fact store ready",
			"store", config.FactStorePostgres,
			"db_name", dbNameFromURL(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
		)
		return repositories{
			matches: postgres.NewMatchRepository(db, cfg.DBQueryTimeout),
			teams:   postgres.NewTeamRepository(db, cfg.DBQueryTimeout),
			players: postgres.NewPlayerRepository(db, cfg.DBQueryTimeout),
			stats:   postgres.NewPlayerStatsRepository(db, cfg.DBQueryTimeout),
		}, db.Close, nil
	case config.FactStoreMemory, "":
		logger.Info("fact store ready", "store", config.FactStoreMemory, "season", memory.SeedSeason)
		return repositories{
			matches: memory.NewMatchRepository(memory.SeedMatches(), memory.SeedMatchStatistics()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			stats:   memory.NewPlayerStatsRepository(memory.SeedPlayerMatchStats()),
		}, func() error { return nil }, nil
	default:
		return repositories{}, nil, fmt.Errorf("unsupported fact store %q", cfg.FactStore)
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}

	db, err := otelsqlx.Open("postgres", cfg.DatabaseURL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("open fact store: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBQueryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping fact store: %w", err)
	}

	otelsql.ReportDBStatsMetrics(db.DB, opts...)
	return db, nil
}
