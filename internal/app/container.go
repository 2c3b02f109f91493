package app

import (
	"context"
	"log"
	"time"

	"internhub/internal/ai"
	"internhub/internal/config"
	"internhub/internal/database"
	"internhub/internal/database/migration"
	dbpostgres "internhub/internal/database/postgres"
	"internhub/internal/infrastructure/session"
	"internhub/internal/ws"
)

type Container struct {
	Config    config.Config
	DB        database.DB
	Sessions  *session.Redis
	Hub       *ws.Hub
	Generator ai.Generator
	Logger    *log.Logger

	gemini *ai.GeminiGenerator
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: cfg.App.MigrationsDir}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		DB:       db,
		Sessions: session.NewRedis(cfg.Redis, logger),
		Hub:      ws.NewHub(logger),
		Logger:   logger,
	}

	// Cover letter generation degrades to an error response rather than
	// blocking startup when no API key is configured.
	gen, err := ai.NewGeminiGenerator(ctx, cfg.AI)
	if err != nil {
		if logger != nil {
			logger.Printf("generation endpoint disabled | err=%v", err)
		}
	} else {
		c.gemini = gen
		c.Generator = gen
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.gemini != nil {
		_ = c.gemini.Close()
	}
	if c.Sessions != nil {
		_ = c.Sessions.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
