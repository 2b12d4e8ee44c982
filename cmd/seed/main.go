// Package main warms the snapshot cache from a YAML warm list so a fresh
// deployment serves popular articles without a cold first hit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/infrastructure"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/wiki"
)

// warmList is the YAML format consumed by the seeder.
type warmList struct {
	Articles []warmArticle `yaml:"articles"`
}

type warmArticle struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var listPath string
	flag.StringVar(&listPath, "warm-list", "warm-list.yaml", "path to the YAML warm list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	list, err := loadWarmList(listPath)
	if err != nil {
		return err
	}
	if len(list.Articles) == 0 {
		logger.Info("Warm list is empty, nothing to do", zap.String("path", listPath))
		return nil
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	articles := service.NewArticleService(wiki.NewClient(cfg.Wiki), db.EntClient, cfg.Snapshot.TTL)

	logger.Info("Warming snapshot cache", zap.Int("articles", len(list.Articles)))

	var warmed, failed int
	for _, entry := range list.Articles {
		title := strings.TrimSpace(entry.Title)
		lang := strings.TrimSpace(entry.Language)
		if title == "" || lang == "" {
			logger.Warn("Skipping warm list entry with empty title or language")
			continue
		}
		if !wiki.IsSupported(lang) {
			logger.Warn("Skipping unsupported language",
				zap.String("title", title),
				zap.String("language", lang),
			)
			continue
		}
		if _, err := articles.Get(ctx, title, lang); err != nil {
			failed++
			logger.Warn("Warm fetch failed",
				zap.String("title", title),
				zap.String("language", lang),
				zap.Error(err),
			)
			continue
		}
		warmed++
	}

	logger.Info("Snapshot cache warming completed",
		zap.Int("warmed", warmed),
		zap.Int("failed", failed),
	)
	if warmed == 0 && failed > 0 {
		return fmt.Errorf("all %d warm fetches failed", failed)
	}
	return nil
}

func loadWarmList(path string) (*warmList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read warm list %s: %w", path, err)
	}
	var list warmList
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse warm list %s: %w", path, err)
	}
	return &list, nil
}
