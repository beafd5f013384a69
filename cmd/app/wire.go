//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/yanqian/skillcanon/internal/bootstrap"
	"github.com/yanqian/skillcanon/internal/domain/skills"
	"github.com/yanqian/skillcanon/internal/infra/config"
	"github.com/yanqian/skillcanon/pkg/logger"
)

func initializeApp(ctx context.Context, opts bootstrap.Options) (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSkillsConfig,
		provideCatalogSource,
		provideSynonymTable,
		provideStatsStore,
		skills.NewMatcher,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
