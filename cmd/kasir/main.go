package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/cache"
	"github.com/kasirhq/kasir/internal/config"
	"github.com/kasirhq/kasir/internal/logger"
	"github.com/kasirhq/kasir/internal/migration"
	"github.com/kasirhq/kasir/internal/observability/tracing"
	"github.com/kasirhq/kasir/internal/server"
	"github.com/kasirhq/kasir/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		cache.Module,
		tracing.Module,
		migration.Module,

		// HTTP surface and domain modules
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
