package di

import (
	"go.uber.org/fx"

	"github.com/mpetrenko/ordersvc/internal/app"
	"github.com/mpetrenko/ordersvc/internal/config"
	"github.com/mpetrenko/ordersvc/internal/logger"
	"github.com/mpetrenko/ordersvc/internal/metrics"
	"github.com/mpetrenko/ordersvc/internal/server/http/handlers"
	"github.com/mpetrenko/ordersvc/internal/server/http/router"
	"github.com/mpetrenko/ordersvc/internal/storage/postgres"
	"github.com/mpetrenko/ordersvc/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(m *metrics.OrderMetrics) usecase.Metrics { return m },
			func(f *app.OrderFacade) handlers.OrderFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
