package usecase

import (
	"go.uber.org/fx"

	"github.com/mpetrenko/ordersvc/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(cfg *config.Config) PageLimits {
		return PageLimits{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize}
	},
	NewOrderUseCase,
)
