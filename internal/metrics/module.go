package metrics

import "go.uber.org/fx"

// Module wires order metrics for dependency injection.
var Module = fx.Provide(NewOrderMetrics)
