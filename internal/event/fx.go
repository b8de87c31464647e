package event

import (
	"github.com/mannyyy07/quickqr/internal/event/service"
	"go.uber.org/fx"
)

// Module provides the usage event service.
var Module = fx.Module("event.service",
	fx.Provide(service.NewService),
)
