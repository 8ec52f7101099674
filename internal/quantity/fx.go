package quantity

import (
	"github.com/kasirhq/kasir/internal/quantity/repository"
	"github.com/kasirhq/kasir/internal/quantity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quantity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
