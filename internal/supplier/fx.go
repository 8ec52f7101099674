package supplier

import (
	"github.com/kasirhq/kasir/internal/supplier/repository"
	"github.com/kasirhq/kasir/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
