package sale

import (
	"github.com/kasirhq/kasir/internal/sale/repository"
	"github.com/kasirhq/kasir/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
