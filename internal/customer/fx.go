package customer

import (
	"github.com/kasirhq/kasir/internal/customer/repository"
	"github.com/kasirhq/kasir/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
