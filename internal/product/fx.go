package product

import (
	"github.com/kasirhq/kasir/internal/product/repository"
	"github.com/kasirhq/kasir/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
