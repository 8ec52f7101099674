package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/kasirhq/kasir/internal/config"
	"github.com/kasirhq/kasir/internal/customer"
	customerdomain "github.com/kasirhq/kasir/internal/customer/domain"
	obstracing "github.com/kasirhq/kasir/internal/observability/tracing"
	"github.com/kasirhq/kasir/internal/product"
	productdomain "github.com/kasirhq/kasir/internal/product/domain"
	"github.com/kasirhq/kasir/internal/quantity"
	quantitydomain "github.com/kasirhq/kasir/internal/quantity/domain"
	"github.com/kasirhq/kasir/internal/sale"
	saledomain "github.com/kasirhq/kasir/internal/sale/domain"
	"github.com/kasirhq/kasir/internal/supplier"
	supplierdomain "github.com/kasirhq/kasir/internal/supplier/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	customer.Module,
	supplier.Module,
	product.Module,
	quantity.Module,
	sale.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(obstracing.GinMiddleware())
	r.Use(MetricsMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	customerSvc customerdomain.Service
	supplierSvc supplierdomain.Service
	productSvc  productdomain.Service
	quantitySvc quantitydomain.Service
	saleSvc     saledomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	CustomerSvc customerdomain.Service
	SupplierSvc supplierdomain.Service
	ProductSvc  productdomain.Service
	QuantitySvc quantitydomain.Service
	SaleSvc     saledomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		customerSvc: p.CustomerSvc,
		supplierSvc: p.SupplierSvc,
		productSvc:  p.ProductSvc,
		quantitySvc: p.QuantitySvc,
		saleSvc:     p.SaleSvc,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/search/:query", s.SearchCustomers)
	api.GET("/customers/legacy/:legacyId", s.GetCustomerByLegacyID)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	// -------- Suppliers --------
	api.GET("/suppliers", s.ListSuppliers)
	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers/search/:query", s.SearchSuppliers)
	api.GET("/suppliers/legacy/:legacyId", s.GetSupplierByLegacyID)
	api.GET("/suppliers/:id", s.GetSupplierByID)
	api.PUT("/suppliers/:id", s.UpdateSupplier)
	api.DELETE("/suppliers/:id", s.DeleteSupplier)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/search/:query", s.SearchProducts)
	api.GET("/products/legacy/:legacyId", s.GetProductByLegacyID)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Quantities --------
	api.GET("/quantities", s.ListQuantities)
	api.POST("/quantities", s.CreateQuantity)
	api.GET("/quantities/search/:query", s.SearchQuantities)
	api.GET("/quantities/legacy/:legacyId", s.GetQuantityByLegacyID)
	api.GET("/quantities/product/:productId", s.GetQuantityByProductID)
	api.GET("/quantities/:id", s.GetQuantityByID)
	api.PUT("/quantities/:id", s.UpdateQuantity)
	api.DELETE("/quantities/:id", s.DeleteQuantity)

	// -------- Sales --------
	api.GET("/sales", s.ListSales)
	api.POST("/sales", s.CreateSale)
	api.GET("/sales/analytics", s.GetSalesAnalytics)
	api.GET("/sales/search/:query", s.SearchSales)
	api.GET("/sales/legacy/:legacyId", s.GetSaleByLegacyID)
	api.GET("/sales/:id", s.GetSaleByID)
	api.PUT("/sales/:id", s.UpdateSale)
	api.DELETE("/sales/:id", s.DeleteSale)
}
