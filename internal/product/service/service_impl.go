package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/cache"
	"github.com/kasirhq/kasir/internal/product/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const productCachePrefix = "catalog:product:"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Redis *redis.Client `optional:"true"`
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	redis *redis.Client
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
		redis: p.Redis,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	if err := validate(req); err != nil {
		return domain.Product{}, err
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:         s.genID.Generate(),
		LegacyID:   req.LegacyID,
		Name:       strings.TrimSpace(req.Name),
		Barcode:    strings.TrimSpace(req.Barcode),
		SalePrice:  req.SalePrice,
		Discount:   req.Discount,
		Tax:        req.Tax,
		Category:   strings.TrimSpace(req.Category),
		ExpiryDate: req.ExpiryDate,
		SupplierID: req.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductRequest) (domain.ListProductResponse, error) {
	req.Normalize()

	filter := domain.ListProductFilter{
		Category:   strings.TrimSpace(req.Category),
		SupplierID: req.SupplierID,
	}

	products, total, err := s.repo.List(ctx, s.db, filter, req.Pagination)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	return domain.ListProductResponse{
		PageInfo: pagination.NewPageInfo(req.Pagination, total),
		Products: products,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetProductRequest) (domain.Product, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	if cached, ok := s.fromCache(ctx, id); ok {
		return cached, nil
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	s.toCache(ctx, *item)
	return *item, nil
}

func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (domain.Product, error) {
	item, err := s.repo.FindByLegacyID(ctx, s.db, legacyID)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	if err := validate(req.CreateProductRequest); err != nil {
		return domain.Product{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if existing == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	existing.LegacyID = req.LegacyID
	existing.Name = strings.TrimSpace(req.Name)
	existing.Barcode = strings.TrimSpace(req.Barcode)
	existing.SalePrice = req.SalePrice
	existing.Discount = req.Discount
	existing.Tax = req.Tax
	existing.Category = strings.TrimSpace(req.Category)
	existing.ExpiryDate = req.ExpiryDate
	existing.SupplierID = req.SupplierID
	existing.UpdatedAt = time.Now().UTC()

	affected, err := s.repo.Update(ctx, s.db, existing)
	if err != nil {
		return domain.Product{}, err
	}
	if affected == 0 {
		return domain.Product{}, domain.ErrNotFound
	}

	s.invalidate(ctx, id)
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetProductRequest) error {
	id, err := s.parseID(req.ID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *Service) Search(ctx context.Context, req domain.SearchProductRequest) (domain.ListProductResponse, error) {
	req.Normalize()

	products, total, err := s.repo.Search(ctx, s.db, strings.TrimSpace(req.Query), req.Pagination)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	return domain.ListProductResponse{
		PageInfo: pagination.NewPageInfo(req.Pagination, total),
		Products: products,
	}, nil
}

// Cache access is best-effort: redis failures fall through to the store.

func (s *Service) fromCache(ctx context.Context, id snowflake.ID) (domain.Product, bool) {
	if s.redis == nil {
		return domain.Product{}, false
	}
	raw, err := s.redis.Get(ctx, productCacheKey(id)).Bytes()
	if err != nil {
		return domain.Product{}, false
	}
	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return domain.Product{}, false
	}
	return product, true
}

func (s *Service) toCache(ctx context.Context, product domain.Product) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, productCacheKey(product.ID), raw, cache.TTLMedium).Err(); err != nil {
		s.log.Debug("cache write failed", zap.Error(err))
	}
}

func (s *Service) invalidate(ctx context.Context, id snowflake.ID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, productCacheKey(id)).Err(); err != nil {
		s.log.Debug("cache invalidation failed", zap.Error(err))
	}
}

func productCacheKey(id snowflake.ID) string {
	return fmt.Sprintf("%s%d", productCachePrefix, id)
}

func validate(req domain.CreateProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrInvalidName
	}
	if strings.TrimSpace(req.Barcode) == "" {
		return domain.ErrInvalidBarcode
	}
	if req.SalePrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
