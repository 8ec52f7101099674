package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/sale/domain"
	pkgdb "github.com/kasirhq/kasir/pkg/db"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("sale.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSaleRequest) (domain.Sale, error) {
	sale := domain.NewSale(req)
	sale.ID = s.genID.Generate()
	for i := range sale.Items {
		sale.Items[i].ID = s.genID.Generate()
		sale.Items[i].SaleRecordID = sale.ID
	}

	sale.CalculateTotals()
	if err := sale.Validate(); err != nil {
		return domain.Sale{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &sale); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Sale{}, duplicateSaleID(sale.SaleID)
		}
		return domain.Sale{}, err
	}

	s.log.Info("sale recorded",
		zap.String("sale_id", sale.SaleID),
		zap.String("total_amount", sale.TotalAmount.StringFixed(2)))
	return sale, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSaleRequest) (domain.ListSaleResponse, error) {
	req.Normalize()

	sales, total, err := s.repo.List(ctx, s.db, req.ListSaleFilter, req.Pagination)
	if err != nil {
		return domain.ListSaleResponse{}, err
	}

	return domain.ListSaleResponse{
		PageInfo: pagination.NewPageInfo(req.Pagination, total),
		Sales:    sales,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetSaleRequest) (domain.Sale, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Sale{}, err
	}

	sale, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrNotFound
	}

	return *sale, nil
}

func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (domain.Sale, error) {
	sale, err := s.repo.FindByLegacyID(ctx, s.db, legacyID)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrNotFound
	}

	return *sale, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSaleRequest) (domain.Sale, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Sale{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if existing == nil {
		return domain.Sale{}, domain.ErrNotFound
	}

	sale := domain.NewSale(req.CreateSaleRequest)
	sale.ID = existing.ID
	sale.CreatedAt = existing.CreatedAt
	for i := range sale.Items {
		sale.Items[i].ID = s.genID.Generate()
		sale.Items[i].SaleRecordID = sale.ID
	}

	sale.CalculateTotals()
	if err := sale.Validate(); err != nil {
		return domain.Sale{}, err
	}

	affected, err := s.repo.Replace(ctx, s.db, &sale)
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Sale{}, duplicateSaleID(sale.SaleID)
		}
		return domain.Sale{}, err
	}
	if affected == 0 {
		return domain.Sale{}, domain.ErrNotFound
	}

	return sale, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetSaleRequest) error {
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

	return nil
}

func (s *Service) Search(ctx context.Context, req domain.SearchSaleRequest) (domain.ListSaleResponse, error) {
	req.Normalize()

	sales, total, err := s.repo.Search(ctx, s.db, req.Query, req.Pagination)
	if err != nil {
		return domain.ListSaleResponse{}, err
	}

	return domain.ListSaleResponse{
		PageInfo: pagination.NewPageInfo(req.Pagination, total),
		Sales:    sales,
	}, nil
}

func (s *Service) Analytics(ctx context.Context, req domain.AnalyticsRequest) (domain.SalesAnalytics, error) {
	return s.repo.Aggregate(ctx, s.db, req)
}

func duplicateSaleID(saleID string) error {
	return validation.New("sale_id", "duplicate",
		fmt.Sprintf("sale_id %q is already recorded", saleID))
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
