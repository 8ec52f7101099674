package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/quantity/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
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
		log:   p.Log.Named("quantity.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateQuantityRequest) (domain.Quantity, error) {
	productID, size, err := normalize(req)
	if err != nil {
		return domain.Quantity{}, err
	}

	now := time.Now().UTC()
	quantity := domain.Quantity{
		ID:        s.genID.Generate(),
		LegacyID:  req.LegacyID,
		ProductID: productID,
		Size:      size,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &quantity); err != nil {
		return domain.Quantity{}, err
	}

	return quantity, nil
}

func (s *Service) List(ctx context.Context, req domain.ListQuantityRequest) (domain.ListQuantityResponse, error) {
	req.Normalize()

	quantities, total, err := s.repo.List(ctx, s.db, req.ListQuantityFilter, req.Pagination)
	if err != nil {
		return domain.ListQuantityResponse{}, err
	}

	return domain.ListQuantityResponse{
		PageInfo:   pagination.NewPageInfo(req.Pagination, total),
		Quantities: quantities,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetQuantityRequest) (domain.Quantity, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Quantity{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Quantity{}, err
	}
	if item == nil {
		return domain.Quantity{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (domain.Quantity, error) {
	item, err := s.repo.FindByLegacyID(ctx, s.db, legacyID)
	if err != nil {
		return domain.Quantity{}, err
	}
	if item == nil {
		return domain.Quantity{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) GetByProductID(ctx context.Context, productID int64) (domain.Quantity, error) {
	item, err := s.repo.FindByProductID(ctx, s.db, productID)
	if err != nil {
		return domain.Quantity{}, err
	}
	if item == nil {
		return domain.Quantity{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateQuantityRequest) (domain.Quantity, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Quantity{}, err
	}

	productID, size, err := normalize(req.CreateQuantityRequest)
	if err != nil {
		return domain.Quantity{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Quantity{}, err
	}
	if existing == nil {
		return domain.Quantity{}, domain.ErrNotFound
	}

	existing.LegacyID = req.LegacyID
	existing.ProductID = productID
	existing.Size = size
	existing.UpdatedAt = time.Now().UTC()

	affected, err := s.repo.Update(ctx, s.db, existing)
	if err != nil {
		return domain.Quantity{}, err
	}
	if affected == 0 {
		return domain.Quantity{}, domain.ErrNotFound
	}

	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetQuantityRequest) error {
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

// Search interprets the query as a product reference; quantities have no text
// fields to match against. A non-numeric query yields an empty page.
func (s *Service) Search(ctx context.Context, req domain.SearchQuantityRequest) (domain.ListQuantityResponse, error) {
	req.Normalize()

	productID, err := strconv.ParseInt(strings.TrimSpace(req.Query), 10, 64)
	if err != nil {
		return domain.ListQuantityResponse{
			PageInfo: pagination.NewPageInfo(req.Pagination, 0),
		}, nil
	}

	quantities, total, err := s.repo.List(ctx, s.db, domain.ListQuantityFilter{ProductID: &productID}, req.Pagination)
	if err != nil {
		return domain.ListQuantityResponse{}, err
	}

	return domain.ListQuantityResponse{
		PageInfo:   pagination.NewPageInfo(req.Pagination, total),
		Quantities: quantities,
	}, nil
}

// normalize resolves the canonical product reference and checks the size
// bounds; both violations surface as sentinel validation errors.
func normalize(req domain.CreateQuantityRequest) (int64, int, error) {
	productID, ok := req.ProductRef.Normalize()
	if !ok || productID == 0 {
		return 0, 0, domain.ErrInvalidProductRef
	}
	if req.Size < 0 {
		return 0, 0, domain.ErrInvalidSize
	}
	return productID, req.Size, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
