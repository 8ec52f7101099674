package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/supplier/domain"
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
		log:   p.Log.Named("supplier.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSupplierRequest) (domain.Supplier, error) {
	if err := validate(req); err != nil {
		return domain.Supplier{}, err
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		ID:            s.genID.Generate(),
		LegacyID:      req.LegacyID,
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &supplier); err != nil {
		return domain.Supplier{}, err
	}

	return supplier, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSupplierRequest) (domain.ListSupplierResponse, error) {
	req.Normalize()

	suppliers, total, err := s.repo.List(ctx, s.db, req.Pagination)
	if err != nil {
		return domain.ListSupplierResponse{}, err
	}

	return domain.ListSupplierResponse{
		PageInfo:  pagination.NewPageInfo(req.Pagination, total),
		Suppliers: suppliers,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetSupplierRequest) (domain.Supplier, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if item == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (domain.Supplier, error) {
	item, err := s.repo.FindByLegacyID(ctx, s.db, legacyID)
	if err != nil {
		return domain.Supplier{}, err
	}
	if item == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSupplierRequest) (domain.Supplier, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	if err := validate(req.CreateSupplierRequest); err != nil {
		return domain.Supplier{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if existing == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	existing.LegacyID = req.LegacyID
	existing.Name = strings.TrimSpace(req.Name)
	existing.ContactPerson = strings.TrimSpace(req.ContactPerson)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Address = strings.TrimSpace(req.Address)
	existing.UpdatedAt = time.Now().UTC()

	affected, err := s.repo.Update(ctx, s.db, existing)
	if err != nil {
		return domain.Supplier{}, err
	}
	if affected == 0 {
		return domain.Supplier{}, domain.ErrNotFound
	}

	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetSupplierRequest) error {
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

func (s *Service) Search(ctx context.Context, req domain.SearchSupplierRequest) (domain.ListSupplierResponse, error) {
	req.Normalize()

	suppliers, total, err := s.repo.Search(ctx, s.db, strings.TrimSpace(req.Query), req.Pagination)
	if err != nil {
		return domain.ListSupplierResponse{}, err
	}

	return domain.ListSupplierResponse{
		PageInfo:  pagination.NewPageInfo(req.Pagination, total),
		Suppliers: suppliers,
	}, nil
}

func validate(req domain.CreateSupplierRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrInvalidName
	}
	if strings.TrimSpace(req.ContactPerson) == "" {
		return domain.ErrInvalidContact
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" && !validPhone(phone) {
		return domain.ErrInvalidPhone
	}
	return nil
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 6
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
