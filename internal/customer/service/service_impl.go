package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kasirhq/kasir/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	name, email, err := s.validate(req)
	if err != nil {
		return domain.Customer{}, err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		LegacyID:  req.LegacyID,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	req.Normalize()

	customers, total, err := s.repo.List(ctx, s.db, req.Pagination)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	return domain.ListCustomerResponse{
		PageInfo:  pagination.NewPageInfo(req.Pagination, total),
		Customers: customers,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (domain.Customer, error) {
	item, err := s.repo.FindByLegacyID(ctx, s.db, legacyID)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	name, email, err := s.validate(req.CreateCustomerRequest)
	if err != nil {
		return domain.Customer{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if existing == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	existing.LegacyID = req.LegacyID
	existing.Name = name
	existing.Email = email
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Address = strings.TrimSpace(req.Address)
	existing.UpdatedAt = time.Now().UTC()

	affected, err := s.repo.Update(ctx, s.db, existing)
	if err != nil {
		return domain.Customer{}, err
	}
	if affected == 0 {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetCustomerRequest) error {
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

func (s *Service) Search(ctx context.Context, req domain.SearchCustomerRequest) (domain.ListCustomerResponse, error) {
	req.Normalize()

	customers, total, err := s.repo.Search(ctx, s.db, strings.TrimSpace(req.Query), req.Pagination)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	return domain.ListCustomerResponse{
		PageInfo:  pagination.NewPageInfo(req.Pagination, total),
		Customers: customers,
	}, nil
}

func (s *Service) validate(req domain.CreateCustomerRequest) (name, email string, err error) {
	name = strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", domain.ErrInvalidName
	}

	email = strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		return "", "", domain.ErrInvalidEmail
	}

	return name, email, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
