package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	supplierdomain "github.com/kasirhq/kasir/internal/supplier/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
)

func (s *Server) CreateSupplier(c *gin.Context) {
	var req supplierdomain.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp, "supplier created")
}

func (s *Server) ListSuppliers(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.List(c.Request.Context(), supplierdomain.ListSupplierRequest{
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Suppliers, len(resp.Suppliers), resp.PageInfo)
}

func (s *Server) GetSupplierByID(c *gin.Context) {
	resp, err := s.supplierSvc.GetByID(c.Request.Context(), supplierdomain.GetSupplierRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetSupplierByLegacyID(c *gin.Context) {
	legacyID, err := parseOptionalInt64(c.Param("legacyId"))
	if err != nil || legacyID == nil {
		AbortWithError(c, validation.New("legacy_id", "invalid_legacy_id", "invalid legacy id"))
		return
	}

	resp, err := s.supplierSvc.GetByLegacyID(c.Request.Context(), *legacyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) UpdateSupplier(c *gin.Context) {
	var req supplierdomain.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.Update(c.Request.Context(), supplierdomain.UpdateSupplierRequest{
		ID:                    strings.TrimSpace(c.Param("id")),
		CreateSupplierRequest: req,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteSupplier(c *gin.Context) {
	err := s.supplierSvc.Delete(c.Request.Context(), supplierdomain.GetSupplierRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondMessage(c, "supplier deleted")
}

func (s *Server) SearchSuppliers(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.Search(c.Request.Context(), supplierdomain.SearchSupplierRequest{
		Query:      strings.TrimSpace(c.Param("query")),
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Suppliers, len(resp.Suppliers), resp.PageInfo)
}

func isSupplierValidationError(err error) bool {
	switch err {
	case supplierdomain.ErrInvalidName,
		supplierdomain.ErrInvalidContact,
		supplierdomain.ErrInvalidEmail,
		supplierdomain.ErrInvalidPhone,
		supplierdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
