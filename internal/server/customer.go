package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/kasirhq/kasir/internal/customer/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
)

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp, "customer created")
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Customers, len(resp.Customers), resp.PageInfo)
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	resp, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetCustomerByLegacyID(c *gin.Context) {
	legacyID, err := parseOptionalInt64(c.Param("legacyId"))
	if err != nil || legacyID == nil {
		AbortWithError(c, validation.New("legacy_id", "invalid_legacy_id", "invalid legacy id"))
		return
	}

	resp, err := s.customerSvc.GetByLegacyID(c.Request.Context(), *legacyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req customerdomain.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Update(c.Request.Context(), customerdomain.UpdateCustomerRequest{
		ID:                    strings.TrimSpace(c.Param("id")),
		CreateCustomerRequest: req,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	err := s.customerSvc.Delete(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondMessage(c, "customer deleted")
}

func (s *Server) SearchCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Search(c.Request.Context(), customerdomain.SearchCustomerRequest{
		Query:      strings.TrimSpace(c.Param("query")),
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Customers, len(resp.Customers), resp.PageInfo)
}

func isCustomerValidationError(err error) bool {
	switch err {
	case customerdomain.ErrInvalidName,
		customerdomain.ErrInvalidEmail,
		customerdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
