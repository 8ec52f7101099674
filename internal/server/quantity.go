package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	quantitydomain "github.com/kasirhq/kasir/internal/quantity/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
)

func (s *Server) CreateQuantity(c *gin.Context) {
	var req quantitydomain.CreateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quantitySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp, "quantity created")
}

func (s *Server) ListQuantities(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	productID, err := parseOptionalInt64(firstQuery(c, "product_id", "productId"))
	if err != nil {
		AbortWithError(c, validation.New("product_id", "invalid_product_id", "invalid product_id"))
		return
	}

	resp, err := s.quantitySvc.List(c.Request.Context(), quantitydomain.ListQuantityRequest{
		Pagination:         query.Pagination,
		ListQuantityFilter: quantitydomain.ListQuantityFilter{ProductID: productID},
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Quantities, len(resp.Quantities), resp.PageInfo)
}

func (s *Server) GetQuantityByID(c *gin.Context) {
	resp, err := s.quantitySvc.GetByID(c.Request.Context(), quantitydomain.GetQuantityRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetQuantityByLegacyID(c *gin.Context) {
	legacyID, err := parseOptionalInt64(c.Param("legacyId"))
	if err != nil || legacyID == nil {
		AbortWithError(c, validation.New("legacy_id", "invalid_legacy_id", "invalid legacy id"))
		return
	}

	resp, err := s.quantitySvc.GetByLegacyID(c.Request.Context(), *legacyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetQuantityByProductID(c *gin.Context) {
	productID, err := parseOptionalInt64(c.Param("productId"))
	if err != nil || productID == nil {
		AbortWithError(c, validation.New("product_id", "invalid_product_id", "invalid product id"))
		return
	}

	resp, err := s.quantitySvc.GetByProductID(c.Request.Context(), *productID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) UpdateQuantity(c *gin.Context) {
	var req quantitydomain.CreateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quantitySvc.Update(c.Request.Context(), quantitydomain.UpdateQuantityRequest{
		ID:                    strings.TrimSpace(c.Param("id")),
		CreateQuantityRequest: req,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteQuantity(c *gin.Context) {
	err := s.quantitySvc.Delete(c.Request.Context(), quantitydomain.GetQuantityRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondMessage(c, "quantity deleted")
}

func (s *Server) SearchQuantities(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quantitySvc.Search(c.Request.Context(), quantitydomain.SearchQuantityRequest{
		Query:      strings.TrimSpace(c.Param("query")),
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Quantities, len(resp.Quantities), resp.PageInfo)
}

func isQuantityValidationError(err error) bool {
	switch err {
	case quantitydomain.ErrInvalidProductRef,
		quantitydomain.ErrInvalidSize,
		quantitydomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
