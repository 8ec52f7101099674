package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/kasirhq/kasir/internal/product/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
)

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp, "product created")
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	supplierID, err := parseOptionalInt64(firstQuery(c, "supplier_id", "supplierId"))
	if err != nil {
		AbortWithError(c, validation.New("supplier_id", "invalid_supplier_id", "invalid supplier_id"))
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListProductRequest{
		Pagination: query.Pagination,
		ListProductFilter: productdomain.ListProductFilter{
			Category:   strings.TrimSpace(query.Category),
			SupplierID: supplierID,
		},
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Products, len(resp.Products), resp.PageInfo)
}

func (s *Server) GetProductByID(c *gin.Context) {
	resp, err := s.productSvc.GetByID(c.Request.Context(), productdomain.GetProductRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetProductByLegacyID(c *gin.Context) {
	legacyID, err := parseOptionalInt64(c.Param("legacyId"))
	if err != nil || legacyID == nil {
		AbortWithError(c, validation.New("legacy_id", "invalid_legacy_id", "invalid legacy id"))
		return
	}

	resp, err := s.productSvc.GetByLegacyID(c.Request.Context(), *legacyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req productdomain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateProductRequest{
		ID:                   strings.TrimSpace(c.Param("id")),
		CreateProductRequest: req,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	err := s.productSvc.Delete(c.Request.Context(), productdomain.GetProductRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondMessage(c, "product deleted")
}

func (s *Server) SearchProducts(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Search(c.Request.Context(), productdomain.SearchProductRequest{
		Query:      strings.TrimSpace(c.Param("query")),
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Products, len(resp.Products), resp.PageInfo)
}

func isProductValidationError(err error) bool {
	switch err {
	case productdomain.ErrInvalidName,
		productdomain.ErrInvalidBarcode,
		productdomain.ErrInvalidPrice,
		productdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
