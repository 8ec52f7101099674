package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	saledomain "github.com/kasirhq/kasir/internal/sale/domain"
	"github.com/kasirhq/kasir/pkg/db/pagination"
	"github.com/kasirhq/kasir/pkg/validation"
)

func (s *Server) CreateSale(c *gin.Context) {
	var req saledomain.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp, "sale recorded")
}

func (s *Server) ListSales(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	filter, err := saleFilterFromQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListSaleRequest{
		Pagination:     query.Pagination,
		ListSaleFilter: filter,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Sales, len(resp.Sales), resp.PageInfo)
}

func (s *Server) GetSaleByID(c *gin.Context) {
	resp, err := s.saleSvc.GetByID(c.Request.Context(), saledomain.GetSaleRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) GetSaleByLegacyID(c *gin.Context) {
	legacyID, err := parseOptionalInt64(c.Param("legacyId"))
	if err != nil || legacyID == nil {
		AbortWithError(c, validation.New("legacy_id", "invalid_legacy_id", "invalid legacy id"))
		return
	}

	resp, err := s.saleSvc.GetByLegacyID(c.Request.Context(), *legacyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) UpdateSale(c *gin.Context) {
	var req saledomain.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.Update(c.Request.Context(), saledomain.UpdateSaleRequest{
		ID:                strings.TrimSpace(c.Param("id")),
		CreateSaleRequest: req,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteSale(c *gin.Context) {
	err := s.saleSvc.Delete(c.Request.Context(), saledomain.GetSaleRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondMessage(c, "sale deleted")
}

func (s *Server) SearchSales(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.Search(c.Request.Context(), saledomain.SearchSaleRequest{
		Query:      strings.TrimSpace(c.Param("query")),
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, "data", resp.Sales, len(resp.Sales), resp.PageInfo)
}

func (s *Server) GetSalesAnalytics(c *gin.Context) {
	startDate, err := parseOptionalTime(firstQuery(c, "start_date", "startDate"), false)
	if err != nil {
		AbortWithError(c, validation.New("start_date", "invalid_start_date", "invalid start_date"))
		return
	}
	endDate, err := parseOptionalTime(firstQuery(c, "end_date", "endDate"), true)
	if err != nil {
		AbortWithError(c, validation.New("end_date", "invalid_end_date", "invalid end_date"))
		return
	}

	resp, err := s.saleSvc.Analytics(c.Request.Context(), saledomain.AnalyticsRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func saleFilterFromQuery(c *gin.Context) (saledomain.ListSaleFilter, error) {
	startDate, err := parseOptionalTime(firstQuery(c, "start_date", "startDate"), false)
	if err != nil {
		return saledomain.ListSaleFilter{}, validation.New("start_date", "invalid_start_date", "invalid start_date")
	}
	endDate, err := parseOptionalTime(firstQuery(c, "end_date", "endDate"), true)
	if err != nil {
		return saledomain.ListSaleFilter{}, validation.New("end_date", "invalid_end_date", "invalid end_date")
	}
	customerID, err := parseOptionalInt64(firstQuery(c, "customer_id", "customerId"))
	if err != nil {
		return saledomain.ListSaleFilter{}, validation.New("customer_id", "invalid_customer_id", "invalid customer_id")
	}

	return saledomain.ListSaleFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		CustomerID: customerID,
	}, nil
}

func isSaleValidationError(err error) bool {
	switch err {
	case saledomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
