package handlers

import (
	"net/http"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
	"github.com/Habanerio/Xpnss-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// totalsHandler handles HTTP requests for derived monthly rollups. The rows
// it returns lag the transaction ledger by however long propagation takes.
type totalsHandler struct {
	monthlyTotalService portssvc.MonthlyTotalSvcFacade
}

// registerTotalsRoutes registers routes related to monthly rollups.
func registerTotalsRoutes(rg *gin.RouterGroup, monthlyTotalService portssvc.MonthlyTotalSvcFacade) {
	h := &totalsHandler{monthlyTotalService: monthlyTotalService}

	totals := rg.Group("/totals")
	{
		totals.GET("/:entityType", h.listTotals)
	}
}

// listTotals serves both query shapes: entityID+year for one entity's
// calendar year, or startYear/startMonth/endYear/endMonth for a range across
// all entities of the type.
func (h *totalsHandler) listTotals(c *gin.Context) {
	var params dto.ListTotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entityType, err := domain.ParseEntityType(c.Param("entityType"))
	if err != nil {
		respondServiceError(c, err, "Failed to list totals")
		return
	}

	var totals []domain.MonthlyTotal
	if params.EntityID != "" {
		totals, err = h.monthlyTotalService.GetEntityTotalsForYear(c.Request.Context(), userID, params.EntityID, entityType, params.Year)
	} else {
		start := domain.YearMonth{Year: params.StartYear, Month: params.StartMonth}
		end := domain.YearMonth{Year: params.EndYear, Month: params.EndMonth}
		totals, err = h.monthlyTotalService.GetTotalsRange(c.Request.Context(), userID, entityType, start, end)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMonthlyTotalResponse(totals))
}
