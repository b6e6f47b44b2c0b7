package handlers

import (
	"net/http"

	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
	"github.com/Habanerio/Xpnss-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// merchantHandler handles HTTP requests related to merchants.
type merchantHandler struct {
	merchantService portssvc.MerchantSvcFacade
}

// registerMerchantRoutes registers routes related to merchants.
func registerMerchantRoutes(rg *gin.RouterGroup, merchantService portssvc.MerchantSvcFacade) {
	h := &merchantHandler{merchantService: merchantService}

	merchants := rg.Group("/merchants")
	{
		merchants.POST("", h.createMerchant)
		merchants.GET("", h.listMerchants)
		merchants.GET("/:id", h.getMerchant)
	}
}

func (h *merchantHandler) createMerchant(c *gin.Context) {
	var req dto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	merchant, err := h.merchantService.CreateMerchant(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create merchant")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMerchantResponse(merchant))
}

func (h *merchantHandler) listMerchants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	merchants, err := h.merchantService.ListMerchants(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list merchants")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMerchantResponse(merchants))
}

func (h *merchantHandler) getMerchant(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	merchant, err := h.merchantService.GetMerchantByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve merchant")
		return
	}

	c.JSON(http.StatusOK, dto.ToMerchantResponse(merchant))
}
