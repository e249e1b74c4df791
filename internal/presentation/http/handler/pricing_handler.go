package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/request"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
)

// PricingHandler handles stateless pricing requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// Quote handles computing totals without storing anything
func (h *PricingHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]pricing.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = pricing.NewLineItem(item.UnitPrice, item.Quantity)
	}
	terms := pricing.Terms{
		Discount:       req.Discount,
		SecondDiscount: req.SecondDiscount,
		VAT:            req.VAT,
	}

	result, err := h.pricingService.Quote(c.Request.Context(), items, terms)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals calculated successfully", result)
}

// CustomSize handles pricing a product at custom dimensions
func (h *PricingHandler) CustomSize(c *gin.Context) {
	var req request.CustomSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quote, err := h.pricingService.QuoteCustomSize(c.Request.Context(), req.ProductID, pricing.Dimensions{
		Width:  req.Width,
		Depth:  req.Depth,
		Height: req.Height,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Custom size priced successfully", quote)
}
