package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/request"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
)

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	poService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(poService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreatePurchaseOrderInput{
		SupplierName:   req.SupplierName,
		Currency:       req.Currency,
		Discount:       req.Discount,
		SecondDiscount: req.SecondDiscount,
		VAT:            req.VAT,
		Items:          make([]service.PurchaseOrderItemInput, len(req.Items)),
	}
	for i, item := range req.Items {
		input.Items[i] = service.PurchaseOrderItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			Discount:    item.Discount,
		}
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", po)
}

// Get handles getting a purchase order by ID
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "purchase order")
	if !ok {
		return
	}

	po, err := h.poService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", po)
}

// UpdateTerms handles changing the terms of a purchase order
func (h *PurchaseOrderHandler) UpdateTerms(c *gin.Context) {
	id, ok := uuidParam(c, "id", "purchase order")
	if !ok {
		return
	}

	var req request.UpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	po, err := h.poService.UpdateTerms(c.Request.Context(), id, service.TermsInput{
		Discount:       req.Discount,
		SecondDiscount: req.SecondDiscount,
		VAT:            req.VAT,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order terms updated successfully", po)
}

// Recalculate handles repricing a purchase order
func (h *PurchaseOrderHandler) Recalculate(c *gin.Context) {
	id, ok := uuidParam(c, "id", "purchase order")
	if !ok {
		return
	}

	po, err := h.poService.RecalculateTotals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order totals recalculated successfully", po)
}
