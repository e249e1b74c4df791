package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/request"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
	"github.com/sangkips/alinea-erp/pkg/pagination"
)

// AcknowledgementHandler handles sales order HTTP requests
type AcknowledgementHandler struct {
	ackService *service.AcknowledgementService
}

// NewAcknowledgementHandler creates a new acknowledgement handler
func NewAcknowledgementHandler(ackService *service.AcknowledgementService) *AcknowledgementHandler {
	return &AcknowledgementHandler{ackService: ackService}
}

// List handles listing acknowledgements
func (h *AcknowledgementHandler) List(c *gin.Context) {
	var filter request.AcknowledgementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.AcknowledgementFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != "" {
		status, ok := enum.ParseAcknowledgementStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Unknown status "+filter.Status)
			return
		}
		params.Status = &status
	}

	if filter.CustomerID != "" {
		if customerID, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &customerID
		}
	}

	if filter.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &startDate
		}
	}

	if filter.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			// Include the whole end day
			endDate = endDate.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &endDate
		}
	}

	result, err := h.ackService.ListAcknowledgements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Acknowledgements retrieved successfully", result)
}

// Create handles creating an acknowledgement
func (h *AcknowledgementHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req request.CreateAcknowledgementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateAcknowledgementInput{
		CustomerID:     req.CustomerID,
		Discount:       req.Discount,
		SecondDiscount: req.SecondDiscount,
		VAT:            req.VAT,
		DeliveryDate:   req.DeliveryDate,
		Remarks:        req.Remarks,
		ShippingMethod: req.ShippingMethod,
		Items:          make([]service.AcknowledgementItemInput, len(req.Items)),
	}
	for i, item := range req.Items {
		input.Items[i] = service.AcknowledgementItemInput{
			ProductID:    item.ProductID,
			Description:  item.Description,
			Comments:     item.Comments,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			IsCustomSize: item.IsCustomSize,
			Width:        item.Width,
			Depth:        item.Depth,
			Height:       item.Height,
		}
	}

	ack, err := h.ackService.CreateAcknowledgement(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Acknowledgement created successfully", ack)
}

// Get handles getting an acknowledgement by ID
func (h *AcknowledgementHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	ack, err := h.ackService.GetAcknowledgement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Acknowledgement retrieved successfully", ack)
}

// UpdateTerms handles changing the discounts or VAT of an acknowledgement
func (h *AcknowledgementHandler) UpdateTerms(c *gin.Context) {
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	var req request.UpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ack, err := h.ackService.UpdateTerms(c.Request.Context(), id, service.TermsInput{
		Discount:       req.Discount,
		SecondDiscount: req.SecondDiscount,
		VAT:            req.VAT,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Acknowledgement terms updated successfully", ack)
}

// UpdateItem handles editing one acknowledgement item
func (h *AcknowledgementHandler) UpdateItem(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "item_id", "item")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ack, err := h.ackService.UpdateItem(c.Request.Context(), actor, id, itemID, service.UpdateItemInput{
		Description: req.Description,
		Comments:    req.Comments,
		Status:      req.Status,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Acknowledgement item updated successfully", ack)
}

// Recalculate handles recomputing the stored totals of an acknowledgement
func (h *AcknowledgementHandler) Recalculate(c *gin.Context) {
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	ack, err := h.ackService.RecalculateTotals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Acknowledgement totals recalculated successfully", ack)
}

// Balance handles reporting what is left to invoice
func (h *AcknowledgementHandler) Balance(c *gin.Context) {
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	balance, err := h.ackService.Balance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Acknowledgement balance retrieved successfully", balance)
}

// Delete handles deleting an acknowledgement
func (h *AcknowledgementHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	if err := h.ackService.DeleteAcknowledgement(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
