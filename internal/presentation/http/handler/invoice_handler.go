package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/request"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles invoicing an acknowledgement
func (h *InvoiceHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	ackID, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	var req request.CreateInvoiceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	input := &service.CreateInvoiceInput{
		AcknowledgementID: ackID,
		DueDate:           req.DueDate,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.InvoiceItemInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// ListByAcknowledgement handles listing the invoices of an acknowledgement
func (h *InvoiceHandler) ListByAcknowledgement(c *gin.Context) {
	ackID, ok := uuidParam(c, "id", "acknowledgement")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), ackID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", invoices)
}

// Get handles getting an invoice with its journal entry
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "invoice")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}
