package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/request"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing the full sales history, newest-first. A store failure
// degrades to an empty list; the history view never hard-fails.
func (h *SaleHandler) List(c *gin.Context) {
	sales := h.saleService.List(c.Request.Context())
	response.OK(c, "Sales retrieved successfully", sales)
}

// Create handles checkout: it stamps the cart snapshot into a sale record
// and submits it to the store. The response carries the built record even
// when the durable write failed — the operator is never blocked on the
// database.
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid sale payload: "+err.Error())
		return
	}

	input := &service.RecordSaleInput{
		Timestamp:     req.Timestamp,
		PaymentMethod: req.PaymentMethod,
		Items:         make([]service.CartLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CartLine{
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	sale := h.saleService.Record(c.Request.Context(), input)
	if sale == nil {
		response.OK(c, "Empty cart ignored", nil)
		return
	}
	response.Created(c, "Sale recorded", sale)
}

// Delete handles removing one sale by id. Unknown ids are a silent no-op.
func (h *SaleHandler) Delete(c *gin.Context) {
	h.saleService.Delete(c.Request.Context(), c.Param("id"))
	response.OK(c, "Sale deleted", nil)
}

// Clear handles removing the entire sales history.
func (h *SaleHandler) Clear(c *gin.Context) {
	h.saleService.Clear(c.Request.Context())
	response.OK(c, "Sales cleared", nil)
}
