package handler

import (
	"stablecoin-payment-rail/internal/adapter/http/dto"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/pkg/apperror"
	"stablecoin-payment-rail/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentLinkHandler handles payment-link endpoints.
type PaymentLinkHandler struct {
	linkSvc ports.PaymentLinkService
	cache   ports.LinkCache // nil = cached reads disabled
}

// NewPaymentLinkHandler creates a new PaymentLinkHandler.
func NewPaymentLinkHandler(linkSvc ports.PaymentLinkService, cache ports.LinkCache) *PaymentLinkHandler {
	return &PaymentLinkHandler{linkSvc: linkSvc, cache: cache}
}

// Generate handles POST /api/v1/payment-links.
func (h *PaymentLinkHandler) Generate(c *gin.Context) {
	var req dto.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.linkSvc.GenerateLink(c.Request.Context(), domain.Order{
		ID:       req.OrderID,
		Amount:   req.Amount,
		ChainKey: req.Chain,
	}, req.PaymentAcceptanceWalletSetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentLinkResponse(result))
}

// GetByOrderID handles GET /api/v1/payment-links/:orderID. It serves only
// the cached copy; a miss means the link must be regenerated.
func (h *PaymentLinkHandler) GetByOrderID(c *gin.Context) {
	if h.cache == nil {
		response.Error(c, apperror.ErrNotFound("Payment link"))
		return
	}

	link, err := h.cache.Get(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if link == nil {
		response.Error(c, apperror.ErrNotFound("Payment link"))
		return
	}

	response.OK(c, toPaymentLinkResponse(link))
}

// toPaymentLinkResponse converts domain.PaymentLink to DTO.
func toPaymentLinkResponse(link *domain.PaymentLink) dto.PaymentLinkResponse {
	return dto.PaymentLinkResponse{
		WalletAddress: link.WalletAddress,
		OrderID:       link.OrderID,
		Amount:        link.Amount,
		Link:          link.Link,
		EncodedLink:   link.EncodedLink,
	}
}
