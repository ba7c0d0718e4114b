package handler

import (
	"time"

	"stablecoin-payment-rail/internal/adapter/http/dto"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/pkg/apperror"
	"stablecoin-payment-rail/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant onboarding and read endpoints.
type MerchantHandler struct {
	onboardingSvc ports.OnboardingService
	merchantRepo  ports.MerchantRepository
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(onboardingSvc ports.OnboardingService, merchantRepo ports.MerchantRepository) *MerchantHandler {
	return &MerchantHandler{onboardingSvc: onboardingSvc, merchantRepo: merchantRepo}
}

// Onboard handles POST /api/v1/merchants.
func (h *MerchantHandler) Onboard(c *gin.Context) {
	var req dto.OnboardMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.onboardingSvc.Onboard(c.Request.Context(), req.MerchantName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OnboardMerchantResponse{
		MerchantResponse: toMerchantResponse(&result.Merchant),
		Chains: dto.ChainOutcomeResponse{
			Succeeded: result.Chains.Succeeded,
			Failed:    result.Chains.Failed,
		},
	})
}

// List handles GET /api/v1/merchants.
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := h.merchantRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.MerchantResponse, 0, len(merchants))
	for i := range merchants {
		items = append(items, toMerchantResponse(&merchants[i]))
	}

	response.OK(c, dto.MerchantListResponse{Items: items, Total: len(items)})
}

// GetByID handles GET /api/v1/merchants/:id.
func (h *MerchantHandler) GetByID(c *gin.Context) {
	merchant, err := h.merchantRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if merchant == nil {
		response.Error(c, apperror.ErrNotFound("Merchant"))
		return
	}

	response.OK(c, toMerchantResponse(merchant))
}

// toMerchantResponse converts domain.Merchant to DTO.
func toMerchantResponse(m *domain.Merchant) dto.MerchantResponse {
	return dto.MerchantResponse{
		MerchantID:                   m.ID,
		Name:                         m.Name,
		Slug:                         m.Slug,
		WalletAddress:                m.WalletAddress,
		WalletSetID:                  m.WalletSetID,
		PaymentAcceptanceWalletSetID: m.PaymentAcceptanceWalletSetID,
		CreatedAt:                    m.CreatedAt.Format(time.RFC3339),
	}
}
