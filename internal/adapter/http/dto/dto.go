package dto

// OnboardMerchantRequest is the request body for merchant onboarding.
type OnboardMerchantRequest struct {
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=100"`
}

// ChainOutcomeResponse reports the multi-chain wallet footprint created
// during onboarding. Failed maps chain key to the failure reason.
type ChainOutcomeResponse struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// MerchantResponse is the response body for a single merchant.
type MerchantResponse struct {
	MerchantID                   string `json:"merchant_id"`
	Name                         string `json:"name"`
	Slug                         string `json:"slug"`
	WalletAddress                string `json:"wallet_address"`
	WalletSetID                  string `json:"wallet_set_id"`
	PaymentAcceptanceWalletSetID string `json:"payment_acceptance_wallet_set_id"`
	CreatedAt                    string `json:"created_at"`
}

// OnboardMerchantResponse is the response body for successful onboarding.
type OnboardMerchantResponse struct {
	MerchantResponse
	Chains ChainOutcomeResponse `json:"chains"`
}

// MerchantListResponse wraps the merchant list.
type MerchantListResponse struct {
	Items []MerchantResponse `json:"items"`
	Total int                `json:"total"`
}

// PaymentLinkRequest is the request body for payment link generation.
// Amount is a decimal string forwarded to the rail unparsed; Chain is
// optional and falls back to the default chain when absent or unknown.
type PaymentLinkRequest struct {
	OrderID                      string `json:"order_id" binding:"required,max=100,safe_id"`
	PaymentAcceptanceWalletSetID string `json:"payment_acceptance_wallet_set_id" binding:"required"`
	Amount                       string `json:"amount" binding:"required,decimal_amount"`
	Chain                        string `json:"chain,omitempty"`
}

// PaymentLinkResponse is the response body for a generated payment link.
type PaymentLinkResponse struct {
	WalletAddress string `json:"wallet_address"`
	OrderID       string `json:"order_id"`
	Amount        string `json:"amount"`
	Link          string `json:"link"`
	EncodedLink   string `json:"encoded_link"`
}
