package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := OnboardMerchantRequest{
		MerchantName: "  Acme Cafe  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Acme Cafe", req.MerchantName)
}

func TestSanitizeStruct_PaymentLinkRequest(t *testing.T) {
	req := PaymentLinkRequest{
		OrderID:                      "  ord-1  ",
		PaymentAcceptanceWalletSetID: " ws-pa ",
		Amount:                       " 12.50 ",
		Chain:                        " BASE_SEPOLIA ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "ord-1", req.OrderID)
	assert.Equal(t, "ws-pa", req.PaymentAcceptanceWalletSetID)
	assert.Equal(t, "12.50", req.Amount)
	assert.Equal(t, "BASE_SEPOLIA", req.Chain)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ord-1",
		"ORD_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ord 1",       // space
		"ord<1>",      // angle brackets
		"ord;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ord\n1",      // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestDecimalAmount_Valid(t *testing.T) {
	cases := []string{"1", "12.50", "0.0001", "1000000"}
	for _, tc := range cases {
		assert.True(t, decimalRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestDecimalAmount_Invalid(t *testing.T) {
	cases := []string{"", "-1", "12,50", "1.2.3", "1e5", ".5", "12.", "USD 12"}
	for _, tc := range cases {
		assert.False(t, decimalRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
