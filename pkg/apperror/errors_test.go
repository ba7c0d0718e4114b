package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("VAL_001", "bad input", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] bad input", e.Error())

	wrapped := Wrap("SYS_001", "db down", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Equal(t, "[SYS_001] db down: conn refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := InternalError(inner)
	assert.True(t, errors.Is(e, inner))
}

func TestErrRailCall(t *testing.T) {
	inner := errors.New("502 from rail")

	e := ErrRailCall("createWalletSet", "", inner)
	assert.Equal(t, "RAIL_001", e.Code)
	assert.Equal(t, http.StatusBadGateway, e.HTTPStatus)
	assert.Contains(t, e.Message, "createWalletSet")
	assert.NotContains(t, e.Message, "chain")

	e = ErrRailCall("createAccount", "ETH_SEPOLIA", inner)
	assert.Contains(t, e.Message, "ETH_SEPOLIA")
	assert.True(t, errors.Is(e, inner))
}

func TestErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, ErrConfiguration("missing api key").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, Validation("amount required").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, ErrNotFound("merchant").HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, ErrRateLimitExceeded().HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, ErrDatabaseError(errors.New("x")).HTTPStatus)
}

func TestErrorsAs(t *testing.T) {
	var appErr *AppError
	err := error(ErrNotFound("merchant"))
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAY_404", appErr.Code)
}
