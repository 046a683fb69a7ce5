package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("lookup: %w", apperrors.ErrNotFound)
	err := fmt.Errorf("repo: %w", apperrors.NewAppError(http.StatusInternalServerError, "failed to find invoice", cause))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "failed to find invoice: lookup: resource not found", appErr.Error())
	assert.Equal(t, "bare", apperrors.NewAppError(400, "bare", nil).Error())
}
