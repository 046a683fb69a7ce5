package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// 7-digit NTN with optional check digit, or a 13-digit CNIC-based NTN.
	ntnPattern  = regexp.MustCompile(`^(\d{7}(-\d)?|\d{13})$`)
	cnicPattern = regexp.MustCompile(`^(\d{5}-\d{7}-\d|\d{13})$`)
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	custom := map[string]validator.Func{
		"ntn":            validateNTN,
		"cnic":           validateCNIC,
		"doctype":        validateDocumentType,
		"notplaceholder": validateNotPlaceholder,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func validateNTN(fl validator.FieldLevel) bool {
	return ntnPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateCNIC(fl validator.FieldLevel) bool {
	return cnicPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return domain.DocumentType(strings.TrimSpace(fl.Field().String())).IsValid()
}

func validateNotPlaceholder(fl validator.FieldLevel) bool {
	return !domain.IsPlaceholder(fl.Field().String())
}
