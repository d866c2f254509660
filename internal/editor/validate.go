package editor

import (
	"math"
	"strconv"
	"strings"
)

// Inline messages, one per failing constraint.
const (
	MsgNameRequired   = "name is required"
	MsgPriceRequired  = "price is required"
	MsgPriceNotNumber = "price must be a number"
	MsgPriceTooLow    = "price must be greater than 0"
)

// FieldError names the first field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// validate checks name before price; within price, missing before
// malformed before out of range.
func validate(name, price string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: FieldName, Message: MsgNameRequired}
	}
	if strings.TrimSpace(price) == "" {
		return &FieldError{Field: FieldPrice, Message: MsgPriceRequired}
	}
	p, err := parsePrice(price)
	if err != nil {
		return &FieldError{Field: FieldPrice, Message: MsgPriceNotNumber}
	}
	if p <= 0 {
		return &FieldError{Field: FieldPrice, Message: MsgPriceTooLow}
	}
	return nil
}

func parsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, strconv.ErrSyntax
	}
	return p, nil
}
