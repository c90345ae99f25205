package http

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ---- helpers ----

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
