package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"farmcredit-backend/internal/usecase/application"
)

type ProductHandler struct{ uc *application.Usecase }

func NewProductHandler(uc *application.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type publishProductReq struct {
	BankID          string          `json:"bank_id"          validate:"required"`
	Name            string          `json:"name"             validate:"required"`
	ProductCode     string          `json:"product_code"     validate:"required"`
	MinCreditLimit  decimal.Decimal `json:"min_credit_limit" validate:"gte=0,dec2"`
	MaxAmount       decimal.Decimal `json:"max_amount"       validate:"gt=0,dec2"`
	InterestRate    decimal.Decimal `json:"interest_rate"    validate:"gt=0,dec2"`
	TermMonths      int             `json:"term_months"      validate:"gte=1"`
	RepaymentMethod string          `json:"repayment_method" validate:"required"`
	Description     string          `json:"description"`
}

func (h *ProductHandler) Publish(c echo.Context) error {
	var req publishProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.PublishProduct(c.Request().Context(), application.PublishProductInput{
		BankID:          req.BankID,
		Name:            req.Name,
		ProductCode:     req.ProductCode,
		MinCreditLimit:  req.MinCreditLimit,
		MaxAmount:       req.MaxAmount,
		InterestRate:    req.InterestRate,
		TermMonths:      req.TermMonths,
		RepaymentMethod: req.RepaymentMethod,
		Description:     req.Description,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List annotates each product against the caller's available limit when the
// identity header is present; without it the listing is anonymous.
func (h *ProductHandler) List(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), borrowerFrom(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
