package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"farmcredit-backend/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type repayReq struct {
	// zero or absent means the scheduled payment for the current period
	Amount decimal.Decimal `json:"amount" validate:"gte=0,dec2"`
}

func (h *RepaymentHandler) Repay(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req repayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Repay(c.Request().Context(), repayment.RepayInput{
		LoanID:  loanID,
		PayerID: borrower,
		Amount:  req.Amount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) GetSchedule(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	dto, err := h.uc.GetSchedule(c.Request().Context(), c.Param("loan_id"), borrower)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) ListLoans(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	out, err := h.uc.ListLoans(c.Request().Context(), borrower)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
