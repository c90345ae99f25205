package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"farmcredit-backend/internal/usecase/disbursement"
)

type DisbursementHandler struct{ uc *disbursement.Usecase }

func NewDisbursementHandler(uc *disbursement.Usecase) *DisbursementHandler {
	return &DisbursementHandler{uc: uc}
}

type disburseReq struct {
	Amount  decimal.Decimal `json:"amount"  validate:"gt=0,dec2"`
	Method  string          `json:"method"  validate:"required"`
	Remarks string          `json:"remarks"`
}

func (h *DisbursementHandler) Disburse(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req disburseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Disburse(c.Request().Context(), disbursement.DisburseInput{
		ApplicationID: applicationID,
		Amount:        req.Amount,
		Method:        req.Method,
		Remarks:       req.Remarks,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
