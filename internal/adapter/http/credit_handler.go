package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"farmcredit-backend/internal/usecase/credit"
)

type CreditHandler struct{ uc *credit.Usecase }

func NewCreditHandler(uc *credit.Usecase) *CreditHandler { return &CreditHandler{uc: uc} }

type applyCreditReq struct {
	ProofType   string          `json:"proof_type"   validate:"required"`
	ProofImages []string        `json:"proof_images" validate:"required,min=1,dive,url"`
	Amount      decimal.Decimal `json:"amount"       validate:"gt=0,dec2"`
	Description string          `json:"description"`
}

func (h *CreditHandler) Apply(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	var req applyCreditReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), credit.ApplyInput{
		BorrowerID:  borrower,
		ProofType:   req.ProofType,
		ProofImages: req.ProofImages,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type creditDecisionReq struct {
	Approve        bool            `json:"approve"`
	ApprovedAmount decimal.Decimal `json:"approved_amount" validate:"gte=0,dec2"`
	RejectReason   string          `json:"reject_reason"`
	DecidedBy      string          `json:"decided_by" validate:"required"`
}

func (h *CreditHandler) Decide(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req creditDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), credit.DecideInput{
		ApplicationID:  applicationID,
		Approve:        req.Approve,
		ApprovedAmount: req.ApprovedAmount,
		RejectReason:   req.RejectReason,
		DecidedBy:      req.DecidedBy,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CreditHandler) QueryLimit(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	dto, err := h.uc.QueryLimit(c.Request().Context(), borrower)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CreditHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
