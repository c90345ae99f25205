package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domainApp "farmcredit-backend/internal/domain/application"
	"farmcredit-backend/internal/usecase/application"
)

type LoanHandler struct{ uc *application.Usecase }

func NewLoanHandler(uc *application.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applySingleReq struct {
	ProductID       string          `json:"product_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount"     validate:"gt=0,dec2"`
	Purpose         string          `json:"purpose"`
	RepaymentSource string          `json:"repayment_source"`
}

func (h *LoanHandler) ApplySingle(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	var req applySingleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ApplySingle(c.Request().Context(), application.ApplySingleInput{
		BorrowerID:      borrower,
		ProductID:       req.ProductID,
		Amount:          req.Amount,
		Purpose:         req.Purpose,
		RepaymentSource: req.RepaymentSource,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type applyJointReq struct {
	ProductID       string          `json:"product_id"  validate:"required"`
	Amount          decimal.Decimal `json:"amount"      validate:"gt=0,dec2"`
	PartnerIDs      []string        `json:"partner_ids" validate:"required,min=1,dive,hex32"`
	Purpose         string          `json:"purpose"`
	RepaymentSource string          `json:"repayment_source"`
}

func (h *LoanHandler) ApplyJoint(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	var req applyJointReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ApplyJoint(c.Request().Context(), application.ApplyJointInput{
		BorrowerID:      borrower,
		ProductID:       req.ProductID,
		Amount:          req.Amount,
		PartnerIDs:      req.PartnerIDs,
		Purpose:         req.Purpose,
		RepaymentSource: req.RepaymentSource,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loanDecisionReq struct {
	Approve        bool            `json:"approve"`
	ApprovedAmount decimal.Decimal `json:"approved_amount" validate:"gte=0,dec2"`
	RejectReason   string          `json:"reject_reason"`
	DecidedBy      string          `json:"decided_by" validate:"required"`
}

func (h *LoanHandler) Decide(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req loanDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), application.DecideInput{
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

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListByStatus(c.Request().Context(), domainApp.StatusPending)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListApproved(c echo.Context) error {
	out, err := h.uc.ListByStatus(c.Request().Context(), domainApp.StatusApproved)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListJointCandidates(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	out, err := h.uc.ListJointCandidates(c.Request().Context(), borrower)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Recommend(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount query param"})
	}
	dto, err := h.uc.Recommend(c.Request().Context(), borrower, amount)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
