package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domainApp "farmcredit-backend/internal/domain/application"
	domainBorrower "farmcredit-backend/internal/domain/borrower"
	domainCredit "farmcredit-backend/internal/domain/credit"
	domainLoan "farmcredit-backend/internal/domain/loan"
	domainProduct "farmcredit-backend/internal/domain/product"
	appUC "farmcredit-backend/internal/usecase/application"
	creditUC "farmcredit-backend/internal/usecase/credit"
	disburseUC "farmcredit-backend/internal/usecase/disbursement"
	repayUC "farmcredit-backend/internal/usecase/repayment"
)

// HeaderBorrowerID carries the caller identity on borrower-facing routes.
const HeaderBorrowerID = "Ax-Borrower-Id"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// borrowerFrom reads the caller identity header; "" means missing or
// malformed.
func borrowerFrom(c echo.Context) string {
	b := c.Request().Header.Get(HeaderBorrowerID)
	if !reHex32.MatchString(b) {
		return ""
	}
	return b
}

func badBorrowerHeader(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderBorrowerID + " header"})
}

// writeDomainError maps usecase/domain errors to HTTP codes so every
// handler reports them the same way.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainCredit.ErrApplicationNotFound),
		errors.Is(err, domainCredit.ErrLimitNotFound),
		errors.Is(err, domainProduct.ErrNotFound),
		errors.Is(err, domainApp.ErrNotFound),
		errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainBorrower.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, domainApp.ErrNotPartner),
		errors.Is(err, domainLoan.ErrNotParticipant):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainCredit.ErrDuplicatePending),
		errors.Is(err, domainCredit.ErrInvalidTransition),
		errors.Is(err, domainCredit.ErrLimitConflict),
		errors.Is(err, domainApp.ErrInvalidTransition),
		errors.Is(err, domainApp.ErrAwaitingPartners),
		errors.Is(err, domainApp.ErrPartnerResponded),
		errors.Is(err, domainProduct.ErrDuplicateName),
		errors.Is(err, domainLoan.ErrAlreadySettled),
		errors.Is(err, domainLoan.ErrFrozen):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainCredit.ErrInsufficientLimit),
		errors.Is(err, domainCredit.ErrNoActiveLimit),
		errors.Is(err, domainCredit.ErrBelowProductMin),
		errors.Is(err, domainApp.ErrPartnerCount),
		errors.Is(err, domainApp.ErrNoJointNeed),
		errors.Is(err, domainApp.ErrAmountMismatch),
		errors.Is(err, creditUC.ErrInvalidInput),
		errors.Is(err, appUC.ErrInvalidInput),
		errors.Is(err, disburseUC.ErrInvalidInput),
		errors.Is(err, repayUC.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
