package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmcredit-backend/internal/usecase/partner"
)

type PartnerHandler struct{ uc *partner.Usecase }

func NewPartnerHandler(uc *partner.Usecase) *PartnerHandler { return &PartnerHandler{uc: uc} }

type partnerDecisionReq struct {
	Accept bool `json:"accept"`
}

func (h *PartnerHandler) Decide(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req partnerDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Decide(c.Request().Context(), partner.DecisionInput{
		ApplicationID: applicationID,
		PartnerID:     borrower,
		Accept:        req.Accept,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnerHandler) ListInvitations(c echo.Context) error {
	borrower := borrowerFrom(c)
	if borrower == "" {
		return badBorrowerHeader(c)
	}
	out, err := h.uc.ListInvitations(c.Request().Context(), borrower)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
