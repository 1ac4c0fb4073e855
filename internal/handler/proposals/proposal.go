package proposals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/database"
	"comissiona/internal/middleware"
	"comissiona/internal/model"
	"comissiona/internal/service"
	"comissiona/internal/store"
)

var (
	resolveCommission    = service.ResolveCommission
	findCommissionConfig = store.FindCommissionConfig
	createProposal       = store.CreateProposal
	getProposalByID      = store.GetProposalByID
	listProposals        = store.ListProposals
	listProposalsByUser  = store.ListProposalsByUser
	updateProposal       = store.UpdateProposal
	deleteProposal       = store.DeleteProposal
)

func callerClaims(c echo.Context) *service.SessionClaims {
	return c.Get(middleware.ContextUserKey).(*service.SessionClaims)
}

// canAccess is the ownership rule shared by get/update/delete.
func canAccess(claims *service.SessionClaims, p *model.Proposal) bool {
	return claims.IsAdmin() || p.UserID == claims.UserID
}

// CreateProposalHandler registers a proposal for the caller. The
// commission snapshot is computed here from the caller's rate rule.
// @Summary     Create a proposal
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateProposalRequest true "Proposal fields"
// @Success     201 {object} api.ProposalResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /proposals [post]
func CreateProposalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProposalRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		claims := callerClaims(c)
		commission, err := resolveCommission(c.Request().Context(), db, claims.UserID, req.Bank, req.ProposalType, req.Value)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to compute commission"})
		}

		p, err := createProposal(c.Request().Context(), db, &model.Proposal{
			ProposalNumber: req.ProposalNumber,
			UserID:         claims.UserID,
			Bank:           req.Bank,
			Type:           req.ProposalType,
			Installments:   req.Installments,
			Value:          req.Value,
			Commission:     commission,
			Notes:          req.Notes,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to create proposal"})
		}
		return c.JSON(http.StatusCreated, api.NewProposalResponse(p))
	}
}

// ListProposalsHandler returns every proposal for admins, only the
// caller's own otherwise. Zero rows is an empty list, not an error.
// @Summary     List proposals
// @Tags        proposals
// @Produce     json
// @Success     200 {array} api.ProposalResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /proposals [get]
func ListProposalsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := callerClaims(c)

		var (
			rows []model.Proposal
			err  error
		)
		if claims.IsAdmin() {
			rows, err = listProposals(c.Request().Context(), db)
		} else {
			rows, err = listProposalsByUser(c.Request().Context(), db, claims.UserID)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to list proposals"})
		}

		out := make([]api.ProposalResponse, 0, len(rows))
		for i := range rows {
			out = append(out, api.NewProposalResponse(&rows[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path int true "Proposal ID"
// @Success     200 {object} api.ProposalResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /proposals/{id} [get]
func GetProposalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid proposal ID"})
		}

		p, err := getProposalByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "proposal not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to get proposal"})
		}
		if !canAccess(callerClaims(c), p) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Code: api.CodeForbidden, Message: "you do not have access to this proposal"})
		}
		return c.JSON(http.StatusOK, api.NewProposalResponse(p))
	}
}

// UpdateProposalHandler applies a partial update. The commission is
// recomputed only when bank, type or value changes, and always against
// the original owner's current rate rule; if no rule matches, the stored
// snapshot stays.
// @Summary     Update a proposal
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       id      path int                       true "Proposal ID"
// @Param       payload body api.UpdateProposalRequest true "Fields to change"
// @Success     200 {object} api.ProposalResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /proposals/{id} [put]
func UpdateProposalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid proposal ID"})
		}

		var req api.UpdateProposalRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		p, err := getProposalByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "proposal not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to get proposal"})
		}
		if !canAccess(callerClaims(c), p) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Code: api.CodeForbidden, Message: "you do not have access to this proposal"})
		}

		if req.ProposalNumber != nil {
			p.ProposalNumber = *req.ProposalNumber
		}
		if req.Bank != nil {
			p.Bank = *req.Bank
		}
		if req.ProposalType != nil {
			p.Type = *req.ProposalType
		}
		if req.Installments != nil {
			p.Installments = *req.Installments
		}
		if req.Value != nil {
			p.Value = *req.Value
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.Notes != nil {
			p.Notes = req.Notes
		}

		if req.Value != nil || req.Bank != nil || req.ProposalType != nil {
			cfg, err := findCommissionConfig(c.Request().Context(), db, p.UserID, p.Bank, p.Type)
			switch {
			case err == nil:
				p.Commission = service.Commission(p.Value, cfg.CommissionPercentage)
			case errors.Is(err, store.ErrNotFound):
				// no matching rule: keep the existing snapshot
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to compute commission"})
			}
		}

		updated, err := updateProposal(c.Request().Context(), db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to update proposal"})
		}
		return c.JSON(http.StatusOK, api.NewProposalResponse(updated))
	}
}

// @Summary     Delete a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path int true "Proposal ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /proposals/{id} [delete]
func DeleteProposalHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid proposal ID"})
		}

		p, err := getProposalByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "proposal not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to get proposal"})
		}
		if !canAccess(callerClaims(c), p) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Code: api.CodeForbidden, Message: "you do not have access to this proposal"})
		}

		if err := deleteProposal(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to delete proposal"})
		}
		return c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
	}
}
