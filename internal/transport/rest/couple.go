package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
	"github.com/accordapp/accord-backend/pkg/ctxutil"
)

// coupleService defines the minimal interface needed by CoupleHandler.
type coupleService interface {
	CreateInvite(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error)
	AcceptInvite(ctx context.Context, userID uuid.UUID, inviteToken string) (*domain.CoupleWithMembers, error)
	GetCoupleForUser(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error)
	SignAgreement(ctx context.Context, userID uuid.UUID) (*domain.CoupleWithMembers, error)
}

// CoupleHandler serves pairing REST endpoints.
type CoupleHandler struct {
	svc coupleService
	log *slog.Logger
}

// NewCoupleHandler creates a CoupleHandler.
func NewCoupleHandler(svc coupleService, logger *slog.Logger) *CoupleHandler {
	return &CoupleHandler{svc: svc, log: logger.With("handler", "couple")}
}

type acceptInviteRequest struct {
	InviteToken string `json:"inviteToken"`
}

type signAgreementRequest struct {
	Confirm bool `json:"confirm"`
}

type coupleResponse struct {
	ID                string          `json:"id"`
	UserAID           string          `json:"userAId"`
	UserBID           *string         `json:"userBId"`
	InviteToken       *string         `json:"inviteToken"`
	AgreementSignedAt *time.Time      `json:"agreementSignedAt"`
	CreatedAt         time.Time       `json:"createdAt"`
	UserA             memberResponse  `json:"userA"`
	UserB             *memberResponse `json:"userB,omitempty"`
}

type memberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateInvite handles POST /couples/invite.
func (h *CoupleHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.CreateInvite(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCoupleResponse(result))
}

// AcceptInvite handles POST /couples/accept.
func (h *CoupleHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req acceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.AcceptInvite(r.Context(), userID, req.InviteToken)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(result))
}

// GetMe handles GET /couples/me.
func (h *CoupleHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.GetCoupleForUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(result))
}

// SignAgreement handles POST /couples/agreement. The body must carry an
// explicit confirmation.
func (h *CoupleHandler) SignAgreement(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req signAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Confirm {
		writeError(w, http.StatusBadRequest, "confirm must be true")
		return
	}

	result, err := h.svc.SignAgreement(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCoupleResponse(result))
}

func toCoupleResponse(c *domain.CoupleWithMembers) coupleResponse {
	resp := coupleResponse{
		ID:                c.ID.String(),
		UserAID:           c.UserAID.String(),
		InviteToken:       c.InviteToken,
		AgreementSignedAt: c.AgreementSignedAt,
		CreatedAt:         c.CreatedAt,
		UserA: memberResponse{
			ID:    c.UserA.ID.String(),
			Email: c.UserA.Email,
			Name:  c.UserA.Name,
		},
	}
	if c.UserBID != nil {
		id := c.UserBID.String()
		resp.UserBID = &id
	}
	if c.UserB != nil {
		resp.UserB = &memberResponse{
			ID:    c.UserB.ID.String(),
			Email: c.UserB.Email,
			Name:  c.UserB.Name,
		}
	}
	return resp
}
