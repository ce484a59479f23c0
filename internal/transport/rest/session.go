package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/accordapp/accord-backend/internal/domain"
	"github.com/accordapp/accord-backend/internal/service/session"
	"github.com/accordapp/accord-backend/pkg/ctxutil"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	StartSession(ctx context.Context, userID uuid.UUID, input session.StartSessionInput) (*domain.SessionDetail, error)
	GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*domain.SessionDetail, error)
	GetAllSessions(ctx context.Context, userID uuid.UUID) ([]domain.SessionDetail, error)
	SubmitInterview(ctx context.Context, sessionID, userID uuid.UUID, input session.SubmitInterviewInput) (*session.SubmitInterviewResult, error)
	GetSessionStatus(ctx context.Context, sessionID, userID uuid.UUID) (*domain.SessionStatusReport, error)
	UpdateSessionStatus(ctx context.Context, sessionID, userID uuid.UUID, newStatus domain.SessionStatus) (*domain.SessionDetail, error)
}

// SessionHandler serves mediation session REST endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type startSessionRequest struct {
	Topic   *string `json:"topic"`
	Context *string `json:"context"`
}

type submitInterviewRequest struct {
	Responses map[string]any `json:"responses"`
	Notes     *string        `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type sessionResponse struct {
	ID          string              `json:"id"`
	CoupleID    string              `json:"coupleId"`
	Status      string              `json:"status"`
	InitiatedBy string              `json:"initiatedBy"`
	Topic       *string             `json:"topic"`
	Context     *string             `json:"context"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Interviews  []interviewResponse `json:"interviews"`
}

type interviewResponse struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"sessionId"`
	UserID      string         `json:"userId"`
	Responses   map[string]any `json:"responses"`
	Notes       *string        `json:"notes"`
	CompletedAt time.Time      `json:"completedAt"`
}

type submitInterviewResponse struct {
	Interview interviewResponse `json:"interview"`
	Session   sessionResponse   `json:"session"`
}

type statusReportResponse struct {
	SessionID     string                `json:"sessionId"`
	Status        string                `json:"status"`
	PartnerStatus partnerStatusResponse `json:"partnerStatus"`
}

type partnerStatusResponse struct {
	UserAID       string  `json:"userAId"`
	UserBID       *string `json:"userBId"`
	UserAComplete bool    `json:"userAComplete"`
	UserBComplete bool    `json:"userBComplete"`
}

// Start handles POST /sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.StartSession(r.Context(), userID, session.StartSessionInput{
		Topic:   req.Topic,
		Context: req.Context,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(result))
}

// List handles GET /sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	details, err := h.svc.GetAllSessions(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]sessionResponse, 0, len(details))
	for i := range details {
		resp = append(resp, toSessionResponse(&details[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, err := sessionIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	result, err := h.svc.GetSession(r.Context(), sessionID, userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(result))
}

// SubmitInterview handles POST /sessions/{id}/interview.
func (h *SessionHandler) SubmitInterview(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, err := sessionIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req submitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitInterview(r.Context(), sessionID, userID, session.SubmitInterviewInput{
		Responses: req.Responses,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, submitInterviewResponse{
		Interview: toInterviewResponse(result.Interview),
		Session:   toSessionResponse(result.Session),
	})
}

// GetStatus handles GET /sessions/{id}/status.
func (h *SessionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, err := sessionIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	report, err := h.svc.GetSessionStatus(r.Context(), sessionID, userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := statusReportResponse{
		SessionID: report.SessionID.String(),
		Status:    report.Status.String(),
		PartnerStatus: partnerStatusResponse{
			UserAID:       report.Partners.UserAID.String(),
			UserAComplete: report.Partners.UserAComplete,
			UserBComplete: report.Partners.UserBComplete,
		},
	}
	if report.Partners.UserBID != nil {
		id := report.Partners.UserBID.String()
		resp.PartnerStatus.UserBID = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus handles PATCH /sessions/{id}/status.
func (h *SessionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, err := sessionIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.UpdateSessionStatus(r.Context(), sessionID, userID, domain.SessionStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(result))
}

func sessionIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func toSessionResponse(d *domain.SessionDetail) sessionResponse {
	interviews := make([]interviewResponse, 0, len(d.Interviews))
	for i := range d.Interviews {
		interviews = append(interviews, toInterviewResponse(&d.Interviews[i]))
	}
	return sessionResponse{
		ID:          d.ID.String(),
		CoupleID:    d.CoupleID.String(),
		Status:      d.Status.String(),
		InitiatedBy: d.InitiatedBy.String(),
		Topic:       d.Topic,
		Context:     d.Context,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Interviews:  interviews,
	}
}

func toInterviewResponse(iv *domain.Interview) interviewResponse {
	return interviewResponse{
		ID:          iv.ID.String(),
		SessionID:   iv.SessionID.String(),
		UserID:      iv.UserID.String(),
		Responses:   iv.Responses,
		Notes:       iv.Notes,
		CompletedAt: iv.CompletedAt,
	}
}
