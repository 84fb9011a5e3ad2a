package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// UseCases bundles every application use case the REST layer exposes.
type UseCases struct {
	RegisterUser       *usecase.RegisterUserUseCase
	GetUser            *usecase.GetUserUseCase
	UpdateVerification *usecase.UpdateVerificationUseCase

	CreateProperty *usecase.CreatePropertyUseCase
	ListProperties *usecase.ListPropertiesUseCase
	GetProperty    *usecase.GetPropertyUseCase

	SubmitApplication *usecase.SubmitApplicationUseCase
	GetApplication    *usecase.GetApplicationUseCase
	DecideApplication *usecase.DecideApplicationUseCase

	SchedulePayment *usecase.SchedulePaymentUseCase
	SettlePayment   *usecase.SettlePaymentUseCase

	RecordCreditCheck  *usecase.RecordCreditCheckUseCase
	RefreshCreditCheck *usecase.RefreshCreditCheckUseCase
	AddEmployment      *usecase.AddEmploymentRecordUseCase
	AddRentalHistory   *usecase.AddRentalHistoryUseCase
	AddReference       *usecase.AddReferenceUseCase

	CalculateScore      *usecase.CalculateTenantScoreUseCase
	GetScore            *usecase.GetTenantScoreUseCase
	GetScoreHistory     *usecase.GetScoreHistoryUseCase
	DeactivateScore     *usecase.DeactivateScoreUseCase
	AnalyzeScore        *usecase.AnalyzeTenantScoreUseCase
	ScoreImprovements   *usecase.GetScoreImprovementsUseCase
	RecommendProperties *usecase.RecommendPropertiesUseCase
}

// Handler serves the screening REST API.
type Handler struct {
	uc     UseCases
	logger *slog.Logger
}

// NewHandler creates the REST API handler.
func NewHandler(uc UseCases, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// RegisterRoutes attaches all API routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.registerUser)
	mux.HandleFunc("GET /api/users/{id}", h.getUser)
	mux.HandleFunc("PATCH /api/users/{id}/verification", h.updateVerification)

	mux.HandleFunc("POST /api/properties", h.createProperty)
	mux.HandleFunc("GET /api/properties", h.listProperties)
	mux.HandleFunc("GET /api/properties/{id}", h.getProperty)

	mux.HandleFunc("POST /api/applications", h.submitApplication)
	mux.HandleFunc("GET /api/applications/{id}", h.getApplication)
	mux.HandleFunc("PATCH /api/applications/{id}/decision", h.decideApplication)

	mux.HandleFunc("POST /api/payments", h.schedulePayment)
	mux.HandleFunc("PATCH /api/payments/{id}", h.settlePayment)

	mux.HandleFunc("POST /api/credit-checks", h.recordCreditCheck)
	mux.HandleFunc("POST /api/credit-checks/{tenantID}/refresh", h.refreshCreditCheck)
	mux.HandleFunc("POST /api/employment-history", h.addEmployment)
	mux.HandleFunc("POST /api/rental-history", h.addRentalHistory)
	mux.HandleFunc("POST /api/references", h.addReference)

	mux.HandleFunc("POST /api/tenant-score", h.calculateScore)
	mux.HandleFunc("GET /api/tenant-score/{userID}", h.getScore)
	mux.HandleFunc("GET /api/tenant-score/{userID}/history", h.getScoreHistory)
	mux.HandleFunc("PATCH /api/tenant-score/{scoreID}/deactivate", h.deactivateScore)
	mux.HandleFunc("GET /api/tenant-score-analysis/{userID}", h.analyzeScore)
	mux.HandleFunc("GET /api/score-improvement-recommendations/{userID}", h.scoreImprovements)
	mux.HandleFunc("GET /api/property-recommendations/{userID}", h.recommendProperties)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.RegisterUser.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.GetUser.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) updateVerification(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateVerificationRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = r.PathValue("id")
	resp, err := h.uc.UpdateVerification.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.CreateProperty.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ListPropertiesFilter{
		Status:     r.URL.Query().Get("status"),
		LandlordID: r.URL.Query().Get("landlord_id"),
	}
	resp, err := h.uc.ListProperties.Execute(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.GetProperty.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.SubmitApplication.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.GetApplication.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decideApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.DecideApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.ApplicationID = r.PathValue("id")
	resp, err := h.uc.DecideApplication.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

func (h *Handler) schedulePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.SchedulePaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.SchedulePayment.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) settlePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.SettlePaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.PaymentID = r.PathValue("id")
	resp, err := h.uc.SettlePayment.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Screening evidence
// ---------------------------------------------------------------------------

func (h *Handler) recordCreditCheck(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCreditCheckRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.RecordCreditCheck.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) refreshCreditCheck(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.RefreshCreditCheck.Execute(r.Context(), r.PathValue("tenantID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) addEmployment(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEmploymentRecordRequest
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.uc.AddEmployment.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) addRentalHistory(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRentalHistoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.uc.AddRentalHistory.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) addReference(w http.ResponseWriter, r *http.Request) {
	var req dto.AddReferenceRequest
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.uc.AddReference.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ---------------------------------------------------------------------------
// Scoring
// ---------------------------------------------------------------------------

func (h *Handler) calculateScore(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateScoreRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.uc.CalculateScore.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getScore(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.GetScore.Execute(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getScoreHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.GetScoreHistory.Execute(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deactivateScore(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeactivateScore.Execute(r.Context(), r.PathValue("scoreID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *Handler) analyzeScore(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.AnalyzeScore.Execute(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) scoreImprovements(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.ScoreImprovements.Execute(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) recommendProperties(w http.ResponseWriter, r *http.Request) {
	resp, err := h.uc.RecommendProperties.Execute(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var pgErr *pgconn.PgError

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, valueobject.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.As(err, &pgErr), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		// Do not leak storage details to clients.
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}

	h.logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
