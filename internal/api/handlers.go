package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/internal/service"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
	"github.com/fernvaleriano/coachpilot/pkg/httputil"
)

const dateLayout = "2006-01-02"

type SubmitReadinessRequest struct {
	CoachID          *string  `json:"coachId"`
	Date             *string  `json:"date"`
	SleepQuality     *int     `json:"sleepQuality"`
	SleepHours       *float64 `json:"sleepHours"`
	StressLevel      *int     `json:"stressLevel"`
	MuscleSoreness   *int     `json:"muscleSoreness"`
	EnergyLevel      *int     `json:"energyLevel"`
	Mood             *int     `json:"mood"`
	RestingHeartRate *int     `json:"restingHeartRate"`
	HRVScore         *int     `json:"hrvScore"`
	PreferredPeakDay *int     `json:"preferredPeakDay"`
}

type EnsureScheduleRequest struct {
	ForceReplan bool `json:"forceReplan"`
}

type UpdateFlagRequest struct {
	Status          string  `json:"status"`
	ResolutionNotes *string `json:"resolutionNotes"`
}

type GetReadinessResponse struct {
	History []entity.ReadinessAssessment `json:"history"`
	Stats   *service.ReadinessStats      `json:"stats"`
}

type RunTriageResponse struct {
	Success       bool                 `json:"success"`
	NewFlags      []*entity.TriageFlag `json:"newFlags"`
	TotalNewFlags int                  `json:"totalNewFlags"`
}

func (s *Server) SubmitReadiness(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("readiness submit error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}
	var req SubmitReadinessRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("readiness submit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	servReq := &service.SubmitReadinessRequest{
		ClientID:         clientID,
		SleepQuality:     req.SleepQuality,
		SleepHours:       req.SleepHours,
		StressLevel:      req.StressLevel,
		MuscleSoreness:   req.MuscleSoreness,
		EnergyLevel:      req.EnergyLevel,
		Mood:             req.Mood,
		RestingHeartRate: req.RestingHeartRate,
		HRVScore:         req.HRVScore,
		PreferredPeakDay: req.PreferredPeakDay,
	}
	if req.CoachID != nil {
		coachID, err := uuid.Parse(*req.CoachID)
		if err != nil {
			logger.Error("readiness submit error: invalid coach id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid coach id", nil)
			return
		}
		servReq.CoachID = &coachID
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			logger.Error("readiness submit error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		servReq.Date = &date
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.readinessService.Submit(ctx, servReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("readiness submit error: invalid values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid readiness values", nil)
		case errors.Is(err, errorvalues.ErrClientNotFound):
			logger.Error("readiness submit error: unexist client")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "client doesn't exist", nil)
		default:
			logger.Error("readiness submit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while submitting readiness", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("readiness submitted", slog.Int("score", result.Score))
}

func (s *Server) GetReadiness(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("get readiness error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			logger.Error("get readiness error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		assessment, err := s.readinessService.GetByDate(ctx, clientID, date)
		if err != nil {
			logger.Error("get readiness error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting readiness", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"readiness": assessment})
		logger.Info("readiness provided")
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 || days > 30 {
		days = 7
	}
	history, stats, err := s.readinessService.GetRecent(ctx, clientID, days)
	if err != nil {
		logger.Error("get readiness error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting readiness history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetReadinessResponse{
		History: history,
		Stats:   stats,
	})
	logger.Info("readiness history provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("get streak error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}
	streakType := chi.URLParam(r, "streakType")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.streakService.GetStreak(ctx, clientID, streakType)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streak": streak})
	logger.Info("streak provided")
}

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("get schedule error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	view, err := s.scheduleService.GetWeekly(ctx, clientID)
	if err != nil {
		logger.Error("get schedule error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting schedule", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("schedule provided")
}

func (s *Server) EnsureSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("ensure schedule error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}
	var req EnsureScheduleRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("ensure schedule error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	// Planning may call the external planner, so the budget is generous.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*45)
	defer cancel()
	result, err := s.scheduleService.Ensure(ctx, clientID, req.ForceReplan)
	if err != nil {
		logger.Error("ensure schedule error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while planning schedule", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("schedule ensured", slog.Bool("replan_triggered", result.ReplanTriggered))
}

func (s *Server) RunTriage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Error("triage run error: invalid client id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id in path value", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	flags, err := s.triageService.Run(ctx, clientID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrClientNotFound):
			logger.Error("triage run error: unexist client")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "client doesn't exist", nil)
		default:
			logger.Error("triage run error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while running triage", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RunTriageResponse{
		Success:       true,
		NewFlags:      flags,
		TotalNewFlags: len(flags),
	})
	logger.Info("triage completed", slog.Int("new_flags", len(flags)))
}

func (s *Server) ListFlags(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var filter repository.FlagsFilter

	if v := r.URL.Query().Get("coachId"); v != "" {
		coachID, err := uuid.Parse(v)
		if err != nil {
			logger.Error("list flags error: invalid coach id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid coach id", nil)
			return
		}
		filter.CoachID = &coachID
	}
	if v := r.URL.Query().Get("clientId"); v != "" {
		clientID, err := uuid.Parse(v)
		if err != nil {
			logger.Error("list flags error: invalid client id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid client id", nil)
			return
		}
		filter.ClientID = &clientID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.FlagStatus(v)
		switch status {
		case entity.FlagOpen, entity.FlagAcknowledged, entity.FlagResolved, entity.FlagDismissed:
			filter.Status = &status
		default:
			logger.Error("list flags error: invalid status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid flag status", nil)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	flags, err := s.triageService.List(ctx, filter)
	if err != nil {
		logger.Error("list flags error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting flags list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"flags": flags})
	logger.Info("flags provided")
}

func (s *Server) UpdateFlag(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	flagID, err := uuid.Parse(chi.URLParam(r, "flagID"))
	if err != nil {
		logger.Error("flag update error: invalid flag id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid flag id in path value", nil)
		return
	}
	var req UpdateFlagRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("flag update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	status := entity.FlagStatus(req.Status)
	switch status {
	case entity.FlagAcknowledged, entity.FlagResolved, entity.FlagDismissed:
	default:
		logger.Error("flag update error: invalid status value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid flag status", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	flag, err := s.triageService.UpdateStatus(ctx, flagID, status, req.ResolutionNotes)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFlagNotFound):
			logger.Error("flag update error: unexist flag")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "flag doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrFlagClosed):
			logger.Error("flag update error: flag already closed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "flag is already resolved or dismissed", nil)
		case errors.Is(err, errorvalues.ErrInvalidFlagStatus):
			logger.Error("flag update error: invalid transition")
			httputil.WriteErrorResponse(w, http.StatusConflict, "invalid status transition", nil)
		default:
			logger.Error("flag update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating flag", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true, "flag": flag})
	logger.Info("flag updated", slog.String("status", string(status)))
}
