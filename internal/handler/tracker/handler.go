package tracker

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/model/tracker"
	trackerService "github.com/zhouzirui/solace/backend/internal/service/tracker"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler 情绪记录的HTTP处理器
type Handler struct {
	svc *trackerService.Service
}

// New 创建情绪记录处理器
func New(svc *trackerService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册情绪记录相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/moods/options", h.handleOptions)
	r.Route("/users/{userID}/moods", func(r chi.Router) {
		r.Post("/", h.handleLog)
		r.Get("/", h.handleHistory)
		r.Get("/stats", h.handleStats)
	})
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, tracker.Options())
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood  string `json:"mood"`
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Log(r.Context(), chi.URLParam(r, "userID"), payload.Mood, payload.Notes)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []tracker.Entry{}
	}
	utils.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trackerService.ErrUserRequired), errors.Is(err, trackerService.ErrInvalidMood):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[tracker] request failed: %v", err)
		utils.RespondFailure(w, "failed to process mood entry")
	}
}
