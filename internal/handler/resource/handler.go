package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/solace/backend/internal/service/support"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// Handler 资源与紧急联系方式的HTTP处理器
type Handler struct {
	engine *support.Service
}

// New 创建资源处理器
func New(engine *support.Service) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes 注册资源相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources/{mood}", h.handleResources)
	r.Get("/emergency", h.handleEmergency)
}

func (h *Handler) handleResources(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.engine.ResourcesFor(chi.URLParam(r, "mood")))
}

func (h *Handler) handleEmergency(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.engine.EmergencyContacts())
}
