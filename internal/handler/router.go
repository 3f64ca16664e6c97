package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/solace/backend/internal/handler/chat"
	"github.com/zhouzirui/solace/backend/internal/handler/resource"
	"github.com/zhouzirui/solace/backend/internal/handler/stream"
	"github.com/zhouzirui/solace/backend/internal/handler/tracker"
	"github.com/zhouzirui/solace/backend/internal/handler/ws"
	middlewarePkg "github.com/zhouzirui/solace/backend/internal/middleware"
	chatService "github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/support"
	trackerService "github.com/zhouzirui/solace/backend/internal/service/tracker"
	"github.com/zhouzirui/solace/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. staticDir, when set, serves the built client.
func NewRouter(engine *support.Service, chatSvc *chatService.Service, trackerSvc *trackerService.Service, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		chat.New(engine, chatSvc).RegisterRoutes(api)
		resource.New(engine).RegisterRoutes(api)
		tracker.New(trackerSvc).RegisterRoutes(api)
		stream.New(engine, chatSvc).RegisterRoutes(api)
		ws.New(engine, chatSvc).RegisterRoutes(api)

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			utils.RespondError(w, http.StatusNotFound, "route not found")
		})
	})

	if staticDir != "" {
		r.Handle("/*", spaHandler(staticDir))
	}

	return r
}

// spaHandler 提供前端静态文件，未命中的路径回退到 index.html。
func spaHandler(root string) http.Handler {
	files := http.FileServer(http.Dir(root))
	index := filepath.Join(root, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := filepath.Clean("/" + strings.TrimPrefix(r.URL.Path, "/"))
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(clean)))
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}
		files.ServeHTTP(w, r)
	})
}
