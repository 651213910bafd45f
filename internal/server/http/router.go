package httpserver

import (
	"net/http"

	"cnchess/internal/server/game"
)

// Server 把 API 和可选的静态页面挂在同一个 mux 上
type Server struct {
	mux *http.ServeMux
}

// NewServer mounts the API under /api/. When webDir is not empty its files
// are served under /web/ and / redirects there.
func NewServer(mgr *game.Manager, defaults game.Config, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(mgr, defaults))
	RegisterStaticRoutes(mux, webDir)
	return &Server{mux: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
