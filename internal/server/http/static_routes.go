package httpserver

import (
	"fmt"
	"net/http"

	"cnchess/internal/cnchess"
)

// RegisterStaticRoutes mounts:
// - /web/* -> files under dir
// - /      -> redirect to /web/, or a plain-text opening board when dir is empty
func RegisterStaticRoutes(mux *http.ServeMux, dir string) {
	if mux == nil {
		return
	}
	if dir != "" {
		mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(dir))))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			if dir != "" {
				http.Redirect(w, r, "/web/", http.StatusFound)
				return
			}
			// 没有前端时给个文本棋盘，方便 curl 看一眼服务是否正常
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprintln(w, cnchess.NewBoard().String())
		case "/web":
			if dir == "" {
				http.NotFound(w, r)
				return
			}
			http.Redirect(w, r, "/web/", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
}
