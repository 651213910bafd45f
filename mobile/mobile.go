package mobile

import (
	"log"
	"net"
	"net/http"

	"cnchess/internal/server/game"
	httpserver "cnchess/internal/server/http"
)

// StartServer starts the local HTTP server in the background and returns
// the address it listens on.
// webDir: physical path to the extracted web assets, may be empty
// port: port to listen on, e.g. "2888"; "0" picks a free one
// depth: AI search depth, <= 0 for the default
func StartServer(webDir string, port string, depth int) (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return "", err
	}
	// 手机上不开并行搜索，省电
	cfg := game.Config{Depth: depth}
	srv := httpserver.NewServer(game.NewManager(), cfg, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.Serve(ln, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
	return ln.Addr().String(), nil
}
