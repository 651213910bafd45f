package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"cnchess/internal/server/game"
	httpserver "cnchess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with index.html / js / svg, optional")
	depth := flag.Int("depth", 4, "AI search depth")
	human := flag.String("human", "lower", "side the human plays: upper or lower")
	parallel := flag.Bool("parallel", true, "search root moves on all CPUs")
	browser := flag.Bool("browser", false, "open the default browser after start")
	flag.Parse()

	cfg := game.Config{Depth: *depth, Parallel: *parallel}
	switch *human {
	case "upper":
		cfg.HumanUpper = true
	case "lower":
	default:
		log.Fatalf("-human must be upper or lower, got %q", *human)
	}

	srv := httpserver.NewServer(game.NewManager(), cfg, *webDir)
	log.Printf("listening on %s, depth %d, human %v, web %q", *addr, cfg.Depth, cfg.Human(), *webDir)

	if *browser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
