package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"catatan/config"
	"catatan/global"
	"catatan/initialize"
	"catatan/server"

	"github.com/fsnotify/fsnotify"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	config.Watch(*configPath, func(e fsnotify.Event) {
		global.Logger.Info().Str("file", e.Name).Msg("config file changed, restart to apply")
	})

	if err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("start http server")
	}
	global.Logger.Info().Str("host", app.Cfg.Server.Host).Int("port", app.Cfg.Server.Port).Str("db", app.Cfg.DB.Driver).Msg("catatan backend up")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	global.Logger.Info().Msg("shutting down")
}
