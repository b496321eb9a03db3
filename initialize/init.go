package initialize

import (
	"fmt"
	"net/http"

	"catatan/app/controllers"
	"catatan/app/db"
	jwtutil "catatan/app/jwt"
	"catatan/app/middleware"
	"catatan/app/models"
	"catatan/app/repo"
	"catatan/app/services"
	"catatan/config"
	"catatan/global"
	"catatan/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Notes    *controllers.NoteController
	Export   *controllers.ExportController
	Users    *services.UserService
	NoteSvc  *services.NoteService
	Sessions *services.SessionService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Path: cfg.DB.Path, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Note{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Redis is optional; without it logout revocation is disabled.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		global.Rdb = rdb
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	noteRepo := repo.NewNoteRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	noteSvc := services.NewNoteService(noteRepo)
	sessions := services.NewSessionService(rdb)
	exporter := services.NewExporter()

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, sessions, signer)
	noteCtrl := controllers.NewNoteController(noteSvc)
	exportCtrl := controllers.NewExportController(noteSvc, exporter)
	mw := &middleware.Auth{Signer: signer, Sessions: sessions}

	// Router
	h := router.NewRouter(httpCtrl, authCtrl, noteCtrl, exportCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Notes: noteCtrl, Export: exportCtrl, Users: userSvc, NoteSvc: noteSvc, Sessions: sessions}, nil
}
