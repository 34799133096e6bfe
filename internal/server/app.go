package server

import (
	"fmt"
	"log"

	"staff-portal/internal/config"
	"staff-portal/internal/database"
	"staff-portal/internal/handlers"
	"staff-portal/internal/nav"
	"staff-portal/internal/session"
	"staff-portal/internal/storage"
	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App собирает store, session и router в явные объекты вместо глобального
// состояния. Контракт: Start при запуске, Close при остановке.
type App struct {
	Engine  *gin.Engine
	Store   *store.Store
	Session *session.Session
	Router  *nav.Router

	db *gorm.DB
}

func NewApp(cfg *config.Config) (*App, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		return newApp(cfg, storage.NewMemory(), nil), nil
	}

	db, err := database.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	app := newApp(cfg, database.NewSlot(db), database.NewAudit(db))
	app.db = db
	return app, nil
}

func newApp(cfg *config.Config, slot storage.Slot, audit *database.Audit) *App {
	st := store.New(slot, store.Options{
		Key:           cfg.Storage.Key,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
	})
	sess := session.New(st, slot, nil)
	router := nav.New(sess)

	h := handlers.New(st, sess, router, audit)
	return &App{
		Engine:  NewRouter(cfg, h),
		Store:   st,
		Session: sess,
		Router:  router,
	}
}

// Start загружает данные, восстанавливает сессию и один раз прогоняет
// начальный маршрут через guard.
func (a *App) Start(initialRoute string) nav.Decision {
	a.Store.Load()
	a.Session.Restore()
	d := a.Router.Start(initialRoute)
	log.Printf("initial view: %s (requested %q)", d.View, initialRoute)
	return d
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
