package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bandland/bandland/internal/auth"
	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/handler"
	"github.com/bandland/bandland/internal/metrics"
	"github.com/bandland/bandland/internal/ratelimit"
	"github.com/bandland/bandland/internal/router"
	"github.com/bandland/bandland/internal/service"
	"github.com/bandland/bandland/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}
	cfg := config.Load()

	site, err := config.LoadSite(cfg.SiteFile)
	if err != nil {
		log.Fatalf("load site descriptor: %v", err)
	}

	st := store.New(cfg.ContentDir, cfg.HistoryDir)
	limiter := ratelimit.New(cfg.LoginLimit, cfg.LoginWindow)
	verifier := auth.NewVerifier(cfg.AdminPasswordHash, limiter)
	m := metrics.New(prometheus.DefaultRegisterer)
	admin := service.NewAdmin(st)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterPublic(e, handler.NewPublicHandler(st, site))
	router.RegisterAdmin(e, cfg, handler.NewAuthHandler(cfg, verifier, m), handler.NewAdminHandler(admin, st, m))

	if cfg.AdminPasswordHash == "" {
		log.Println("ADMIN_PASSWORD_HASH is not set; admin sign-in will fail until it is (run bandctl setup)")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, content=%s)", addr, cfg.Env, cfg.ContentDir)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
