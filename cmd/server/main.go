package main // Entry point package

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "helpdesk/internal/auth"
    "helpdesk/internal/config"
    "helpdesk/internal/handler"
    "helpdesk/internal/middleware"
    "helpdesk/internal/queue"
    "helpdesk/internal/repository"
    "helpdesk/internal/router"
    "helpdesk/internal/service"
    "helpdesk/internal/sheets"
    "helpdesk/internal/store"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("no .env file found, using system environment variables")
    }
    cfg := config.Load()

    // Redis backs session records, the login rate limiter and the read
    // cache.  When it is unreachable the service still starts: sessions
    // fall back to process memory and the middleware become pass-throughs.
    rdb := config.NewRedisClient()
    var sessions auth.SessionStore
    if rdb != nil {
        sessions = auth.NewRedisSessionStore(rdb)
    } else {
        log.Println("redis unavailable; using in-memory sessions, cache and rate limit disabled")
        sessions = auth.NewMemorySessionStore()
    }

    sheetsClient := sheets.New(cfg.SheetsAPIURL, cfg.SheetsKey)
    repairRepo := repository.NewRepairTaskRepo(sheetsClient)
    workRepo := repository.NewWorkTaskRepo(sheetsClient)
    userRepo := repository.NewUserRepo(sheetsClient, cfg.BcryptCost)

    st := store.New()
    loader := service.NewLoader(repairRepo, workRepo, st)

    // Initial load runs in the background so a slow or down backend does
    // not hold up startup; the busy flag tells callers the load is still
    // in flight.
    go loader.Load(context.Background())

    // Audit consumer keeps its own reconnect loop.
    go func() {
        if err := queue.StartAuditConsumer(); err != nil {
            log.Printf("audit consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true
    e.Validator = handler.NewValidator()

    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    loginLimiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    authHandler := handler.NewAuthHandler(cfg, sheetsClient, sessions)
    repairHandler := handler.NewRepairHandler(repairRepo, st)
    workHandler := handler.NewWorkHandler(workRepo, st)
    userHandler := handler.NewUserHandler(userRepo)
    dashHandler := handler.NewDashboardHandler(st)
    reportHandler := handler.NewReportHandler(st)
    syncHandler := handler.NewSyncHandler(loader, st)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authHandler, cfg.JWTSecret, loginLimiter)
    router.RegisterTasks(e, workHandler, dashHandler, reportHandler, syncHandler, cfg.JWTSecret, cacheMW)
    router.RegisterRepairs(e, repairHandler, reportHandler, cfg.JWTSecret, cacheMW)
    router.RegisterUsers(e, userHandler, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    go func() {
        if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
            log.Fatal(err)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(ctx); err != nil {
        log.Printf("shutdown: %v", err)
    }
}
