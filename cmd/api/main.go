package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/graindock/grain-scheduler/internal/cache"
	"github.com/graindock/grain-scheduler/internal/config"
	dbpkg "github.com/graindock/grain-scheduler/internal/db"
	infraRepo "github.com/graindock/grain-scheduler/internal/infra/repository"
	"github.com/graindock/grain-scheduler/internal/logger"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/routes"
	"github.com/graindock/grain-scheduler/internal/scheduler"
	ucBooking "github.com/graindock/grain-scheduler/internal/usecase/booking"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.IsDev()); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	db := dbpkg.NewDB(cfg)
	responseCache := cache.New(cfg.RedisAddr, time.Minute)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, responseCache, cfg)

	// Background slot generation: once at startup, then on an interval.
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	generateUC := ucBooking.NewGenerateSlots(infraRepo.NewBookingGormRepository(db), log)
	scheduler.Start(
		ctx,
		generateUC,
		time.Duration(cfg.GenerateIntervalHours)*time.Hour,
		cfg.SlotHorizonDays,
		log,
	)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
