package api

import (
	"fmt"
	"log"
	"net/http"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/providers"
	"github.com/SwiftShip/SwiftShip-Backend/providers/fiat"
	"github.com/SwiftShip/SwiftShip-Backend/providers/storage"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/notification"
	"github.com/SwiftShip/SwiftShip-Backend/services/redis"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	metricsmiddleware "github.com/slok/go-http-metrics/middleware"
	ginmiddleware "github.com/slok/go-http-metrics/middleware/gin"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router   *gin.Engine
	store    *db.Store
	config   *utils.Config
	logger   *logging.Logger
	cache    *redis.RedisService
	notifier *notification.Dispatcher
	provider *providers.ProviderService
}

// fiatProvider resolves the payment rail from the provider registry. A miss
// here is a registration bug, not a runtime condition.
func (s *Server) fiatProvider() *fiat.PaystackProvider {
	prov, exists := s.provider.GetProvider(providers.Paystack)
	if !exists {
		panic("failed to get provider: 'PAYSTACK'")
	}
	pp, ok := prov.(*fiat.PaystackProvider)
	if !ok {
		panic("failed to connect to payment provider")
	}
	return pp
}

func (s *Server) storageProvider() *storage.S3Provider {
	prov, exists := s.provider.GetProvider(providers.S3)
	if !exists {
		panic("failed to get provider: 'S3'")
	}
	sp, ok := prov.(*storage.S3Provider)
	if !ok {
		panic("failed to connect to storage provider")
	}
	return sp
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := db.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	cache, err := redis.NewRedisService(&redis.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		// Tracking lookups fall back to the store when the cache is down.
		l.Error("could not connect to redis, continuing without cache", err)
		cache = nil
	}

	pp := fiat.NewFiatProvider()
	sp, err := storage.NewS3Provider(c.AWSRegion, c.DocumentBucket)
	if err != nil {
		panic(fmt.Sprintf("Could not set up document storage: %v", err))
	}

	p := providers.NewProviderService()
	p.AddProvider(pp)
	p.AddProvider(sp)

	notifier := notification.NewDispatcher(l,
		notification.NewPlunk(),
		notification.NewWhatsApp(),
	)

	mm := metricsmiddleware.New(metricsmiddleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{}),
	})

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())
	g.Use(ginmiddleware.Handler("", mm))

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:   g,
		store:    store,
		config:   c,
		logger:   l,
		cache:    cache,
		notifier: notifier,
		provider: p,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "successful",
		Message: "Welcome to SwiftShip!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	/// Register Object Routers Below
	Auth{}.router(s)
	Wallet{}.router(s)
	ShipmentAPI{}.router(s)
	Tracking{}.router(s)
	Payment{}.router(s)
	KYC{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
