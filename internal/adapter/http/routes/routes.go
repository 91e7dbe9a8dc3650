package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "bond_portal/docs" // generated by swag init
	"bond_portal/internal/adapter/http/handlers"
	"bond_portal/internal/adapter/persistence/cache"
	"bond_portal/internal/adapter/persistence/repository"
	"bond_portal/internal/config"
	redisclient "bond_portal/internal/infrastructure/cache"
	"bond_portal/internal/infrastructure/database"
	"bond_portal/internal/infrastructure/logging"
	"bond_portal/internal/infrastructure/messaging"
	"bond_portal/internal/infrastructure/notification"
	"bond_portal/internal/infrastructure/security"
	"bond_portal/internal/usecase"
	"bond_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Mode == config.ModeLive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire the application", zap.Error(err))
	}
	defer app.close()

	if cfg.Mode == config.ModeLive {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           newRouter(app, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.Int("port", cfg.Port), zap.String("mode", string(cfg.Mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newRouter(app *application, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAcceptanceRoutes(v1, app.acceptanceHandler, app.limiter, logger)
	addOfferRoutes(v1, app.offerHandler, app.acceptanceHandler, app.auditHandler)
	addPartyRoutes(v1, app.partyHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(logging.GinMiddleware(logger))
	router.Use(logging.GinRecovery(logger))
}

type application struct {
	offerHandler      *handlers.OfferHandler
	partyHandler      *handlers.PartyHandler
	acceptanceHandler *handlers.AcceptanceHandler
	auditHandler      *handlers.AuditHandler
	limiter           interfaces.IRateLimiter
	closers           []func() error
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

type stores struct {
	offers      interfaces.IOfferRepository
	parties     interfaces.IPartyRepository
	audit       interfaces.IAuditRepository
	auditReader interfaces.IAuditReader
	otps        interfaces.IOTPStore
	states      interfaces.IAcceptanceStateStore
	limiter     interfaces.IRateLimiter
}

// build creates every long-lived collaborator once. The token secret and OTP
// hash key never leave this function except inside the services that use them.
func build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*application, error) {
	app := &application{}

	s, err := buildStores(ctx, cfg, logger, app)
	if err != nil {
		app.close()
		return nil, err
	}

	tokens, err := security.NewJWTTokenService(cfg.TokenSecret)
	if err != nil {
		app.close()
		return nil, err
	}

	env := cfg.Environment()
	if env.DevBypassEnabled() {
		logger.Warn("development OTP bypass is enabled")
	}

	acceptanceUseCase := usecase.NewAcceptanceUseCase(usecase.AcceptanceDeps{
		Tokens:   tokens,
		OTPs:     s.otps,
		States:   s.states,
		Offers:   s.offers,
		Parties:  s.parties,
		Notifier: notification.NewLogNotifier(logger, env.IsMock()),
		Audit:    usecase.NewAuditLogger(s.audit, logger),
		Logger:   logger,
	}, env, usecase.AcceptanceSettings{
		TokenTTL:        cfg.TokenTTL,
		SessionTTL:      cfg.AcceptanceSessionTTL,
		UpstreamTimeout: cfg.UpstreamTimeout,
		PublicBaseURL:   cfg.PublicBaseURL,
	})

	app.offerHandler = handlers.NewOfferHandler(usecase.NewOfferUseCase(s.offers, s.parties))
	app.partyHandler = handlers.NewPartyHandler(usecase.NewPartyUseCase(s.parties))
	app.acceptanceHandler = handlers.NewAcceptanceHandler(acceptanceUseCase)
	app.auditHandler = handlers.NewAuditHandler(usecase.NewAuditQueryUseCase(s.auditReader, s.offers))
	app.limiter = s.limiter
	return app, nil
}

func buildStores(ctx context.Context, cfg config.Config, logger *zap.Logger, app *application) (stores, error) {
	var s stores

	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		client, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		ddb = client
		return ddb, nil
	}

	if cfg.Mode == config.ModeLive {
		client, err := dynamo()
		if err != nil {
			return s, err
		}
		s.offers = repository.NewOfferDynamoRepository(client, cfg.OffersTable)
		s.parties = repository.NewPartyDynamoRepository(client, cfg.PartiesTable)
	} else {
		var fx repository.Fixtures
		if cfg.FixturesPath != "" {
			loaded, err := repository.LoadFixtures(cfg.FixturesPath)
			if err != nil {
				return s, err
			}
			fx = loaded
			logger.Info("fixtures loaded",
				zap.String("path", cfg.FixturesPath),
				zap.Int("offers", len(fx.Offers)),
				zap.Int("parties", len(fx.Parties)))
		}
		s.offers = repository.NewOfferMemoryRepository(fx.Offers...)
		s.parties = repository.NewPartyMemoryRepository(fx.Parties...)
	}

	switch cfg.AuditSink {
	case config.AuditSinkDynamoDB:
		client, err := dynamo()
		if err != nil {
			return s, err
		}
		repo := repository.NewAuditDynamoRepository(client, cfg.AuditTable)
		s.audit, s.auditReader = repo, repo
	case config.AuditSinkKafka:
		writer := messaging.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAuditTopic, logger)
		app.closers = append(app.closers, writer.Close)
		s.audit = repository.NewAuditKafkaRepository(writer)
	default:
		repo := repository.NewAuditMemoryRepository()
		s.audit, s.auditReader = repo, repo
	}

	hasher := cache.NewCodeHasher(cfg.OTPHashKey)
	if cfg.RedisAddr == "" {
		if cfg.Mode == config.ModeLive {
			logger.Warn("REDIS_ADDR not set: OTPs and acceptance state are kept in process memory")
		}
		s.otps = cache.NewOTPMemoryStore(hasher, cfg.OTPTTL)
		s.states = cache.NewAcceptanceStateMemoryStore()
		return s, nil
	}

	rdb, err := redisclient.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return s, err
	}
	app.closers = append(app.closers, rdb.Close)
	s.otps = cache.NewOTPRedisStore(rdb, hasher, cfg.OTPTTL)
	s.states = cache.NewAcceptanceStateRedisStore(rdb)
	s.limiter = cache.NewRedisRateLimiter(rdb, cfg.RateLimitWindow, cfg.RateLimitMax)
	return s, nil
}
