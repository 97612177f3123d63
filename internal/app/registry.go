package app

import (
	"database/sql"
	"net/http"

	"go-hrm/internal/approval"
	"go-hrm/internal/config"
	"go-hrm/internal/employee"
	"go-hrm/internal/eventstore"
	eventstoreMetrics "go-hrm/internal/eventstore/metrics"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/notification"
	"go-hrm/internal/otp"
	"go-hrm/internal/rbac"
	"go-hrm/internal/rbac/infra"
	"go-hrm/internal/sensitiverequest"
	sensitiveMetrics "go-hrm/internal/sensitiverequest/metrics"
	"go-hrm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func loadPolicy(cfg config.Config, logger *zap.Logger) *approval.Policy {
	if cfg.RolePolicyPath == "" {
		return approval.DefaultPolicy()
	}
	policy, err := approval.LoadPolicy(cfg.RolePolicyPath)
	if err != nil {
		logger.Warn("role policy not loaded, using defaults",
			zap.String("path", cfg.RolePolicyPath),
			zap.Error(err),
		)
		return approval.DefaultPolicy()
	}
	return policy
}

// connectEmailWriter returns nil when no broker is configured; OTP mail is
// then only logged.
func connectEmailWriter(cfg config.Config) (*kafkago.Writer, error) {
	if cfg.Kafka.Broker == "" {
		return nil, nil
	}
	broker, err := connection.BrokerAddr(cfg.Kafka.Broker)
	if err != nil {
		return nil, err
	}
	return connection.ConnectKafkaWithRetry(broker, cfg.Postgres.MaxRetries)
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	emailWriter *kafkago.Writer,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eventRepo := eventstore.NewRepository(gormDB)
	sensitiveRepo := sensitiverequest.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	policy := loadPolicy(cfg, logger)
	enforcer, err := infra.NewEnforcer(policy)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	authority := approval.NewAuthority(policy, rbacRepo, logger)

	// --- Services ---
	store := eventstore.NewStore(db, eventRepo,
		eventstore.WithLogger(logger),
		eventstore.WithMetrics(eventstoreMetrics.New()),
		eventstore.WithOutbox(outboxRepo, cfg.Kafka.EmployeeEvents),
	)

	var mailer notification.EmailSender
	if emailWriter != nil {
		mailer = notification.NewKafkaEmailSender(emailWriter, cfg.Kafka.EmailTopic, logger)
	} else {
		mailer = notification.NewLogEmailSender(logger)
	}

	sensitiveService := sensitiverequest.NewService(
		db,
		sensitiveRepo,
		employeeRepo,
		store,
		authority,
		sensitiverequest.NewChallengeStore(rdb, cfg.OTP.Retention),
		otp.NewService(otp.WithTTL(cfg.OTP.TTL)),
		mailer,
		sensitiverequest.WithLogger(logger),
		sensitiverequest.WithMetrics(sensitiveMetrics.New()),
		sensitiverequest.WithProfileCache(rdb),
	)
	employeeService := employee.NewService(db, employeeRepo, store, rbacRepo, sensitiveService, rdb, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	sensitiveHandler := sensitiverequest.NewHandler(sensitiveService, logger)
	eventHandler := eventstore.NewHandler(store, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, every authenticated route will answer 401")
	}
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, auth, logger)
		sensitiverequest.RegisterRoutes(api, sensitiveHandler, rbacService, auth, rdb, logger)
		eventstore.RegisterRoutes(api, eventHandler, rbacService, auth, logger)
		rbac.RegisterRoutes(api, rbacHandler, auth, logger)
	}

	return nil
}
