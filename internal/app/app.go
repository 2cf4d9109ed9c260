package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/config"
	httpx "github.com/you/runmate/internal/http"
	"github.com/you/runmate/internal/http/handlers"
	"github.com/you/runmate/internal/http/middleware"
	"github.com/you/runmate/internal/http/validation"
	"github.com/you/runmate/internal/infrastructure/auth"
	"github.com/you/runmate/internal/infrastructure/database"
	"github.com/you/runmate/internal/infrastructure/messaging"
	"github.com/you/runmate/internal/infrastructure/notifications"
	"github.com/you/runmate/internal/infrastructure/repositories"
	"github.com/you/runmate/internal/services"
)

// Run wires every layer together and serves HTTP until the process exits.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	validation.RegisterValidators()

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rc := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rc.Ping(context.Background()); err != nil {
		return err
	}
	defer rc.Close()
	rdb := rc.Client

	// The broker is optional; notifications still persist without it.
	var publisher domain.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := messaging.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Printf("RABBIT_UNAVAILABLE: err=%v", err)
		} else {
			publisher = pub
		}
	}

	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	smsGateway := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	userRepo := repositories.NewUserRepository(gdb)
	cardRepo := repositories.NewRunnerCardRepository(gdb)
	runRepo := repositories.NewJointRunRepository(gdb)
	notificationRepo := repositories.NewNotificationRepository(gdb)
	subRepo := repositories.NewSubscriptionRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.RefreshTTL)
	otpStore := repositories.NewOTPStore(rdb)

	otpSvc := services.NewOTPService(otpStore, smsGateway, services.OTPConfig{
		TTL:          cfg.OTP_TTL,
		MaxAttempts:  cfg.OTP_MaxAttempts,
		ResendWindow: cfg.OTP_ResendWindow,
	})
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, otpSvc, cfg.AccessTTL, cfg.RefreshTTL)
	userSvc := services.NewUserService(userRepo)
	notificationSvc := services.NewNotificationService(notificationRepo, publisher)
	cardSvc := services.NewRunnerCardService(cardRepo, userRepo, notificationSvc)
	runSvc := services.NewJointRunService(runRepo, userRepo, notificationSvc)
	subSvc := services.NewSubscriptionService(subRepo)

	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userSvc)
	cardH := handlers.NewRunnerCardHandlers(cardSvc)
	runH := handlers.NewJointRunHandlers(runSvc)
	notificationH := handlers.NewNotificationHandlers(notificationSvc)
	subH := handlers.NewSubscriptionHandlers(subSvc)

	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo, userRepo)
	casbinMW := middleware.NewCasbinMW(cas.E, cfg.OwnershipRules)
	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)

	r := httpx.BuildRouter(authH, userH, cardH, runH, notificationH, subH, jwtMW, casbinMW, limiter)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_user", "/auth/logout", "POST")
		cas.E.AddPolicy("role_user", "/users/me", "(GET|PATCH)")
		cas.E.AddPolicy("role_owner", "/users/:id", "GET")
		cas.E.AddPolicy("role_user", "/runner-cards", "POST")
		cas.E.AddPolicy("role_user", "/runner-cards/*", "(PUT|DELETE|POST)")
		cas.E.AddPolicy("role_user", "/joint-runs", "POST")
		cas.E.AddPolicy("role_user", "/joint-runs/*", "(PUT|DELETE|POST|PATCH)")
		cas.E.AddPolicy("role_user", "/notifications/me", "GET")
		cas.E.AddPolicy("role_user", "/notifications/*", "PATCH")
		cas.E.AddPolicy("role_user", "/subscriptions/me", "(GET|PUT)")
		cas.E.AddPolicy("role_admin", "/*", "(GET|POST|PUT|PATCH|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
