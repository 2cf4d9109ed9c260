package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/runmate/internal/http/handlers"
	"github.com/you/runmate/internal/http/middleware"
)

// BuildRouter wires every route. Listing and reading cards and runs is
// public; everything that writes, or that is addressed to "me", sits
// behind the JWT and casbin middleware.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	ch *handlers.RunnerCardHandlers,
	jh *handlers.JointRunHandlers,
	nh *handlers.NotificationHandlers,
	sh *handlers.SubscriptionHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	rl *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth").Use(rl.Limit())
	auth.POST("/request-otp", ah.RequestOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	r.GET("/runner-cards", ch.List)
	r.GET("/runner-cards/:id", ch.Get)
	r.GET("/joint-runs", jh.List)
	r.GET("/joint-runs/:id", jh.Get)
	r.GET("/joint-runs/:id/participants", jh.Participants)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.POST("/auth/logout", ah.Logout)

	v.GET("/users/me", uh.Me)
	v.PATCH("/users/me", uh.UpdateMe)
	v.GET("/users/:id", uh.Get)

	v.POST("/runner-cards", ch.Create)
	v.PUT("/runner-cards/:id", ch.Update)
	v.DELETE("/runner-cards/:id", ch.Delete)
	v.POST("/runner-cards/:id/interest", ch.ExpressInterest)

	v.POST("/joint-runs", jh.Create)
	v.PUT("/joint-runs/:id", jh.Update)
	v.DELETE("/joint-runs/:id", jh.Delete)
	v.POST("/joint-runs/:id/join", jh.Join)
	v.POST("/joint-runs/:id/leave", jh.Leave)
	v.PATCH("/joint-runs/:id/participants/me", jh.UpdateMyStatus)

	v.GET("/notifications/me", nh.ListMine)
	v.PATCH("/notifications/:id/read", nh.MarkRead)

	v.GET("/subscriptions/me", sh.Mine)
	v.PUT("/subscriptions/me", sh.SetMine)

	return r
}
