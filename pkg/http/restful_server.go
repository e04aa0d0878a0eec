package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"fleetpanel.dev/device-console-service/pkg/console"
)

type RestfulServer struct {
	Server           *gin.Engine
	Console          *console.Console
	RateLimiterStore *console.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

// Setup wires the three route families: the admin auth endpoints, the
// unauthenticated device-origin endpoints (devices authenticate by
// identifier, not by bearer token), and the bearer-protected admin API.
func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	auth := rs.Server.Group("/auth")
	{
		auth.POST("/register", rs.PostRegister)
		auth.POST("/login", rs.PostLogin)
		auth.POST("/firebase-login", rs.PostFirebaseLogin)
		auth.GET("/verify", rs.RequireAuth(), rs.GetVerify)
	}

	// Device-origin endpoints.
	rs.Server.POST("/devices", rs.PostDeviceRegister)
	rs.Server.POST("/devices/heartbeat", rs.PostDeviceHeartbeat)
	rs.Server.POST("/logs/:category", rs.PostLog)
	rs.Server.POST("/commands/:command_id/response", rs.PostCommandResponse)

	admin := rs.Server.Group("/devices", rs.RequireAuth())
	{
		admin.GET("", rs.GetDevices)
		admin.GET("/:device_id", rs.GetDevice)
		admin.PUT("/:device_id", rs.PutDevice)
		admin.GET("/:device_id/locations", rs.GetDeviceLocations)
		admin.GET("/:device_id/logs/:category", rs.GetDeviceLogs)
		admin.POST("/:device_id/commands", rs.PostCommand)
		admin.GET("/:device_id/commands", rs.GetCommands)
		admin.POST("/:device_id/limiter", rs.PostLimiter)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
