package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"fleetpanel.dev/device-console-service/pkg/console"
)

type DeviceAttrsRequest struct {
	Manufacturer     *string    `json:"manufacturer"`
	Model            *string    `json:"model"`
	OSVersion        *string    `json:"os_version"`
	FirebaseToken    *string    `json:"firebase_token"`
	LastSeen         *time.Time `json:"last_seen"`
	BatteryLevel     *int       `json:"battery_level"`
	IsCharging       *bool      `json:"is_charging"`
	NetworkType      *string    `json:"network_type"`
	AvailableStorage *int       `json:"available_storage"`
	TotalStorage     *int       `json:"total_storage"`
}

func (r *DeviceAttrsRequest) toAttrs() *console.DeviceAttrs {
	return &console.DeviceAttrs{
		Manufacturer:     r.Manufacturer,
		Model:            r.Model,
		OSVersion:        r.OSVersion,
		FirebaseToken:    r.FirebaseToken,
		LastSeen:         r.LastSeen,
		BatteryLevel:     r.BatteryLevel,
		IsCharging:       r.IsCharging,
		NetworkType:      r.NetworkType,
		AvailableStorage: r.AvailableStorage,
		TotalStorage:     r.TotalStorage,
	}
}

type DeviceRegisterRequest struct {
	DeviceID string `json:"device_id"`
	DeviceAttrsRequest
}

var deviceRegisterRequestSchema = z.Struct(z.Shape{
	"DeviceID":     z.String().Required(),
	"BatteryLevel": z.Ptr(z.Int().GTE(0).LTE(100)),
})

func (rs *RestfulServer) PostDeviceRegister(c *gin.Context) {
	var req DeviceRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := deviceRegisterRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	device, err := rs.Console.Registry.RegisterOrUpdate(req.DeviceID, req.toAttrs())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) PostDeviceHeartbeat(c *gin.Context) {
	var req DeviceRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := deviceRegisterRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	device, err := rs.Console.Registry.Heartbeat(req.DeviceID, req.toAttrs())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(console.DefaultDeviceLimit)))
	if err != nil || limit <= 0 {
		limit = console.DefaultDeviceLimit
	}

	devices, err := rs.Console.Registry.List(offset, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	device, err := rs.Console.Registry.Get(c.Param("device_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) PutDevice(c *gin.Context) {
	var req DeviceAttrsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := rs.Console.Registry.Update(c.Param("device_id"), req.toAttrs())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}
