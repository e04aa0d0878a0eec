package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
	_ "fleetpanel.dev/device-console-service/pkg/testing"
)

func registerPushableHTTPDevice(t *testing.T, rs *RestfulServer) string {
	t.Helper()
	deviceID := uuid.NewString()
	w := doJSON(rs, "POST", "/devices", map[string]any{
		"device_id":      deviceID,
		"firebase_token": "fcm-" + deviceID,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return deviceID
}

func TestPostCommand(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)
	deviceID := registerPushableHTTPDevice(t, rs)

	w := doJSON(rs, "POST", "/devices/"+deviceID+"/commands", CommandRequest{
		Command: "get_location",
		Params:  map[string]any{"accuracy": "high"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cmd models.Command
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmd))
	assert.Equal(t, models.CommandStatusPending, cmd.Status)
	assert.Equal(t, "get_location", cmd.Command)
	assert.NotZero(t, cmd.UserID)
}

func TestPostCommand_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)

	{
		// device without a push token cannot be commanded
		deviceID := uuid.NewString()
		w := doJSON(rs, "POST", "/devices", map[string]any{"device_id": deviceID}, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(rs, "POST", "/devices/"+deviceID+"/commands", CommandRequest{
			Command: "get_location",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown device
		w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/commands", CommandRequest{
			Command: "get_location",
		}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// empty payload should be rejected
		deviceID := registerPushableHTTPDevice(t, rs)
		w := doJSON(rs, "POST", "/devices/"+deviceID+"/commands", map[string]any{}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// no bearer token
		deviceID := registerPushableHTTPDevice(t, rs)
		w := doJSON(rs, "POST", "/devices/"+deviceID+"/commands", CommandRequest{
			Command: "get_location",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestPostCommandResponse_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		// non-numeric command id
		w := doJSON(rs, "POST", "/commands/abc/response", CommandStatusRequest{
			Status: string(models.CommandStatusCompleted),
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown command id
		w := doJSON(rs, "POST", "/commands/99999999/response", CommandStatusRequest{
			Status: string(models.CommandStatusCompleted),
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		// status outside the known vocabulary
		token := registerAndLogin(t, rs)
		deviceID := registerPushableHTTPDevice(t, rs)

		w := doJSON(rs, "POST", "/devices/"+deviceID+"/commands", CommandRequest{
			Command: "ring",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var cmd models.Command
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cmd))

		w = doJSON(rs, "POST", fmt.Sprintf("/commands/%d/response", cmd.ID), CommandStatusRequest{
			Status: "exploded",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetCommands(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)
	deviceID := registerPushableHTTPDevice(t, rs)

	for _, command := range []string{"get_location", "ring", "lock"} {
		w := doJSON(rs, "POST", "/devices/"+deviceID+"/commands", CommandRequest{
			Command: command,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	{
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/commands", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var history []models.Command
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		require.Len(t, history, 3)
		// Newest first.
		assert.Equal(t, "lock", history[0].Command)
	}

	{
		w := doJSON(rs, "GET", "/devices/"+deviceID+"/commands?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var history []models.Command
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
		assert.Len(t, history, 2)
	}
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token := registerAndLogin(t, rs)

	// empty payload should be rejected
	w := doJSON(rs, "POST", "/devices/"+uuid.NewString()+"/limiter", map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
