package console_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetpanel.dev/device-console-service/pkg/common"
	. "fleetpanel.dev/device-console-service/pkg/console"
	"fleetpanel.dev/device-console-service/pkg/models"
	_ "fleetpanel.dev/device-console-service/pkg/testing"
)

func registerTestDevice(t *testing.T, consoleObj *Console) string {
	t.Helper()
	deviceID := uuid.NewString()
	_, err := consoleObj.Registry.RegisterOrUpdate(deviceID, &DeviceAttrs{})
	require.NoError(t, err)
	return deviceID
}

func TestIngestLocation_UnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	err := consoleObj.Logs.IngestLocation(uuid.NewString(), &models.DeviceLocation{
		Latitude:  37.77,
		Longitude: -122.41,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIngestLocation_DefaultsTimestamp(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	deviceID := registerTestDevice(t, consoleObj)

	entry := &models.DeviceLocation{
		Latitude:  37.77,
		Longitude: -122.41,
		Accuracy:  floatPtr(5.0),
	}
	require.NoError(t, consoleObj.Logs.IngestLocation(deviceID, entry))
	assert.False(t, entry.Timestamp.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), entry.Timestamp, 5*time.Second)
}

func TestQueryLocations_WindowFiltersAndOrders(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	deviceID := registerTestDevice(t, consoleObj)

	now := time.Now().UTC()
	timestamps := []time.Time{
		now.Add(-48 * time.Hour), // outside the 24h window
		now.Add(-2 * time.Hour),
		now.Add(-1 * time.Hour),
	}
	for i, ts := range timestamps {
		err := consoleObj.Logs.IngestLocation(deviceID, &models.DeviceLocation{
			Latitude:  float64(i),
			Longitude: float64(i),
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	entries, err := consoleObj.Logs.QueryLocations(deviceID, ResolveWindow(RangeToken24h), DefaultLocationLimit)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))

	entries, err = consoleObj.Logs.QueryLocations(deviceID, ResolveWindow(RangeTokenAll), DefaultLocationLimit)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestQueryLocations_LimitTruncates(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	deviceID := registerTestDevice(t, consoleObj)

	now := time.Now().UTC()
	for i := range 5 {
		err := consoleObj.Logs.IngestLocation(deviceID, &models.DeviceLocation{
			Latitude:  float64(i),
			Longitude: float64(i),
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := consoleObj.Logs.QueryLocations(deviceID, ResolveWindow(RangeTokenAll), 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Truncation keeps the newest entries.
	assert.WithinDuration(t, now, entries[0].Timestamp, 5*time.Second)
}

func TestQueryLocations_UnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	_, err := consoleObj.Logs.QueryLocations(uuid.NewString(), ResolveWindow(RangeTokenAll), DefaultLocationLimit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIngestAndQuery_AllCategories(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, consoleObj, _, _, _, _ := GetMockConsoleWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	deviceID := registerTestDevice(t, consoleObj)
	cutoff := ResolveWindow(RangeTokenAll)

	require.NoError(t, consoleObj.Logs.IngestSms(deviceID, &models.SmsLog{
		PhoneNumber: "+15551234567",
		ContactName: strPtr("Alice"),
		Message:     "hello",
		Type:        "received",
	}))
	smsEntries, err := consoleObj.Logs.QuerySms(deviceID, cutoff, DefaultLogLimit)
	require.NoError(t, err)
	require.Len(t, smsEntries, 1)
	assert.Equal(t, "hello", smsEntries[0].Message)

	require.NoError(t, consoleObj.Logs.IngestCall(deviceID, &models.CallLog{
		PhoneNumber: "+15551234567",
		Type:        "outgoing",
		Duration:    intPtr(42),
	}))
	callEntries, err := consoleObj.Logs.QueryCalls(deviceID, cutoff, DefaultLogLimit)
	require.NoError(t, err)
	require.Len(t, callEntries, 1)
	require.NotNil(t, callEntries[0].Duration)
	assert.Equal(t, 42, *callEntries[0].Duration)

	require.NoError(t, consoleObj.Logs.IngestNotification(deviceID, &models.NotificationLog{
		AppName: "com.example.chat",
		Title:   strPtr("New message"),
	}))
	notifEntries, err := consoleObj.Logs.QueryNotifications(deviceID, cutoff, DefaultLogLimit)
	require.NoError(t, err)
	require.Len(t, notifEntries, 1)
	assert.Equal(t, "com.example.chat", notifEntries[0].AppName)

	require.NoError(t, consoleObj.Logs.IngestKeylog(deviceID, &models.KeyLog{
		Application: "com.example.browser",
		Text:        "typed text",
	}))
	keyEntries, err := consoleObj.Logs.QueryKeylogs(deviceID, cutoff, DefaultLogLimit)
	require.NoError(t, err)
	require.Len(t, keyEntries, 1)
	assert.Equal(t, "typed text", keyEntries[0].Text)

	require.NoError(t, consoleObj.Logs.IngestFile(deviceID, &models.FileLog{
		Path:      "/sdcard/DCIM/photo.jpg",
		Operation: "created",
		Size:      intPtr(2048),
	}))
	fileEntries, err := consoleObj.Logs.QueryFiles(deviceID, cutoff, DefaultLogLimit)
	require.NoError(t, err)
	require.Len(t, fileEntries, 1)
	assert.Equal(t, "/sdcard/DCIM/photo.jpg", fileEntries[0].Path)
}
