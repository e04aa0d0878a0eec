package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
)

func (c *Console) commandLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCommand),
	)
}

// issue persists the pending command row before any delivery attempt, so
// history is never lost to a push failure. Delivery itself is a single
// fire-and-forget job; the device's own status report is the source of
// truth for whether the command arrived, so the push outcome never touches
// the row.
func (c *Console) issue(deviceID, command string, params map[string]any, userID uint) (*models.Command, error) {
	logger := c.commandLogger()

	device, err := c.get(deviceID)
	if err != nil {
		return nil, err
	}
	if device.FirebaseToken == nil || *device.FirebaseToken == "" {
		return nil, fmt.Errorf("device %q has no push token: %w", deviceID, ErrInvalidState)
	}

	cmd := models.Command{
		DeviceID: deviceID,
		UserID:   userID,
		Command:  command,
		Params:   datatypes.JSONMap(params),
		Status:   models.CommandStatusPending,
	}
	if err := c.Db.Conn.Create(&cmd).Error; err != nil {
		return nil, err
	}

	logger.Info("Command recorded",
		zap.String("device_id", deviceID),
		zap.Uint("command_id", cmd.ID),
		zap.String("command", command))

	if c.Dispatcher != nil {
		encodedParams, _ := json.Marshal(params)
		c.Dispatcher.Enqueue(PushJob{
			Token: *device.FirebaseToken,
			Data: map[string]string{
				"command":    command,
				"command_id": strconv.FormatUint(uint64(cmd.ID), 10),
				"params":     string(encodedParams),
			},
		})
	}

	return &cmd, nil
}

func (c *Console) history(deviceID string, limit int) ([]models.Command, error) {
	if err := c.requireDevice(deviceID); err != nil {
		return nil, err
	}
	var commands []models.Command
	err := c.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&commands).Error
	return commands, err
}

// reportStatus overwrites unconditionally: the device callback carries no
// bearer token and no state-transition check is applied.
func (c *Console) reportStatus(commandID uint, status models.CommandStatus, response *string) error {
	var cmd models.Command
	if err := c.Db.Conn.First(&cmd, "id = ?", commandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("command %d: %w", commandID, ErrNotFound)
		}
		return err
	}

	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if response != nil {
		updates["response"] = *response
	}
	if err := c.Db.Conn.Model(&models.Command{}).Where("id = ?", commandID).Updates(updates).Error; err != nil {
		return err
	}

	c.commandLogger().Info("Command status reported",
		zap.Uint("command_id", commandID),
		zap.String("status", string(status)))

	return nil
}

type ICommandImpl struct {
	console *Console
}

func (ic *ICommandImpl) Issue(deviceID, command string, params map[string]any, userID uint) (*models.Command, error) {
	return ic.console.issue(deviceID, command, params, userID)
}

func (ic *ICommandImpl) History(deviceID string, limit int) ([]models.Command, error) {
	return ic.console.history(deviceID, limit)
}

func (ic *ICommandImpl) ReportStatus(commandID uint, status models.CommandStatus, response *string) error {
	return ic.console.reportStatus(commandID, status, response)
}

func (c *Console) GetICommand() ICommand {
	return &ICommandImpl{console: c}
}
