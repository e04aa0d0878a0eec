package console

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
)

// assignments returns the column updates for the attributes actually
// present in the request. last_seen is handled by the callers.
func (a *DeviceAttrs) assignments() map[string]any {
	m := map[string]any{}
	if a == nil {
		return m
	}
	if a.Manufacturer != nil {
		m["manufacturer"] = *a.Manufacturer
	}
	if a.Model != nil {
		m["model"] = *a.Model
	}
	if a.OSVersion != nil {
		m["os_version"] = *a.OSVersion
	}
	if a.FirebaseToken != nil {
		m["firebase_token"] = *a.FirebaseToken
	}
	if a.BatteryLevel != nil {
		m["battery_level"] = *a.BatteryLevel
	}
	if a.IsCharging != nil {
		m["is_charging"] = *a.IsCharging
	}
	if a.NetworkType != nil {
		m["network_type"] = *a.NetworkType
	}
	if a.AvailableStorage != nil {
		m["available_storage"] = *a.AvailableStorage
	}
	if a.TotalStorage != nil {
		m["total_storage"] = *a.TotalStorage
	}
	return m
}

func (a *DeviceAttrs) applyTo(device *models.Device) {
	if a == nil {
		return
	}
	if a.Manufacturer != nil {
		device.Manufacturer = *a.Manufacturer
	}
	if a.Model != nil {
		device.Model = *a.Model
	}
	if a.OSVersion != nil {
		device.OSVersion = *a.OSVersion
	}
	if a.FirebaseToken != nil {
		device.FirebaseToken = a.FirebaseToken
	}
	if a.BatteryLevel != nil {
		device.BatteryLevel = a.BatteryLevel
	}
	if a.IsCharging != nil {
		device.IsCharging = a.IsCharging
	}
	if a.NetworkType != nil {
		device.NetworkType = a.NetworkType
	}
	if a.AvailableStorage != nil {
		device.AvailableStorage = a.AvailableStorage
	}
	if a.TotalStorage != nil {
		device.TotalStorage = a.TotalStorage
	}
}

func (c *Console) registryLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)
}

// registerOrUpdate relies on the store's insert-or-conflict guarantee so
// two racing registrations for a new identifier cannot create duplicates:
// the loser of the insert race degrades to an update. created_at is never
// part of the conflict assignments and so stays immutable.
func (c *Console) registerOrUpdate(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	logger := c.registryLogger()

	now := time.Now().UTC()
	lastSeen := now
	if attrs != nil && attrs.LastSeen != nil {
		lastSeen = *attrs.LastSeen
	}

	device := models.Device{
		ID:        deviceID,
		LastSeen:  lastSeen,
		CreatedAt: now,
	}
	attrs.applyTo(&device)

	updates := attrs.assignments()
	updates["last_seen"] = lastSeen

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&device).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Registered device", zap.String("device_id", deviceID))

	return c.get(deviceID)
}

func (c *Console) update(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	updates := attrs.assignments()
	if attrs != nil && attrs.LastSeen != nil {
		updates["last_seen"] = *attrs.LastSeen
	}
	return c.applyUpdates(deviceID, updates)
}

// heartbeat refuses to create: a heartbeat for an unknown identifier is a
// client bug, not an implicit registration. last_seen refreshes even when
// nothing else changed.
func (c *Console) heartbeat(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	lastSeen := time.Now().UTC()
	if attrs != nil && attrs.LastSeen != nil {
		lastSeen = *attrs.LastSeen
	}

	updates := attrs.assignments()
	updates["last_seen"] = lastSeen

	device, err := c.applyUpdates(deviceID, updates)
	if err != nil {
		return nil, err
	}

	c.registryLogger().Info("Device heartbeat", zap.String("device_id", deviceID))

	return device, nil
}

func (c *Console) applyUpdates(deviceID string, updates map[string]any) (*models.Device, error) {
	var device models.Device
	if err := c.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("device %q: %w", deviceID, ErrNotFound)
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := c.Db.Conn.Model(&models.Device{}).Where("id = ?", deviceID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return c.get(deviceID)
}

func (c *Console) list(offset, limit int) ([]models.Device, error) {
	var devices []models.Device
	err := c.Db.Conn.
		Order("last_seen desc").
		Offset(offset).
		Limit(limit).
		Find(&devices).Error
	return devices, err
}

func (c *Console) get(deviceID string) (*models.Device, error) {
	var device models.Device
	if err := c.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("device %q: %w", deviceID, ErrNotFound)
		}
		return nil, err
	}
	return &device, nil
}

type IRegistryImpl struct {
	console *Console
}

func (ir *IRegistryImpl) RegisterOrUpdate(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	return ir.console.registerOrUpdate(deviceID, attrs)
}

func (ir *IRegistryImpl) Update(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	return ir.console.update(deviceID, attrs)
}

func (ir *IRegistryImpl) Heartbeat(deviceID string, attrs *DeviceAttrs) (*models.Device, error) {
	return ir.console.heartbeat(deviceID, attrs)
}

func (ir *IRegistryImpl) List(offset, limit int) ([]models.Device, error) {
	return ir.console.list(offset, limit)
}

func (ir *IRegistryImpl) Get(deviceID string) (*models.Device, error) {
	return ir.console.get(deviceID)
}

func (c *Console) GetIRegistry() IRegistry {
	return &IRegistryImpl{console: c}
}
