package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/models"
)

// DefaultTokenTTL is the fixed bearer token lifetime. There is no
// revocation; logout is client-side token discard.
const DefaultTokenTTL = 24 * time.Hour

// errBadCredentials is deliberately identical for unknown email and wrong
// password, so login responses cannot be used for account enumeration.
var errBadCredentials = fmt.Errorf("%w: incorrect email or password", ErrUnauthorized)

func (c *Console) authLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameConsoleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)
}

func (c *Console) register(email, password, fullName string, isSuperuser bool) (*models.User, error) {
	var existing models.User
	err := c.Db.Conn.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, fmt.Errorf("email %q already registered: %w", email, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	user := models.User{
		Email:          email,
		HashedPassword: &hashed,
		FullName:       fullName,
		IsActive:       true,
		IsSuperuser:    isSuperuser,
	}
	if err := c.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	c.authLogger().Info("Registered admin user", zap.String("email", email))

	return &user, nil
}

func (c *Console) login(email, password string) (string, error) {
	var user models.User
	if err := c.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errBadCredentials
		}
		return "", err
	}

	if user.HashedPassword == nil {
		return "", errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(password)); err != nil {
		return "", errBadCredentials
	}

	c.authLogger().Info("Admin login", zap.String("email", email))

	return c.signToken(user.Email)
}

// loginWithFirebase collapses every provider-side failure (network,
// malformed token, expiry) into one Unauthorized outcome. Accounts are
// auto-provisioned on first successful login, keyed by the provider email.
func (c *Console) loginWithFirebase(ctx context.Context, idToken string) (string, error) {
	logger := c.authLogger()

	if c.Identity == nil {
		return "", fmt.Errorf("%w: identity provider not configured", ErrUnauthorized)
	}

	claims, err := c.Identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Firebase token verification failed", zap.Error(err))
		return "", fmt.Errorf("%w: invalid firebase token", ErrUnauthorized)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: firebase token carries no email", ErrUnauthorized)
	}

	var user models.User
	err = c.Db.Conn.First(&user, "email = ?", claims.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		uid := claims.UID
		user = models.User{
			Email:       claims.Email,
			FullName:    claims.Name,
			FirebaseUID: &uid,
			IsActive:    true,
			IsVerified:  claims.EmailVerified,
		}
		if err := c.Db.Conn.Create(&user).Error; err != nil {
			return "", err
		}
		logger.Info("Auto-provisioned firebase user", zap.String("email", claims.Email))
	} else if err != nil {
		return "", err
	}

	return c.signToken(user.Email)
}

func (c *Console) signToken(email string) (string, error) {
	ttl := c.TokenTTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(c.JWTSecret)
}

func (c *Console) authenticate(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: subject claim missing", ErrUnauthorized)
	}

	var user models.User
	if err := c.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", ErrUnauthorized)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: inactive user", ErrUnauthorized)
	}

	return &user, nil
}

type IAuthImpl struct {
	console *Console
}

func (ia *IAuthImpl) Register(email, password, fullName string, isSuperuser bool) (*models.User, error) {
	return ia.console.register(email, password, fullName, isSuperuser)
}

func (ia *IAuthImpl) Login(email, password string) (string, error) {
	return ia.console.login(email, password)
}

func (ia *IAuthImpl) LoginWithFirebase(ctx context.Context, idToken string) (string, error) {
	return ia.console.loginWithFirebase(ctx, idToken)
}

func (ia *IAuthImpl) Authenticate(token string) (*models.User, error) {
	return ia.console.authenticate(token)
}

func (c *Console) GetIAuth() IAuth {
	return &IAuthImpl{console: c}
}
