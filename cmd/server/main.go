package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"fleetpanel.dev/device-console-service/pkg/common"
	"fleetpanel.dev/device-console-service/pkg/console"
	"fleetpanel.dev/device-console-service/pkg/db"
	consoleHttp "fleetpanel.dev/device-console-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dmcDbType := os.Getenv(common.EnvKeyDMCDBType)
	switch dmcDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown DMC_DB_TYPE: " + dmcDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDMCHttpHostPort))

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyDMCJWTSecret))
	if jwtSecret == "" {
		log.Fatal("DMC_JWT_SECRET not set in .env, refusing to sign tokens with an empty secret")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDMCDefaultRate), 64); err != nil {
		log.Fatal("Invalid DMC_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDMCDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid DMC_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	// Firebase is optional: without credentials the service still serves
	// the registry, logs and auth, but push delivery and firebase-login
	// are disabled.
	var identity console.IIdentity
	var pusher console.IPush
	credentials := strings.TrimSpace(os.Getenv(common.EnvKeyDMCFirebaseCredentials))
	if credentials != "" {
		ctx := context.Background()
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentials))
		if err != nil {
			log.Fatalf("failed to initialize firebase app: %v", err)
		}
		if identity, err = console.NewFirebaseIdentity(ctx, app); err != nil {
			log.Fatalf("failed to initialize firebase auth client: %v", err)
		}
		if pusher, err = console.NewFCMPush(ctx, app); err != nil {
			log.Fatalf("failed to initialize firebase messaging client: %v", err)
		}
		logger.Info("Firebase app initialized")
	} else {
		logger.Warn("DMC_FIREBASE_CREDENTIALS not set, push delivery and firebase-login are disabled")
	}

	dispatcher := console.NewPushDispatcher(pusher, 256)
	dispatcher.Start(1)
	defer dispatcher.Stop()

	consoleCore := console.Console{
		Db:         *dbInstance,
		JWTSecret:  []byte(jwtSecret),
		Identity:   identity,
		Dispatcher: dispatcher,
	}
	consoleCore.WithServices(console.ServiceOpts{
		Registry: consoleCore.GetIRegistry(),
		Logs:     consoleCore.GetILogs(),
		Command:  consoleCore.GetICommand(),
		Auth:     consoleCore.GetIAuth(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &consoleHttp.RestfulServer{
		Server:           gin.Default(),
		Console:          &consoleCore,
		RateLimiterStore: console.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
