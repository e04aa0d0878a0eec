package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDMCDBType string = "DMC_DB_TYPE"
	EnvKeyDMCDbPath string = "DMC_DB_PATH"

	EnvKeyDMCHttpHostPort string = "DMC_HTTP_HOST_PORT"

	EnvKeyDMCJWTSecret string = "DMC_JWT_SECRET"

	EnvKeyDMCFirebaseCredentials string = "DMC_FIREBASE_CREDENTIALS"

	EnvKeyDMCDefaultRate  string = "DMC_DEFAULT_RATE"
	EnvKeyDMCDefaultBurst string = "DMC_DEFAULT_BURST"

	LoggerNameConsoleCore    string = "console_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNamePushDispatcher string = "push_dispatcher"

	LoggerFieldCategory string = "category"

	LoggerCategoryRegistry string = "registry"
	LoggerCategoryLogs     string = "logs"
	LoggerCategoryCommand  string = "command"
	LoggerCategoryAuth     string = "auth"
	LoggerCategoryPush     string = "push"
)
