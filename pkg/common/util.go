package common

import (
	"os"
)

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}
