package console_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	. "fleetpanel.dev/device-console-service/pkg/console"
	"fleetpanel.dev/device-console-service/pkg/console/mocks"
	"fleetpanel.dev/device-console-service/pkg/db"
)

func GetMockConsoleWithMemorySqliteDialector(t *testing.T, useMockIRegistry, useMockILogs, useMockICommand, useMockIAuth bool) (
	*gomock.Controller,
	*Console,
	*mocks.MockIRegistry,
	*mocks.MockILogs,
	*mocks.MockICommand,
	*mocks.MockIAuth,
) {
	ctrl := gomock.NewController(t)

	mockIRegistry := mocks.NewMockIRegistry(ctrl)
	mockILogs := mocks.NewMockILogs(ctrl)
	mockICommand := mocks.NewMockICommand(ctrl)
	mockIAuth := mocks.NewMockIAuth(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	consoleInstance := &Console{
		Db:        *dbInstance,
		JWTSecret: []byte("test-secret"),
	}

	registryService := consoleInstance.GetIRegistry()
	if useMockIRegistry {
		registryService = mockIRegistry
	}

	logsService := consoleInstance.GetILogs()
	if useMockILogs {
		logsService = mockILogs
	}

	commandService := consoleInstance.GetICommand()
	if useMockICommand {
		commandService = mockICommand
	}

	authService := consoleInstance.GetIAuth()
	if useMockIAuth {
		authService = mockIAuth
	}

	consoleInstance.WithServices(ServiceOpts{
		Registry: registryService,
		Logs:     logsService,
		Command:  commandService,
		Auth:     authService,
	})

	return ctrl, consoleInstance, mockIRegistry, mockILogs, mockICommand, mockIAuth
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
