package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/subscan/cmd/add"
	"fjacquet/subscan/cmd/export"
	"fjacquet/subscan/cmd/parse"
	"fjacquet/subscan/cmd/root"
	"fjacquet/subscan/cmd/schedule"
)

func init() {
	// Load environment variables and set the global log level before any
	// package-level logger emits output.
	loadEnvSilently()
	logrus.SetLevel(configuredLogLevel())

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(schedule.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func configuredLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
