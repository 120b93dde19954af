package main

import (
	"fmt"

	"github.com/mason-leap-lab/go-utils/logger"
)

var log = &logger.ColorLogger{Prefix: "streamplot ", Level: logger.LOG_LEVEL_INFO, Color: true}

var logLevels = map[string]int{
	"all":  logger.LOG_LEVEL_ALL,
	"info": logger.LOG_LEVEL_INFO,
	"warn": logger.LOG_LEVEL_WARN,
	"none": logger.LOG_LEVEL_NONE,
}

func parseLogLevel(name string) (int, error) {
	level, ok := logLevels[name]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}
