package utils

import "go.uber.org/zap"

var Logger *zap.Logger

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Logger = logger
}
