package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/aluriVenkatVaibhav/FinTrack/api"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/config"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/logging"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/operator"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/service"
	"github.com/aluriVenkatVaibhav/FinTrack/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("fintrack starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()
	defer delegator.Stop()

	jwtSecret := []byte(envConfig.JWTSecret)
	svc := service.NewService(dbStorage, delegator, jwtSecret)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.HTTPPort,
			Service:   svc,
			Storage:   dbStorage,
			JWTSecret: jwtSecret,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
