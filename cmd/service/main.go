package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contact-book/internal/config"
	"gitlab.com/dirk.krummacker/contact-book/internal/directory"
	"gitlab.com/dirk.krummacker/contact-book/internal/logging"
	"gitlab.com/dirk.krummacker/contact-book/internal/service"
	"go.uber.org/zap"
)

// Usage example on the command line:
// > PORT=8080 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("could not load configuration", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("could not create logger", err)
		os.Exit(1)
	}
	defer logger.Sync()

	router := service.SetupHttpRouter(directory.New(), cfg, logger)
	logger.Info("Starting contact book service",
		zap.String("address", cfg.Address()),
		zap.String("mode", gin.Mode()),
		zap.Int("horizon", cfg.HorizonDays))
	if err := router.Run(cfg.Address()); err != nil {
		logger.Fatal("Service stopped", zap.Error(err))
	}
}
