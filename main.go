package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"scheduler-backend/config"
	"scheduler-backend/controllers/api"
	_ "scheduler-backend/docs"
	"scheduler-backend/fiberlog"
	"scheduler-backend/initializers"
	"scheduler-backend/middleware"
)

func main() {
	handlers, features := initializers.InitAllServices()

	bodyLimit := config.Conf.App.BodyLimitMB * 1024 * 1024
	app := fiber.New(fiber.Config{
		// жесткий предел fasthttp, JSON ответ 413 отдает middleware.WithBodyLimit
		BodyLimit: 2 * bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete,
			fiber.MethodHead, fiber.MethodOptions,
		}, ", "),
	}))
	app.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.App.ErrNotifyURL != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyURL))
	}
	if config.IsEnabled(config.Conf.App.SwaggerEnabled) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			Path:     "swagger",
			FilePath: "./docs/swagger.json",
		}))
	}

	api.InitRouters(app, handlers, features)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = <-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	addr := fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)
	log.Infof("Studio Scheduler backend listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
