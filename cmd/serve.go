package cmd

import (
	"context"
	"ets-backend/config"
	apiv1 "ets-backend/controllers/v1"
	"ets-backend/controllers/v1/dict"
	publicapi "ets-backend/controllers/v1/public"
	"ets-backend/fiberlog"
	"ets-backend/initializers"
	"ets-backend/lib/ws"
	"ets-backend/middleware"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const megabyte = 1024 * 1024

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the REST API and the websocket endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		initializers.InitAllServices(ctx)
		app := newApp(*initializers.LoggerConfig)

		go func() {
			<-ctx.Done()
			log.Info("Gracefully shutting down...")
			timeout := time.Duration(config.Conf.App.ShutdownTimeout) * time.Second
			if err := app.ShutdownWithTimeout(timeout); err != nil {
				log.WithError(err).Error("Error when try gracefully shutting down")
			}
		}()

		addr := fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)
		if err := app.Listen(addr); err != nil {
			return err
		}
		log.Info("HTTP server successfully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newApp(loggerConfig fiberlog.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.UploadLimitMB * megabyte,
	})
	app.Use(fiberRecover.New())

	if *config.Conf.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFilePath,
		}))
	}

	// realtime events
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(loggerConfig))
	if config.Conf.App.ErrNotifyAddr != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimitMB*megabyte), "/documents/"))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//public
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicOnboardingApiRouters(public)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dicts.Use(middleware.RbacMiddleware())
	dict.InitCompanyDictApiRouters(dicts)
	dict.InitDepartmentDictApiRouters(dicts)
	dict.InitRoleDictApiRouters(dicts)

	apiv1.InitUsersApiRouters(apiV1)
	apiv1.InitProjectApiRouters(apiV1)
	apiv1.InitTaskApiRouters(apiV1)
	apiv1.InitOnboardingApiRouters(apiV1)
	apiv1.InitAttendanceApiRouters(apiV1)
	apiv1.InitChatApiRouters(apiV1)
	apiv1.InitRbacApiRouters(apiV1)

	return app
}
