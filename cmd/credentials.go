package cmd

import (
	"context"
	"ets-backend/config"
	"ets-backend/initializers"
	"ets-backend/lib/credentials"
	credentialstore "ets-backend/lib/credentials/store"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Start the credential service",
	Long:  "Starts the standalone sign up / login service backed by redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		initializers.InitLogger()
		config.InitConfig()
		redisClient, err := initializers.InitRedis()
		if err != nil {
			return err
		}
		defer redisClient.Close()

		conf := config.Conf.Credentials
		handler := credentials.NewInstance(
			credentialstore.NewInstance(redisClient, config.Conf.Redis.KeyPrefix),
			credentials.Settings{
				JWTSecret:  conf.JWTSecret,
				TokenTTL:   time.Duration(conf.TokenTTLInSec) * time.Second,
				BcryptCost: conf.BcryptCost,
			})
		app := credentials.NewApp(handler, conf.RateLimitPerMinute)

		go func() {
			<-ctx.Done()
			timeout := time.Duration(config.Conf.App.ShutdownTimeout) * time.Second
			if err := app.ShutdownWithTimeout(timeout); err != nil {
				log.WithError(err).Error("Error when try gracefully shutting down")
			}
		}()

		addr := fmt.Sprintf("%s:%d", conf.ListenAddr, conf.Port)
		log.WithField("addr", addr).Info("credential service listening")
		return app.Listen(addr)
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
}
