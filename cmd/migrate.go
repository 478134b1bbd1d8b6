package cmd

import (
	"ets-backend/config"
	"ets-backend/db"
	"ets-backend/initializers"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var withSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema",
	Long:  "Creates or updates tables and optionally loads the demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		initializers.InitLogger()
		config.InitConfig()
		err := db.Connect(db.ConnectParams{
			Driver:     config.Conf.Database.Driver,
			Host:       config.Conf.Database.Host,
			Port:       config.Conf.Database.Port,
			Name:       config.Conf.Database.Name,
			User:       config.Conf.Database.User,
			Password:   config.Conf.Database.Password,
			SqlitePath: config.Conf.Database.SqlitePath,
			DebugMode:  *config.Conf.Database.DebugMode,
			Migrate:    true,
		})
		if err != nil {
			return err
		}
		if withSeed {
			if err = db.Seed(db.DB, bcrypt.DefaultCost); err != nil {
				return err
			}
		}
		log.WithField("seed", withSeed).Info("database migrated")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&withSeed, "seed", false, "load demo data into an empty database")
	rootCmd.AddCommand(migrateCmd)
}
