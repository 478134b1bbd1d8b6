package initializers

import (
	"ets-backend/config"
	"ets-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.ConnectParams{
		Driver:     config.Conf.Database.Driver,
		Host:       config.Conf.Database.Host,
		Port:       config.Conf.Database.Port,
		Name:       config.Conf.Database.Name,
		User:       config.Conf.Database.User,
		Password:   config.Conf.Database.Password,
		SqlitePath: config.Conf.Database.SqlitePath,
		DebugMode:  *config.Conf.Database.DebugMode,
		Migrate:    *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}

	if *config.Conf.Database.SeedOnStart {
		db.InitPreload()
	}
}
