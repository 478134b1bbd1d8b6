package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr      string `default:"" env:"APP_HOST"`
		Port            int    `default:"8080"  env:"APP_PORT"`
		SwaggerEnabled  *bool  `default:"true" env:"APP_SWAGGER_ENABLED"`
		SwaggerFilePath string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
		ShutdownTimeout int    `default:"10" env:"APP_SHUTDOWN_TIMEOUT_SEC"`
		BodyLimitMB     int    `default:"2" env:"APP_BODY_LIMIT_MB"`
		UploadLimitMB   int    `default:"20" env:"APP_UPLOAD_LIMIT_MB"`
		ErrNotifyAddr   string `default:"" env:"APP_ERR_NOTIFY_ADDR"` // 5xx responses are posted here
	}
	Database struct {
		Driver         string `default:"postgres" env:"DB_DRIVER"` // postgres | sqlite
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ets" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		SqlitePath     string `default:"ets.db" env:"DB_SQLITE_PATH"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		SeedOnStart    *bool  `default:"true" env:"DB_SEED_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"86400" env:"AUTH_JWT_EXPIRE_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"AUTH_JWT_REFRESH_EXPIRE_SEC"`
	}
	Ws struct {
		PendingEventTTLDays int `default:"7" env:"WS_PENDING_EVENT_TTL_DAYS"`
	}
	Redis struct {
		Addr      string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password  string `default:"" env:"REDIS_PASSWORD"`
		KeyPrefix string `default:"ets:credentials" env:"REDIS_KEY_PREFIX"`
	}
	Credentials struct {
		ListenAddr         string `default:"" env:"CREDENTIALS_HOST"`
		Port               int    `default:"8090" env:"CREDENTIALS_PORT"`
		JWTSecret          string `default:"change-me" env:"JWT_SECRET"`
		TokenTTLInSec      int    `default:"14400" env:"CREDENTIALS_TOKEN_TTL_SEC"`
		BcryptCost         int    `default:"10" env:"CREDENTIALS_BCRYPT_COST"`
		RateLimitPerMinute int    `default:"60" env:"CREDENTIALS_RATE_LIMIT"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"ets-onboarding" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"no-reply@ets.local" env:"SMTP_SENDER"`
		HRAddress  string `default:"" env:"SMTP_HR_ADDRESS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
