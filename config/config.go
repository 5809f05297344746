package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"feedback360" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		ExternalTokenTTLHours int    `default:"720" env:"EXTERNAL_TOKEN_TTL_HOURS"`
		ExternalFormURL       string `default:"http://localhost:8000/external" env:"EXTERNAL_FORM_URL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"feedback360@localhost" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		BucketName      string `default:"feedback360-exports" env:"S3_BUCKET_NAME"`
	}
	HR struct {
		Email     string `default:"" env:"HR_ADMIN_EMAIL"`
		FirstName string `default:"" env:"HR_ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"HR_ADMIN_LAST_NAME"`
	}
	Policy struct {
		// Политика допуска по дате приема: запросить обратную связь могут
		// только принятые не позже даты отсечки
		EligibilityCutoffDate string `default:"2025-01-01" env:"ELIGIBILITY_CUTOFF_DATE"`
		MinTenureMonths       int    `default:"3" env:"MIN_TENURE_MONTHS"`
		RequesterCapacity     int    `default:"4" env:"REQUESTER_CAPACITY"`
		ReviewerCapacity      int    `default:"4" env:"REVIEWER_CAPACITY"`
		SweepIntervalMin      int    `default:"15" env:"SWEEP_INTERVAL_MIN"`
		EmailSendIntervalMin  int    `default:"5" env:"EMAIL_SEND_INTERVAL_MIN"`
		EmailBatchSize        int    `default:"50" env:"EMAIL_BATCH_SIZE"`
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
