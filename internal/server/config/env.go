package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by the server.
const EnvPrefix = "BOWLSIGNUP_"

// dotenvLoad is a seam for tests.
var dotenvLoad = godotenv.Load

// parseEnv overlays BOWLSIGNUP_* environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
func parseEnv(config *Config) {
	_ = dotenvLoad()

	setString(&config.EndpointAddrGRPC, os.Getenv(EnvPrefix+"ENDPOINT_ADDR_GRPC"))
	setString(&config.DatabaseDSN, os.Getenv(EnvPrefix+"DATABASE_DSN"))
	setString(&config.SecretKey, os.Getenv(EnvPrefix+"SECRET_KEY"))
	setString(&config.AdminPassword, os.Getenv(EnvPrefix+"ADMIN_PASSWORD"))
	setString(&config.S3RootUser, os.Getenv(EnvPrefix+"S3_ROOT_USER"))
	setString(&config.S3RootPassword, os.Getenv(EnvPrefix+"S3_ROOT_PASSWORD"))
	setString(&config.S3Bucket, os.Getenv(EnvPrefix+"S3_BUCKET"))
	setString(&config.S3Region, os.Getenv(EnvPrefix+"S3_REGION"))
	setString(&config.S3BaseEndpoint, os.Getenv(EnvPrefix+"S3_BASE_ENDPOINT"))

	setDurationString(&config.AccessTokenValidityDuration, os.Getenv(EnvPrefix+"ACCESS_TOKEN_VALIDITY_DURATION"))
	setDurationString(&config.ExportLinkValidityDuration, os.Getenv(EnvPrefix+"EXPORT_LINK_VALIDITY_DURATION"))
}

// setDurationString keeps dst when v is empty or not a valid duration.
func setDurationString(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}
