package config

import "os"

const (
	PortEnv          = "PORT"
	MongoURIEnv      = "MONGO_URI"
	MongoDatabaseEnv = "MONGO_DB"
	PublicDirEnv     = "PUBLIC_DIR"
	SessionSecretEnv = "SESSION_SECRET"
	ViewsGlobEnv     = "VIEWS_GLOB"
)

// Config carries everything the process needs, collected once at startup.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	PublicDir     string
	SessionSecret string
	ViewsGlob     string
}

func Load() Config {
	return Config{
		Port:          getenv(PortEnv, "8000"),
		MongoURI:      getenv(MongoURIEnv, "mongodb://127.0.0.1:27017"),
		MongoDatabase: getenv(MongoDatabaseEnv, "productdb"),
		PublicDir:     getenv(PublicDirEnv, "public"),
		SessionSecret: getenv(SessionSecretEnv, "dev_fallback_secret"),
		ViewsGlob:     getenv(ViewsGlobEnv, "internal/views/*.tmpl"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
