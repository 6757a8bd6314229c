package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Watsonx  WatsonxConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the file paths of the two independent stores.
type DatabaseConfig struct {
	HospitalPath string
	UsersPath    string
}

// WatsonxConfig holds the inference endpoint settings. URL and APIKey have no
// defaults; the assist path refuses to run without them.
type WatsonxConfig struct {
	URL          string
	APIKey       string
	ModelID      string
	ProjectID    string
	MaxNewTokens int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads the environment once at startup. Components receive their
// slice of the config by reference and never touch the environment themselves.
func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			HospitalPath: getEnv("HOSPITAL_DB_PATH", "hospital_service.db"),
			UsersPath:    getEnv("USERS_DB_PATH", "users.db"),
		},
		Watsonx: WatsonxConfig{
			URL:          os.Getenv("WATSONX_URL"),
			APIKey:       os.Getenv("WATSONX_APIKEY"),
			ModelID:      getEnv("WATSONX_MODEL_ID", "ibm/granite-3-3-8b-instruct"),
			ProjectID:    getEnv("WATSONX_PROJECT_ID", "18c28599-3d2e-430d-974a-9f4b30bb623e"),
			MaxNewTokens: 100,
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
