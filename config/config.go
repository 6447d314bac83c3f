package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	DBSource            string        `mapstructure:"DB_SOURCE"`             // Database connection string
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`        // Address where the server will run (e.g., "0.0.0.0:5001")
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`   // Secret key for signing tokens
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"` // Duration tokens will remain valid (e.g., "15m", "1h")
	GroqAPIURL          string        `mapstructure:"GROQ_API_URL"`          // Chat-completions endpoint of the model provider
	GroqAPIKey          string        `mapstructure:"GROQ_API_KEY"`          // API key for the model provider
	GroqModel           string        `mapstructure:"GROQ_MODEL"`            // Fixed model identifier used for resume parsing
	FrontendURL         string        `mapstructure:"FRONTEND_URL"`          // Allowed browser origin for CORS
}

// LoadConfig loads environment variables from a file and environment into the Config struct
func LoadConfig(path string) (config Config, err error) {
	// Add the directory where the config file is located
	viper.AddConfigPath(path)

	// Specify the name of the config file (without extension)
	viper.SetConfigName("app")

	// Specify the file type. In this case, we're using a .env-style file
	viper.SetConfigType("env")

	// Automatically read in any environment variables that match the keys
	viper.AutomaticEnv()

	// Read the config file
	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	// Unmarshal the config values into the Config struct
	err = viper.Unmarshal(&config)
	return
}
