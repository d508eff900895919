package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	Env = LoadEnv(".env")
}

// LoadEnv reads the optional dotenv files into the process environment and
// resolves the bootstrap variables. Variables already set win over the files.
func LoadEnv(files ...string) *EnvConfig {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		// A malformed .env must not stop the CLI; its values simply stay unset.
		_ = godotenv.Load(file)
	}

	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "weather"),
		PropertiesFilePath: env.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   env.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
