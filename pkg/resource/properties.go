package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file. When filepath is empty or
// the file does not exist, the fallback document is used instead.
func Init(filepath string, fallback []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if filepath != "" {
		if _, err := os.Stat(filepath); err == nil {
			v.SetConfigFile(filepath)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("fail to read properties %s: %w", filepath, err)
			}
			return swap(v)
		}
	}

	if err := v.ReadConfig(bytes.NewReader(fallback)); err != nil {
		return fmt.Errorf("fail to read default properties: %w", err)
	}
	return swap(v)
}

func swap(v *viper.Viper) error {
	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}

	mu.Lock()
	properties = next
	mu.Unlock()
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces ${NAME:default} placeholders with the environment value,
// falling back to the default. Plain strings are returned unchanged.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

// Set overrides a property at runtime, typically from a command line flag.
func Set(key string, value any) {
	current().Set(key, value)
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}
