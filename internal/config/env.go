package config

import "os"

// GetWeatherAPIKey returns the OpenWeatherMap credential. An empty string means
// the key is not configured; the weather client refuses to make requests then.
func GetWeatherAPIKey() string {
	return os.Getenv("OPENWEATHER_API_KEY")
}

// GetSessionSecret returns the secret used to sign the flash-message cookie.
// The fallback is deliberately insecure and only suitable for development.
func GetSessionSecret() string {
	return getEnv("SECRET_KEY", "a_default_secret_key_for_development")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
