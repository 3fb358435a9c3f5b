package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TRAVELGATE"

// envFiles are searched in order; the first that exists is loaded.
var envFiles = []string{".env.travelgate", ".env"}

// FromEnv builds Credentials from TRAVELGATE_* environment variables,
// loading the first .env file found in the working directory beforehand.
// Recognized keys: TRAVELGATE_API_KEY, TRAVELGATE_ENDPOINT,
// TRAVELGATE_CLIENT_CODE. Defaults are applied afterwards.
func FromEnv() (Credentials, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return Credentials{}, err
			}
			break
		}
	}
	return fromViper(viper.New())
}

func fromViper(v *viper.Viper) (Credentials, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface keys to Unmarshal; bind each one.
	for _, key := range []string{"api_key", "endpoint", "client_code"} {
		if err := v.BindEnv(key); err != nil {
			return Credentials{}, err
		}
	}

	var creds Credentials
	if err := v.Unmarshal(&creds); err != nil {
		return Credentials{}, err
	}
	creds.ApplyDefaults()
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
