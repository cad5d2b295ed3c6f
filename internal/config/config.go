package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultCapacity = 8

func Default() Config {
	return Config{
		Debug:    false,
		Capacity: defaultCapacity,
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	ret := Default()

	if path != "" {
		marshaled, err := os.ReadFile(os.ExpandEnv(path))
		if err != nil {
			return ret, err
		}

		if err := yaml.Unmarshal(marshaled, &ret); err != nil {
			return ret, err
		}
	}

	if os.Getenv("FSTACK_DEBUG") == "1" {
		ret.Debug = true
	}

	return ret, nil
}

type Config struct {
	Debug    bool   `yaml:"debug"`
	Capacity int    `yaml:"capacity"`
	LogFile  string `yaml:"log_file"` // stderr when empty
}
