package gpxalign

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/gpx-align/align"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// AlignConfig holds default alignment parameters for oneshot runs. CLI
// flags override any value set here; server requests carry their own
// parameters instead.
type AlignConfig struct {
	Target    align.Target `yaml:"target"`
	InputDir  string       `yaml:"inputDir"`
	OutputDir string       `yaml:"outputDir"`
}

type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Align  AlignConfig  `yaml:"align"`
}

var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. The align section is validated only when a run starts, so a
// config without defaults stays loadable.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 16181
	}
	return nil
}
