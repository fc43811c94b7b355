// config/config.go
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

// RegistryConfig points at the two source tables of the Canadian Civil
// Aircraft Register: the current-registration extract and the owner extract.
type RegistryConfig struct {
	OwnersCSV  string `yaml:"owners_csv"`
	CurrentCSV string `yaml:"current_csv"`
}

// ChartsConfig enumerates the dashboard charts with a visibility toggle each.
// A disabled chart is never computed or sent to the frontend.
type ChartsConfig struct {
	TopManufacturers     bool `yaml:"top_manufacturers"`
	TopModels            bool `yaml:"top_models"`
	CategoryDistribution bool `yaml:"category_distribution"`
	OwnerTypeShare       bool `yaml:"owner_type_share"`
	AgeHistogram         bool `yaml:"age_histogram"`
	ProvinceCounts       bool `yaml:"province_counts"`
	RegistrationsPerYear bool `yaml:"registrations_per_year"`
	OwnershipTrend       bool `yaml:"ownership_trend"`
}

type DashboardConfig struct {
	TopN          int `yaml:"top_n"`
	HistogramBins int `yaml:"histogram_bins"`
	TableRowLimit int `yaml:"table_row_limit"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Registry  RegistryConfig  `yaml:"registry"`
	Charts    ChartsConfig    `yaml:"charts"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

var AppConfig Config

// Defaults are applied before unmarshalling so that keys absent from the
// YAML file keep their default instead of collapsing to the zero value.
func defaults() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Registry: RegistryConfig{
			OwnersCSV:  "data/carsownr.csv",
			CurrentCSV: "data/carscurr.csv",
		},
		Charts: ChartsConfig{
			TopManufacturers:     true,
			TopModels:            true,
			CategoryDistribution: true,
			OwnerTypeShare:       true,
			AgeHistogram:         true,
			ProvinceCounts:       true,
			RegistrationsPerYear: true,
			OwnershipTrend:       true,
		},
		Dashboard: DashboardConfig{
			TopN:          10,
			HistogramBins: 30,
			TableRowLimit: 1000,
		},
	}
}

// LoadConfig reads configuration from a YAML file, then applies environment
// variable overrides. A missing .env file is not an error.
func LoadConfig(configPath string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("Config: No .env file found, falling back to system env vars")
	}

	AppConfig = defaults()

	if configPath == "" {
		potentialPaths := []string{
			"config/config.yaml",
			"./backend/config/config.yaml",
			"config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		log.Printf("Config: Loaded configuration from %s", configPath)
	} else {
		log.Println("Config: No config file found, using built-in defaults")
	}

	applyEnvOverrides()

	if AppConfig.Dashboard.TopN <= 0 {
		AppConfig.Dashboard.TopN = 10
	}
	if AppConfig.Dashboard.HistogramBins <= 0 {
		AppConfig.Dashboard.HistogramBins = 30
	}
	if AppConfig.Dashboard.TableRowLimit <= 0 {
		AppConfig.Dashboard.TableRowLimit = 1000
	}

	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("REGISTRY_OWNERS_CSV"); v != "" {
		AppConfig.Registry.OwnersCSV = v
	}
	if v := os.Getenv("REGISTRY_CURRENT_CSV"); v != "" {
		AppConfig.Registry.CurrentCSV = v
	}
}
