// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
)

type Config struct {
	GatewayConfig GatewayConfig
	ChainConfigs  []map[string]interface{}
}

type RawConfig struct {
	GatewayConfig RawGatewayConfig         `mapstructure:"gateway" json:"gateway"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type GatewayConfig struct {
	URL                       string
	LogLevel                  string
	Env                       string
	OpenTelemetryCollectorURL string
}

type RawGatewayConfig struct {
	URL                       string `mapstructure:"url" json:"url" default:"https://gateway-api-testnet.circle.com"`
	LogLevel                  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	Env                       string `mapstructure:"env" json:"env" default:"testnet"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of GatewayConfig are expected to be defined as separate Env
// variables prefixed with GWC. For example, Config.GatewayConfig.URL
// translates to the Env variable named GWC_GATEWAY_URL.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches shared configuration from URL and parses it.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	config := &Config{}
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return config, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return config, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return config, err
	}

	config.ChainConfigs = rawConfig.ChainConfigs
	return config, err
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if config == nil {
		config = &Config{}
	}
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	chainConfigs := make([]map[string]interface{}, 0)
	for i, chain := range rawConfig.ChainConfigs {
		if i < len(config.ChainConfigs) {
			err := mergo.Merge(&chain, config.ChainConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if chain["family"] == "" || chain["family"] == nil {
			return config, fmt.Errorf("chain 'family' must be provided for every configured chain")
		}
		chainConfigs = append(chainConfigs, chain)
	}

	config.ChainConfigs = chainConfigs
	config.GatewayConfig = GatewayConfig{
		URL:                       rawConfig.GatewayConfig.URL,
		LogLevel:                  rawConfig.GatewayConfig.LogLevel,
		Env:                       rawConfig.GatewayConfig.Env,
		OpenTelemetryCollectorURL: rawConfig.GatewayConfig.OpenTelemetryCollectorURL,
	}
	return config, nil
}
