// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"gwc"`
}

const EnvPrefix = "GWC"

func loadFromEnv() (RawConfig, error) {
	jsonGatewayConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonGatewayConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load chain configs
	index := 1
	for {
		rawChainConfig := os.Getenv(fmt.Sprintf("%s_CHAIN_%d", EnvPrefix, index))
		if rawChainConfig == "" {
			break
		}
		var cc map[string]interface{}
		err = json.Unmarshal([]byte(rawChainConfig), &cc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.ChainConfigs = append(rawConfig.ChainConfigs, cc)
		index++
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix) {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(strings.ToLower(pair[0]), "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.Marshal(structure)
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
