// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package globalconfig

import (
	"encoding/json"
	"fmt"

	"github.com/luxfi/vebanny/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Encode renders v as indented JSON or YAML.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case constants.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case constants.FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w %q, expected %s or %s", constants.ErrUnknownFormat, format, constants.FormatJSON, constants.FormatYAML)
	}
}

// Decode parses JSON or YAML config bytes into a GlobalConfig.
func Decode(data []byte, format string) (*GlobalConfig, error) {
	var config GlobalConfig
	switch format {
	case constants.FormatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	case constants.FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q, expected %s or %s", constants.ErrUnknownFormat, format, constants.FormatJSON, constants.FormatYAML)
	}
	config.Resolver.normalize()
	return &config, nil
}
