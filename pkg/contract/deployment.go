// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
)

// Deployment is the subset of a hardhat-deploy artifact needed to call the resolver.
type Deployment struct {
	Address common.Address  `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

func LoadDeployment(path string) (*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment %s: %w", path, err)
	}
	var d Deployment
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deployment %s: %w", path, err)
	}
	if d.Address == (common.Address{}) {
		return nil, fmt.Errorf("deployment %s has no address", path)
	}
	return &d, nil
}

// ParsedABI returns the artifact ABI, or ResolverABI when the artifact omits it.
func (d *Deployment) ParsedABI() (abi.ABI, error) {
	if len(bytes.TrimSpace(d.ABI)) == 0 || string(bytes.TrimSpace(d.ABI)) == "null" {
		return ParseResolverABI()
	}
	parsed, err := abi.JSON(bytes.NewReader(d.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse deployment ABI: %w", err)
	}
	if _, ok := parsed.Methods[tokenURIMethod]; !ok {
		return abi.ABI{}, fmt.Errorf("deployment ABI has no %s method", tokenURIMethod)
	}
	return parsed, nil
}
