// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".vebanny"
	LogDir      = "logs"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	LoggerName = "vebanny"

	// runtime settings read through viper
	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "yaml"
	EnvPrefix             = "VEBANNY"

	ConfigRPCKey      = "rpc"
	ConfigNetworkKey  = "network"
	ConfigParallelKey = "parallel"
	ConfigTimeoutKey  = "timeout"

	// hardhat-deploy artifact layout
	DeploymentsDir         = "deployments"
	ResolverContractName   = "JBVeTokenUriResolver"
	DeploymentArtifactExt  = ".json"
	DefaultVerifyParallel  = 8
	DefaultVerifyTimeout   = 30 * time.Second
	DefaultDialTimeout     = 15 * time.Second
	DefaultOutputFilePerms = WriteReadReadPerms

	// simulate output formats
	FormatText  = "text"
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
