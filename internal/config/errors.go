package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a passphrase without a usable salt).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRetentionConfigs indicates negative retention settings.
	ErrInvalidRetentionConfigs = errors.New("invalid retention configuration")
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file type")
)
