package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete.
var (
	ErrInvalidAdapterConfigs    = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs    = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs        = errors.New("invalid app configuration")
	ErrInvalidServerConfigs     = errors.New("invalid server configuration")
	ErrInvalidGenerationConfigs = errors.New("invalid generation configuration")
)
