package storage

import "errors"

// ErrSettingsNotFound is returned when a user has no autosync settings saved yet.
var ErrSettingsNotFound = errors.New("autosync settings not found")

// ErrConnectionExists is returned when a user already has a connection for the provider.
var ErrConnectionExists = errors.New("connection for this provider already exists")

// ErrConnectionNotFound is returned when no connection exists for the user and provider.
var ErrConnectionNotFound = errors.New("connection not found")
