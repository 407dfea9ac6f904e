package config

import "errors"

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid value")

// ErrConfigExists indicates Init would overwrite an existing file.
var ErrConfigExists = errors.New("config: file already exists")
