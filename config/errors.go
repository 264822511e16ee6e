package config

import "errors"

// ErrInvalidThreshold is returned by Validate when a threshold or
// extent field fails its validator tag.
var ErrInvalidThreshold = errors.New("config: invalid field value")
