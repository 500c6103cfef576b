package client

import "errors"

var ErrAppNotConfigured = errors.New("app is missing services, engine or config")
