// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages the setcache command prints
// when it fails. Details go to the log file, the terminal gets one of the
// Msg* strings.
package app

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
)

const (
	// MsgInvalidStorageConfig is printed when no usable database path is
	// configured.
	MsgInvalidStorageConfig = "invalid storage configuration: set -d or STORAGE_DB_DATABASE_URI"

	// MsgInvalidAppConfig is printed for a malformed account handle or a
	// missing cache secret.
	MsgInvalidAppConfig = "invalid account or cache secret"

	MsgInvalidWorkerConfig = "invalid flush interval"

	// MsgVersionIsNotSpecified is printed when neither APP_VERSION nor the
	// build version is set.
	MsgVersionIsNotSpecified = "version is not specified"

	MsgSyncRootNotFound = "sync root does not exist"

	MsgStorageFailure = "local storage failure"

	MsgInternalError = "internal error"
)

var messages = []struct {
	err error
	msg string
}{
	{config.ErrInvalidStorageConfigs, MsgInvalidStorageConfig},
	{config.ErrInvalidAppConfigs, MsgInvalidAppConfig},
	{config.ErrInvalidWorkerConfigs, MsgInvalidWorkerConfig},
	{service.ErrVersionIsNotSpecified, MsgVersionIsNotSpecified},
	{fs.ErrNotExist, MsgSyncRootNotFound},
	{service.ErrCachePersist, MsgStorageFailure},
	{store.ErrExecutingQuery, MsgStorageFailure},
	{store.ErrExecutingStatement, MsgStorageFailure},
	{store.ErrBeginningTransaction, MsgStorageFailure},
	{store.ErrCommitingTransaction, MsgStorageFailure},
	{store.ErrScanningRows, MsgStorageFailure},
}

// UserMessage maps err to a message fit for the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
