// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}

	if models.HandleFromBase64(cfg.App.AccountHandle).IsUndef() {
		return fmt.Errorf("%w: account handle %q", ErrInvalidAppConfigs, cfg.App.AccountHandle)
	}
	if cfg.App.CacheSecret == "" {
		return fmt.Errorf("%w: empty cache secret", ErrInvalidAppConfigs)
	}

	// the flusher only runs for a sync root; zero picks its default
	if cfg.Sync.LocalRoot != "" && cfg.Workers.FlushInterval < 0 {
		return fmt.Errorf("%w: flush interval %s", ErrInvalidWorkerConfigs, cfg.Workers.FlushInterval)
	}

	return nil
}

// AccountHandle returns the decoded handle of the local account.
func (cfg *StructuredConfig) AccountHandle() models.Handle {
	return models.HandleFromBase64(cfg.App.AccountHandle)
}
