package service

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
)

type Services struct {
	SetService     SetService
	AppInfoService AppInfoService
}

// NewServices derives the cache key of the configured account and wires the
// services over storages.
func NewServices(storages *store.Storages, cipher crypto.Cipher, cfg *config.StructuredConfig, buildVersion string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildVersion, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	cacheKey := cipher.DeriveCacheKey(cfg.App.CacheSecret, utils.CacheSalt(cfg.AccountHandle()))

	return &Services{
		SetService:     NewSetService(storages.CacheRecords, cipher, cacheKey, logger),
		AppInfoService: appInfo,
	}, nil
}
