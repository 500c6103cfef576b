package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-account local account handle (Base64)
//	-cache-secret secret the cache key is derived from
//	-sync-root local folder to mirror
//	-watch keep running and rescan the sync root on changes
//	-flush-interval state cache flush interval (e.g., "5s", "1m")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var accountHandle string
	var cacheSecret string
	var syncRoot string
	var watch bool
	var flushInterval time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accountHandle, "account", "", "Local account handle")
	flag.StringVar(&cacheSecret, "cache-secret", "", "Cache secret")
	flag.StringVar(&syncRoot, "sync-root", "", "Local folder to mirror")
	flag.BoolVar(&watch, "watch", false, "Rescan the sync root on changes until interrupted")
	flag.DurationVar(&flushInterval, "flush-interval", 0, "State cache flush interval (e.g., 5s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccountHandle: accountHandle,
			CacheSecret:   cacheSecret,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			LocalRoot: syncRoot,
			Watch:     watch,
		},
		Workers: Workers{
			FlushInterval: flushInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
