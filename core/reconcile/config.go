package reconcile

// Config holds tuning knobs for the snapshot cache.
type Config struct {
	// CacheTTLSeconds is the time-to-live for cached snapshots on the
	// preview path. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}
