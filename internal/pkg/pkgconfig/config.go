package pkgconfig

import "time"

// Config is the read-only configuration surface modules depend on.
type Config interface {
	GetString(key string) string
	GetInt(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	Close() error
}
