package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "hostelbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Slot locks auto-expire so a crashed holder cannot wedge a room.
	DefaultSlotLockTTL      = 10 * time.Second
	DefaultSlotLockAttempts = 3
	DefaultSlotLockBackoff  = 50 * time.Millisecond

	DefaultKafkaEventsTopic = "reservation-events"

	DefaultPaginationLimit = 100
)
