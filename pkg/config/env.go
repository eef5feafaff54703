package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSlotLockTTL      = "SLOT_LOCK_TTL"
	EnvSlotLockAttempts = "SLOT_LOCK_ATTEMPTS"
	EnvSlotLockBackoff  = "SLOT_LOCK_BACKOFF"

	EnvKafkaBrokers     = "KAFKA_BROKERS"
	EnvKafkaEventsTopic = "KAFKA_EVENTS_TOPIC"
)
