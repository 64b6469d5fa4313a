package constants

const (
	ViperServerAddrKey        = "server.addr"
	ViperServerCORSOriginsKey = "server.cors_origins"
	ViperPostgresDSNKey       = "postgres.dsn"
	ViperPostgresRetriesKey   = "postgres.connect_retries"
	ViperMigrationsEnabledKey = "migrations.enabled"
	ViperRedisEnabledKey      = "redis.enabled"
	ViperRedisAddrKey         = "redis.addr"
	ViperRedisPasswordKey     = "redis.password"
	ViperRedisDBKey           = "redis.db"
	ViperCacheTTLKey          = "cache.ttl"
	ViperKafkaEnabledKey      = "kafka.enabled"
	ViperKafkaBrokersKey      = "kafka.brokers"
	ViperKafkaTopicKey        = "kafka.topic"
	ViperRoundingStepKey      = "pricing.rounding_step_kr"
	ViperGlobalMarkupKey      = "pricing.global_markup_pct"
	ViperSecretKey            = "admin.secret"
	ViperLogLevelKey          = "log.level"
)

const (
	CookieKeySecretToken = "storformat_admin"
	HeaderKeySecretToken = "X-Admin-Token"
	CtxKeyRequestID      = "request_id"
)
