package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	DevEndpoints    bool          `yaml:"dev_endpoints"    env:"SERVER_DEV_ENDPOINTS"    env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the shared Redis connection used by the redis-backed
// limiter and cache. An empty URL means Redis is not configured.
type RedisConfig struct {
	URL         string        `yaml:"url"          env:"REDIS_URL"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"circulation"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Limiter policies and store backends.
const (
	PolicyTokenBucket = "token_bucket"
	PolicyFixedWindow = "fixed_window"

	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// RateLimitConfig holds admission settings. Each quota scope has its own
// limit, window and counting policy.
type RateLimitConfig struct {
	Backend         string        `yaml:"backend"          env:"RATE_LIMIT_BACKEND"          env-default:"memory"`
	APIPrefix       string        `yaml:"api_prefix"       env:"RATE_LIMIT_API_PREFIX"       env-default:"/api/"`
	ExemptPathsRaw  string        `yaml:"exempt_paths"     env:"RATE_LIMIT_EXEMPT_PATHS"     env-default:"/api/doc,/api/test,/dev/,/live,/ready,/health"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`

	GeneralLimit  int           `yaml:"general_limit"  env:"RATE_LIMIT_GENERAL_LIMIT"  env-default:"100"`
	GeneralWindow time.Duration `yaml:"general_window" env:"RATE_LIMIT_GENERAL_WINDOW" env-default:"1m"`
	GeneralPolicy string        `yaml:"general_policy" env:"RATE_LIMIT_GENERAL_POLICY" env-default:"fixed_window"`

	LoginLimit  int           `yaml:"login_limit"  env:"RATE_LIMIT_LOGIN_LIMIT"  env-default:"5"`
	LoginWindow time.Duration `yaml:"login_window" env:"RATE_LIMIT_LOGIN_WINDOW" env-default:"15m"`
	LoginPolicy string        `yaml:"login_policy" env:"RATE_LIMIT_LOGIN_POLICY" env-default:"fixed_window"`

	BookCreationLimit  int           `yaml:"book_creation_limit"  env:"RATE_LIMIT_BOOK_CREATION_LIMIT"  env-default:"10"`
	BookCreationWindow time.Duration `yaml:"book_creation_window" env:"RATE_LIMIT_BOOK_CREATION_WINDOW" env-default:"1h"`
	BookCreationPolicy string        `yaml:"book_creation_policy" env:"RATE_LIMIT_BOOK_CREATION_POLICY" env-default:"fixed_window"`

	LoanCreationLimit  int           `yaml:"loan_creation_limit"  env:"RATE_LIMIT_LOAN_CREATION_LIMIT"  env-default:"20"`
	LoanCreationWindow time.Duration `yaml:"loan_creation_window" env:"RATE_LIMIT_LOAN_CREATION_WINDOW" env-default:"1h"`
	LoanCreationPolicy string        `yaml:"loan_creation_policy" env:"RATE_LIMIT_LOAN_CREATION_POLICY" env-default:"fixed_window"`

	// ExemptPaths is parsed from ExemptPathsRaw during validation.
	ExemptPaths []string `yaml:"-" env:"-"`
}

// QuotaConfig is the resolved setting of one quota scope.
type QuotaConfig struct {
	Limit  int
	Window time.Duration
	Policy string
}

// General returns the quota applied to every API request.
func (c RateLimitConfig) General() QuotaConfig {
	return QuotaConfig{Limit: c.GeneralLimit, Window: c.GeneralWindow, Policy: c.GeneralPolicy}
}

// Login returns the quota applied to login attempts.
func (c RateLimitConfig) Login() QuotaConfig {
	return QuotaConfig{Limit: c.LoginLimit, Window: c.LoginWindow, Policy: c.LoginPolicy}
}

// BookCreation returns the quota applied to catalog additions.
func (c RateLimitConfig) BookCreation() QuotaConfig {
	return QuotaConfig{Limit: c.BookCreationLimit, Window: c.BookCreationWindow, Policy: c.BookCreationPolicy}
}

// LoanCreation returns the quota applied to new loans.
func (c RateLimitConfig) LoanCreation() QuotaConfig {
	return QuotaConfig{Limit: c.LoanCreationLimit, Window: c.LoanCreationWindow, Policy: c.LoanCreationPolicy}
}

// CacheConfig holds read-through cache settings.
type CacheConfig struct {
	Backend          string        `yaml:"backend"            env:"CACHE_BACKEND"            env-default:"memory"`
	KeyPrefix        string        `yaml:"key_prefix"         env:"CACHE_KEY_PREFIX"         env-default:"circulation:"`
	DefaultTTL       time.Duration `yaml:"default_ttl"        env:"CACHE_DEFAULT_TTL"        env-default:"1h"`
	BooksListTTL     time.Duration `yaml:"books_list_ttl"     env:"CACHE_BOOKS_LIST_TTL"     env-default:"10m"`
	BookDetailTTL    time.Duration `yaml:"book_detail_ttl"    env:"CACHE_BOOK_DETAIL_TTL"    env-default:"30m"`
	UserLoansTTL     time.Duration `yaml:"user_loans_ttl"     env:"CACHE_USER_LOANS_TTL"     env-default:"5m"`
	LoanHistoryPages int           `yaml:"loan_history_pages" env:"CACHE_LOAN_HISTORY_PAGES" env-default:"10"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"CACHE_CLEANUP_INTERVAL"   env-default:"1m"`
}

// EventsConfig holds event sink settings.
type EventsConfig struct {
	BufferSize int `yaml:"buffer_size" env:"EVENTS_BUFFER_SIZE" env-default:"256"`
}
