package config

// Version information, set at build time

var Version = "development"
var CommitHash = "development"
var BuildTimestamp = "0000-00-00T00:00:00Z"

// Cookie names

var SessionCookieName = "session"
var CSRFCookieName = "oauth_state"

// Cookie lifetimes in seconds

var SessionCookieMaxAge = 86400
var CSRFCookieMaxAge = 600

// Main app config

type Config struct {
	Port                   int    `mapstructure:"port" validate:"required"`
	Address                string `mapstructure:"address" validate:"required,ip4_addr"`
	AppURL                 string `mapstructure:"app-url" validate:"required,url"`
	GoogleClientID         string `mapstructure:"google-client-id" validate:"required"`
	GoogleClientSecret     string `mapstructure:"google-client-secret" validate:"required"`
	GoogleClientSecretFile string `mapstructure:"google-client-secret-file"`
	SessionSecret          string `mapstructure:"session-secret" validate:"required,min=32"`
	SessionSecretFile      string `mapstructure:"session-secret-file"`
	AdminEmails            string `mapstructure:"admin-emails" validate:"required"`
	WebhookURL             string `mapstructure:"webhook-url" validate:"omitempty,url"`
	DatabasePath           string `mapstructure:"database-path" validate:"required"`
	SecureCookie           bool   `mapstructure:"secure-cookie"`
	LogLevel               string `mapstructure:"log-level" validate:"oneof=trace debug info warn error fatal panic"`
	TrustedProxies         string `mapstructure:"trusted-proxies"`
}

// Identity token claims, decoded from the provider's id_token payload

type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Request context for the logged in (or anonymous) user

type UserContext struct {
	Email      string
	IsLoggedIn bool
}
