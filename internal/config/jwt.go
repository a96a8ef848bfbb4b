package config

import "time"

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"NOTEFUL_JWT_SECRET_KEY" env-default:"dev-only-secret-change-me"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"NOTEFUL_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"NOTEFUL_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL returns the access token lifetime.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
