package config

import "time"

// JwtConfig holds token verification settings. Tokens are issued by the
// external auth provider; this service only verifies them.
type JwtConfig struct {
	Secret            string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer            string `env:"JWT_ISSUER" env-default:"simple-ideas"`
	Audience          string `env:"JWT_AUDIENCE" env-default:"simple-ideas"`
	AccessTokenExpiry string `env:"ACCESS_TOKEN_EXPIRY" env-default:"30m"`
}

// ParseAccessTokenExpiry parses the access token expiry duration
func (j JwtConfig) ParseAccessTokenExpiry() (time.Duration, error) {
	return time.ParseDuration(j.AccessTokenExpiry)
}
