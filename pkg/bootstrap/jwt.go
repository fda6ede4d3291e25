package bootstrap

type JWTEnv struct {
	AccessTokenSecret string `env:"ACCESS_SECRET" envDefault:"access-secret"`
	AccessTokenTTL    int64  `env:"ACCESS_TTL" envDefault:"60"` // in minutes

	RefreshTokenSecret string `env:"REFRESH_SECRET" envDefault:"refresh-secret"`
	RefreshTokenTTL    int64  `env:"REFRESH_TTL" envDefault:"1209600"` // in seconds
}

// AccessTokenTTLSeconds is the value reported as expires_in by login and refresh.
func (e *JWTEnv) AccessTokenTTLSeconds() int64 {
	return e.AccessTokenTTL * 60
}
