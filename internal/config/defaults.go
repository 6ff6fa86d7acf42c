package config

import "time"

// Built-in defaults, applied last.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "pricewise"
	DefaultTokenDuration  = 5 * time.Hour
	DefaultBcryptCost     = 10
	DefaultDBName         = "pricewise"
	DefaultCacheTTL       = 10 * time.Minute
	DefaultClassifierURL  = "http://localhost:5000/predict"
	DefaultClassifierWait = 10 * time.Second
	DefaultMailPort       = 465
	DefaultAlertInterval  = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB:    DB{Name: DefaultDBName},
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			Classifier: Classifier{URL: DefaultClassifierURL, Timeout: DefaultClassifierWait},
			Mail:       Mail{Port: DefaultMailPort},
		},
		Workers: Workers{AlertInterval: DefaultAlertInterval},
	}
}
