package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"carriertext/internal/carrier/models"
)

// carrierOneVariant enables the carrier-specific separator between PLMN and SPN.
const carrierOneVariant = "405854"

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"CARRIERTEXT_ADDR"             envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"CARRIERTEXT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"CARRIERTEXT_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"CARRIERTEXT_LOG_FORMAT"       envDefault:"text"`

	Locale         string        `env:"CARRIERTEXT_LOCALE"          envDefault:"en-US"`
	LocaleDir      string        `env:"CARRIERTEXT_LOCALE_DIR"`
	LocaleDebounce time.Duration `env:"CARRIERTEXT_LOCALE_DEBOUNCE" envDefault:"250ms"`

	PhysicalSlotCount int    `env:"CARRIERTEXT_PHYSICAL_SLOT_COUNT" envDefault:"1"`
	Separator         string `env:"CARRIERTEXT_SEPARATOR"           envDefault:" | "`
	CarrierSeparator  string `env:"CARRIERTEXT_CARRIER_SEPARATOR"   envDefault:" "`
	// CarrierVariant is the device's carrier build identifier.
	CarrierVariant string `env:"CARRIERTEXT_CARRIER_VARIANT"`

	Redis RedisConfig `envPrefix:"CARRIERTEXT_REDIS_"`
}

// RedisConfig configures the optional Redis display sink. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"URL"`
	KeyPrefix    string        `env:"KEY_PREFIX"     envDefault:"carriertext"`
	PoolSize     int           `env:"POOL_SIZE"      envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT"   envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"   envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"  envDefault:"3s"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PhysicalSlotCount < 0 {
		return Server{}, fmt.Errorf("CARRIERTEXT_PHYSICAL_SLOT_COUNT must not be negative, got %d", cfg.PhysicalSlotCount)
	}
	return cfg, nil
}

// Separators returns the text separators for the composer.
func (s Server) Separators() models.Separators {
	return models.Separators{
		Default:    s.Separator,
		Carrier:    s.CarrierSeparator,
		UseCarrier: s.CarrierVariant == carrierOneVariant,
	}
}
