package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CartConfig struct {
	StorageKey string `yaml:"CART_STORAGE_KEY" env:"CART_STORAGE_KEY" env-default:"techvault:cart"`
}

// Pricing is the single rate set used for order totals. The storefront
// historically carried two conflicting sets; these defaults are the ones the
// checkout screen displays.
type Pricing struct {
	TaxRate               float64 `yaml:"TAX_RATE" env:"TAX_RATE" env-default:"0.085"`
	StandardFee           float64 `yaml:"SHIPPING_STANDARD_FEE" env:"SHIPPING_STANDARD_FEE" env-default:"9.99"`
	ExpressFee            float64 `yaml:"SHIPPING_EXPRESS_FEE" env:"SHIPPING_EXPRESS_FEE" env-default:"19.99"`
	NextDayFee            float64 `yaml:"SHIPPING_NEXTDAY_FEE" env:"SHIPPING_NEXTDAY_FEE" env-default:"29.99"`
	FreeShippingThreshold float64 `yaml:"FREE_SHIPPING_THRESHOLD" env:"FREE_SHIPPING_THRESHOLD" env-default:"100"`
}

type CatalogConfig struct {
	// Simulated latency of the mock catalog. Zero disables the delay.
	Latency time.Duration `yaml:"CATALOG_LATENCY" env:"CATALOG_LATENCY" env-default:"0s"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect  `yaml:"redis"`
	Cart         CartConfig    `yaml:"cart"`
	Pricing      Pricing       `yaml:"pricing"`
	Catalog      CatalogConfig `yaml:"catalog"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {

		// env-only configuration, every field has a usable default
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d",
		r.Username, r.Password, r.Host, r.Port, r.DB)
}
