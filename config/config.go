package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// BASE_URL defaults to the Android emulator's host loopback, which is what
// the mobile client talks to during development.
const defaultBaseURL = "http://10.0.2.2:3000"

type Config struct {
	Host      string
	Port      string
	BaseURL   string
	DataFile  string
	IndexFile string
	Taxes     TaxBounds
}

// TaxBounds limits the randomized values served by GET /taxes.
type TaxBounds struct {
	VATMin      float64
	VATMax      float64
	ShippingMin int
	ShippingMax int
}

// MustLoad reads configuration from the environment (after loading a .env
// file if one exists) and exits the process on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	return &Config{
		Host:      getEnv("HOST", "0.0.0.0"),
		Port:      getEnv("PORT", "3000"),
		BaseURL:   getEnv("BASE_URL", defaultBaseURL),
		DataFile:  getEnv("DATA_FILE", "data/data.json"),
		IndexFile: getEnv("INDEX_FILE", "data/index.html"),
		Taxes: TaxBounds{
			VATMin:      getEnvFloat("VAT_MIN", 0.1),
			VATMax:      getEnvFloat("VAT_MAX", 0.2),
			ShippingMin: getEnvInt("SHIPPING_MIN", 50),
			ShippingMax: getEnvInt("SHIPPING_MAX", 100),
		},
	}
}

// Addr returns the host:port pair the server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return f
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return n
}
