package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxBodyKB    int

	// Pipeline sources: local paths or http(s) URLs of the published sheets.
	ModelsSrc   string
	SkuSrc      string
	RetailerSrc string
	OutputJSON  string

	FetchTimeoutSec int

	// Defaults for the /match endpoint.
	MatchLimit    int
	MatchMinScore int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	bodyKB, _ := strconv.Atoi(getenv("MAX_BODY_KB", "256"))
	fetchSec, _ := strconv.Atoi(getenv("FETCH_TIMEOUT_SEC", "30"))
	limit, _ := strconv.Atoi(getenv("MATCH_LIMIT", "8"))
	minScore, _ := strconv.Atoi(getenv("MATCH_MIN_SCORE", "0"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFile:         getenv("LOG_FILE", "logs/bikematch-service.log"),
		MaxBodyKB:       bodyKB,
		ModelsSrc:       os.Getenv("MODELS_SRC"),
		SkuSrc:          os.Getenv("SKU_SRC"),
		RetailerSrc:     os.Getenv("RETAILER_SRC"),
		OutputJSON:      getenv("OUTPUT_JSON", "public/bikes.json"),
		FetchTimeoutSec: fetchSec,
		MatchLimit:      limit,
		MatchMinScore:   minScore,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// ValidateSources reports which pipeline source locations are missing.
// An empty source location is fatal for a pipeline run.
func (c Config) ValidateSources() error {
	var missing []string
	if c.ModelsSrc == "" {
		missing = append(missing, "MODELS_SRC")
	}
	if c.SkuSrc == "" {
		missing = append(missing, "SKU_SRC")
	}
	if c.RetailerSrc == "" {
		missing = append(missing, "RETAILER_SRC")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
