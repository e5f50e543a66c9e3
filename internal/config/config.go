package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dartfolio/internal/corpindex"
)

// Config is the process configuration, read from flags, the environment,
// and an optional .env file.
type Config struct {
	Port           string
	Env            string
	DartAPIKey     string
	GeminiAPIKey   string
	GeminiModel    string
	AllowedOrigins []string
	CorpXMLPath    string
	StaticDir      string
	CorpSource     corpindex.ObjectStoreConfig
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:5500",
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":5000", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	dartKey := strings.TrimSpace(os.Getenv("DART_API_KEY"))
	geminiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if dartKey == "" || geminiKey == "" {
		return nil, fmt.Errorf("config: DART_API_KEY and GEMINI_API_KEY are required")
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:           *port,
		Env:            env,
		DartAPIKey:     dartKey,
		GeminiAPIKey:   geminiKey,
		GeminiModel:    firstNonEmpty(os.Getenv("GEMINI_MODEL"), "gemini-2.5-flash-preview-09-2025"),
		AllowedOrigins: loadOrigins(),
		CorpXMLPath:    firstNonEmpty(os.Getenv("CORP_XML_PATH"), "CORPCODE.xml"),
		StaticDir:      firstNonEmpty(os.Getenv("STATIC_DIR"), "static"),
		CorpSource:     loadCorpSource(),
	}, nil
}

func loadOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if raw == "" {
		return defaultOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}

func loadCorpSource() corpindex.ObjectStoreConfig {
	return corpindex.ObjectStoreConfig{
		Endpoint:  strings.TrimSpace(os.Getenv("CORP_S3_ENDPOINT")),
		Region:    firstNonEmpty(os.Getenv("CORP_S3_REGION"), "us-east-1"),
		AccessKey: firstNonEmpty(os.Getenv("CORP_S3_ACCESS_KEY"), os.Getenv("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(os.Getenv("CORP_S3_SECRET_KEY"), os.Getenv("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(os.Getenv("CORP_S3_BUCKET"), "dartfolio-data"),
		Object:    firstNonEmpty(os.Getenv("CORP_S3_OBJECT"), "CORPCODE.xml"),
		UseSSL:    parseBoolDefault(os.Getenv("CORP_S3_USE_SSL"), true),
	}
}

func parseBoolDefault(raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
