package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"dartfolio/internal/analysis"
	"dartfolio/internal/config"
	"dartfolio/internal/corpindex"
	"dartfolio/internal/dart"
	"dartfolio/internal/llm"
	"dartfolio/internal/middleware"
	"dartfolio/internal/news"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	corps := loadCorpIndex(ctx, cfg)

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	s := newAPIServer(
		corps,
		dart.NewClient(dart.Config{APIKey: cfg.DartAPIKey}),
		news.NewScraper(),
		analysis.NewService(gemini),
	)
	mux := buildMux(s, resolveStaticDir(cfg.StaticDir))
	h := middleware.CORS(cfg.AllowedOrigins, mux)

	log.Printf("Starting API server on %s (model=%s)", cfg.Port, cfg.GeminiModel)
	log.Fatal(http.ListenAndServe(cfg.Port, h2c.NewHandler(h, &http2.Server{})))
}

// loadCorpIndex prefers the local XML dump and falls back to object storage
// when the file is absent. A missing index only disables /api/search.
func loadCorpIndex(ctx context.Context, cfg *config.Config) *corpindex.Index {
	if _, err := os.Stat(cfg.CorpXMLPath); err == nil {
		idx, err := corpindex.Load(cfg.CorpXMLPath)
		if err != nil {
			log.Printf("corp index: load %s: %v", cfg.CorpXMLPath, err)
			return nil
		}
		log.Printf("corp index: loaded %d companies from %s", idx.Len(), cfg.CorpXMLPath)
		return idx
	}
	if cfg.CorpSource.Enabled() {
		idx, err := corpindex.LoadFromObjectStore(ctx, cfg.CorpSource)
		if err != nil {
			log.Printf("corp index: object store: %v", err)
			return nil
		}
		log.Printf("corp index: loaded %d companies from object store", idx.Len())
		return idx
	}
	log.Printf("corp index: %s not found and no object store configured; /api/search disabled", cfg.CorpXMLPath)
	return nil
}

func resolveStaticDir(dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Printf("static dir %s not found; static serving disabled", dir)
		return ""
	}
	return dir
}
