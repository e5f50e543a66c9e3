package main

import (
	"encoding/json"
	"net/http"

	"dartfolio/internal/analysis"
	"dartfolio/internal/corpindex"
	"dartfolio/internal/dart"
	"dartfolio/internal/news"
)

// apiServer wires the HTTP handlers to the backing services.
type apiServer struct {
	corps    *corpindex.Index
	dart     *dart.Client
	news     *news.Scraper
	analysis *analysis.Service
}

func newAPIServer(corps *corpindex.Index, d *dart.Client, n *news.Scraper, a *analysis.Service) *apiServer {
	return &apiServer{corps: corps, dart: d, news: n, analysis: a}
}

func buildMux(s *apiServer, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/company", s.handleCompany)
	mux.HandleFunc("/api/finance", s.handleFinance)
	mux.HandleFunc("/api/news", s.handleNews)
	mux.HandleFunc("/api/generate-analysis", s.handleGenerateAnalysis)
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw passes an upstream JSON document through untouched.
func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}
