package main

import (
	"log"
	"net/http"
	"strings"
)

func (s *apiServer) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "400", "message": "검색어(query)가 필요합니다.",
		})
		return
	}
	items, err := s.news.Headlines(r.Context(), query)
	if err != nil {
		log.Printf("news scrape failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"status": "502", "message": "뉴스 검색에 실패했습니다.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query": query,
		"items": items,
	})
}
