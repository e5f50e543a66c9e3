package main

import (
	"log"
	"net/http"
	"strings"

	"dartfolio/internal/corpindex"
)

// handleSearch resolves a company name to its DART corp code via the
// in-memory index.
func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "400", "message": "검색할 기업명(name)이 필요합니다.",
		})
		return
	}
	if s.corps.Len() == 0 {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "500", "message": "서버에 기업 목록(XML)이 로드되지 않았습니다.",
		})
		return
	}

	entry, ok := s.corps.Lookup(corpindex.CleanName(name))
	if !ok {
		log.Printf("search miss: %q", name)
		writeJSON(w, http.StatusNotFound, map[string]any{
			"status": "404", "message": "일치하는 기업을 찾을 수 없습니다.",
		})
		return
	}
	log.Printf("search hit: %q -> %s", name, entry.Code)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "000",
		"corp_code": entry.Code,
		"corp_name": entry.OriginalName,
	})
}

func (s *apiServer) handleCompany(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "400", "message": "기업 코드가 필요합니다.",
		})
		return
	}
	data, err := s.dart.Company(r.Context(), code)
	if err != nil {
		log.Printf("dart company request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "500", "message": "DART API 요청에 실패했습니다: " + err.Error(),
		})
		return
	}
	writeRaw(w, http.StatusOK, data)
}

func (s *apiServer) handleFinance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	code := strings.TrimSpace(q.Get("code"))
	year := strings.TrimSpace(q.Get("year"))
	reprtCode := strings.TrimSpace(q.Get("reprt_code"))
	if reprtCode == "" {
		reprtCode = "11014" // annual business report
	}
	if code == "" || year == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status": "400", "message": "기업 코드와 사업 연도가 필요합니다.",
		})
		return
	}
	data, err := s.dart.FinanceAll(r.Context(), code, year, reprtCode)
	if err != nil {
		log.Printf("dart finance request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "500", "message": "DART API 요청에 실패했습니다: " + err.Error(),
		})
		return
	}
	writeRaw(w, http.StatusOK, data)
}
