package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"dartfolio/internal/analysis"
	"dartfolio/internal/llm"
	"dartfolio/internal/structured"
)

// handleGenerateAnalysis runs the Gemini-backed analysis pipeline. The
// client only ever sees a parsed report, an upstream error, or a generic
// failure message; garbled model output is never passed through.
func (s *apiServer) handleGenerateAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req analysis.Request
	// Tolerate a missing or malformed body; validation below catches it.
	_ = json.NewDecoder(r.Body).Decode(&req)
	req.Name = strings.TrimSpace(req.Name)
	req.BizArea = strings.TrimSpace(req.BizArea)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "회사명 정보가 필요합니다."})
		return
	}

	report, err := s.analysis.Generate(r.Context(), req)
	if err == nil {
		writeRaw(w, http.StatusOK, report)
		return
	}

	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":    "Gemini API 오류",
			"status":   upstream.Status,
			"upstream": upstream.Body,
		})
		return
	}
	var terminal *structured.TerminalError
	if errors.As(err, &terminal) {
		log.Printf("analysis failed, primary raw: %s", truncate(terminal.PrimaryRaw, 1500))
		log.Printf("analysis failed, repair raw: %s", truncate(terminal.RepairRaw, 1500))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Gemini 분석 데이터 생성에 최종 실패했습니다. 응답에서 유효한 JSON을 찾을 수 없습니다.",
		})
		return
	}
	log.Printf("analysis request failed: %v", err)
	writeJSON(w, http.StatusBadGateway, map[string]any{
		"error": "Gemini API 요청 실패", "detail": err.Error(),
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
