package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"dartfolio/internal/structured"
)

// Request is the generate-analysis payload sent by the frontend. DartData is
// passed through verbatim into the prompt.
type Request struct {
	Name     string          `json:"name"`
	BizArea  string          `json:"bizArea"`
	DartData json.RawMessage `json:"dartData"`
}

// TargetRole is the position the report is written for.
const TargetRole = "프론트엔드 개발자"

// Schema is the report skeleton embedded in every prompt. It is advisory
// only: the parsed result is not validated against it beyond decoding.
const Schema = `{
  "vision": "기업의 비전과 목표",
  "productsAndServices": ["주요 제품 및 서비스 1", "주요 제품 및 서비스 2"],
  "performanceSummary": "최근 실적 및 재무 상태 요약",
  "swot": {
    "strength": ["강점 1", "강점 2"],
    "weakness": ["약점 1", "약점 2"],
    "opportunity": ["기회 1", "기회 2"],
    "threat": ["위협 1", "위협 2"],
    "strategy": "SWOT 분석 기반의 추천 전략"
  },
  "industryAnalysis": {
      "method": "산업 분석에 사용한 방법론 (예: 5 Forces Model)",
      "result": "산업의 매력도 및 성장 가능성 분석 결과",
      "competitors": "주요 경쟁사 목록",
      "competitorAnalysis": "경쟁사 대비 강점 및 약점 분석"
  },
  "job": {
    "duties": "프론트엔드 개발자로서의 주요 직무 내용",
    "description": "이 회사에서 프론트엔드 개발자의 역할과 중요성",
    "knowledge": "필요한 기술 지식 (예: React, TypeScript)",
    "skills": "필요한 소프트 스킬 (예: 협업, 문제 해결 능력)",
    "attitude": "요구되는 업무 태도 (예: 성장 지향, 주도성)",
    "certs": "우대 자격증 (없으면 '해당 없음')",
    "env": "개발 환경 및 문화 예측",
    "careerDev": "입사 후 커리어 발전 경로 제안"
  },
  "selfAnalysis": {
      "knowledge": "지원자(나)의 관련 기술 지식 수준 분석",
      "skills": "지원자(나)의 관련 소프트 스킬 수준 분석",
      "attitude": "지원자(나)의 업무 태도 부합도 분석",
      "actionPlan1": "부족한 점 보완을 위한 구체적인 실행 계획 1",
      "actionPlan2": "부족한 점 보완을 위한 구체적인 실행 계획 2",
      "actionPlan3": "부족한 점 보완을 위한 구체적인 실행 계획 3"
  }
}`

// Prompt renders the primary analysis prompt for req.
func Prompt(req Request) string {
	var b strings.Builder
	b.WriteString("당신은 DART 공시 정보를 기반으로 기업을 심층 분석하는 AI 애널리스트입니다.\n")
	b.WriteString("분석 대상 기업은 '" + req.Name + "(" + req.BizArea + ")'이며, 지원 직무는 '" + TargetRole + "'입니다.\n")
	b.WriteString("제공된 DART 데이터와 당신의 지식을 종합하여 아래 JSON 스키마에 맞춰 기업 분석 보고서를 작성해주세요.\n")
	b.WriteString("--- DART 데이터 ---\n")
	b.WriteString(indentDartData(req.DartData))
	b.WriteString("\n--- JSON 스키마 ---\n")
	b.WriteString(Schema)
	b.WriteString("\n--- 중요 규칙 ---\n")
	b.WriteString("1. 모든 텍스트 값은 반드시 '한국어'로 작성해야 합니다. (VERY IMPORTANT: All text values MUST be in Korean.)\n")
	b.WriteString("2. 응답은 다른 설명 없이 순수한 JSON 객체 하나여야 하며, '{'로 시작해서 '}'로 끝나야 합니다.")
	return b.String()
}

func indentDartData(data json.RawMessage) string {
	if len(data) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "{}"
	}
	return buf.String()
}

// Service turns an analysis request into a parsed report by driving the
// JSON resolver against the configured generator.
type Service struct {
	resolver *structured.Resolver
}

func NewService(gen structured.Generator) *Service {
	return &Service{resolver: structured.NewResolver(gen)}
}

// Generate produces the analysis report JSON for req. Errors are the
// resolver's: an upstream generator failure or a terminal parse failure.
func (s *Service) Generate(ctx context.Context, req Request) (json.RawMessage, error) {
	return s.resolver.Resolve(ctx, Prompt(req), Schema)
}
