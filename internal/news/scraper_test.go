package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const samplePage = `<html><body>
<div class="news_area">
  <a class="news_tit" href="https://news.example.com/1" title="삼성전자, 신규 파운드리 수주">삼성전자, 신규 파운드리 수주</a>
</div>
<div class="news_area">
  <a class="news_tit other" href="https://news.example.com/2">하이닉스 <b>실적</b> 발표</a>
</div>
<a class="news_tit" href="">제목만 있고 링크 없음</a>
<a class="not_a_title" href="https://news.example.com/3">무관한 링크</a>
</body></html>`

func TestExtractHeadlines(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(samplePage))
	require.NoError(t, err)

	items := extractHeadlines(doc, 10)
	require.Len(t, items, 2)
	assert.Equal(t, "삼성전자, 신규 파운드리 수주", items[0].Title)
	assert.Equal(t, "https://news.example.com/1", items[0].URL)
	assert.Equal(t, "하이닉스 실적 발표", items[1].Title, "nested markup collapses to plain text")
}

func TestExtractHeadlinesHonorsLimit(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(samplePage))
	require.NoError(t, err)
	assert.Len(t, extractHeadlines(doc, 1), 1)
}

func TestHeadlinesEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "news", r.URL.Query().Get("where"))
		assert.Equal(t, "삼성전자", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	s := NewScraper()
	s.searchURL = srv.URL
	items, err := s.Headlines(context.Background(), "삼성전자")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestHeadlinesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewScraper()
	s.searchURL = srv.URL
	_, err := s.Headlines(context.Background(), "삼성전자")
	require.Error(t, err)
}
