package corpindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<result>
  <list>
    <corp_code>00126380</corp_code>
    <corp_name>삼성전자(주)</corp_name>
    <stock_code>005930</stock_code>
  </list>
  <list>
    <corp_code>00164779</corp_code>
    <corp_name>에스케이하이닉스(주)</corp_name>
  </list>
  <list>
    <corp_code></corp_code>
    <corp_name>코드없는회사</corp_name>
  </list>
  <list>
    <corp_code>99999999</corp_code>
    <corp_name>   </corp_name>
  </list>
</result>`

func TestParseBuildsCleanedNameIndex(t *testing.T) {
	idx, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len(), "records without name or code are skipped")

	e, ok := idx.Lookup("삼성전자")
	require.True(t, ok)
	assert.Equal(t, "00126380", e.Code)
	assert.Equal(t, "삼성전자(주)", e.OriginalName)
}

func TestLookupUsesCleanedQuery(t *testing.T) {
	idx, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	_, ok := idx.Lookup(CleanName(" 에스케이하이닉스(주) "))
	assert.True(t, ok)

	_, ok = idx.Lookup("없는회사")
	assert.False(t, ok)
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "삼성전자", CleanName("삼성전자(주)"))
	assert.Equal(t, "삼성전자", CleanName("  (주)삼성전자  "))
	assert.Equal(t, "", CleanName("  (주) "))
}

func TestNilIndexIsSafe(t *testing.T) {
	var idx *Index
	_, ok := idx.Lookup("삼성전자")
	assert.False(t, ok)
	assert.Equal(t, 0, idx.Len())
}
