package prompt

import (
	"testing"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_HasFifteenAdvisors(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.All(), 15)

	for _, id := range DefaultAdvisorIDs {
		_, ok := c.Lookup(id)
		assert.True(t, ok, "default advisor %s missing", id)
	}
}

func TestCatalog_LookupCaseInsensitive(t *testing.T) {
	a, ok := DefaultCatalog().Lookup(" WB ")
	require.True(t, ok)
	assert.Equal(t, "워런 버핏", a.Name)
	assert.Equal(t, "WB", a.Initials)

	_, ok = DefaultCatalog().Lookup("zz")
	assert.False(t, ok)
}

func TestCatalog_Select(t *testing.T) {
	c := DefaultCatalog()

	got := c.Select([]string{"em", "unknown", "em", "sj"}, []string{" ", "할머니"})
	require.Len(t, got, domain.MaxAdvisors)
	assert.Equal(t, "em", got[0].ID)
	assert.Equal(t, "sj", got[1].ID)
	assert.Equal(t, domain.AdvisorSpec{Name: "할머니", Style: CustomStyle}, got[2])
}

func TestCatalog_SelectCapsAtMax(t *testing.T) {
	got := DefaultCatalog().Select([]string{"em", "wb", "sn", "jb"}, []string{"할머니"})
	require.Len(t, got, domain.MaxAdvisors)
	assert.Equal(t, "sn", got[2].ID)
}

func TestCatalog_SelectEmpty(t *testing.T) {
	got := DefaultCatalog().Select(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := ParseCatalog([]byte("groups: [unterminated"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte(`
groups:
  - name: g
    advisors:
      - {id: a, name: A}
      - {id: A, name: B}
`))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = ParseCatalog([]byte(`
groups:
  - name: g
    advisors:
      - {name: A}
`))
	assert.ErrorContains(t, err, "needs id and name")
}

func TestCatalog_Render(t *testing.T) {
	c, err := ParseCatalog([]byte(`
title: Pool
groups:
  - name: Leaders
    advisors:
      - {id: x, initials: XX, name: 엑스, name_en: Ex, style: 간결, description: 짧게 말해.}
`))
	require.NoError(t, err)
	assert.Equal(t, "# Pool\n\n## Leaders\n\n### XX - 엑스 (Ex)\n- 스타일: 간결\n- 화법: \"짧게 말해.\"\n", c.Render())
}
