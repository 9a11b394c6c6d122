package jobsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalog_SearchByMOS(t *testing.T) {
	got, err := SeedCatalog().Search(context.Background(), Params{MOS: "92A"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p.MOSCodes, "92A")
	}
}

func TestCatalog_SearchByText(t *testing.T) {
	got, err := SeedCatalog().Search(context.Background(), Params{Text: "mechanic"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Diesel Mechanic", got[0].Title)
}

func TestCatalog_LimitAndLocation(t *testing.T) {
	got, err := SeedCatalog().Search(context.Background(), Params{Location: "tx", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClient_SearchDecodesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "laborer", r.URL.Query().Get("text"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"found": 2,
			"pages": 1,
			"page":  0,
			"items": []map[string]any{
				{
					"id":                   "r1",
					"title":                "General Laborer",
					"required_skills":      []string{"lifting"},
					"min_experience_years": 1,
					"location":             "Austin, TX",
				},
				{
					"id":       "r2",
					"title":    "Warehouse Laborer",
					"location": "Reno, NV",
				},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(zap.NewNop(), srv.URL, "")
	got, err := c.Search(context.Background(), Params{Text: "laborer", Location: "tx"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "General Laborer", got[0].Title)
	require.NotNil(t, got[0].MinExperienceYears)
	assert.Equal(t, 1.0, *got[0].MinExperienceYears)
}

func TestClient_SearchPropagatesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(zap.NewNop(), srv.URL, "")
	_, err := c.Search(context.Background(), Params{})
	assert.Error(t, err)
}
