package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEndpoint_RequiresQuery(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/products/search", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeBody(t, rec)["kind"])
}

func TestSearchEndpoint_UnavailableWithoutCluster(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/products/search?q=sofa", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decodeBody(t, rec)["kind"])
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		from, want int
	}{
		{name: "defaults", page: 0, size: 0, from: 0, want: 10},
		{name: "second page", page: 2, size: 20, from: 20, want: 20},
		{name: "size capped", page: 1, size: 500, from: 0, want: 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			from, size := paginate(tt.page, tt.size)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.want, size)
		})
	}
}
