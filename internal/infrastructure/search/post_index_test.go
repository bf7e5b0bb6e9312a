package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

// fakeES answers like a single Elasticsearch node.
func fakeES(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es
}

func TestIndexSendsDocument(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	es := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	idx := NewPostIndex(es, "posts")
	err := idx.Index(context.Background(), &entity.Post{ID: 4, Title: "Beaches", Status: entity.PostPublished, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "/posts/_doc/4", gotPath)
	assert.Equal(t, "Beaches", gotBody["title"])
}

func TestSearchReturnsIDs(t *testing.T) {
	es := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/_search"))
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_source":{"id":3}},{"_source":{"id":1}}]}}`))
	})

	ids, err := NewPostIndex(es, "posts").Search(context.Background(), "goa", 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids)
}

func TestDeleteIgnoresMissingDocument(t *testing.T) {
	es := fakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})
	assert.NoError(t, NewPostIndex(es, "posts").Delete(context.Background(), 8))
}
