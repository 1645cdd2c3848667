package conceptnet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleAPIResponse = `{
  "edges": [
    {
      "rel": {"label": "Antonym"},
      "start": {"@id": "/c/en/cat", "label": "cat", "language": "en"},
      "end": {"@id": "/c/en/dog", "label": "dog", "language": "en"},
      "weight": 2.0
    },
    {
      "rel": {"label": "IsA"},
      "start": {"@id": "/c/en/kitten", "label": "kitten", "language": "en"},
      "end": {"@id": "/c/en/cat/n", "label": "cat", "language": "en"},
      "weight": 1.0
    },
    {
      "rel": {"label": "Synonym"},
      "start": {"@id": "/c/fr/chat", "label": "chat", "language": "fr"},
      "end": {"@id": "/c/en/cat", "label": "cat", "language": "en"},
      "weight": 1.0
    }
  ]
}`

func TestClientRelated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/c/en/cat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") == "" {
			t.Error("expected limit query parameter")
		}
		w.Write([]byte(sampleAPIResponse))
	}))
	defer srv.Close()

	c := NewClient(2 * time.Second)
	c.BaseURL = srv.URL

	edges, err := c.Related(context.Background(), "Cat")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	// The French edge is filtered out.
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d: %+v", len(edges), edges)
	}
	if edges[0].Word != "dog" || edges[0].Direction != Forward || edges[0].Weight != 2.0 {
		t.Errorf("edge 0 = %+v, want forward dog", edges[0])
	}
	if edges[1].Word != "kitten" || edges[1].Direction != Backward {
		t.Errorf("edge 1 = %+v, want backward kitten", edges[1])
	}
}

func TestClientSurfacesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(2 * time.Second)
	c.BaseURL = srv.URL

	// Server failures reach the caller so it can log before degrading.
	if _, err := c.Related(context.Background(), "cat"); err == nil {
		t.Fatal("expected an error for a failing server")
	}
}

func TestClientUnknownWordIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(2 * time.Second)
	c.BaseURL = srv.URL

	edges, err := c.Related(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("expected no edges, got %d", len(edges))
	}
}
