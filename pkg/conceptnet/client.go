package conceptnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "http://api.conceptnet.io"

// Client is a Lookup backed by the public ConceptNet HTTP API. Network
// and decode failures are returned to the caller, which decides whether
// to degrade or abort.
type Client struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Limit caps how many edges one query returns.
	Limit int

	http *http.Client
}

// NewClient creates an API client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: defaultBaseURL,
		Limit:   50,
		http:    &http.Client{Timeout: timeout},
	}
}

// apiResponse mirrors the subset of the ConceptNet edge JSON we consume.
type apiResponse struct {
	Edges []struct {
		Rel struct {
			Label string `json:"label"`
		} `json:"rel"`
		Start  apiNode `json:"start"`
		End    apiNode `json:"end"`
		Weight float64 `json:"weight"`
	} `json:"edges"`
}

type apiNode struct {
	ID       string `json:"@id"`
	Label    string `json:"label"`
	Language string `json:"language"`
}

// Related queries the API for edges touching word. An unknown word
// yields zero edges and a nil error; only transport and decode failures
// are errors.
func (c *Client) Related(ctx context.Context, word string) ([]Edge, error) {
	concept := NormalizeConcept(word)
	u := fmt.Sprintf("%s/c/en/%s?limit=%s",
		c.BaseURL, url.PathEscape(concept), strconv.Itoa(c.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "punnet-cli")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying conceptnet api: %w", err)
	}
	defer resp.Body.Close()

	// Unknown concepts are an empty set, not a failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conceptnet api returned status: %s", resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding conceptnet response: %w", err)
	}

	queryID := "/c/en/" + concept
	var edges []Edge
	for _, e := range body.Edges {
		if e.Start.Language != "en" || e.End.Language != "en" {
			continue
		}
		weight := e.Weight
		if weight <= 0 {
			weight = 1.0
		}

		// Which side of the edge is the queried concept on?
		if nodeMatches(e.Start, queryID, concept) {
			edges = append(edges, Edge{
				Word:      strings.ToLower(e.End.Label),
				Relation:  e.Rel.Label,
				Direction: Forward,
				Weight:    weight,
			})
		} else if nodeMatches(e.End, queryID, concept) {
			edges = append(edges, Edge{
				Word:      strings.ToLower(e.Start.Label),
				Relation:  e.Rel.Label,
				Direction: Backward,
				Weight:    weight,
			})
		}
	}
	return edges, nil
}

// nodeMatches reports whether an edge node is the queried concept. Node
// ids carry sense suffixes ("/c/en/cat/n"), so prefix-match on the id and
// fall back to the label.
func nodeMatches(n apiNode, queryID, concept string) bool {
	if n.ID == queryID || strings.HasPrefix(n.ID, queryID+"/") {
		return true
	}
	return NormalizeConcept(n.Label) == concept
}
