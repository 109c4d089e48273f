package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"go-platewise/types"
)

const nutritionixURL = "https://trackapi.nutritionix.com/v2/natural/nutrients"

// Client resolves free-text dish names against the Nutritionix natural
// nutrients endpoint. Lookup never returns an error: every failure class is
// collapsed into a not-found result so one dish can never sink its siblings.
type Client struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

// NewClient reads Nutritionix credentials from the environment. Missing
// credentials are not fatal; the client then answers not-found for every
// query without touching the network.
func NewClient() *Client {
	return &Client{
		appID:   os.Getenv("NUTRITIONIX_APP_ID"),
		appKey:  os.Getenv("NUTRITIONIX_API_KEY"),
		baseURL: nutritionixURL,
		client:  &http.Client{Timeout: 8 * time.Second},
	}
}

// NewClientWith builds a client against a specific endpoint, for tests.
func NewClientWith(appID, appKey, baseURL string) *Client {
	return &Client{
		appID:   appID,
		appKey:  appKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 8 * time.Second},
	}
}

type nutrientsResponse struct {
	Foods []types.NutritionFacts `json:"foods"`
}

// Lookup queries Nutritionix for the given dish name and returns the first
// matching food entry. The second return is false when nothing usable came
// back, for whatever reason.
func (n *Client) Lookup(ctx context.Context, query string) (*types.NutritionFacts, bool) {
	if n.appID == "" || n.appKey == "" {
		log.Println("Nutritionix API credentials not configured")
		return nil, false
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		log.Printf("Error marshaling nutrition query: %v", err)
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Error creating nutrition request: %v", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", n.appID)
	req.Header.Set("x-app-key", n.appKey)

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("Error fetching nutrition data for %q: %v", query, err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Nutritionix API error for %q: %s", query, resp.Status)
		return nil, false
	}

	var data nutrientsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Error decoding nutrition response for %q: %v", query, err)
		return nil, false
	}

	if len(data.Foods) == 0 {
		return nil, false
	}

	// Upstream relevance ranking is trusted as-is.
	return &data.Foods[0], true
}
