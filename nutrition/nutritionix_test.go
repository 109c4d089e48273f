package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestLookupReturnsFirstFood(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-app-id") != "id" || r.Header.Get("x-app-key") != "key" {
			t.Errorf("credentials headers missing: %+v", r.Header)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods": [
			{"food_name": "grilled chicken breast", "nf_calories": 284, "nf_protein": 53.4},
			{"food_name": "chicken thigh", "nf_calories": 229}
		]}`))
	}))
	defer server.Close()

	client := NewClientWith("id", "key", server.URL)
	facts, ok := client.Lookup(context.Background(), "grilled chicken breast")
	if !ok {
		t.Fatal("expected a hit")
	}
	if facts.FoodName != "grilled chicken breast" || facts.Calories != 284 {
		t.Errorf("wrong entry returned: %+v", facts)
	}
}

func TestLookupNoMatchingFoods(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer server.Close()

	client := NewClientWith("id", "key", server.URL)
	if _, ok := client.Lookup(context.Background(), "unobtainium stew"); ok {
		t.Error("expected a miss for empty foods list")
	}
}

func TestLookupUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWith("id", "key", server.URL)
	if _, ok := client.Lookup(context.Background(), "anything"); ok {
		t.Error("expected a miss for non-200 response")
	}
}

func TestLookupMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClientWith("id", "key", server.URL)
	if _, ok := client.Lookup(context.Background(), "anything"); ok {
		t.Error("expected a miss for malformed body")
	}
}

func TestLookupMissingCredentialsSkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := NewClientWith("", "", server.URL)
	if _, ok := client.Lookup(context.Background(), "apple"); ok {
		t.Error("expected a miss with no credentials")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("lookup hit the network %d times without credentials", calls)
	}
}
