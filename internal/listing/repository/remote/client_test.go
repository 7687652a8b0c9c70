package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/listing/repository/remote"
)

func listingPage(items ...remote.ListingObject) map[string]any {
	return map[string]any{"listings": items}
}

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/listings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var payload remote.ListingPayload
			json.NewDecoder(r.Body).Decode(&payload)
			obj := remote.ListingObject{
				ID:     "L1",
				Title:  payload.Title,
				CityID: payload.CityID,
			}
			if payload.Price != nil {
				obj.Price = *payload.Price
			}
			json.NewEncoder(w).Encode(obj)
			return
		}
		json.NewEncoder(w).Encode(listingPage(
			remote.ListingObject{ID: "L1", Title: "Loft", Price: decimal.RequireFromString("250000")},
			remote.ListingObject{ID: "L2", Title: "Villa", Price: decimal.RequireFromString("900000")},
		))
	})

	mux.HandleFunc("/api/v1/listings/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("term") == "boom" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("known defect"))
			return
		}
		if r.URL.Query().Get("city_id") != "C1" {
			t.Errorf("expected city_id=C1, got %q", r.URL.Query().Get("city_id"))
		}
		if r.URL.Query().Get("max_price") != "300000" {
			t.Errorf("expected max_price=300000, got %q", r.URL.Query().Get("max_price"))
		}
		json.NewEncoder(w).Encode(listingPage(remote.ListingObject{ID: "L1", Title: "Loft"}))
	})

	mux.HandleFunc("/api/v1/agents/A1/listings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listingPage(remote.ListingObject{ID: "L3", AgentID: "A1"}))
	})

	mux.HandleFunc("/api/v1/listings/featured", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listingPage(remote.ListingObject{ID: "L9"}))
	})

	mux.HandleFunc("/api/v1/listings/L1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(remote.ListingObject{ID: "L1", Title: "Loft"})
		case http.MethodPut, http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	mux.HandleFunc("/api/v1/listings/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL, "test-key", 5*time.Second)
	ctx := context.Background()

	t.Run("ListListings", func(t *testing.T) {
		items, err := client.ListListings(ctx, remote.ListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].ID != "L1" {
			t.Errorf("unexpected listings: %+v", items)
		}
	})

	t.Run("SearchListings Sends Query", func(t *testing.T) {
		maxPrice := decimal.RequireFromString("300000")
		items, err := client.SearchListings(ctx, remote.ListQuery{CityID: "C1", MaxPrice: &maxPrice})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("expected 1 result, got %d", len(items))
		}
	})

	t.Run("Search Status Error Carries Code", func(t *testing.T) {
		_, err := client.SearchListings(ctx, remote.ListQuery{Term: "boom"})
		if err == nil {
			t.Fatal("expected status error")
		}
		code, ok := repository.StatusCode(err)
		if !ok || code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %v (%v)", code, err)
		}
	})

	t.Run("ListByAgent", func(t *testing.T) {
		items, err := client.ListByAgent(ctx, "A1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].AgentID != "A1" {
			t.Errorf("unexpected agent listings: %+v", items)
		}
	})

	t.Run("ListFeatured", func(t *testing.T) {
		items, err := client.ListFeatured(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].ID != "L9" {
			t.Errorf("unexpected featured listings: %+v", items)
		}
	})

	t.Run("GetListing", func(t *testing.T) {
		obj, err := client.GetListing(ctx, "L1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if obj.Title != "Loft" {
			t.Errorf("unexpected listing: %+v", obj)
		}
	})

	t.Run("GetListing Not Found", func(t *testing.T) {
		_, err := client.GetListing(ctx, "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreateListing", func(t *testing.T) {
		price := decimal.RequireFromString("120000")
		obj, err := client.CreateListing(ctx, remote.ListingPayload{Title: "Cabin", CityID: "C2", Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if obj.ID != "L1" || obj.Title != "Cabin" || !obj.Price.Equal(price) {
			t.Errorf("unexpected created listing: %+v", obj)
		}
	})

	t.Run("UpdateListing", func(t *testing.T) {
		if err := client.UpdateListing(ctx, "L1", remote.ListingPayload{Title: "Loft 2"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteListing", func(t *testing.T) {
		if err := client.DeleteListing(ctx, "L1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestClientUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // connection refused from here on

	client := remote.NewClient(ts.URL, "", time.Second)

	_, err := client.ListListings(context.Background(), remote.ListQuery{})
	if !errors.Is(err, repository.ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}
