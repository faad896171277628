package postgres

import (
	"reflect"
	"strings"
	"testing"

	"github.com/estately/realty-api/internal/core/ports"
)

func f64(v float64) *float64 { return &v }

func TestBuildListingWhere_Empty(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{})
	if where != "" {
		t.Fatalf("expected empty clause, got %q", where)
	}
	if args != nil {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListingWhere_PriceBounds(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{
		MinPrice: f64(150000),
		MaxPrice: f64(400000),
	})
	if where != " WHERE price >= $1 AND price <= $2" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if !reflect.DeepEqual(args, []any{150000.0, 400000.0}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListingWhere_CityContains(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{CityContains: "york"})
	if where != " WHERE city ILIKE $1" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"%york%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListingWhere_ExactCityIsNotPattern(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{City: "New York"})
	if where != " WHERE city = $1" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"New York"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListingWhere_SearchSpansThreeColumns(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{Search: "garden"})
	want := " WHERE (title ILIKE $1 OR description ILIKE $1 OR address ILIKE $1)"
	if where != want {
		t.Fatalf("unexpected clause: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"%garden%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListingWhere_EscapesWildcards(t *testing.T) {
	_, args := buildListingWhere(ports.ListListingsFilter{Search: "50%_off"})
	if args[0] != `%50\%\_off%` {
		t.Fatalf("wildcards not escaped: %q", args[0])
	}
}

func TestBuildListingWhere_CombinesWithAnd(t *testing.T) {
	where, args := buildListingWhere(ports.ListListingsFilter{
		MinPrice:     f64(100),
		PropertyType: "residential",
		Status:       "on_market",
		State:        "IL",
		OwnerID:      7,
	})
	if strings.Count(where, " AND ") != 4 {
		t.Fatalf("expected 5 AND-joined conditions: %q", where)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
	// Placeholders must stay aligned with argument positions.
	for i := 1; i <= 5; i++ {
		if !strings.Contains(where, "$"+string(rune('0'+i))) {
			t.Errorf("missing placeholder $%d in %q", i, where)
		}
	}
}

func TestBuildListingOrder(t *testing.T) {
	tests := []struct {
		ordering string
		want     string
	}{
		{"", " ORDER BY created_at DESC, id DESC"},
		{"price", " ORDER BY price ASC, id DESC"},
		{"-price", " ORDER BY price DESC, id DESC"},
		{"size", " ORDER BY size ASC, id DESC"},
		{"-created_at", " ORDER BY created_at DESC, id DESC"},
		{"created_at", " ORDER BY created_at ASC, id DESC"},
		// Unknown columns never reach the SQL text.
		{"password_hash", " ORDER BY created_at DESC, id DESC"},
		{"-1;DROP TABLE listings", " ORDER BY created_at DESC, id DESC"},
	}
	for _, tt := range tests {
		if got := buildListingOrder(tt.ordering); got != tt.want {
			t.Errorf("buildListingOrder(%q) = %q, want %q", tt.ordering, got, tt.want)
		}
	}
}
