package services

import (
	"context"
	"errors"
	"testing"

	"radio-garden-client/radiogarden"
)

func TestLookupPlaceFromStore(t *testing.T) {
	dir := testDirectory()
	dir.PlaceList = nil
	repo := &memoryRepo{places: []radiogarden.Place{{ID: "ber", Title: "Berlin"}}}

	p, err := LookupPlace(context.Background(), " ber ", dir, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Berlin" {
		t.Fatalf("got %+v, want Berlin", p)
	}
	if repo.gets != 1 || repo.puts != 0 {
		t.Errorf("gets=%d puts=%d, want 1 and 0", repo.gets, repo.puts)
	}
}

func TestLookupPlaceFallsBackToDirectory(t *testing.T) {
	repo := &memoryRepo{}

	p, err := LookupPlace(context.Background(), "lon", testDirectory(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "London" || p.Geo.Lon != -0.1276 {
		t.Fatalf("unexpected place: %+v", p)
	}
	if repo.puts != 1 || len(repo.places) != 4 {
		t.Errorf("expected directory written back once, puts=%d stored=%d", repo.puts, len(repo.places))
	}
}

func TestLookupPlaceUnknownIsAbsent(t *testing.T) {
	_, err := LookupPlace(context.Background(), "nowhere", testDirectory(), nil)
	if !radiogarden.IsAbsent(err) {
		t.Fatalf("expected absent error, got %v", err)
	}
}

func TestLookupPlaceRejectsBlankID(t *testing.T) {
	repo := &memoryRepo{}

	_, err := LookupPlace(context.Background(), "  ", testDirectory(), repo)
	if !errors.Is(err, radiogarden.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if repo.gets != 0 {
		t.Errorf("store queried for a blank id")
	}
}
