package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pavallion/turfbook/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validTurf() *models.Turf {
	return &models.Turf{
		Name:      "Side Pitch",
		Location:  "East End",
		Price:     800,
		Amenities: []string{"parking", "changing rooms"},
	}
}

func TestCreateTurf(t *testing.T) {
	ts := NewTurfService(newFakeTurfRepo(), nil)

	created, err := ts.CreateTurf(context.Background(), validTurf(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected an assigned ID")
	}
}

func TestCreateTurfValidation(t *testing.T) {
	ts := NewTurfService(newFakeTurfRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		turf *models.Turf
	}{
		{"missing name", &models.Turf{Location: "East End", Price: 800, Amenities: []string{"parking"}}},
		{"zero price", &models.Turf{Name: "Side Pitch", Location: "East End", Amenities: []string{"parking"}}},
		{"no amenities", &models.Turf{Name: "Side Pitch", Location: "East End", Price: 800}},
	}
	for _, tc := range cases {
		if _, err := ts.CreateTurf(ctx, tc.turf, ""); !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestGetTurf(t *testing.T) {
	repo := newFakeTurfRepo()
	ts := NewTurfService(repo, nil)
	ctx := context.Background()

	created, err := ts.CreateTurf(ctx, validTurf(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ts.GetTurf(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Side Pitch" {
		t.Errorf("unexpected turf %+v", got)
	}

	if _, err := ts.GetTurf(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := ts.GetTurf(ctx, "nope"); !IsValidation(err) {
		t.Errorf("expected validation error for bad ID, got %v", err)
	}
}

func TestUpdateTurfReplacesRecord(t *testing.T) {
	repo := newFakeTurfRepo()
	ts := NewTurfService(repo, nil)
	ctx := context.Background()

	created, err := ts.CreateTurf(ctx, validTurf(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := &models.Turf{
		Name:      "Side Pitch",
		Location:  "East End",
		Price:     950,
		Amenities: []string{"parking"},
	}
	updated, err := ts.UpdateTurf(ctx, created.ID.Hex(), replacement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price != 950 {
		t.Errorf("expected replaced price 950, got %d", updated.Price)
	}
	if len(updated.Amenities) != 1 {
		t.Errorf("replacement must not merge: %v", updated.Amenities)
	}

	if _, err := ts.UpdateTurf(ctx, primitive.NewObjectID().Hex(), replacement); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTurf(t *testing.T) {
	repo := newFakeTurfRepo()
	ts := NewTurfService(repo, nil)
	ctx := context.Background()

	created, err := ts.CreateTurf(ctx, validTurf(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ts.DeleteTurf(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ts.DeleteTurf(ctx, created.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
