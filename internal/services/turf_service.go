package services

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/pavallion/turfbook/internal/helpers"
	"github.com/pavallion/turfbook/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TurfService struct {
	turfRepo models.TurfRepo
	cld      *cloudinary.Cloudinary
}

func NewTurfService(turfRepo models.TurfRepo, cld *cloudinary.Cloudinary) *TurfService {
	return &TurfService{
		turfRepo: turfRepo,
		cld:      cld,
	}
}

// CreateTurf validates and stores a new turf. When imageFile names a local
// file or URL it is uploaded to Cloudinary first and the turf keeps the
// hosted URL; a failed insert cleans the upload back up.
func (ts *TurfService) CreateTurf(ctx context.Context, turf *models.Turf, imageFile string) (*models.Turf, error) {
	if err := models.Validate.Struct(turf); err != nil {
		return nil, NewValidationError("invalid turf data: %v", err)
	}

	var uploadedID string
	if imageFile != "" && ts.cld != nil {
		url, publicID, err := helpers.UploadImage(ctx, ts.cld, imageFile, helpers.TurfFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload turf image: %v", err)
		}
		turf.ImageID = url
		uploadedID = publicID
	}

	created, err := ts.turfRepo.CreateTurf(ctx, turf)
	if err != nil {
		if uploadedID != "" {
			_ = helpers.DeleteImage(ctx, ts.cld, uploadedID)
		}
		return nil, err
	}
	return created, nil
}

func (ts *TurfService) ListTurfs(ctx context.Context) ([]*models.Turf, error) {
	return ts.turfRepo.ListTurfs(ctx)
}

func (ts *TurfService) GetTurf(ctx context.Context, id string) (*models.Turf, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid turf ID %q", id)
	}
	turf, err := ts.turfRepo.GetTurfByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", id, ErrNotFound)
	}
	return turf, nil
}

// UpdateTurf replaces the whole record; admin edits are never merges.
func (ts *TurfService) UpdateTurf(ctx context.Context, id string, turf *models.Turf) (*models.Turf, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid turf ID %q", id)
	}
	if err := models.Validate.Struct(turf); err != nil {
		return nil, NewValidationError("invalid turf data: %v", err)
	}

	updated, err := ts.turfRepo.ReplaceTurf(ctx, oid, turf)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("turf %s: %w", id, ErrNotFound)
	}
	return updated, nil
}

// DeleteTurf is permanent; bookings keep their dangling turf reference and
// render as "Unknown".
func (ts *TurfService) DeleteTurf(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewValidationError("invalid turf ID %q", id)
	}

	err = ts.turfRepo.DeleteTurf(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("turf %s: %w", id, ErrNotFound)
	}
	return err
}
