package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Turf is a bookable playing surface. Base price must be positive; surcharges
// are computed at display time, never stored.
type Turf struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Location  string             `bson:"location" json:"location" validate:"required"`
	Price     int                `bson:"price" json:"price" validate:"required,gt=0"`
	Amenities []string           `bson:"amenities" json:"amenities" validate:"required,min=1"`
	ImageID   string             `bson:"image_id" json:"imageId"`
}

type TurfRepo interface {
	CreateTurf(ctx context.Context, turf *Turf) (*Turf, error)
	ListTurfs(ctx context.Context) ([]*Turf, error)
	GetTurfByID(ctx context.Context, id primitive.ObjectID) (*Turf, error)
	ReplaceTurf(ctx context.Context, id primitive.ObjectID, turf *Turf) (*Turf, error)
	DeleteTurf(ctx context.Context, id primitive.ObjectID) error
}

func (t *Turf) BeforeCreate() error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	return nil
}

func (mdb *MongodbRepo) CreateTurf(ctx context.Context, turf *Turf) (*Turf, error) {
	col, err := mdb.GetCollection(ctx, DBName, TurfsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := turf.BeforeCreate(); err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, turf); err != nil {
		return nil, fmt.Errorf("failed to insert turf: %v", err)
	}

	return turf, nil
}

func (mdb *MongodbRepo) ListTurfs(ctx context.Context) ([]*Turf, error) {
	col, err := mdb.GetCollection(ctx, DBName, TurfsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding turfs: %v", err)
	}
	defer cursor.Close(ctx)

	turfs := []*Turf{}
	for cursor.Next(ctx) {
		var turf Turf
		if err := cursor.Decode(&turf); err != nil {
			return nil, fmt.Errorf("error decoding turf: %v", err)
		}
		turfs = append(turfs, &turf)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return turfs, nil
}

func (mdb *MongodbRepo) GetTurfByID(ctx context.Context, id primitive.ObjectID) (*Turf, error) {
	col, err := mdb.GetCollection(ctx, DBName, TurfsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var turf Turf
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&turf)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding turf by ID: %v", err)
	}

	return &turf, nil
}

// ReplaceTurf swaps the whole record; admin edits are never partial patches.
func (mdb *MongodbRepo) ReplaceTurf(ctx context.Context, id primitive.ObjectID, turf *Turf) (*Turf, error) {
	col, err := mdb.GetCollection(ctx, DBName, TurfsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	turf.ID = id
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, turf)
	if err != nil {
		return nil, fmt.Errorf("failed to replace turf: %v", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	return turf, nil
}

// DeleteTurf is permanent; bookings that still reference the turf are left
// dangling and resolved to "Unknown" at display time.
func (mdb *MongodbRepo) DeleteTurf(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, TurfsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete turf: %v", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
