package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
)

// Booking is a reservation request for one turf on one date. Records come in
// two shapes: legacy single-slot documents carry TimeSlot, current documents
// carry StartTime/EndTime/TimeRange for a merged contiguous range. Use
// BookedTime to consume them without presence checks.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TurfID         string             `bson:"turf_id" json:"turfId"`
	Date           string             `bson:"date" json:"date"` // YYYY-MM-DD, no TZ semantics
	StartTime      string             `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime        string             `bson:"end_time,omitempty" json:"endTime,omitempty"`
	TimeRange      string             `bson:"time_range,omitempty" json:"timeRange,omitempty"`
	TimeSlot       string             `bson:"time_slot,omitempty" json:"timeSlot,omitempty"`
	WhatsappNumber string             `bson:"whatsapp_number" json:"whatsappNumber"`
	UserID         string             `bson:"user_id" json:"userId"`
	UserName       string             `bson:"user_name" json:"userName"`
	Status         BookingStatus      `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}

// BookedTime is the tagged variant over a booking's two time shapes.
type BookedTime interface {
	isBookedTime()
}

// LegacySlotBooking is the old single-slot shape.
type LegacySlotBooking struct {
	Slot string
}

// RangeBooking is the current shape: a merged contiguous range aligned to
// slot catalog boundaries.
type RangeBooking struct {
	Start string
	End   string
	Range string
}

func (LegacySlotBooking) isBookedTime() {}
func (RangeBooking) isBookedTime()      {}

// BookedTime resolves which shape this record carries. Range fields win when
// both are present; a record with neither is corrupt.
func (b *Booking) BookedTime() (BookedTime, error) {
	if b.StartTime != "" && b.EndTime != "" {
		r := RangeBooking{Start: b.StartTime, End: b.EndTime, Range: b.TimeRange}
		if r.Range == "" {
			r.Range = r.Start + " - " + r.End
		}
		return r, nil
	}
	if b.TimeSlot != "" {
		return LegacySlotBooking{Slot: b.TimeSlot}, nil
	}
	return nil, fmt.Errorf("booking %s has no time slot or time range", b.ID.Hex())
}

// TimeDisplay is the human-readable time span, used in listings and
// confirmation messages.
func (b *Booking) TimeDisplay() string {
	bt, err := b.BookedTime()
	if err != nil {
		return "Unknown time"
	}
	switch t := bt.(type) {
	case LegacySlotBooking:
		return t.Slot
	case RangeBooking:
		return t.Range
	}
	return "Unknown time"
}

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepo interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	ListBookings(ctx context.Context, offset, limit int) ([]*Booking, int, error)
	ListBookingsForTurfDate(ctx context.Context, turfID, date string) ([]*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*Booking, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := b.BeforeCreate(); err != nil {
		return nil, err
	}

	if _, err := col.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %v", err)
	}

	return b, nil
}

// ListBookings pages through all bookings, newest dates first, and reports
// the total count for the pagination envelope.
func (mdb *MongodbRepo) ListBookings(ctx context.Context, offset, limit int) ([]*Booking, int, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	bookings, err := mdb.findBookings(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return bookings, int(total), nil
}

// ListBookingsForTurfDate is the availability snapshot: every booking for one
// turf on one date, regardless of status.
func (mdb *MongodbRepo) ListBookingsForTurfDate(ctx context.Context, turfID, date string) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{"turf_id": turfID, "date": date}, options.Find())
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return mdb.findBookings(ctx, bson.M{"user_id": userID}, opts)
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &b)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var b Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking by ID: %v", err)
	}

	return &b, nil
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking status: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
