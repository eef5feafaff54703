package repository

import (
	"context"
	"errors"
	"fmt"

	reservationserrors "hostelbook/internal/reservations/errors"
	"hostelbook/pkg/config"
	"hostelbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RoomCollectionName   = "Rooms"
	HostelCollectionName = "Hostels"
)

// CatalogRepository reads room and hostel master data. The catalog is owned
// by an external service; this engine never writes it.
type CatalogRepository interface {
	FindRoom(ctx context.Context, id string) (*model.Room, error)
	FindHostel(ctx context.Context, id string) (*model.Hostel, error)
	FindRoomsByHostel(ctx context.Context, hostelID string) ([]*model.Room, error)
}

type mongoCatalogRepository struct {
	rooms   *mongo.Collection
	hostels *mongo.Collection
}

func NewMongoCatalogRepository(cfg *config.Config) CatalogRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCatalogRepository{
		rooms:   db.Collection(RoomCollectionName),
		hostels: db.Collection(HostelCollectionName),
	}
}

func (r *mongoCatalogRepository) FindRoom(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reservationserrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return &room, nil
}

func (r *mongoCatalogRepository) FindHostel(ctx context.Context, id string) (*model.Hostel, error) {
	var hostel model.Hostel
	err := r.hostels.FindOne(ctx, bson.M{"_id": id}).Decode(&hostel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reservationserrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("failed to find hostel: %w", err)
	}
	return &hostel, nil
}

func (r *mongoCatalogRepository) FindRoomsByHostel(ctx context.Context, hostelID string) ([]*model.Room, error) {
	cursor, err := r.rooms.Find(ctx, bson.M{"hostel_id": hostelID},
		options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}
