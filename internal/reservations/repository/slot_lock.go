package repository

import (
	"context"
	"fmt"
	"time"

	reservationserrors "hostelbook/internal/reservations/errors"
	"hostelbook/pkg/config"
	"hostelbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LockCollectionName = "Reservation_locks"

// SlotLockRepository provides the advisory per-room locks held across the
// overlap check and insert.
type SlotLockRepository interface {
	Acquire(ctx context.Context, lock *model.SlotLock) error
	Release(ctx context.Context, lockID string) error
}

type mongoSlotLockRepository struct {
	collection *mongo.Collection
}

func NewMongoSlotLockRepository(cfg *config.Config) SlotLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

// EnsureLockIndexes creates the TTL index that reaps locks abandoned by a
// crashed holder. Call once at startup.
func EnsureLockIndexes(ctx context.Context, cfg *config.Config) error {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(LockCollectionName)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create lock TTL index: %w", err)
	}
	return nil
}

func (r *mongoSlotLockRepository) Acquire(ctx context.Context, lock *model.SlotLock) error {
	lock.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return reservationserrors.ErrLockHeld
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	return nil
}

func (r *mongoSlotLockRepository) Release(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
