package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationserrors "hostelbook/internal/reservations/errors"
	"hostelbook/pkg/config"
	mongotx "hostelbook/pkg/db/mongo"
	"hostelbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Reservations"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id string) (*model.Reservation, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error)
	FindByClient(ctx context.Context, clientID string, limit int, offset int64) ([]*model.Reservation, error)
	Count(ctx context.Context) (int64, error)
	CountByClient(ctx context.Context, clientID string) (int64, error)
	FindBlockingByRoom(ctx context.Context, roomID string) ([]*model.Reservation, error)
	FindApprovedOnDate(ctx context.Context, roomIDs []string, date time.Time) ([]*model.Reservation, error)
	DecidePending(ctx context.Context, id, status string) error
	UpdateInterval(ctx context.Context, id string, start, end time.Time, totalPrice int) error
	Delete(ctx context.Context, id string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoReservationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoReservationRepository(cfg *config.Config) ReservationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReservationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// EnsureReservationIndexes creates the index backing the per-room overlap
// scan. Call once at startup.
func EnsureReservationIndexes(ctx context.Context, cfg *config.Config) error {
	collection := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}

// withTimeout wraps the context with a timeout unless already inside a
// transaction; a SessionContext cannot be wrapped without breaking
// transaction semantics.
func (r *mongoReservationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	reservation.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepository) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var reservation model.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reservationserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return &reservation, nil
}

func (r *mongoReservationRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error) {
	return r.findWithFilter(ctx, bson.M{}, limit, offset)
}

func (r *mongoReservationRepository) FindByClient(ctx context.Context, clientID string, limit int, offset int64) ([]*model.Reservation, error) {
	return r.findWithFilter(ctx, bson.M{"client_id": clientID}, limit, offset)
}

func (r *mongoReservationRepository) findWithFilter(ctx context.Context, filter bson.M, limit int, offset int64) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*model.Reservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	return reservations, nil
}

func (r *mongoReservationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

func (r *mongoReservationRepository) CountByClient(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

// FindBlockingByRoom returns the room's reservations that participate in the
// no-overlap invariant, i.e. pending and approved ones. Rejected reservations
// do not block the room.
func (r *mongoReservationRepository) FindBlockingByRoom(ctx context.Context, roomID string) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"room_id": roomID,
		"status":  bson.M{"$in": []string{model.StatusPending, model.StatusApproved}},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations for room: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*model.Reservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	return reservations, nil
}

// FindApprovedOnDate returns approved reservations occupying any of the given
// rooms on the date. The end date is inclusive here: a room stays occupied
// through its checkout date on the availability read-path.
func (r *mongoReservationRepository) FindApprovedOnDate(ctx context.Context, roomIDs []string, date time.Time) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if len(roomIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"room_id":    bson.M{"$in": roomIDs},
		"status":     model.StatusApproved,
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "room_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find occupying reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*model.Reservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	return reservations, nil
}

// DecidePending moves a pending reservation to the given terminal status.
// The status guard in the filter makes the transition first-writer-wins.
func (r *mongoReservationRepository) DecidePending(ctx context.Context, id, status string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.StatusPending},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to decide reservation: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to check reservation existence: %w", err)
		}
		if count == 0 {
			return reservationserrors.ErrNotFound
		}
		return reservationserrors.ErrAlreadyDecided
	}

	return nil
}

func (r *mongoReservationRepository) UpdateInterval(ctx context.Context, id string, start, end time.Time, totalPrice int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"start_date":  start,
			"end_date":    end,
			"total_price": totalPrice,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation interval: %w", err)
	}

	if result.MatchedCount == 0 {
		return reservationserrors.ErrNotFound
	}

	return nil
}

func (r *mongoReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if result.DeletedCount == 0 {
		return reservationserrors.ErrNotFound
	}

	return nil
}

func (r *mongoReservationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
