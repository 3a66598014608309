package orderrepo

import (
	"context"
	"errors"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and initial history to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Associations are saved in
// full so that newly appended history entries and item changes are persisted
// alongside the root row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and history preloaded.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	return r.getOne(ctx, r.db.WithContext(ctx), "id = ?", id)
}

// GetForUpdate retrieves an order by ID holding a FOR UPDATE row lock on the
// root row. Must run inside a transaction; the lock serializes concurrent
// status changes on the same order.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id string) (*order.Order, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.getOne(ctx, tx, "id = ?", id)
}

// GetByTrackingNumber retrieves the order carrying the given tracking number.
func (r *GormOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}
	return r.getOne(ctx, r.db.WithContext(ctx), "tracking_number = ?", trackingNumber)
}

func (r *GormOrderRepository) getOne(_ context.Context, tx *gorm.DB, query string, arg any) (*order.Order, error) {
	var dto OrderDTO
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("order_status_history.id ASC") }).
		First(&dto, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", arg)
		}
		return nil, err
	}

	return toDomain(dto)
}
