package rentalrepo

import (
	"context"
	"errors"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/rental"
	"purelife/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// GormRentalRepository implements RentalRepository using GORM.
type GormRentalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentalRepository creates a new GORM rental repository.
func NewGormRentalRepository(db *gorm.DB, tracker aggregateTracker) *GormRentalRepository {
	return &GormRentalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rental to the database. The unique index on order_id turns
// a duplicate insert into a ConflictError so concurrent INSTALLED transitions
// cannot create two rentals for one order.
func (r *GormRentalRepository) Add(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewConflictError("rental already exists for order " + aggregate.OrderID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rental to the database.
func (r *GormRentalRepository) Update(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RentalDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rental by ID.
func (r *GormRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RentalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rental", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForOrder reports whether a rental was already derived from the order.
func (r *GormRentalRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RentalDTO{}).
		Where("order_id = ?", orderID.Bytes()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetActiveExpiringBy retrieves active rentals whose current period ends on or
// before the deadline, oldest expiry first.
func (r *GormRentalRepository) GetActiveExpiringBy(ctx context.Context, deadline time.Time) ([]*rental.Rental, error) {
	var dtos []RentalDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND current_period_end <= ?", int(rental.StatusActive), deadline).
		Order("current_period_end").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rentals := make([]*rental.Rental, 0, len(dtos))
	for _, dto := range dtos {
		rent, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rent)
	}

	return rentals, nil
}
