package paymentrepo

import (
	"context"
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/payment"
	"purelife/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// Update saves an existing payment to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).Where("id = ?", dto.ID).
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

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndGatewayOrder retrieves the order's payment carrying the given gateway order id.
func (r *GormPaymentRepository) GetByOrderAndGatewayOrder(
	ctx context.Context,
	orderID kernel.UUID,
	gatewayOrderID string,
) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if gatewayOrderID == "" {
		return nil, errs.NewValueIsRequiredError("gatewayOrderId")
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND gateway_order_id = ?", orderID.Bytes(), gatewayOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("gatewayOrderId", gatewayOrderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByOrder retrieves the order's payment that has not completed yet.
// A FAILED payment counts as open so the customer can retry checkout.
func (r *GormPaymentRepository) GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status IN ?", orderID.Bytes(),
			[]int{int(payment.StatusPending), int(payment.StatusFailed)}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open payment for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
