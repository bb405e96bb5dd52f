package userrepo

import (
	"context"
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAgentsForArea retrieves active service agents serving a franchise area:
// agents assigned to the area plus global agents with no area at all.
func (r *GormUserRepository) GetAgentsForArea(ctx context.Context, areaID kernel.UUID) ([]*user.User, error) {
	if err := areaID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active AND (franchise_area_id = ? OR franchise_area_id IS NULL)",
			int(user.RoleServiceAgent), areaID.Bytes()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	agents := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		agent, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	return agents, nil
}
