package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMVisitorRepository is a GORM implementation of VisitorRepository.
type GORMVisitorRepository struct {
	db *gorm.DB
}

// NewGORMVisitorRepository creates a new instance of GORMVisitorRepository.
func NewGORMVisitorRepository(db *gorm.DB) *GORMVisitorRepository {
	return &GORMVisitorRepository{
		db: db,
	}
}

// Create creates a new visitor account in the database.
func (r *GORMVisitorRepository) Create(account *models.VisitorAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create visitor account: %w", err)
	}
	return nil
}

// GetByEmail retrieves a visitor account by email from the database.
func (r *GORMVisitorRepository) GetByEmail(email string) (*models.VisitorAccount, error) {
	var account models.VisitorAccount
	if err := r.db.First(&account, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("visitor account with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get visitor account by email %s: %w", email, err)
	}
	return &account, nil
}

// GetByID retrieves a visitor account by its ID from the database.
func (r *GORMVisitorRepository) GetByID(id int64) (*models.VisitorAccount, error) {
	var account models.VisitorAccount
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("visitor account with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get visitor account by ID %d: %w", id, err)
	}
	return &account, nil
}
