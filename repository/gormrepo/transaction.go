package gormrepo

import (
	"context"
	"errors"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	rec := toTransactionRecord(tx)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return repository.DBError("Failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]models.Transaction, error) {
	var recs []transactionRecord
	if err := scope(r.db.WithContext(ctx)).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, repository.DBError("Failed to fetch transactions", err)
	}
	out := make([]models.Transaction, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

// ListBetween returns the transactions created in [from, to)
func (r *TransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC())
	})
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	var rec transactionRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.TransactionNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch transaction", err)
	}
	t := rec.toModel()
	return &t, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&transactionRecord{})
	if res.Error != nil {
		return repository.DBError("Failed to delete transaction", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.TransactionNotFound()
	}
	return nil
}
