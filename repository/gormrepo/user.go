package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ repository.UserRepository = (*UserRepository)(nil)

// isDuplicate reports a unique index violation. Drivers without error
// translation are matched on their message.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.Email = strings.ToLower(user.Email)

	rec := toUserRecord(user)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isDuplicate(err) {
			return repository.UserExists()
		}
		return repository.DBError("Failed to create user", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.UserNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch user", err)
	}
	u := rec.toModel()
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = ?", strings.ToLower(email))
}

func (r *UserRepository) listWhere(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]models.User, error) {
	var recs []userRecord
	if err := scope(r.db.WithContext(ctx)).Order("created_at").Find(&recs).Error; err != nil {
		return nil, repository.DBError("Failed to fetch users", err)
	}
	users := make([]models.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.toModel())
	}
	return users, nil
}

func (r *UserRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	return r.listWhere(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("role = ?", constants.RoleAdmin)
	})
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.listWhere(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	res := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"phone_number":    user.PhoneNumber,
		"nationality":     user.Nationality,
		"profile_picture": user.ProfilePicture,
		"role":            user.Role,
		"is_active":       user.IsActive,
	})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return repository.UserExists()
		}
		return repository.DBError("Failed to update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.UserNotFound()
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	res := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return repository.DBError("Failed to update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.UserNotFound()
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userRecord{})
	if res.Error != nil {
		return repository.DBError("Failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.UserNotFound()
	}
	return nil
}
