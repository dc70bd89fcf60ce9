package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/repositories"
	"github.com/rafabene/cuidar-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	return getDB(ctx, r.db).Create(model).Error
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// FindByCredentials compara a senha em texto puro por igualdade; não há
// hashing de senha neste sistema
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	var model UserModel

	err := getDB(ctx, r.db).Where("email = ? AND senha = ?", email, password).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email, name, phone string) error {
	return getDB(ctx, r.db).Model(&UserModel{}).Where("email = ?", email).
		Updates(map[string]any{"nome": name, "telefone": phone}).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	return getDB(ctx, r.db).Model(&UserModel{}).Where("email = ?", email).
		Update("senha", password).Error
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := getDB(ctx, r.db).Where("email = ?", email).Delete(&UserModel{})
	return result.RowsAffected, result.Error
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		Email:        user.Email.String(),
		Password:     user.Password,
		Name:         user.Name,
		Phone:        user.Phone,
		IsCompanion:  user.IsCompanion,
		RegisteredAt: user.RegisteredAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	return &entities.User{
		Email:        valueobjects.NewEmail(model.Email),
		Password:     model.Password,
		Name:         model.Name,
		Phone:        model.Phone,
		IsCompanion:  model.IsCompanion,
		RegisteredAt: model.RegisteredAt,
	}
}
