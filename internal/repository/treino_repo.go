package repository

import (
	"context"

	"fitpro.com.br/fitnessproapi/internal/model"
	"gorm.io/gorm"
)

type TreinoRepository interface {
	Create(ctx context.Context, treino *model.Treino) error
	FindByID(ctx context.Context, id string) (*model.Treino, error)
	FindByIDEPersonal(ctx context.Context, id, idPersonal string) (*model.Treino, error)
	FindByPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Treino, error)
	Save(ctx context.Context, treino *model.Treino) error
	DeleteByIDEPersonal(ctx context.Context, id, idPersonal string) (int64, error)
}

type treinoRepository struct {
	db *gorm.DB
}

func NewTreinoRepository(db *gorm.DB) TreinoRepository {
	return &treinoRepository{db: db}
}

func (r *treinoRepository) Create(ctx context.Context, treino *model.Treino) error {
	return r.db.WithContext(ctx).Create(treino).Error
}

func (r *treinoRepository) FindByID(ctx context.Context, id string) (*model.Treino, error) {
	var treino model.Treino
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&treino).Error; err != nil {
		return nil, err
	}

	return &treino, nil
}

// FindByIDEPersonal folds the ownership check into the lookup so a
// non-owner cannot distinguish "not mine" from "does not exist".
func (r *treinoRepository) FindByIDEPersonal(ctx context.Context, id, idPersonal string) (*model.Treino, error) {
	var treino model.Treino
	if err := r.db.WithContext(ctx).
		Where("id = ? AND id_personal = ?", id, idPersonal).
		First(&treino).Error; err != nil {
		return nil, err
	}

	return &treino, nil
}

func (r *treinoRepository) FindByPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Treino, error) {
	var treinos []*model.Treino
	if err := r.db.WithContext(ctx).
		Where("id_personal = ?", idPersonal).
		Limit(limit).
		Find(&treinos).Error; err != nil {
		return nil, err
	}

	return treinos, nil
}

func (r *treinoRepository) Save(ctx context.Context, treino *model.Treino) error {
	return r.db.WithContext(ctx).Save(treino).Error
}

func (r *treinoRepository) DeleteByIDEPersonal(ctx context.Context, id, idPersonal string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND id_personal = ?", id, idPersonal).
		Delete(&model.Treino{})
	return result.RowsAffected, result.Error
}
