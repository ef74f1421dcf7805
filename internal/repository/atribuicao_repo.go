package repository

import (
	"context"

	"fitpro.com.br/fitnessproapi/internal/model"
	"gorm.io/gorm"
)

type AtribuicaoRepository interface {
	Create(ctx context.Context, atribuicao *model.Atribuicao) error
	FindByID(ctx context.Context, id string) (*model.Atribuicao, error)
	FindByAluno(ctx context.Context, idAluno string, limit int) ([]*model.Atribuicao, error)
	FindByPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Atribuicao, error)
	Save(ctx context.Context, atribuicao *model.Atribuicao) error
}

type atribuicaoRepository struct {
	db *gorm.DB
}

func NewAtribuicaoRepository(db *gorm.DB) AtribuicaoRepository {
	return &atribuicaoRepository{db: db}
}

func (r *atribuicaoRepository) Create(ctx context.Context, atribuicao *model.Atribuicao) error {
	return r.db.WithContext(ctx).Create(atribuicao).Error
}

func (r *atribuicaoRepository) FindByID(ctx context.Context, id string) (*model.Atribuicao, error) {
	var atribuicao model.Atribuicao
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&atribuicao).Error; err != nil {
		return nil, err
	}

	return &atribuicao, nil
}

func (r *atribuicaoRepository) FindByAluno(ctx context.Context, idAluno string, limit int) ([]*model.Atribuicao, error) {
	var atribuicoes []*model.Atribuicao
	if err := r.db.WithContext(ctx).
		Where("id_aluno = ?", idAluno).
		Limit(limit).
		Find(&atribuicoes).Error; err != nil {
		return nil, err
	}

	return atribuicoes, nil
}

func (r *atribuicaoRepository) FindByPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Atribuicao, error) {
	var atribuicoes []*model.Atribuicao
	if err := r.db.WithContext(ctx).
		Where("id_personal = ?", idPersonal).
		Limit(limit).
		Find(&atribuicoes).Error; err != nil {
		return nil, err
	}

	return atribuicoes, nil
}

func (r *atribuicaoRepository) Save(ctx context.Context, atribuicao *model.Atribuicao) error {
	return r.db.WithContext(ctx).Save(atribuicao).Error
}
