package repository

import (
	"context"

	"fitpro.com.br/fitnessproapi/internal/model"
	"gorm.io/gorm"
)

type ExecucaoRepository interface {
	Create(ctx context.Context, execucao *model.Execucao) error
	FindByAluno(ctx context.Context, idAluno string, limit int) ([]*model.Execucao, error)
	FindByAtribuicao(ctx context.Context, idAtribuicao string, limit int) ([]*model.Execucao, error)
}

type execucaoRepository struct {
	db *gorm.DB
}

func NewExecucaoRepository(db *gorm.DB) ExecucaoRepository {
	return &execucaoRepository{db: db}
}

func (r *execucaoRepository) Create(ctx context.Context, execucao *model.Execucao) error {
	return r.db.WithContext(ctx).Create(execucao).Error
}

func (r *execucaoRepository) FindByAluno(ctx context.Context, idAluno string, limit int) ([]*model.Execucao, error) {
	var execucoes []*model.Execucao
	if err := r.db.WithContext(ctx).
		Where("id_aluno = ?", idAluno).
		Limit(limit).
		Find(&execucoes).Error; err != nil {
		return nil, err
	}

	return execucoes, nil
}

func (r *execucaoRepository) FindByAtribuicao(ctx context.Context, idAtribuicao string, limit int) ([]*model.Execucao, error) {
	var execucoes []*model.Execucao
	if err := r.db.WithContext(ctx).
		Where("id_atribuicao = ?", idAtribuicao).
		Limit(limit).
		Find(&execucoes).Error; err != nil {
		return nil, err
	}

	return execucoes, nil
}
