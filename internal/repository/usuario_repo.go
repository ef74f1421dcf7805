package repository

import (
	"context"
	"time"

	"fitpro.com.br/fitnessproapi/internal/model"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByEmailETipo(ctx context.Context, email string, tipo model.TipoUsuario) (*model.Usuario, error)
	FindAlunosDoPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Usuario, error)
	Save(ctx context.Context, usuario *model.Usuario) error
	Delete(ctx context.Context, id string) (int64, error)
	AppendMedida(ctx context.Context, id string, medida model.Medida) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&usuario).Error; err != nil {
		return nil, err
	}

	return &usuario, nil
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error; err != nil {
		return nil, err
	}

	return &usuario, nil
}

func (r *usuarioRepository) FindByEmailETipo(ctx context.Context, email string, tipo model.TipoUsuario) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ? AND tipo = ?", email, tipo).
		First(&usuario).Error; err != nil {
		return nil, err
	}

	return &usuario, nil
}

func (r *usuarioRepository) FindAlunosDoPersonal(ctx context.Context, idPersonal string, limit int) ([]*model.Usuario, error) {
	var alunos []*model.Usuario
	if err := r.db.WithContext(ctx).
		Where("tipo = ? AND codigo_personal = ?", model.TipoAluno, idPersonal).
		Limit(limit).
		Find(&alunos).Error; err != nil {
		return nil, err
	}

	return alunos, nil
}

func (r *usuarioRepository) Save(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}

func (r *usuarioRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Usuario{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// AppendMedida appends one history entry and moves the student's current
// peso/altura to the new values, inside a single transaction.
func (r *usuarioRepository) AppendMedida(ctx context.Context, id string, medida model.Medida) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var usuario model.Usuario
		if err := tx.Where("id = ?", id).First(&usuario).Error; err != nil {
			return err
		}

		if medida.Data.IsZero() {
			medida.Data = time.Now().UTC()
		}

		usuario.HistoricoMedidas = append(usuario.HistoricoMedidas, medida)
		usuario.Peso = &medida.Peso
		usuario.Altura = &medida.Altura

		return tx.Save(&usuario).Error
	})
}
