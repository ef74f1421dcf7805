package bootstrap

import (
	"log"
	"time"

	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/pkg/idgen"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoPersonal creates a demo trainer for local development so the
// frontend has a known login. It is a no-op when the account exists.
func SeedDemoPersonal(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Usuario{}).
		Where("email = ?", "demo@fitnesspro.com.br").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Demo personal already exists, skipping seed")
		return nil
	}

	senha := "demo123"
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	especializacao := "Musculação"
	demo := model.Usuario{
		ID:             idgen.New("PT"),
		Tipo:           model.TipoPersonal,
		Nome:           "Personal Demo",
		Email:          "demo@fitnesspro.com.br",
		SenhaHash:      string(senhaHash),
		Especializacao: &especializacao,
		DataCriacao:    time.Now().UTC(),
	}

	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	log.Println("Demo personal seeded successfully")
	log.Println("   Email: demo@fitnesspro.com.br")
	log.Println("   Senha: demo123")

	return nil
}
