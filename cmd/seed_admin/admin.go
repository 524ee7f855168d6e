package main

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/repository"
	"github.com/jhoicas/ventas-instalaciones/pkg/colombia"
)

type adminInput struct {
	Cedula   string
	Nombre   string
	Email    string
	Password string
}

func (in adminInput) validate() error {
	if err := colombia.ValidateCedula(in.Cedula); err != nil {
		return err
	}
	if len(strings.TrimSpace(in.Nombre)) < 3 {
		return fmt.Errorf("nombre obligatorio")
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("email inválido")
	}
	var letter, digit bool
	for _, r := range in.Password {
		letter = letter || unicode.IsLetter(r)
		digit = digit || unicode.IsDigit(r)
	}
	if len(in.Password) < 8 || !letter || !digit {
		return fmt.Errorf("la contraseña debe tener al menos 8 caracteres con letras y números")
	}
	return nil
}

// ensureAdmin crea el administrador o, si ya existe uno con ese email o cédula,
// le restablece contraseña y rol. Devuelve true cuando lo crea.
func ensureAdmin(ctx context.Context, repo repository.AdministradorRepository, in adminInput) (bool, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Cedula = strings.TrimSpace(in.Cedula)
	if err := in.validate(); err != nil {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	existing, err := repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return false, err
	}
	if existing == nil {
		if existing, err = repo.GetByCedula(ctx, in.Cedula); err != nil {
			return false, err
		}
	}
	if existing != nil {
		existing.Nombre = strings.TrimSpace(in.Nombre)
		existing.PasswordHash = string(hash)
		existing.Modulo = entity.RoleAdministrador
		return false, repo.Update(ctx, existing)
	}

	return true, repo.Create(ctx, &entity.Administrador{
		ID:            uuid.New().String(),
		Cedula:        in.Cedula,
		Nombre:        strings.TrimSpace(in.Nombre),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Modulo:        entity.RoleAdministrador,
		FechaCreacion: time.Now(),
	})
}
