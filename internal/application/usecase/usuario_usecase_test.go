package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-instalaciones/internal/application/dto"
	"github.com/jhoicas/ventas-instalaciones/internal/domain"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

func newUsuarioFixture(us ...*entity.Administrador) (*UsuarioUseCase, *fakeUsuarioRepo, *recordingAuditor) {
	repo := newFakeUsuarioRepo(us...)
	mods := newFakeModuloRepo()
	audit := &recordingAuditor{}
	svc := NewModuleService(mods, newFakePermisoRepo(), fakeTx{repo: mods}, nil)
	return NewUsuarioUseCase(repo, svc, audit), repo, audit
}

func validUsuario() dto.CreateUsuarioRequest {
	return dto.CreateUsuarioRequest{
		Cedula:   "1098765432",
		Nombre:   "Laura Gómez",
		Email:    "Laura@ISP.co ",
		Password: "secreta123",
		Modulo:   "Ventas",
	}
}

func TestUsuarioCreate_HasheaYNormalizaEmail(t *testing.T) {
	uc, repo, audit := newUsuarioFixture()

	out, err := uc.Create(context.Background(), Actor{UserID: "admin"}, validUsuario())
	require.NoError(t, err)
	assert.Equal(t, "laura@isp.co", out.Email)

	stored := repo.items[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
	assert.Equal(t, []string{"usuario:crear"}, audit.entries)
}

func TestUsuarioCreate_Duplicados(t *testing.T) {
	existing := &entity.Administrador{ID: "u1", Cedula: "1098765432", Email: "otro@isp.co", Modulo: "Ventas"}
	uc, _, _ := newUsuarioFixture(existing)

	_, err := uc.Create(context.Background(), Actor{}, validUsuario())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	in := validUsuario()
	in.Cedula = "55555555"
	in.Email = "OTRO@isp.co"
	_, err = uc.Create(context.Background(), Actor{}, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUsuarioCreate_RolInexistente(t *testing.T) {
	uc, _, _ := newUsuarioFixture()
	in := validUsuario()
	in.Modulo = "Bodega"

	_, err := uc.Create(context.Background(), Actor{}, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioUpdate_PasswordVacioConservaHash(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("original1"), bcrypt.MinCost)
	u := &entity.Administrador{ID: "u1", Cedula: "1098765432", Email: "a@isp.co", Nombre: "Ana Ruiz", Modulo: "Ventas", PasswordHash: string(hash)}
	uc, repo, _ := newUsuarioFixture(u)

	nombre, vacio := "Ana María Ruiz", ""
	out, err := uc.Update(context.Background(), Actor{}, "u1", dto.UpdateUsuarioRequest{Nombre: &nombre, Password: &vacio})
	require.NoError(t, err)
	assert.Equal(t, "Ana María Ruiz", out.Nombre)
	assert.Equal(t, string(hash), repo.items["u1"].PasswordHash)
}

func TestUsuarioUpdate_EmailDeOtroUsuario(t *testing.T) {
	a := &entity.Administrador{ID: "u1", Cedula: "1098765432", Email: "a@isp.co", Modulo: "Ventas"}
	b := &entity.Administrador{ID: "u2", Cedula: "1098765433", Email: "b@isp.co", Modulo: "Ventas"}
	uc, _, _ := newUsuarioFixture(a, b)

	email := "b@isp.co"
	_, err := uc.Update(context.Background(), Actor{}, "u1", dto.UpdateUsuarioRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// su propio email no es duplicado
	email = "a@isp.co"
	_, err = uc.Update(context.Background(), Actor{}, "u1", dto.UpdateUsuarioRequest{Email: &email})
	assert.NoError(t, err)
}

func TestUsuarioDelete_NoPuedeEliminarseASiMismo(t *testing.T) {
	u := &entity.Administrador{ID: "u1", Modulo: entity.RoleAdministrador}
	uc, repo, _ := newUsuarioFixture(u)

	err := uc.Delete(context.Background(), Actor{UserID: "u1"}, "u1")
	assert.ErrorIs(t, err, domain.ErrCannotDeleteSelf)
	assert.Contains(t, repo.items, "u1")

	assert.ErrorIs(t, uc.Delete(context.Background(), Actor{UserID: "u1"}, "u9"), domain.ErrUserNotFound)
}
