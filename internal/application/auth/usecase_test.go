package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/application/auth"
	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	pkgjwt "github.com/gabiv12/panol-erp/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porUsername map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porUsername: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.porUsername[u.Username] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	return r.porUsername[username], nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error { return nil }
func (r *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (r *fakeUsuarioRepo) Delete(string) error { return nil }

func nuevoAuth() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "panol-erp-test",
	})
	return uc, repo
}

func registrar(t *testing.T, uc *auth.AuthUseCase, username, password, rol string) *dto.UsuarioResponse {
	t.Helper()
	u, err := uc.RegisterUser(dto.RegisterRequest{
		Username: username,
		Password: password,
		Rol:      rol,
	})
	require.NoError(t, err)
	return u
}

func TestRegisterUser_HasheaYAsignaActivo(t *testing.T) {
	uc, repo := nuevoAuth()
	u := registrar(t, uc, "panolero", "secreta123", entity.RolPanol)

	assert.Equal(t, entity.UsuarioActivo, u.Status)
	assert.Equal(t, "panolero", u.Nombre, "sin nombre explícito se usa el username")

	guardado, _ := repo.FindByUsername("panolero")
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, guardado.ID)
}

func TestRegisterUser_UsernameDuplicado_Falla(t *testing.T) {
	uc, _ := nuevoAuth()
	registrar(t, uc, "panolero", "secreta123", entity.RolPanol)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "panolero",
		Password: "otra",
		Rol:      entity.RolTaller,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyTaken)
}

func TestRegisterUser_RolInvalido_Falla(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "alguien",
		Password: "secreta123",
		Rol:      "SUPERADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_DevuelveTokenConClaims(t *testing.T) {
	uc, _ := nuevoAuth()
	registrar(t, uc, "diagramador", "secreta123", entity.RolDiagramador)

	out, err := uc.Login(dto.LoginRequest{Username: "diagramador", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "diagramador", out.User.Username)

	_, username, rol, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "diagramador", username)
	assert.Equal(t, entity.RolDiagramador, rol)
}

func TestLogin_PasswordIncorrecto_Falla(t *testing.T) {
	uc, _ := nuevoAuth()
	registrar(t, uc, "panolero", "secreta123", entity.RolPanol)

	_, err := uc.Login(dto.LoginRequest{Username: "panolero", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Falla(t *testing.T) {
	uc, _ := nuevoAuth()
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioSuspendido_Falla(t *testing.T) {
	uc, repo := nuevoAuth()
	registrar(t, uc, "panolero", "secreta123", entity.RolPanol)
	repo.porUsername["panolero"].Status = entity.UsuarioSuspendido

	_, err := uc.Login(dto.LoginRequest{Username: "panolero", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
