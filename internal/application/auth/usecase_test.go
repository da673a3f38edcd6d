package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/autolavado/lavadero-api/internal/application/auth"
	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

type fakePerfiles struct {
	repository.PerfilRepository
	porID map[string]*entity.Perfil
}

func (f *fakePerfiles) GetByID(id string) (*entity.Perfil, error) { return f.porID[id], nil }

func (f *fakePerfiles) GetByEmail(email string) (*entity.Perfil, error) {
	for _, p := range f.porID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePerfiles) Update(p *entity.Perfil) error {
	f.porID[p.ID] = p
	return nil
}

type fakeRoles struct {
	repository.RolRepository
}

func (f *fakeRoles) GetByID(id string) (*entity.Rol, error) {
	return &entity.Rol{ID: id, Nombre: "Cliente"}, nil
}

type fakePermisos struct {
	repository.PermisoRepository
}

func (f *fakePermisos) CodigosByPerfil(string) ([]string, error) {
	return []string{"turnos.reservar"}, nil
}

func armarAuth(t *testing.T) (*auth.AuthUseCase, *fakePerfiles) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("la-vieja"), bcrypt.MinCost)
	require.NoError(t, err)
	perfiles := &fakePerfiles{porID: map[string]*entity.Perfil{
		"c1": {ID: "c1", Email: "ana@mail.com", PasswordHash: string(hash), RolID: "r1", Activo: true},
	}}
	loader := authz.NewLoader(perfiles, &fakeRoles{}, &fakePermisos{})
	uc := auth.NewAuthUseCase(perfiles, &fakeRoles{}, loader, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "lavadero-test",
	})
	return uc, perfiles
}

// ──────────────────────────────────────────────────────────────────────────────
// Restablecimiento de contraseña por token
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: pedir el token, consumirlo con la contraseña nueva y
// verificar que el hash persistido cambió. El token es de un solo uso.
func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc, perfiles := armarAuth(t)

	token, err := uc.RequestPasswordReset("ana@mail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token, "un email existente debe emitir token")

	err = uc.ConfirmPasswordReset(dto.ResetPasswordConfirmRequest{Token: token, Password: "la-nueva"})
	require.NoError(t, err)

	hash := perfiles.porID["c1"].PasswordHash
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("la-nueva")),
		"la contraseña nueva debe quedar persistida")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("la-vieja")))

	// Reutilizar el mismo token debe fallar
	err = uc.ConfirmPasswordReset(dto.ResetPasswordConfirmRequest{Token: token, Password: "otra-mas"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el token es de un solo uso")
}

// Un email desconocido no emite token ni devuelve error: el endpoint responde
// igual en ambos casos y no revela existencia.
func TestResetPassword_EmailDesconocidoNoRevela(t *testing.T) {
	uc, _ := armarAuth(t)

	token, err := uc.RequestPasswordReset("nadie@mail.com")
	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestResetPassword_TokenVencido(t *testing.T) {
	uc, perfiles := armarAuth(t)
	ahora := time.Now()
	uc.WithClock(func() time.Time { return ahora })

	token, err := uc.RequestPasswordReset("ana@mail.com")
	require.NoError(t, err)

	ahora = ahora.Add(31 * time.Minute)
	err = uc.ConfirmPasswordReset(dto.ResetPasswordConfirmRequest{Token: token, Password: "la-nueva"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(perfiles.porID["c1"].PasswordHash), []byte("la-vieja")),
		"la contraseña no debe cambiar con un token vencido")
}

func TestResetPassword_TokenDesconocido(t *testing.T) {
	uc, _ := armarAuth(t)

	err := uc.ConfirmPasswordReset(dto.ResetPasswordConfirmRequest{Token: "no-emitido", Password: "la-nueva"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResetPassword_SinTokenNiPassword(t *testing.T) {
	uc, _ := armarAuth(t)

	err := uc.ConfirmPasswordReset(dto.ResetPasswordConfirmRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
