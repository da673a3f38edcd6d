package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/autolavado/lavadero-api/internal/application/authz"
	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
	"github.com/autolavado/lavadero-api/pkg/jwt"
)

// RolCliente es el rol por defecto de los registros de autoservicio.
const RolCliente = "Cliente"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// resetTokenTTL vida útil de un token de restablecimiento de contraseña.
const resetTokenTTL = 30 * time.Minute

type resetToken struct {
	perfilID string
	expira   time.Time
}

// AuthUseCase casos de uso de identidad: registro, login, logout y contraseña.
// Cada evento de sesión invalida el snapshot de permisos del usuario. Los
// tokens de restablecimiento viven en memoria: un reinicio los descarta y el
// usuario simplemente vuelve a pedir uno.
type AuthUseCase struct {
	perfilRepo repository.PerfilRepository
	rolRepo    repository.RolRepository
	loader     *authz.Loader
	jwtCfg     JWTConfig

	resetMu     sync.Mutex
	resetTokens map[string]resetToken
	ahora       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(perfilRepo repository.PerfilRepository, rolRepo repository.RolRepository, loader *authz.Loader, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		perfilRepo:  perfilRepo,
		rolRepo:     rolRepo,
		loader:      loader,
		jwtCfg:      jwtCfg,
		resetTokens: make(map[string]resetToken),
		ahora:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(ahora func() time.Time) *AuthUseCase {
	uc.ahora = ahora
	return uc
}

// Register crea un perfil con el rol Cliente: chequea existencia previa por
// email, hashea la password con bcrypt y persiste.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.PerfilResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existe, err := uc.perfilRepo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrEmailAlreadyExists
	}
	rol, err := uc.rolRepo.GetByNombre(RolCliente)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.ErrNotFound // catálogo de roles sin sembrar
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	perfil := &entity.Perfil{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Apellido:     in.Apellido,
		DNI:          in.DNI,
		Telefono:     in.Telefono,
		Activo:       true,
		RolID:        rol.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.perfilRepo.Create(perfil); err != nil {
		return nil, err
	}
	return ToPerfilResponse(perfil, rol.Nombre), nil
}

// Login verifica email/password, recarga el snapshot de permisos y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	perfil, err := uc.perfilRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(perfil.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !perfil.Activo {
		return nil, domain.ErrForbidden
	}
	// Evento de sesión: el snapshot se recarga completo
	uc.loader.Invalidate(perfil.ID)
	snap, err := uc.loader.Load(perfil.ID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, perfil.ID, perfil.RolID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	rolNombre := ""
	if snap.Rol != nil {
		rolNombre = snap.Rol.Nombre
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     *ToPerfilResponse(perfil, rolNombre),
		Permisos: snap.Permisos,
	}, nil
}

// Logout descarta el snapshot cacheado. El token expira solo (stateless).
func (uc *AuthUseCase) Logout(userID string) {
	uc.loader.Invalidate(userID)
}

// RequestPasswordReset emite un token de restablecimiento de un solo uso con
// vencimiento. Devuelve el token para que el canal de entrega lo haga llegar
// al usuario; si el email no corresponde a un perfil activo devuelve vacío sin
// error, así el endpoint responde igual en ambos casos y no revela existencia.
func (uc *AuthUseCase) RequestPasswordReset(email string) (string, error) {
	if email == "" {
		return "", domain.ErrInvalidInput
	}
	perfil, err := uc.perfilRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if perfil == nil || !perfil.Activo {
		return "", nil
	}
	token := uuid.New().String()
	uc.resetMu.Lock()
	uc.resetTokens[token] = resetToken{perfilID: perfil.ID, expira: uc.ahora().Add(resetTokenTTL)}
	uc.resetMu.Unlock()
	return token, nil
}

// ConfirmPasswordReset consume el token emitido y fija la contraseña nueva.
// El token es de un solo uso: se descarta aunque el update posterior falle.
func (uc *AuthUseCase) ConfirmPasswordReset(in dto.ResetPasswordConfirmRequest) error {
	if in.Token == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	uc.resetMu.Lock()
	emitido, ok := uc.resetTokens[in.Token]
	delete(uc.resetTokens, in.Token)
	uc.resetMu.Unlock()
	if !ok || uc.ahora().After(emitido.expira) {
		return domain.ErrUnauthorized
	}
	perfil, err := uc.perfilRepo.GetByID(emitido.perfilID)
	if err != nil {
		return err
	}
	if perfil == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	perfil.PasswordHash = string(hash)
	perfil.UpdatedAt = time.Now()
	if err := uc.perfilRepo.Update(perfil); err != nil {
		return err
	}
	uc.loader.Invalidate(perfil.ID)
	return nil
}

// UpdatePassword cambia la contraseña del usuario autenticado e invalida su sesión cacheada.
func (uc *AuthUseCase) UpdatePassword(userID string, in dto.UpdatePasswordRequest) error {
	if in.PasswordNueva == "" {
		return domain.ErrInvalidInput
	}
	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if perfil == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(perfil.PasswordHash), []byte(in.PasswordActual)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	perfil.PasswordHash = string(hash)
	perfil.UpdatedAt = time.Now()
	if err := uc.perfilRepo.Update(perfil); err != nil {
		return err
	}
	uc.loader.Invalidate(userID)
	return nil
}

// ToPerfilResponse convierte la entidad a su representación pública.
func ToPerfilResponse(p *entity.Perfil, rolNombre string) *dto.PerfilResponse {
	if p == nil {
		return nil
	}
	return &dto.PerfilResponse{
		ID:        p.ID,
		Email:     p.Email,
		Nombre:    p.Nombre,
		Apellido:  p.Apellido,
		DNI:       p.DNI,
		Telefono:  p.Telefono,
		Activo:    p.Activo,
		RolID:     p.RolID,
		RolNombre: rolNombre,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
