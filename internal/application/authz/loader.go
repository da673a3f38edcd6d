package authz

import (
	"sync"

	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

// Loader carga y cachea snapshots por usuario. La recarga reemplaza el
// snapshot completo (sin merge parcial); Invalidate se llama en los eventos de
// sesión (login, logout, cambio de password). No hay invalidación push: un
// cambio de permisos en la DB recién se ve en la próxima recarga.
type Loader struct {
	perfiles repository.PerfilRepository
	roles    repository.RolRepository
	permisos repository.PermisoRepository

	mu    sync.RWMutex
	cache map[string]*Snapshot
}

// NewLoader construye el cargador de snapshots.
func NewLoader(perfiles repository.PerfilRepository, roles repository.RolRepository, permisos repository.PermisoRepository) *Loader {
	return &Loader{
		perfiles: perfiles,
		roles:    roles,
		permisos: permisos,
		cache:    make(map[string]*Snapshot),
	}
}

// Load devuelve el snapshot cacheado del usuario, o lo carga si no existe.
func (l *Loader) Load(userID string) (*Snapshot, error) {
	l.mu.RLock()
	s, ok := l.cache[userID]
	l.mu.RUnlock()
	if ok {
		return s, nil
	}
	return l.Reload(userID)
}

// Reload fuerza la recarga del snapshot desde la DB y reemplaza el cacheado.
func (l *Loader) Reload(userID string) (*Snapshot, error) {
	perfil, err := l.perfiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}
	if !perfil.Activo {
		return nil, domain.ErrForbidden
	}
	rol, err := l.roles.GetByID(perfil.RolID)
	if err != nil {
		return nil, err
	}
	codigos, err := l.permisos.CodigosByPerfil(userID)
	if err != nil {
		return nil, err
	}
	s := NewSnapshot(perfil, rol, codigos)
	l.mu.Lock()
	l.cache[userID] = s
	l.mu.Unlock()
	return s, nil
}

// Invalidate descarta el snapshot cacheado del usuario.
func (l *Loader) Invalidate(userID string) {
	l.mu.Lock()
	delete(l.cache, userID)
	l.mu.Unlock()
}
