// Package authz implementa el snapshot de identidad+permisos y las decisiones
// de acceso sobre él. El snapshot es una copia del último fetch: se reescribe
// completo en cada recarga y solo se invalida ante eventos de sesión. La
// ventana de permisos viejos entre un cambio en la DB y la próxima recarga es
// comportamiento aceptado, no un bug.
package authz

import "github.com/autolavado/lavadero-api/internal/domain/entity"

// Snapshot es la foto de un usuario autenticado: perfil, rol y la lista
// aplanada de códigos de permiso de ese rol.
type Snapshot struct {
	Perfil   *entity.Perfil
	Rol      *entity.Rol
	Permisos []string

	indice map[string]struct{}
}

// NewSnapshot arma el snapshot e indexa los códigos para chequeos O(1).
func NewSnapshot(perfil *entity.Perfil, rol *entity.Rol, permisos []string) *Snapshot {
	s := &Snapshot{
		Perfil:   perfil,
		Rol:      rol,
		Permisos: permisos,
		indice:   make(map[string]struct{}, len(permisos)),
	}
	for _, p := range permisos {
		s.indice[p] = struct{}{}
	}
	return s
}

// HasPermission indica si el código está presente en el snapshot.
// Chequeo puro en memoria, sin llamadas de red.
func (s *Snapshot) HasPermission(codigo string) bool {
	if s == nil {
		return false
	}
	_, ok := s.indice[codigo]
	return ok
}

// HasAnyPermission indica si al menos uno de los códigos está presente.
func (s *Snapshot) HasAnyPermission(codigos ...string) bool {
	for _, c := range codigos {
		if s.HasPermission(c) {
			return true
		}
	}
	return false
}

// HasAllPermissions indica si todos los códigos están presentes.
// Con lista vacía devuelve true (subconjunto vacío).
func (s *Snapshot) HasAllPermissions(codigos ...string) bool {
	for _, c := range codigos {
		if !s.HasPermission(c) {
			return false
		}
	}
	return true
}
