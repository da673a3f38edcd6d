package entity

import "time"

// Perfil representa el perfil de un usuario del lavadero (cliente o personal).
// Nunca se elimina físicamente: Activo=false lo desactiva (soft delete).
type Perfil struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Apellido     string
	DNI          string
	Telefono     string
	Activo       bool
	RolID        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NombreCompleto devuelve "Nombre Apellido" para snapshots de pedidos y reportes.
func (p *Perfil) NombreCompleto() string {
	if p.Apellido == "" {
		return p.Nombre
	}
	return p.Nombre + " " + p.Apellido
}
