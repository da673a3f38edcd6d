package authz

// Gate describe el requisito de acceso de una ruta o fragmento de UI: un
// permiso único, o una lista con semántica "alguno" o "todos".
//
// Un gate sin permisos declarados solo concede acceso si AllowUnguarded es
// true. El default (false) convierte el viejo "sin permiso ⇒ permitir" en una
// decisión explícita del caller; el middleware loguea un warning en ambos casos.
type Gate struct {
	Permission     string
	Permissions    []string
	RequireAll     bool
	AllowUnguarded bool
}

// Unguarded indica que el gate no declara ningún permiso.
func (g Gate) Unguarded() bool {
	return g.Permission == "" && len(g.Permissions) == 0
}

// Allows evalúa el gate contra el snapshot.
func (g Gate) Allows(s *Snapshot) bool {
	if g.Unguarded() {
		return g.AllowUnguarded
	}
	if g.Permission != "" {
		return s.HasPermission(g.Permission)
	}
	if g.RequireAll {
		return s.HasAllPermissions(g.Permissions...)
	}
	return s.HasAnyPermission(g.Permissions...)
}

// Missing devuelve los códigos requeridos que el snapshot no tiene, para
// armar el mensaje de acceso denegado.
func (g Gate) Missing(s *Snapshot) []string {
	var faltantes []string
	if g.Permission != "" {
		if !s.HasPermission(g.Permission) {
			faltantes = append(faltantes, g.Permission)
		}
		return faltantes
	}
	for _, c := range g.Permissions {
		if !s.HasPermission(c) {
			faltantes = append(faltantes, c)
		}
	}
	return faltantes
}
