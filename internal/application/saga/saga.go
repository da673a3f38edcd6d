// Package saga ejecuta escrituras multi-paso como una lista explícita de pasos
// con su compensación. No hay transacción del lado del backend: ante el primer
// paso fallido se ejecutan los undo de los pasos ya aplicados, en orden
// inverso. Los errores de undo se acumulan y reportan, sin reintentos.
package saga

import "fmt"

// Paso es una acción con su compensación. Undo puede ser nil para pasos sin
// efecto que revertir.
type Paso struct {
	Nombre string
	Do     func() error
	Undo   func() error
}

// Saga es la lista ordenada de pasos.
type Saga struct {
	pasos []Paso
}

// New crea una saga vacía.
func New() *Saga {
	return &Saga{}
}

// Add agrega un paso al final.
func (s *Saga) Add(nombre string, do, undo func() error) *Saga {
	s.pasos = append(s.pasos, Paso{Nombre: nombre, Do: do, Undo: undo})
	return s
}

// Run ejecuta los pasos en orden. Ante el primer error detiene la ejecución,
// corre los undo de los pasos aplicados en orden inverso y devuelve el error
// del paso fallido (con los errores de compensación anexados si los hubo).
func (s *Saga) Run() error {
	aplicados := 0
	for _, p := range s.pasos {
		if err := p.Do(); err != nil {
			errPaso := fmt.Errorf("saga: paso %q: %w", p.Nombre, err)
			if errsUndo := s.compensar(aplicados); len(errsUndo) > 0 {
				return fmt.Errorf("%w (compensación incompleta: %v)", errPaso, errsUndo)
			}
			return errPaso
		}
		aplicados++
	}
	return nil
}

// compensar corre los undo de los primeros n pasos, del último al primero.
func (s *Saga) compensar(n int) []error {
	var errs []error
	for i := n - 1; i >= 0; i-- {
		p := s.pasos[i]
		if p.Undo == nil {
			continue
		}
		if err := p.Undo(); err != nil {
			errs = append(errs, fmt.Errorf("undo %q: %w", p.Nombre, err))
		}
	}
	return errs
}
