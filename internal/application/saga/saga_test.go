package saga_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/saga"
)

func TestRun_TodosLosPasosOK(t *testing.T) {
	var orden []string
	s := saga.New().
		Add("uno", func() error { orden = append(orden, "uno"); return nil }, nil).
		Add("dos", func() error { orden = append(orden, "dos"); return nil }, nil)

	require.NoError(t, s.Run())
	assert.Equal(t, []string{"uno", "dos"}, orden)
}

// Ante un paso fallido, los undo de los pasos aplicados corren en orden inverso
// y el paso fallido no se compensa.
func TestRun_FallaYCompensaEnReversa(t *testing.T) {
	var orden []string
	falla := errors.New("boom")
	s := saga.New().
		Add("uno",
			func() error { orden = append(orden, "uno"); return nil },
			func() error { orden = append(orden, "undo-uno"); return nil }).
		Add("dos",
			func() error { orden = append(orden, "dos"); return nil },
			func() error { orden = append(orden, "undo-dos"); return nil }).
		Add("tres",
			func() error { return falla },
			func() error { orden = append(orden, "undo-tres"); return nil })

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, falla)
	assert.Equal(t, []string{"uno", "dos", "undo-dos", "undo-uno"}, orden)
}

func TestRun_UndoNilSeSaltea(t *testing.T) {
	var orden []string
	s := saga.New().
		Add("uno", func() error { orden = append(orden, "uno"); return nil }, nil).
		Add("dos", func() error { return errors.New("boom") }, nil)

	require.Error(t, s.Run())
	assert.Equal(t, []string{"uno"}, orden)
}

func TestRun_ErrorDeUndoSeReporta(t *testing.T) {
	s := saga.New().
		Add("uno",
			func() error { return nil },
			func() error { return errors.New("undo roto") }).
		Add("dos", func() error { return errors.New("boom") }, nil)

	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compensación incompleta")
	assert.Contains(t, err.Error(), "undo roto")
}
