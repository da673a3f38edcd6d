package pedido_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/internal/application/dto"
	"github.com/autolavado/lavadero-api/internal/application/pedido"
	"github.com/autolavado/lavadero-api/internal/domain"
	"github.com/autolavado/lavadero-api/internal/domain/entity"
	"github.com/autolavado/lavadero-api/internal/domain/repository"
)

type fakePedidos struct {
	repository.PedidoRepository
	cabeceras        map[string]*entity.Pedido
	lineas           map[string]*entity.PedidoProducto
	fallaEnLinea     int // 1-based: falla el insert de la n-ésima línea; 0 = nunca
	lineasInsertadas int
}

func newFakePedidos() *fakePedidos {
	return &fakePedidos{
		cabeceras: make(map[string]*entity.Pedido),
		lineas:    make(map[string]*entity.PedidoProducto),
	}
}

func (f *fakePedidos) Create(p *entity.Pedido) error {
	f.cabeceras[p.ID] = p
	return nil
}

func (f *fakePedidos) Delete(id string) error {
	delete(f.cabeceras, id)
	return nil
}

func (f *fakePedidos) CreateLinea(l *entity.PedidoProducto) error {
	f.lineasInsertadas++
	if f.fallaEnLinea > 0 && f.lineasInsertadas == f.fallaEnLinea {
		return errors.New("insert de línea falló")
	}
	f.lineas[l.ID] = l
	return nil
}

func (f *fakePedidos) DeleteLinea(id string) error {
	delete(f.lineas, id)
	return nil
}

type fakeProductos struct {
	repository.ProductoRepository
	porID map[string]*entity.Producto
}

func (f *fakeProductos) GetByID(id string) (*entity.Producto, error) { return f.porID[id], nil }

func (f *fakeProductos) Update(p *entity.Producto) error {
	f.porID[p.ID] = p
	return nil
}

type fakePerfiles struct {
	repository.PerfilRepository
	porID map[string]*entity.Perfil
}

func (f *fakePerfiles) GetByID(id string) (*entity.Perfil, error) { return f.porID[id], nil }

func armar() (*pedido.UseCase, *fakePedidos, *fakeProductos) {
	pedidos := newFakePedidos()
	productos := &fakeProductos{porID: map[string]*entity.Producto{
		"cera":    {ID: "cera", Nombre: "Cera premium", Precio: decimal.RequireFromString("1500.50"), Stock: 10, Activo: true},
		"shampoo": {ID: "shampoo", Nombre: "Shampoo pH neutro", Precio: decimal.RequireFromString("800"), Stock: 3, Activo: true},
	}}
	perfiles := &fakePerfiles{porID: map[string]*entity.Perfil{
		"c1": {ID: "c1", Nombre: "Ana", Apellido: "García", Email: "ana@mail.com", Activo: true},
	}}
	return pedido.NewUseCase(pedidos, productos, perfiles), pedidos, productos
}

func TestCrearPedido_CongelaPrecioYDescuentaStock(t *testing.T) {
	uc, pedidos, productos := armar()

	out, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductoID: "cera", Cantidad: 2},
			{ProductoID: "shampoo", Cantidad: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", out.ClienteNombre)
	assert.Equal(t, "3.801,00", out.Total) // 2×1500,50 + 800
	require.Len(t, out.Lineas, 2)
	assert.Equal(t, "1.500,50", out.Lineas[0].PrecioUnitario)

	assert.Len(t, pedidos.cabeceras, 1)
	assert.Len(t, pedidos.lineas, 2)
	assert.Equal(t, 8, productos.porID["cera"].Stock)
	assert.Equal(t, 2, productos.porID["shampoo"].Stock)
}

// Si el insert de una línea falla después de la cabecera, la compensación
// borra la cabecera y restaura el stock: no queda un pedido huérfano.
func TestCrearPedido_FalloDeLineaCompensaTodo(t *testing.T) {
	uc, pedidos, productos := armar()
	pedidos.fallaEnLinea = 2

	_, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductoID: "cera", Cantidad: 2},
			{ProductoID: "shampoo", Cantidad: 1},
		},
	})
	require.Error(t, err)
	assert.Empty(t, pedidos.cabeceras, "la cabecera debe borrarse en la compensación")
	assert.Empty(t, pedidos.lineas, "las líneas aplicadas deben revertirse")
	assert.Equal(t, 10, productos.porID["cera"].Stock, "el stock descontado debe restaurarse")
	assert.Equal(t, 3, productos.porID["shampoo"].Stock)
}

func TestCrearPedido_StockInsuficiente(t *testing.T) {
	uc, pedidos, _ := armar()

	_, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{{ProductoID: "shampoo", Cantidad: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, pedidos.cabeceras)
}

// El mismo producto repetido en el carrito compite por el mismo stock: la
// suma de cantidades se valida en conjunto, no línea por línea.
func TestCrearPedido_ItemsDuplicadosCompitenPorElStock(t *testing.T) {
	uc, pedidos, productos := armar()

	_, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductoID: "cera", Cantidad: 6},
			{ProductoID: "cera", Cantidad: 6}, // 12 > stock 10
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, pedidos.cabeceras)
	assert.Equal(t, 10, productos.porID["cera"].Stock, "el stock no debe tocarse")
}

// Dos líneas del mismo producto que sí entran en el stock se aceptan y
// descuentan la suma.
func TestCrearPedido_ItemsDuplicadosDentroDelStock(t *testing.T) {
	uc, pedidos, productos := armar()

	out, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{
			{ProductoID: "cera", Cantidad: 4},
			{ProductoID: "cera", Cantidad: 4},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Lineas, 2)
	assert.Len(t, pedidos.lineas, 2)
	assert.Equal(t, 2, productos.porID["cera"].Stock)
	assert.Equal(t, "12.004,00", out.Total) // 8×1500,50
}

func TestCrearPedido_CarritoVacio(t *testing.T) {
	uc, _, _ := armar()

	_, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearPedido_CantidadInvalida(t *testing.T) {
	uc, _, _ := armar()

	_, err := uc.Crear(context.Background(), "c1", dto.CreatePedidoRequest{
		Items: []dto.PedidoItemRequest{{ProductoID: "cera", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
