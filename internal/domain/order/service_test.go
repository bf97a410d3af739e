package order

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopping-cart-backend/internal/domain/cart"
	"github.com/your-org/shopping-cart-backend/internal/domain/product"
)

// fakeTx runs the unit of work directly; rollback behavior is the real
// store's concern.
type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCatalog struct {
	products map[uint]product.Product
}

func (f *fakeCatalog) FindProduct(_ context.Context, id uint) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memoryCartStore is an in-memory cart.Store
type memoryCartStore struct {
	nextCartID uint
	nextItemID uint
	carts      map[uint]*cart.Cart
	items      map[uint][]*cart.CartItem
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{
		carts: make(map[uint]*cart.Cart),
		items: make(map[uint][]*cart.CartItem),
	}
}

func (s *memoryCartStore) FindCartByUser(_ context.Context, userID uint) (*cart.Cart, error) {
	c, ok := s.carts[userID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *memoryCartStore) CreateCart(_ context.Context, userID uint) (*cart.Cart, error) {
	s.nextCartID++
	c := &cart.Cart{ID: s.nextCartID, UserID: userID}
	s.carts[userID] = c
	cp := *c
	return &cp, nil
}

func (s *memoryCartStore) FindItems(_ context.Context, cartID uint) ([]cart.CartItem, error) {
	items := make([]cart.CartItem, 0, len(s.items[cartID]))
	for _, it := range s.items[cartID] {
		items = append(items, *it)
	}
	return items, nil
}

func (s *memoryCartStore) FindItem(_ context.Context, cartID, productID uint) (*cart.CartItem, error) {
	for _, it := range s.items[cartID] {
		if it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (s *memoryCartStore) SaveItem(_ context.Context, item *cart.CartItem) error {
	if item.ID == 0 {
		s.nextItemID++
		item.ID = s.nextItemID
		cp := *item
		s.items[item.CartID] = append(s.items[item.CartID], &cp)
		return nil
	}
	for i, it := range s.items[item.CartID] {
		if it.ID == item.ID {
			cp := *item
			s.items[item.CartID][i] = &cp
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (s *memoryCartStore) DeleteItem(_ context.Context, cartID, productID uint) error {
	kept := s.items[cartID][:0]
	for _, it := range s.items[cartID] {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.items[cartID] = kept
	return nil
}

func (s *memoryCartStore) DeleteAllItems(_ context.Context, cartID uint) error {
	s.items[cartID] = nil
	return nil
}

// memoryOrderStore is an in-memory Store
type memoryOrderStore struct {
	nextOrderID uint
	nextItemID  uint
	orders      []*Order // insertion order, oldest first
}

func (s *memoryOrderStore) Create(_ context.Context, o *Order) error {
	s.nextOrderID++
	o.ID = s.nextOrderID
	for i := range o.Items {
		s.nextItemID++
		o.Items[i].ID = s.nextItemID
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	cp.Items = append([]OrderItem(nil), o.Items...)
	s.orders = append(s.orders, &cp)
	return nil
}

func (s *memoryOrderStore) Save(_ context.Context, o *Order) error {
	for _, stored := range s.orders {
		if stored.ID == o.ID {
			stored.Status = o.Status
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryOrderStore) FindByID(_ context.Context, orderID uint) (*Order, error) {
	for _, o := range s.orders {
		if o.ID == orderID {
			cp := *o
			cp.Items = append([]OrderItem(nil), o.Items...)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryOrderStore) FindByUser(_ context.Context, userID uint) ([]Order, error) {
	var out []Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			cp := *s.orders[i]
			cp.Items = append([]OrderItem(nil), s.orders[i].Items...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func newTestService() (*Service, *memoryOrderStore, *memoryCartStore, *fakeCatalog) {
	orderStore := &memoryOrderStore{}
	cartStore := newMemoryCartStore()
	catalog := &fakeCatalog{products: map[uint]product.Product{
		1: {ID: 1, Name: "Coffee Beans", Price: decimal.RequireFromString("10.50")},
		2: {ID: 2, Name: "Mug", Price: decimal.RequireFromString("5.00")},
	}}
	svc := NewService(orderStore, cartStore, catalog, fakeTx{})
	return svc, orderStore, cartStore, catalog
}

// seedCart creates a cart with the given product quantities for the user
func seedCart(t *testing.T, store *memoryCartStore, userID uint, lines map[uint]int) *cart.Cart {
	t.Helper()
	ctx := context.Background()
	c, err := store.CreateCart(ctx, userID)
	require.NoError(t, err)
	for productID, qty := range lines {
		err := store.SaveItem(ctx, &cart.CartItem{CartID: c.ID, ProductID: productID, Quantity: qty})
		require.NoError(t, err)
	}
	return c
}

func TestCreateOrderWithoutCart(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateOrder(context.Background(), 1)
	assert.ErrorIs(t, err, cart.ErrNotFound)
}

func TestCreateOrderWithEmptyCart(t *testing.T) {
	svc, orderStore, cartStore, _ := newTestService()
	seedCart(t, cartStore, 1, nil)

	_, err := svc.CreateOrder(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orderStore.orders)
}

func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	svc, _, cartStore, _ := newTestService()
	ctx := context.Background()
	c := seedCart(t, cartStore, 1, map[uint]int{1: 2, 2: 1})

	o, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), o.UserID)
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("26.00")),
		"total = %s", o.TotalAmount)

	require.Len(t, o.Items, 2)
	byProduct := make(map[uint]OrderItem, len(o.Items))
	for _, line := range o.Items {
		byProduct[line.ProductID] = line
	}
	assert.Equal(t, "Coffee Beans", byProduct[1].ProductName)
	assert.True(t, byProduct[1].ProductPrice.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, 2, byProduct[1].Quantity)
	assert.True(t, byProduct[1].Subtotal.Equal(decimal.RequireFromString("21.00")))
	assert.Equal(t, "Mug", byProduct[2].ProductName)
	assert.True(t, byProduct[2].Subtotal.Equal(decimal.RequireFromString("5.00")))

	// The cart row survives but holds no lines anymore
	items, err := cartStore.FindItems(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderTotalImmutableAfterPriceChange(t *testing.T) {
	svc, _, cartStore, catalog := newTestService()
	ctx := context.Background()
	seedCart(t, cartStore, 1, map[uint]int{1: 2})

	o, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)

	// The catalog price doubles after the order was placed
	p := catalog.products[1]
	p.Price = decimal.RequireFromString("21.00")
	catalog.products[1] = p

	stored, err := svc.store.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("21.00")),
		"total = %s", stored.TotalAmount)
	assert.True(t, stored.Items[0].ProductPrice.Equal(decimal.RequireFromString("10.50")))
}

func TestCreateOrderFailsWhenProductVanished(t *testing.T) {
	svc, orderStore, cartStore, catalog := newTestService()
	ctx := context.Background()
	c := seedCart(t, cartStore, 1, map[uint]int{1: 2})

	delete(catalog.products, 1)

	_, err := svc.CreateOrder(ctx, 1)
	assert.ErrorIs(t, err, product.ErrNotFound)

	// Nothing was created and the cart still holds its line
	assert.Empty(t, orderStore.orders)
	items, findErr := cartStore.FindItems(ctx, c.ID)
	require.NoError(t, findErr)
	assert.Len(t, items, 1)
}

func TestCancelOrder(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		_, err := svc.CancelOrder(context.Background(), 1, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owned by another user", func(t *testing.T) {
		svc, _, cartStore, _ := newTestService()
		seedCart(t, cartStore, 1, map[uint]int{1: 1})
		o, err := svc.CreateOrder(context.Background(), 1)
		require.NoError(t, err)

		_, err = svc.CancelOrder(context.Background(), 2, o.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		// The order is untouched
		stored, err := svc.store.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, stored.Status)
	})

	t.Run("not pending", func(t *testing.T) {
		svc, orderStore, cartStore, _ := newTestService()
		seedCart(t, cartStore, 1, map[uint]int{1: 1})
		o, err := svc.CreateOrder(context.Background(), 1)
		require.NoError(t, err)

		orderStore.orders[0].Status = OrderStatusConfirmed

		_, err = svc.CancelOrder(context.Background(), 1, o.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("pending order owned by caller", func(t *testing.T) {
		svc, _, cartStore, _ := newTestService()
		seedCart(t, cartStore, 1, map[uint]int{1: 1})
		o, err := svc.CreateOrder(context.Background(), 1)
		require.NoError(t, err)

		cancelled, err := svc.CancelOrder(context.Background(), 1, o.ID)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCancelled, cancelled.Status)

		stored, err := svc.store.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCancelled, stored.Status)
	})
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, _, cartStore, _ := newTestService()
	ctx := context.Background()
	c := seedCart(t, cartStore, 1, map[uint]int{1: 1})

	first, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)

	err = cartStore.SaveItem(ctx, &cart.CartItem{CartID: c.ID, ProductID: 2, Quantity: 3})
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	// Another user sees nothing
	orders, err = svc.ListOrders(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// TestOrderLifecycle walks the whole flow through the cart service: build the
// cart, place the order, cancel it, and then try to cancel it again.
func TestOrderLifecycle(t *testing.T) {
	svc, _, cartStore, catalog := newTestService()
	cartSvc := cart.NewService(cartStore, catalog)
	ctx := context.Background()

	resp, err := cartSvc.AddItem(ctx, 1, &cart.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("21.00")),
		"total = %s", resp.TotalAmount)

	resp, err = cartSvc.AddItem(ctx, 1, &cart.AddToCartRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("52.50")),
		"total = %s", resp.TotalAmount)

	o, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("52.50")),
		"total = %s", o.TotalAmount)

	resp, err = cartSvc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	cancelled, err := svc.CancelOrder(ctx, 1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, cancelled.Status)

	_, err = svc.CancelOrder(ctx, 1, o.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
