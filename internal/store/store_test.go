package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"customer_registry/internal/db"
	"customer_registry/internal/domain"
	"customer_registry/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore migrates a fresh database file and returns a Store over it
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.db")
	require.NoError(t, db.Migrate(path))
	return store.New(path)
}

func TestAddCustomerRoundTrip(t *testing.T) {
	st := newTestStore(t)

	created, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, created.ID, customers[0].ID)
	assert.Equal(t, "Ana", customers[0].Name)
	assert.Equal(t, "ana@x.com", customers[0].Email)
	assert.Equal(t, "111", customers[0].Phone)
}

func TestAddCustomerDuplicateEmail(t *testing.T) {
	st := newTestStore(t)

	_, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)

	_, err = st.AddCustomer("Other", "ana@x.com", "222")
	require.ErrorIs(t, err, store.ErrEmailTaken)

	// The first row is unaffected by the rejected write
	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)
}

func TestListCustomersEmpty(t *testing.T) {
	st := newTestStore(t)

	customers, err := st.ListCustomers()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestUpdateCustomer(t *testing.T) {
	st := newTestStore(t)

	created, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)

	require.NoError(t, st.UpdateCustomer(created.ID, "Ana Maria", "ana.maria@x.com", ""))

	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana Maria", customers[0].Name)
	assert.Equal(t, "ana.maria@x.com", customers[0].Email)
	assert.Equal(t, "", customers[0].Phone)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	st := newTestStore(t)

	created, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)

	err = st.UpdateCustomer(created.ID+99, "Nobody", "nobody@x.com", "")
	require.ErrorIs(t, err, store.ErrCustomerNotFound)

	// No row was mutated
	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)
}

func TestUpdateCustomerEmailConflict(t *testing.T) {
	st := newTestStore(t)

	_, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)
	bruno, err := st.AddCustomer("Bruno", "bruno@x.com", "222")
	require.NoError(t, err)

	err = st.UpdateCustomer(bruno.ID, "Bruno", "ana@x.com", "222")
	require.ErrorIs(t, err, store.ErrEmailTaken)

	// The target row is left unchanged on conflict
	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "bruno@x.com", customers[1].Email)
}

func TestDeleteCustomerCascadesOrders(t *testing.T) {
	st := newTestStore(t)

	ana, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)
	bruno, err := st.AddCustomer("Bruno", "bruno@x.com", "222")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := st.AddOrder(ana.ID, "Widget", decimal.NewFromFloat(10))
		require.NoError(t, err)
	}
	_, err = st.AddOrder(bruno.ID, "Gadget", decimal.NewFromFloat(20))
	require.NoError(t, err)

	require.NoError(t, st.DeleteCustomer(ana.ID))

	customers, err := st.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Bruno", customers[0].Name)

	// All of Ana's orders were removed with her; Bruno's survives
	rows, err := st.ListOrdersWithCustomers()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gadget", rows[0].Product)
	assert.Equal(t, "Bruno", rows[0].CustomerName)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.DeleteCustomer(42)
	require.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestAddOrderMissingCustomer(t *testing.T) {
	st := newTestStore(t)

	_, err := st.AddOrder(42, "Widget", decimal.NewFromFloat(19.9))
	require.ErrorIs(t, err, store.ErrCustomerNotFound)

	// No insert happened
	rows, err := st.ListOrdersWithCustomers()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddOrderSetsCurrentDate(t *testing.T) {
	st := newTestStore(t)

	ana, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)

	order, err := st.AddOrder(ana.ID, "Widget", decimal.NewFromFloat(19.9))
	require.NoError(t, err)

	y, m, d := time.Now().Date()
	oy, om, od := order.Date.Date()
	assert.Equal(t, y, oy)
	assert.Equal(t, m, om)
	assert.Equal(t, d, od)
}

func TestListOrdersWithCustomersSorting(t *testing.T) {
	st := newTestStore(t)

	bruno, err := st.AddCustomer("Bruno", "bruno@x.com", "222")
	require.NoError(t, err)
	ana, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)

	older, err := st.AddOrder(ana.ID, "Old Widget", decimal.NewFromFloat(5))
	require.NoError(t, err)
	_, err = st.AddOrder(ana.ID, "New Widget", decimal.NewFromFloat(7))
	require.NoError(t, err)
	_, err = st.AddOrder(bruno.ID, "Gadget", decimal.NewFromFloat(9))
	require.NoError(t, err)

	// Push one of Ana's orders into the past to exercise the date ordering
	conn, err := db.Open(st.Path)
	require.NoError(t, err)
	err = conn.Model(&domain.Order{}).Where("id = ?", older.ID).
		Update("date", time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)).Error
	db.Close(conn)
	require.NoError(t, err)

	rows, err := st.ListOrdersWithCustomers()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Customer name ascending, then order date descending
	assert.Equal(t, "Ana", rows[0].CustomerName)
	assert.Equal(t, "New Widget", rows[0].Product)
	assert.Equal(t, "Ana", rows[1].CustomerName)
	assert.Equal(t, "Old Widget", rows[1].Product)
	assert.Equal(t, "Bruno", rows[2].CustomerName)
}

func TestOrderAmountFormatsAsCurrency(t *testing.T) {
	st := newTestStore(t)

	ana, err := st.AddCustomer("Ana", "ana@x.com", "111")
	require.NoError(t, err)
	_, err = st.AddOrder(ana.ID, "Widget", decimal.NewFromFloat(19.9))
	require.NoError(t, err)

	rows, err := st.ListOrdersWithCustomers()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "19.90", rows[0].Amount.StringFixed(2))
}
