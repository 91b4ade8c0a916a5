package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-visit/internal/domain"
)

func TestCreateOrder_Defaults(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	expires := time.Now().Add(2 * time.Hour).In(time.FixedZone("UTC+5", 5*3600))
	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: expires,
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, customer)
	require.NoError(t, err)

	assert.NotZero(t, o.ID)
	assert.Equal(t, customer.ID, o.CustomerID)
	assert.Equal(t, domain.OrderStarted, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
	// the offset is dropped but the wall clock stays
	assert.Equal(t, expires.Hour(), o.ExpiresAt.Hour())
	assert.Equal(t, expires.Minute(), o.ExpiresAt.Minute())
}

func TestCreateOrder_ForeignStoreRejected(t *testing.T) {
	e := newEnv(t)
	mine := e.store(t, "mine")
	other := e.store(t, "other")
	customer := e.user(t, "cust", domain.RoleCustomer, &mine.ID)
	worker := e.user(t, "work", domain.RoleWorker, &other.ID)

	_, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().Add(time.Hour),
		StoreID:   other.ID,
		WorkerID:  worker.ID,
	}, customer)
	assert.True(t, domain.IsKind(err, domain.KindDataValidation))
}

func TestCreateOrder_WorkerFromAnotherStoreRejected(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "mine")
	other := e.store(t, "other")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	stranger := e.user(t, "work", domain.RoleWorker, &other.ID)

	_, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  stranger.ID,
	}, customer)
	assert.True(t, domain.IsKind(err, domain.KindDataValidation))
}

func TestCreateOrder_UnaffiliatedCustomer(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)
	drifter := e.user(t, "cust", domain.RoleCustomer, nil)

	_, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, drifter)
	assert.True(t, domain.IsKind(err, domain.KindDataValidation))
}

func TestUpdateOrder_Validation(t *testing.T) {
	e := newEnv(t)

	_, err := e.orders.UpdateOrder(ctx(), 1, domain.OrderPatch{})
	assert.True(t, domain.IsKind(err, domain.KindDataValidation))

	bad := domain.OrderStatus("paused")
	_, err = e.orders.UpdateOrder(ctx(), 1, domain.OrderPatch{Status: &bad})
	assert.True(t, domain.IsKind(err, domain.KindDataValidation))
}

func TestUpdateOrder_RoundTrip(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, customer)
	require.NoError(t, err)

	status := domain.OrderInProcess
	updated, err := e.orders.UpdateOrder(ctx(), o.ID, domain.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderInProcess, updated.Status)
	assert.Equal(t, o.CustomerID, updated.CustomerID)
}

func TestDeleteOrder_Missing(t *testing.T) {
	e := newEnv(t)
	assert.True(t, domain.IsNotFound(e.orders.DeleteOrder(ctx(), 404)))
}

func TestCreateVisit_HappyPath(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, customer)
	require.NoError(t, err)

	v, err := e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: o.ID}, customer)
	require.NoError(t, err)
	assert.Equal(t, o.StoreID, v.StoreID)
	assert.Equal(t, o.WorkerID, v.WorkerID)
	assert.Equal(t, customer.ID, v.CustomerID)
}

func TestCreateVisit_ExpiredOrder(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, customer)
	require.NoError(t, err)

	_, err = e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: o.ID}, customer)
	assert.True(t, domain.IsKind(err, domain.KindTimeIsUp))
}

func TestCreateVisit_OrderAlreadyCompleted(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, customer)
	require.NoError(t, err)

	_, err = e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: o.ID}, customer)
	require.NoError(t, err)

	_, err = e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: o.ID}, customer)
	assert.True(t, domain.IsKind(err, domain.KindAccessDenied))
}

func TestCreateVisit_NotYourOrder(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	owner := e.user(t, "owner", domain.RoleCustomer, &store.ID)
	intruder := e.user(t, "intruder", domain.RoleCustomer, &store.ID)
	worker := e.user(t, "work", domain.RoleWorker, &store.ID)

	o, err := e.orders.CreateOrder(ctx(), &domain.Order{
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		StoreID:   store.ID,
		WorkerID:  worker.ID,
	}, owner)
	require.NoError(t, err)

	_, err = e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: o.ID}, intruder)
	assert.True(t, domain.IsKind(err, domain.KindAccessDenied))
}

func TestCreateVisit_MissingOrder(t *testing.T) {
	e := newEnv(t)
	store := e.store(t, "bakery")
	customer := e.user(t, "cust", domain.RoleCustomer, &store.ID)

	_, err := e.orders.CreateVisit(ctx(), &domain.Visit{OrderID: 404}, customer)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetStores_NoCache(t *testing.T) {
	e := newEnv(t)
	e.store(t, "bakery")
	e.store(t, "pharmacy")

	stores, err := e.orders.GetStores(ctx(), domain.StoreFilter{Title: "bakery"})
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "bakery", stores[0].Title)
}
