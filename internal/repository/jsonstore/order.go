package jsonstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
)

type orderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	l := r.store.lock(collectionOrders)
	l.Lock()
	defer l.Unlock()

	orders := make([]model.Order, 0)
	if err := r.store.load(collectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	l := r.store.lock(collectionOrders)
	l.Lock()
	defer l.Unlock()

	var orders []model.Order
	if err := r.store.load(collectionOrders, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, errors.NotFound("order")
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	l := r.store.lock(collectionOrders)
	l.Lock()
	defer l.Unlock()

	var orders []model.Order
	if err := r.store.load(collectionOrders, &orders); err != nil {
		return err
	}
	orders = append(orders, *order)
	return r.store.save(collectionOrders, orders)
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	l := r.store.lock(collectionOrders)
	l.Lock()
	defer l.Unlock()

	var orders []model.Order
	if err := r.store.load(collectionOrders, &orders); err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			return r.store.save(collectionOrders, orders)
		}
	}
	return errors.NotFound("order")
}
