package usecases

import (
	"context"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/inventory"
)

type mockItemRepository struct {
	CreateFunc       func(ctx context.Context, item *inventory.Item) error
	GetByIDFunc      func(ctx context.Context, id string) (*inventory.Item, error)
	ListFunc         func(ctx context.Context) ([]*inventory.Item, error)
	UpdateStatusFunc func(ctx context.Context, item *inventory.Item) error
}

func (m *mockItemRepository) Create(ctx context.Context, item *inventory.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id string) (*inventory.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context) ([]*inventory.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockItemRepository) UpdateStatus(ctx context.Context, item *inventory.Item) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, item)
	}
	return nil
}

type mockClientRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*client.Client, error)
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) UpdateStatus(ctx context.Context, c *client.Client) error {
	return nil
}
