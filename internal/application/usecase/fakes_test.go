package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// Dobles en memoria para los casos de uso CRUD.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		m.products[p.ID] = &cp
	}
	return m
}

func (m *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return m.GetByID(id) }

func (m *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *fakeProductRepo) UpdateQuantity(id string, qty int64, at time.Time) error {
	p, ok := m.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = qty
	p.UpdatedAt = at
	return nil
}

func (m *fakeProductRepo) UpdatePrice(id string, price decimal.Decimal, at time.Time) error {
	p, ok := m.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	p.UpdatedAt = at
	return nil
}

func (m *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *fakeProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *fakeProductRepo) ListWithExpiry() ([]*entity.Product, error) { return nil, nil }

func (m *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

func (m *fakeProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *fakeProductRepo) SetCategoryByIDs([]string, string) (int64, error) { return 0, nil }

func (m *fakeProductRepo) UpdateByIDs([]string, repository.ProductBulkUpdate) (int64, error) {
	return 0, nil
}

func (m *fakeProductRepo) DeleteByIDs([]string) (int64, error) { return 0, nil }

func (m *fakeProductRepo) Delete(id string) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	m := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		cp := *c
		m.categories[c.ID] = &cp
	}
	return m
}

func (m *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *fakeCategoryRepo) Update(c *entity.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *fakeCategoryRepo) Delete(id string) error {
	if _, ok := m.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
}

func newFakeNotificationRepo(notifications ...*entity.Notification) *fakeNotificationRepo {
	m := &fakeNotificationRepo{notifications: make(map[string]*entity.Notification)}
	for _, n := range notifications {
		cp := *n
		m.notifications[n.ID] = &cp
	}
	return m
}

func (m *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *fakeNotificationRepo) ListByUser(userID string, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if filter.IsRead != nil && n.IsRead != *filter.IsRead {
			continue
		}
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *fakeNotificationRepo) CountUnread(userID string) (int64, error) {
	var n int64
	for _, notif := range m.notifications {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *fakeNotificationRepo) MarkRead(id, userID string) error {
	n, ok := m.notifications[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (m *fakeNotificationRepo) MarkAllRead(userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *fakeNotificationRepo) Delete(id, userID string) error {
	n, ok := m.notifications[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.notifications, id)
	return nil
}
