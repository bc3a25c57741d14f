package routes

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"context"
	"strings"
	"sync"
	"time"
)

// memStore implements the product, pantry and shopping repositories over
// plain slices with the same cascade and uniqueness rules as the schema.
type memStore struct {
	mu         sync.Mutex
	seq        int64
	products   []entities.Product
	pantry     []entities.PantryEntry
	shoppables []entities.ShoppableEntry
	writeErr   error
}

func (m *memStore) nextID() int64 {
	m.seq++
	return m.seq
}

func (m *memStore) product(id int64) *entities.Product {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p
		}
	}
	return nil
}

func (m *memStore) CreateProduct(_ context.Context, product *entities.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	for _, p := range m.products {
		if p.Name == product.Name {
			return domain.ErrProductNameExists
		}
	}
	product.ID = m.nextID()
	m.products = append(m.products, *product)
	return nil
}

func (m *memStore) GetProductByID(_ context.Context, id int64) (*entities.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p := m.product(id); p != nil {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *memStore) GetProducts(ctx context.Context) ([]*entities.Product, error) {
	return m.SearchProducts(ctx, "")
}

func (m *memStore) SearchProducts(_ context.Context, search string) ([]*entities.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.Product, 0, len(m.products))
	for i := range m.products {
		if strings.Contains(m.products[i].Name, search) {
			p := m.products[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *memStore) UpdateExternalImage(_ context.Context, id int64, externalImage *string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].ExternalImage = externalImage
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteProduct(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows int64
	products := m.products[:0]
	for _, p := range m.products {
		if p.ID == id {
			rows++
			continue
		}
		products = append(products, p)
	}
	m.products = products

	pantry := m.pantry[:0]
	for _, e := range m.pantry {
		if e.ProductID != id {
			pantry = append(pantry, e)
		}
	}
	m.pantry = pantry

	shoppables := m.shoppables[:0]
	for _, s := range m.shoppables {
		if s.ProductID != id {
			shoppables = append(shoppables, s)
		}
	}
	m.shoppables = shoppables
	return rows, nil
}

func (m *memStore) AddPantryEntry(_ context.Context, productName string, entry *entities.PantryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}

	var product *entities.Product
	for i := range m.products {
		if m.products[i].Name == productName {
			product = &m.products[i]
		}
	}
	if product == nil {
		m.products = append(m.products, entities.Product{ID: m.nextID(), Name: productName})
		product = &m.products[len(m.products)-1]
	}

	entry.ID = m.nextID()
	entry.ProductID = product.ID
	entry.Product = nil
	m.pantry = append(m.pantry, *entry)
	p := *product
	entry.Product = &p
	return nil
}

func (m *memStore) loadEntry(e entities.PantryEntry) *entities.PantryEntry {
	e.Product = m.product(e.ProductID)
	if e.Product != nil {
		for _, s := range m.shoppables {
			if s.ProductID == e.ProductID {
				e.Product.Shoppables = append(e.Product.Shoppables, s)
			}
		}
	}
	return &e
}

func (m *memStore) GetPantryEntryWithProduct(_ context.Context, id int64) (*entities.PantryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.pantry {
		if e.ID == id {
			return m.loadEntry(e), nil
		}
	}
	return nil, domain.ErrPantryEntryNotFound
}

func (m *memStore) GetPantryEntriesWithProduct(context.Context) ([]*entities.PantryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.PantryEntry, 0, len(m.pantry))
	for _, e := range m.pantry {
		out = append(out, m.loadEntry(e))
	}
	return out, nil
}

func (m *memStore) GetPantryEntriesExpiringBy(_ context.Context, date time.Time) ([]*entities.PantryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entities.PantryEntry
	for _, e := range m.pantry {
		if !e.ExpiryDate.After(date) {
			out = append(out, m.loadEntry(e))
		}
	}
	return out, nil
}

func (m *memStore) MarkPantryEntryOpened(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	for i := range m.pantry {
		if m.pantry[i].ID == id {
			m.pantry[i].Opened = true
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeletePantryEntry(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	for i := range m.pantry {
		if m.pantry[i].ID == id {
			m.pantry = append(m.pantry[:i], m.pantry[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) AddShoppableEntry(_ context.Context, entry *entities.ShoppableEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.product(entry.ProductID) == nil {
		return domain.ErrProductNotFound
	}
	entry.ID = m.nextID()
	m.shoppables = append(m.shoppables, *entry)
	return nil
}

func (m *memStore) GetShoppableEntriesWithProduct(context.Context) ([]*entities.ShoppableEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.ShoppableEntry, 0, len(m.shoppables))
	for _, s := range m.shoppables {
		s.Product = m.product(s.ProductID)
		out = append(out, &s)
	}
	return out, nil
}
