package catalog

// Repository is a product source the catalog is loaded from once at startup.
type Repository interface {
	List() ([]Product, error)
}

// InMemoryRepository serves a fixed product list, used for the built-in seed
// and for tests.
type InMemoryRepository struct {
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}
