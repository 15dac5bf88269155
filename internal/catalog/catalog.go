package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound    = errors.New("catalog: product not found")
	ErrDuplicateID = errors.New("catalog: duplicate product id")
)

// Kind says whether the catalog uses numeric or string product ids. The
// upstream model is told the same kind, and replies carrying the wrong kind
// are rejected instead of coerced.
type Kind int

const (
	KindNumber Kind = iota
	KindString
)

// SchemaType returns the type name used in the declared output schema.
func (k Kind) SchemaType() string {
	if k == KindString {
		return "STRING"
	}
	return "NUMBER"
}

// ID is a product identifier, either numeric or string per the catalog Kind.
// The zero value matches no product.
type ID struct {
	kind Kind
	num  int64
	str  string
}

func NumberID(n int64) ID { return ID{kind: KindNumber, num: n} }
func StringID(s string) ID { return ID{kind: KindString, str: s} }

func (id ID) Kind() Kind { return id.kind }

func (id ID) String() string {
	if id.kind == KindString {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

// MarshalJSON writes numeric ids as JSON numbers and string ids as JSON
// strings, so the widget sees the same shape the catalog was loaded with.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.kind == KindString {
		return []byte(strconv.Quote(id.str)), nil
	}
	return []byte(strconv.FormatInt(id.num, 10)), nil
}

// ParseID decodes a raw JSON value as a product id of the given kind.
// A JSON string where a number is expected (or the other way around) is an
// error: silent coercion once recommended a real product off a mistyped id.
func ParseID(raw []byte, kind Kind) (ID, error) {
	if len(raw) == 0 {
		return ID{}, fmt.Errorf("catalog: empty id")
	}
	quoted := raw[0] == '"'
	switch kind {
	case KindString:
		if !quoted {
			return ID{}, fmt.Errorf("catalog: id %s is not a string", raw)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ID{}, fmt.Errorf("catalog: bad string id %s: %v", raw, err)
		}
		return StringID(s), nil
	default:
		if quoted {
			return ID{}, fmt.Errorf("catalog: id %s is not a number", raw)
		}
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("catalog: bad numeric id %s: %v", raw, err)
		}
		return NumberID(n), nil
	}
}

// Product is one recommendable item. JSON tags match the shape the chat
// widget renders as a product card.
type Product struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
}

// Catalog is the read-only product list the pipeline recommends from. It is
// built once at startup and never mutated, so concurrent reads need no lock.
type Catalog struct {
	kind     Kind
	products []Product
	byID     map[ID]int
}

// New builds a catalog from the loaded products. Every id must be of the
// given kind and unique; a reload requires a process restart.
func New(kind Kind, products []Product) (*Catalog, error) {
	c := &Catalog{
		kind:     kind,
		products: make([]Product, len(products)),
		byID:     make(map[ID]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if p.ID.kind != kind {
			return nil, fmt.Errorf("catalog: product %q id kind does not match catalog kind", p.Name)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

func (c *Catalog) Kind() Kind { return c.kind }

func (c *Catalog) Len() int { return len(c.products) }

// Products returns a copy of the product list in load order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id ID) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i], nil
}

// At returns the product at position i in load order.
func (c *Catalog) At(i int) Product {
	return c.products[i]
}
