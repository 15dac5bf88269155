package catalog

import (
	"database/sql"
)

// PostgresRepository loads the catalog from the `product` table. The table is
// maintained by the shop admin tools, not by this service; we only read it
// once while wiring dependencies.
type PostgresRepository struct {
	db *sql.DB
}

const listProductsQuery = `
	SELECT product_id, product_name, product_price, product_pic, product_link, product_desc
	FROM product
	ORDER BY product_id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var (
			id    int64
			name  string
			price sql.NullString
			pic   sql.NullString
			link  sql.NullString
			desc  sql.NullString
		)
		if err := rows.Scan(&id, &name, &price, &pic, &link, &desc); err != nil {
			return nil, err
		}
		out = append(out, Product{
			ID:          NumberID(id),
			Name:        name,
			Price:       price.String,
			Image:       pic.String,
			Link:        link.String,
			Description: desc.String,
		})
	}
	return out, rows.Err()
}
