package chat

import (
	"log"

	"github.com/poopky/chat-backend/internal/catalog"
)

// resolve maps the model's pick to a real catalog entry. An unknown id falls
// back to a random product: the widget always renders a product card, and
// showing some harness beats showing none. pick(n) returns an index in
// [0, n) and is injected so tests are deterministic.
func resolve(rec recommendation, cat *catalog.Catalog, pick func(int) int) Result {
	p, err := cat.ByID(rec.productID)
	if err != nil {
		if cat.Len() == 0 {
			return Result{Reply: rec.reply}
		}
		log.Printf("chat: product id %s not in catalog, picking a fallback", rec.productID)
		p = cat.At(pick(cat.Len()))
	}
	return Result{Reply: rec.reply, Product: &p}
}
