package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poopky/chat-backend/internal/catalog"
)

// parseCompletion checks the generated text against the declared output
// contract: a JSON object with a string reply and a product_id of the
// catalog's id kind. Anything else is rejected, never coerced.
func parseCompletion(text string, kind catalog.Kind) (recommendation, error) {
	var payload struct {
		Reply     string          `json:"reply"`
		ProductID json.RawMessage `json:"product_id"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return recommendation{}, fmt.Errorf("%w: %v (raw: %s)", ErrInvalidJSON, err, text)
	}
	if len(payload.ProductID) == 0 || string(payload.ProductID) == "null" {
		return recommendation{}, fmt.Errorf("%w: field absent", ErrBadProductID)
	}
	id, err := catalog.ParseID(payload.ProductID, kind)
	if err != nil {
		return recommendation{}, fmt.Errorf("%w: %v", ErrBadProductID, err)
	}
	reply := payload.Reply
	if strings.TrimSpace(reply) == "" {
		reply = replyEmptyFilled
	}
	return recommendation{reply: reply, productID: id}, nil
}
