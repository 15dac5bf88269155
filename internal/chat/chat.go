package chat

import (
	"errors"

	"github.com/poopky/chat-backend/internal/catalog"
)

var (
	ErrEmptyMessage = errors.New("chat: message is empty")

	// ErrInvalidJSON means the model produced text that does not parse as
	// the declared output object. The wrapped detail carries the raw text
	// for the server log; it must never reach the widget.
	ErrInvalidJSON = errors.New("chat: model output is not the declared JSON shape")

	// ErrBadProductID means product_id was missing or of the wrong kind
	// (string where the catalog is numeric, or the reverse).
	ErrBadProductID = errors.New("chat: missing or mistyped product_id")
)

// User-facing strings. The upstream and malformed apologies are distinct on
// purpose so the two failure classes can be told apart from the widget side.
const (
	replyUpstreamDown = "AI 서버와 통신 중 문제가 발생했습니다. 잠시 후 다시 시도해 주세요."
	replyMalformed    = "AI가 추천 결과를 생성하지 못했습니다. 질문을 구체적으로 해 주세요."
	replyEmptyFilled  = "죄송해요, 답변을 제대로 만들지 못했어요. 다시 한번 질문해 주시겠어요?"
)

// Result is the only shape crossing back to the widget: the model's reply
// and the resolved product card. Product stays nil only when the catalog
// itself is empty.
type Result struct {
	Reply   string           `json:"reply"`
	Product *catalog.Product `json:"product"`
}

// recommendation is the validated model output before resolution.
type recommendation struct {
	reply     string
	productID catalog.ID
}
