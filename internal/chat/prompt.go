package chat

import (
	"fmt"
	"strings"

	"github.com/poopky/chat-backend/internal/catalog"
	"github.com/poopky/chat-backend/internal/llm"
)

const systemInstructionFormat = `당신은 POOPKY 쇼핑몰의 전문 상품 추천 AI 챗봇입니다.
당신의 유일한 목표는 사용자의 질문을 분석하여 제공된 상품 목록 중 가장 적합한 상품 1개를 고르고, 그 결과를 **반드시** 지정된 JSON Schema에 맞춰 출력하는 것입니다.
**절대로** JSON 외의 다른 텍스트(설명, 마크다운 코드 블록 마커 등)를 추가하지 마세요. 오직 유효한 JSON 객체만 출력해야 합니다.
**"reply" 필드**에는 사용자에게 보여줄 친절하고 상세한 답변을 작성하세요.
**"product_id" 필드**에는 추천할 상품의 ID를 **반드시** 포함해야 합니다.

## 상품 목록:
%s

만약 질문이 상품 추천과 관련 없더라도, "product_id"는 목록에서 아무 상품 ID(예: %s)를 선택하고 "reply"에 "하네스에 대해 궁금한 점이 있다면 언제든 물어봐 주세요!"와 같이 추천을 유도하는 문구를 추가하세요.
절대 상품 목록이나 ID를 사용자에게 직접 노출하지 마세요.`

// buildInstruction renders the catalog manifest and task rules into one
// model instruction. Pure and total: any catalog and any message produce a
// valid instruction.
func buildInstruction(cat *catalog.Catalog, message string) llm.Instruction {
	var manifest strings.Builder
	exampleID := "1"
	for i, p := range cat.Products() {
		if i == 0 {
			exampleID = p.ID.String()
		}
		fmt.Fprintf(&manifest, "ID: %s, 이름: %s, 가격: %s, 특징: [%s], Link: %s\n",
			p.ID, p.Name, p.Price, p.Description, p.Link)
	}
	return llm.Instruction{
		System:        fmt.Sprintf(systemInstructionFormat, strings.TrimRight(manifest.String(), "\n"), exampleID),
		User:          "사용자 질문: " + message,
		ProductIDType: cat.Kind().SchemaType(),
	}
}
