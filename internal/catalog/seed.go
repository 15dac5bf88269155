package catalog

// DefaultSeed is the POOPKY harness lineup the chat widget launched with.
// It is used whenever no DATABASE_URL is configured, e.g. local development.
func DefaultSeed() []Product {
	return []Product{
		{
			ID:          NumberID(1),
			Name:        "프리미엄 가죽 하네스",
			Price:       "72,000",
			Image:       "https://placehold.co/100x100/A0522D/ffffff?text=Leather",
			Link:        "https://poopky-mall.com/product/1",
			Description: "고급스러운 가죽 소재",
		},
		{
			ID:          NumberID(2),
			Name:        "반사 스트라이프 산책 하네스",
			Price:       "45,000",
			Image:       "https://placehold.co/100x100/0000FF/ffffff?text=Reflective",
			Link:        "https://poopky-mall.com/product/2",
			Description: "야간 산책용 반사 기능",
		},
		{
			ID:          NumberID(3),
			Name:        "초경량 소프트 에어 하네스",
			Price:       "32,000",
			Image:       "https://placehold.co/100x100/87CEEB/ffffff?text=AirMesh",
			Link:        "https://poopky-mall.com/product/3",
			Description: "가볍고 통풍 잘됨",
		},
		{
			ID:          NumberID(4),
			Name:        "대형견용 튼튼한 택티컬 하네스",
			Price:       "98,000",
			Image:       "https://placehold.co/100x100/4B0082/ffffff?text=Tactical",
			Link:        "https://poopky-mall.com/product/4",
			Description: "견고하고 튼튼함",
		},
		{
			ID:          NumberID(5),
			Name:        "맞춤형 이름 각인 하네스",
			Price:       "55,000",
			Image:       "https://placehold.co/100x100/FFD700/000000?text=Custom",
			Link:        "https://poopky-mall.com/product/5",
			Description: "일반적인 소재",
		},
	}
}
