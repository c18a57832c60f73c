package entities

// FAQEntry maps a keyword to its canned answer. Match order follows ID
// (insertion order); updating an answer keeps the entry's position.
type FAQEntry struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Keyword string `gorm:"uniqueIndex" json:"keyword"`
	Answer  string `json:"answer"`
}

// DefaultFAQ is the seed set installed on a fresh store and the read
// fallback when the store is unreadable.
func DefaultFAQ() []FAQEntry {
	return []FAQEntry{
		{Keyword: "体験", Answer: "体験レッスンは無料で受けられます。所要時間は約1時間です。"},
		{Keyword: "料金", Answer: "単発レッスンは3,500円〜、月謝制（月4回）は6,000円〜です。"},
		{Keyword: "初心者", Answer: "もちろん大丈夫です！9割以上の生徒さんが初心者からスタートしています。"},
		{Keyword: "持ち物", Answer: "ノートと鉛筆で大丈夫です。"},
		{Keyword: "予約", Answer: "LINEメッセージまたは電話（06-6651-3832）でご予約ください。"},
		{Keyword: "場所", Answer: "大阪府大阪市西成区玉出中1-12-23"},
		{Keyword: "時間", Answer: "平日10:00-18:00、土曜日午前中です。日曜・祝日はお休みです。"},
	}
}
