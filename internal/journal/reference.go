package journal

// Reference tables for the journal domain. These are immutable,
// process-wide lookup data; the Turkish labels are the canonical values
// shown to users and stored with records.

// MoodConfig describes the canonical presentation of a mood level.
type MoodConfig struct {
	Label string
	Emoji string
	Color string
}

// MoodConfigs maps each valid mood level to its canonical label/emoji/color.
var MoodConfigs = map[MoodLevel]MoodConfig{
	1: {Label: "Çok Mutsuz", Emoji: "😢", Color: "#EF4444"},
	2: {Label: "Mutsuz", Emoji: "😞", Color: "#F97316"},
	3: {Label: "Nötr", Emoji: "😐", Color: "#EAB308"},
	4: {Label: "Mutlu", Emoji: "😊", Color: "#22C55E"},
	5: {Label: "Çok Mutlu", Emoji: "😄", Color: "#10B981"},
}

// FeedingConfig describes the canonical presentation of a feeding type.
type FeedingConfig struct {
	Icon  string
	Color string
	Unit  string
}

// FeedingConfigs maps each feeding type to its icon/color/unit.
var FeedingConfigs = map[FeedingType]FeedingConfig{
	FeedingBreast:  {Icon: "🤱", Color: "#EC4899", Unit: "dk"},
	FeedingBottle:  {Icon: "🍼", Color: "#8B5CF6", Unit: "mL"},
	FeedingFormula: {Icon: "🥣", Color: "#F59E0B", Unit: "g"},
}

// PanasCategory tags a PANAS question as positive or negative affect.
type PanasCategory string

const (
	PanasPositive PanasCategory = "positive"
	PanasNegative PanasCategory = "negative"
)

// PanasQuestion is one item of the fixed 20-question bank.
type PanasQuestion struct {
	ID       string
	Label    string
	Category PanasCategory
}

// PanasQuestions is the fixed 20-item PANAS bank: 10 positive, 10 negative.
var PanasQuestions = []PanasQuestion{
	{ID: "q1", Label: "İlgili", Category: PanasPositive},
	{ID: "q2", Label: "Sıkıntılı", Category: PanasNegative},
	{ID: "q3", Label: "Heyecanlı", Category: PanasPositive},
	{ID: "q4", Label: "Mutsuz", Category: PanasNegative},
	{ID: "q5", Label: "Güçlü", Category: PanasPositive},
	{ID: "q6", Label: "Suçlu", Category: PanasNegative},
	{ID: "q7", Label: "Korkmuş", Category: PanasNegative},
	{ID: "q8", Label: "Düşmanca", Category: PanasNegative},
	{ID: "q9", Label: "Coşkulu", Category: PanasPositive},
	{ID: "q10", Label: "Gururlu", Category: PanasPositive},
	{ID: "q11", Label: "Sinirli", Category: PanasNegative},
	{ID: "q12", Label: "Uyanık", Category: PanasPositive},
	{ID: "q13", Label: "Utanmış", Category: PanasNegative},
	{ID: "q14", Label: "İlhamlı", Category: PanasPositive},
	{ID: "q15", Label: "Gergin", Category: PanasNegative},
	{ID: "q16", Label: "Kararlı", Category: PanasPositive},
	{ID: "q17", Label: "Titiz", Category: PanasPositive},
	{ID: "q18", Label: "Huysuz", Category: PanasNegative},
	{ID: "q19", Label: "Aktif", Category: PanasPositive},
	{ID: "q20", Label: "Endişeli", Category: PanasNegative},
}

// PanasScaleLabels maps each valid score to its display label.
var PanasScaleLabels = map[int]string{
	0: "Hiç",
	1: "Biraz",
	2: "Ortalama",
	3: "Oldukça",
	4: "Çok",
	5: "Çok Fazla",
}

// panasQuestionIndex is built once for O(1) bank lookups.
var panasQuestionIndex = func() map[string]PanasQuestion {
	m := make(map[string]PanasQuestion, len(PanasQuestions))
	for _, q := range PanasQuestions {
		m[q.ID] = q
	}
	return m
}()

// QuestionByID looks up a PANAS question in the bank.
func QuestionByID(id string) (PanasQuestion, bool) {
	q, ok := panasQuestionIndex[id]
	return q, ok
}
