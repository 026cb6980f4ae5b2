package catalog

import "github.com/julianstephens/resurs/internal/models"

// MoodInfo is the display metadata for a mood. Icon and color values are
// opaque tokens for whatever renders them.
type MoodInfo struct {
	Type        models.MoodType
	Label       string
	Description string
	Icon        string
	Color       string
	BgColor     string
	BorderColor string
	SelectColor string
}

// UnknownMood is returned for mood values the catalog does not know.
var UnknownMood = MoodInfo{
	Label:       "Неизвестное настроение",
	Description: "unknown mood",
	Icon:        "help-circle",
	Color:       "text-stone-400",
	BgColor:     "bg-stone-50",
	BorderColor: "border-stone-200",
	SelectColor: "ring-stone-200",
}

var moodOptions = []MoodInfo{
	{models.MoodJoy, "Радость", "Легкость и свет внутри", "smile", "text-amber-500", "bg-amber-50", "border-amber-200", "ring-amber-200"},
	{models.MoodGratitude, "Благодарность", "Тепло и принятие", "heart", "text-rose-500", "bg-rose-50", "border-rose-200", "ring-rose-200"},
	{models.MoodEnergy, "Энергия", "Сила действовать", "zap", "text-yellow-500", "bg-yellow-50", "border-yellow-200", "ring-yellow-200"},
	{models.MoodCalm, "Спокойствие", "Баланс и тишина", "anchor", "text-teal-500", "bg-teal-50", "border-teal-200", "ring-teal-200"},
	{models.MoodTired, "Усталость", "Нужна пауза и отдых", "coffee", "text-stone-500", "bg-stone-100", "border-stone-200", "ring-stone-200"},
	{models.MoodAnxiety, "Тревога", "Беспокойные мысли", "wind", "text-violet-500", "bg-violet-50", "border-violet-200", "ring-violet-200"},
	{models.MoodSadness, "Грусть", "Хочется поплакать", "cloud-rain", "text-blue-500", "bg-blue-50", "border-blue-200", "ring-blue-200"},
	{models.MoodIrritation, "Раздражение", "Всё бесит", "frown", "text-red-500", "bg-red-50", "border-red-200", "ring-red-200"},
}

// legacyLabels keep old journal entries readable. Tokens come from the mood
// each alias canonicalizes to.
var legacyLabels = map[models.MoodType]string{
	models.MoodNeedSupport: "Нужна поддержка",
	models.MoodReadyToGrow: "Готовность расти",
}

// Moods returns the picker options in display order.
func Moods() []MoodInfo {
	out := make([]MoodInfo, len(moodOptions))
	copy(out, moodOptions)
	return out
}

// MoodMetadata looks up display metadata for m. Legacy values resolve to a
// fallback entry; unknown values return UnknownMood and false.
func MoodMetadata(m models.MoodType) (MoodInfo, bool) {
	for _, opt := range moodOptions {
		if opt.Type == m {
			return opt, true
		}
	}

	if label, ok := legacyLabels[m]; ok {
		base, _ := MoodMetadata(m.Canonical())
		base.Type = m
		base.Label = label
		return base, true
	}

	info := UnknownMood
	info.Type = m
	return info, false
}

// MoodLabel is a shortcut for the label used in journal listings.
func MoodLabel(m models.MoodType) string {
	info, _ := MoodMetadata(m)
	return info.Label
}
