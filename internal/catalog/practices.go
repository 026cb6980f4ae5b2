package catalog

import "github.com/julianstephens/resurs/internal/models"

// Filter is one chip in the practices view.
type Filter struct {
	Category models.PracticeCategory
	Label    string
}

var practices = []models.Practice{
	{ID: "p1", Title: "Утренний настрой", Description: "Короткая практика благодарности новому дню.", Duration: "2 мин", Category: models.CategoryMorning},
	{ID: "p2", Title: `Дыхание "Квадрат"`, Description: "Быстрое снятие напряжения через ритмичное дыхание.", Duration: "4 мин", Category: models.CategoryStress},
	{ID: "p3", Title: "Заземление", Description: "Вернись в тело, почувствуй опору под ногами.", Duration: "3 мин", Category: models.CategoryGrounding},
	{ID: "p4", Title: "Вечернее отпускание", Description: "Мягко завершаем день и отпускаем тревоги.", Duration: "5 мин", Category: models.CategoryEvening},
	{ID: "p5", Title: "Сканирование тела", Description: "Глубокое расслабление перед сном.", Duration: "10 мин", Category: models.CategoryCalm, IsLocked: true},
	{ID: "p6", Title: "Приветствие Солнцу", Description: "Мягкая йога для пробуждения тела.", Duration: "7 мин", Category: models.CategoryYoga},
	{ID: "p7", Title: "Дыхание 4-7-8", Description: "Техника для быстрого засыпания.", Duration: "5 мин", Category: models.CategoryBreathing},
	{ID: "p8", Title: "SOS: Стряхни стресс", Description: "Активная техника для сброса напряжения.", Duration: "1 мин", Category: models.CategorySOS},
}

var practiceFilters = []Filter{
	{models.CategoryBreathing, "Дыхание"},
	{models.CategoryYoga, "Йога"},
	{models.CategoryMeditation, "Медитации"},
	{models.CategorySOS, "SOS"},
	{models.CategoryAll, "Все"},
}

func Practices() []models.Practice {
	out := make([]models.Practice, len(practices))
	copy(out, practices)
	return out
}

func Practice(id string) (models.Practice, bool) {
	for _, p := range practices {
		if p.ID == id {
			return p, true
		}
	}
	return models.Practice{}, false
}

// PracticesByCategory filters the catalog in insertion order. "all" returns
// everything and "meditation" also matches calm practices.
func PracticesByCategory(category models.PracticeCategory) []models.Practice {
	if category == models.CategoryAll {
		return Practices()
	}

	out := []models.Practice{}
	for _, p := range practices {
		if p.Category == category || (category == models.CategoryMeditation && p.Category == models.CategoryCalm) {
			out = append(out, p)
		}
	}
	return out
}

// PracticeFilters lists the filter chips offered by the practices view.
func PracticeFilters() []Filter {
	out := make([]Filter, len(practiceFilters))
	copy(out, practiceFilters)
	return out
}

// DisplayCategory is the category shown on a practice card; calm practices
// are presented as meditations.
func DisplayCategory(c models.PracticeCategory) models.PracticeCategory {
	if c == models.CategoryCalm {
		return models.CategoryMeditation
	}
	return c
}

// ValidCategory reports whether c is a known category or "all".
func ValidCategory(c models.PracticeCategory) bool {
	switch c {
	case models.CategoryMorning, models.CategoryEvening, models.CategoryStress,
		models.CategoryGrounding, models.CategoryCalm, models.CategoryYoga,
		models.CategoryMeditation, models.CategoryBreathing, models.CategorySOS,
		models.CategoryAll:
		return true
	}
	return false
}
