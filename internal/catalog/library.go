package catalog

import "github.com/julianstephens/resurs/internal/models"

// CommunityLink is the Telegram channel advertised by the library view.
const CommunityLink = "https://t.me/+gRNX04COeHsxMWUy"

const freeTierName = "Бесплатный"

var articles = []models.Article{
	{
		ID:           "a1",
		Title:        "Как пользоваться библиотекой",
		Category:     "Заметка",
		Content:      "Здесь собраны полезные материалы. Часть из них доступна всем, а глубокие разборы и вебинары — по подписке.",
		RequiredTier: models.LevelFree,
	},
	{
		ID:           "a2",
		Title:        "Эмоциональное выгорание: признаки",
		Category:     "Статья",
		Content:      "Разбор основных стадий выгорания и первые шаги к восстановлению. Читать далее...",
		RequiredTier: models.LevelFree,
	},
	{
		ID:           "a3",
		Title:        `Разбор: "Синдром самозванца"`,
		Category:     "Разбор",
		Content:      "Глубокий психологический разбор причин неуверенности в себе и техники работы с внутренним критиком. (Доступно на тарифе Базовый)",
		RequiredTier: models.LevelBasic,
	},
	{
		ID:           "a4",
		Title:        `Гайд: "Утренние ритуалы"`,
		Category:     "Доп. материалы",
		Content:      "PDF-файл с конструктором идеального утра под твой тип энергии. (Доступно на тарифе Базовый)",
		RequiredTier: models.LevelBasic,
	},
	{
		ID:           "a5",
		Title:        `Вебинар: "Женские архетипы"`,
		Category:     "Вебинар",
		Content:      "Запись закрытого эфира о том, как разные роли проявляются в нашей жизни. (Доступно на тарифе Расширенный)",
		RequiredTier: models.LevelExtended,
	},
	{
		ID:           "a6",
		Title:        "Аудио-настройка на неделю",
		Category:     "Аудио",
		Content:      "Голосовая практика для настройки фокуса внимания. (Доступно на тарифе Расширенный)",
		RequiredTier: models.LevelExtended,
	},
	{
		ID:           "a7",
		Title:        "Личная супервизия",
		Category:     "Премиум",
		Content:      "Инструкция по записи на личную работу с наставником. (Доступно на тарифе Премиум)",
		RequiredTier: models.LevelPremium,
	},
}

var tiers = []models.SubscriptionTier{
	{
		ID:       models.LevelBasic,
		Name:     "Базовый",
		Price:    "999 ₽",
		Features: []string{"Ежедневные практики", "Доступ в сообщество", "2 вебинара в записи"},
	},
	{
		ID:       models.LevelExtended,
		Name:     "Расширенный",
		Price:    "2 999 ₽",
		Features: []string{"Всё из Базового", "2 офлайн встречи", "Расширенная библиотека"},
	},
	{
		ID:       models.LevelPremium,
		Name:     "Премиум",
		Price:    "8 990 ₽",
		Features: []string{"Всё включено", "Личные консультации", "Закрытые мероприятия"},
	},
}

func Articles() []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)
	return out
}

func Article(id string) (models.Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// ArticleLocked reports whether userTier is below the article's requirement.
func ArticleLocked(a models.Article, userTier models.SubscriptionLevel) bool {
	return !models.IsContentUnlocked(userTier, a.RequiredTier)
}

// Tiers returns the purchasable tier cards, lowest first.
func Tiers() []models.SubscriptionTier {
	out := make([]models.SubscriptionTier, len(tiers))
	for i, t := range tiers {
		t.Features = append([]string(nil), t.Features...)
		out[i] = t
	}
	return out
}

func Tier(level models.SubscriptionLevel) (models.SubscriptionTier, bool) {
	for _, t := range tiers {
		if t.ID == level {
			t.Features = append([]string(nil), t.Features...)
			return t, true
		}
	}
	return models.SubscriptionTier{}, false
}

// TierName returns the display name of level; unknown levels display as free.
func TierName(level models.SubscriptionLevel) string {
	level = level.Normalize()
	if level == models.LevelFree {
		return freeTierName
	}
	t, _ := Tier(level)
	return t.Name
}
