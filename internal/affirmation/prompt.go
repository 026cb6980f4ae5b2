package affirmation

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/models"
)

var moodDescriptions = map[models.MoodType]string{
	models.MoodJoy:         "радость, легкость, свет",
	models.MoodGratitude:   "благодарность, любовь, тепло",
	models.MoodEnergy:      "энергия, сила, готовность действовать",
	models.MoodCalm:        "спокойствие, баланс",
	models.MoodTired:       "усталость, нет сил, нужна пауза",
	models.MoodAnxiety:     "тревога, беспокойство, страх",
	models.MoodSadness:     "грусть, меланхолия, слезы",
	models.MoodIrritation:  "раздражение, злость, гнев",
	models.MoodNeedSupport: "усталость, тревога, нужна поддержка",
	models.MoodReadyToGrow: "энергия, готовность действовать",
}

// MoodDescription is the phrase the prompt uses for a mood.
func MoodDescription(m models.MoodType) string {
	if d, ok := moodDescriptions[m]; ok {
		return d
	}
	return "нейтральное"
}

const promptTemplate = `Ты - мудрый, заботливый, мягкий наставник для женщин в приложении "Я-Ресурс".
Пользовательницу зовут %s.
Ее текущее настроение: %s.

Напиши ОЧЕНЬ короткое (максимум 25 слов) поддерживающее послание или аффирмацию для нее.
Тон: теплый, принимающий, спокойный. Используй "Ты".
Если настроение хорошее - порадуйся с ней и вдохнови сохранить это.
Если плохое - поддержи, не давай советов, просто будь рядом словами.`

func Prompt(m models.MoodType, userName string) string {
	return fmt.Sprintf(promptTemplate, userName, MoodDescription(m))
}
