package affirmation

import "github.com/julianstephens/resurs/internal/models"

const defaultFallback = "Слушай себя. Ты у себя одна, и это самое ценное."

// Fallback returns the local affirmation for a mood. Moods share a message
// with their group; unknown moods get the default.
func Fallback(m models.MoodType) string {
	switch m {
	case models.MoodJoy, models.MoodGratitude:
		return "Сохрани этот свет внутри себя. Ты сияешь."
	case models.MoodEnergy, models.MoodReadyToGrow:
		return "Сегодня мир открыт для тебя. Твори и создавай."
	case models.MoodCalm:
		return "Внутри тебя тихая гавань. Дыши и чувствуй опору."
	case models.MoodTired, models.MoodNeedSupport:
		return "Ты имеешь право на отдых. Мир подождет, пока ты восстановишься."
	case models.MoodAnxiety:
		return "Ты в безопасности. Это состояние временно, оно пройдет как облака."
	case models.MoodSadness:
		return "Твои чувства важны. Позволь себе прожить их, мы рядом."
	case models.MoodIrritation:
		return "Дыши глубже. Представь, как напряжение утекает в землю."
	default:
		return defaultFallback
	}
}
