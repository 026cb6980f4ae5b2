package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/affirmation"
	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/progression"
	"github.com/julianstephens/resurs/internal/validation"
)

type SessionState int

const (
	StateHome SessionState = iota
	StatePractices
	StateGarden
	StateJournal
	StateLibrary
	StateSettings
	StateOnboarding
	StateMoodForm
	StateWinForm
	StateSettingsForm
	StateTierForm
	StateReading
)

// tabCount is the number of states reachable with tab; they come first.
const tabCount = int(StateSettings) + 1

var tabNames = []string{"Главная", "Практики", "Сад", "Дневник", "Библиотека", "Настройки"}

// AffirmationMsg carries a finished affirmation request into the program.
type AffirmationMsg affirmation.Result

// Form inputs live behind pointers so huh keeps writing to the same values
// while the model is copied between updates.
type onboardingInput struct {
	name string
	mood models.MoodType
}

type moodInput struct {
	mood models.MoodType
	note string
}

type winInput struct {
	text string
}

type settingsInput struct {
	wakeUp  string
	morning bool
	evening bool
	weekly  bool
}

type tierInput struct {
	level models.SubscriptionLevel
}

type Model struct {
	state         SessionState
	previousState SessionState

	progression *progression.Model
	tracker     *affirmation.Tracker

	user      models.UserRecord
	onboarded bool
	moods     []models.MoodEntry
	wins      []models.AchievementEntry

	showWins       bool
	filter         int
	practiceCursor int
	articleCursor  int
	article        models.Article

	affirmation    string
	pendingRequest string
	status         string
	err            error

	form       *huh.Form
	onboarding *onboardingInput
	moodIn     *moodInput
	winIn      *winInput
	settingsIn *settingsInput
	tierIn     *tierInput

	keys   KeyMap
	help   help.Model
	width  int
	height int
	now    func() time.Time
}

// NewModel loads the stored user and journal. A user who has not onboarded
// yet starts in the onboarding form.
func NewModel(p *progression.Model, tracker *affirmation.Tracker) (Model, error) {
	m := Model{
		state:       StateHome,
		progression: p,
		tracker:     tracker,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		now:         time.Now,
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	if !m.onboarded {
		m.openOnboarding()
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m *Model) reload() error {
	user, ok, err := m.progression.LoadUser()
	if err != nil {
		return err
	}
	m.user = user
	m.onboarded = ok
	return m.reloadJournal()
}

func (m *Model) reloadJournal() error {
	moods, err := m.progression.Journal().Moods()
	if err != nil {
		return err
	}
	wins, err := m.progression.Journal().Achievements()
	if err != nil {
		return err
	}
	m.moods = moods
	m.wins = wins
	return nil
}

// activeTab is the tab to highlight; forms keep the tab they were opened from.
func (m Model) activeTab() SessionState {
	if int(m.state) < tabCount {
		return m.state
	}
	if m.state == StateReading {
		return StateLibrary
	}
	return m.previousState
}

func (m Model) isFormState() bool {
	switch m.state {
	case StateOnboarding, StateMoodForm, StateWinForm, StateSettingsForm, StateTierForm:
		return m.form != nil
	}
	return false
}

func (m Model) visiblePractices() []models.Practice {
	filters := catalog.PracticeFilters()
	return catalog.PracticesByCategory(filters[m.filter].Category)
}

func (m *Model) requestAffirmation(mood models.MoodType) {
	if m.tracker == nil {
		m.affirmation = affirmation.Fallback(mood)
		return
	}
	ticket := m.tracker.Request(context.Background(), mood, m.user.Name)
	m.pendingRequest = ticket.ID
}

func (m *Model) openForm(state SessionState, form *huh.Form) tea.Cmd {
	if int(m.state) < tabCount {
		m.previousState = m.state
	}
	m.state = state
	m.err = nil
	m.status = ""
	m.form = form.WithShowHelp(true)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 4)
	}
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.state = m.previousState
}

func (m *Model) openOnboarding() tea.Cmd {
	m.onboarding = &onboardingInput{mood: models.MoodCalm}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Как тебя зовут?").
				Validate(func(s string) error {
					_, err := validation.UserName(s)
					return err
				}).
				Value(&m.onboarding.name),
			huh.NewSelect[models.MoodType]().
				Title("Как ты себя чувствуешь сейчас?").
				Options(cli.MoodOptions()...).
				Value(&m.onboarding.mood),
		),
	)
	m.previousState = StateHome
	return m.openForm(StateOnboarding, form)
}

func (m *Model) openMoodForm() tea.Cmd {
	m.moodIn = &moodInput{mood: models.MoodCalm}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MoodType]().
				Title("Как ты себя чувствуешь?").
				Options(cli.MoodOptions()...).
				Value(&m.moodIn.mood),
			huh.NewText().
				Title("Заметка (необязательно)").
				Value(&m.moodIn.note),
		),
	)
	return m.openForm(StateMoodForm, form)
}

func (m *Model) openWinForm() tea.Cmd {
	m.winIn = &winInput{}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Чем ты сегодня гордишься?").
				Validate(func(s string) error {
					_, err := validation.AchievementText(s)
					return err
				}).
				Value(&m.winIn.text),
		),
	)
	return m.openForm(StateWinForm, form)
}

func (m *Model) openSettingsForm() tea.Cmd {
	s := m.user.Notifications
	m.settingsIn = &settingsInput{
		wakeUp:  s.WakeUpTime,
		morning: s.MorningEnabled,
		evening: s.EveningEnabled,
		weekly:  s.WeeklyEnabled,
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Время пробуждения (ЧЧ:ММ)").
				Validate(validation.WakeUpTime).
				Value(&m.settingsIn.wakeUp),
			huh.NewConfirm().
				Title("Утреннее напоминание").
				Value(&m.settingsIn.morning),
			huh.NewConfirm().
				Title("Вечернее напоминание").
				Value(&m.settingsIn.evening),
			huh.NewConfirm().
				Title("Итоги недели").
				Value(&m.settingsIn.weekly),
		),
	)
	return m.openForm(StateSettingsForm, form)
}

func (m *Model) openTierForm() tea.Cmd {
	m.tierIn = &tierInput{level: m.user.SubscriptionLevel.Normalize()}
	opts := []huh.Option[models.SubscriptionLevel]{
		huh.NewOption(catalog.TierName(models.LevelFree), models.LevelFree),
	}
	for _, t := range catalog.Tiers() {
		if t.ID == models.LevelFree {
			continue
		}
		opts = append(opts, huh.NewOption(t.Name+" · "+t.Price, t.ID))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.SubscriptionLevel]().
				Title("Тариф").
				Options(opts...).
				Value(&m.tierIn.level),
		),
	)
	return m.openForm(StateTierForm, form)
}
