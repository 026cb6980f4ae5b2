package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/progression"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AffirmationMsg:
		// Results for superseded requests are dropped by the tracker; this
		// guards against one arriving after the model moved on.
		if msg.RequestID == m.pendingRequest {
			m.affirmation = msg.Text
			m.pendingRequest = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.isFormState() {
			return m, nil
		}
	}

	if m.isFormState() {
		return m.updateForm(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(k, m.keys.Back) && m.state != StateOnboarding {
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			logger.Warn("form submission failed", "error", err)
			m.err = err
			m.form.State = huh.StateNormal
			return m, nil
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		if m.state == StateOnboarding {
			return m, tea.Quit
		}
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitForm() error {
	switch m.state {
	case StateOnboarding:
		return m.submitOnboarding(m.onboarding.name, m.onboarding.mood)
	case StateMoodForm:
		return m.submitMood(m.moodIn.mood, m.moodIn.note)
	case StateWinForm:
		return m.submitWin(m.winIn.text)
	case StateSettingsForm:
		return m.submitSettings(models.NotificationSettings{
			WakeUpTime:     m.settingsIn.wakeUp,
			MorningEnabled: m.settingsIn.morning,
			EveningEnabled: m.settingsIn.evening,
			WeeklyEnabled:  m.settingsIn.weekly,
		})
	case StateTierForm:
		return m.submitTier(m.tierIn.level)
	}
	return nil
}

func (m *Model) submitOnboarding(name string, mood models.MoodType) error {
	user, err := m.progression.CompleteOnboarding(name, mood)
	if err != nil {
		return err
	}
	m.user = user
	m.onboarded = true
	m.previousState = StateHome
	if err := m.reloadJournal(); err != nil {
		return err
	}
	m.status = fmt.Sprintf("%s, %s! Твой сад уже ждёт первых цветов.", progression.Greeting(m.now()), user.Name)
	m.requestAffirmation(mood)
	return nil
}

func (m *Model) submitMood(mood models.MoodType, note string) error {
	entry, err := m.progression.RecordMoodCheckin(mood, note)
	if err != nil {
		return err
	}
	if err := m.reloadJournal(); err != nil {
		return err
	}
	m.status = "✓ Настроение записано: " + cli.MoodBadge(entry.Mood)
	m.requestAffirmation(entry.Mood)
	return nil
}

func (m *Model) submitWin(text string) error {
	if _, err := m.progression.RecordAchievement(text); err != nil {
		return err
	}
	if err := m.reloadJournal(); err != nil {
		return err
	}
	m.status = "✓ Победа записана"
	return nil
}

func (m *Model) submitSettings(settings models.NotificationSettings) error {
	user, err := m.progression.UpdateNotificationSettings(m.user, settings)
	if err != nil {
		return err
	}
	m.user = user
	m.status = "✓ Настройки сохранены"
	return nil
}

func (m *Model) submitTier(level models.SubscriptionLevel) error {
	user, err := m.progression.SetSubscriptionLevel(m.user, level)
	if err != nil {
		return err
	}
	m.user = user
	m.status = "✓ Тариф: " + catalog.TierName(level)
	return nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state == StateReading {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Enter) {
			m.state = StateLibrary
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.state = SessionState((int(m.state) + 1) % tabCount)
		m.status = ""
		m.err = nil
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = SessionState((int(m.state) + tabCount - 1) % tabCount)
		m.status = ""
		m.err = nil
		return m, nil
	case key.Matches(msg, m.keys.Mood):
		cmd := m.openMoodForm()
		return m, cmd
	case key.Matches(msg, m.keys.Win):
		cmd := m.openWinForm()
		return m, cmd
	}

	switch m.state {
	case StatePractices:
		return m.updatePractices(msg)
	case StateJournal:
		if key.Matches(msg, m.keys.Toggle) {
			m.showWins = !m.showWins
		}
	case StateLibrary:
		return m.updateLibrary(msg)
	case StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			cmd := m.openSettingsForm()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updatePractices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filters := len(catalog.PracticeFilters())
	switch {
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Filter):
		m.filter = (m.filter + 1) % filters
		m.practiceCursor = 0
	case key.Matches(msg, m.keys.Left):
		m.filter = (m.filter + filters - 1) % filters
		m.practiceCursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.practiceCursor > 0 {
			m.practiceCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.practiceCursor < len(m.visiblePractices())-1 {
			m.practiceCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.completeSelectedPractice()
	}
	return m, nil
}

func (m *Model) completeSelectedPractice() {
	visible := m.visiblePractices()
	if len(visible) == 0 {
		return
	}
	p := visible[m.practiceCursor]
	if p.IsLocked {
		m.status = fmt.Sprintf("🔒 «%s» откроется с подпиской", p.Title)
		return
	}

	user, err := m.progression.CompletePracticeByID(p.ID)
	if err != nil {
		m.err = err
		return
	}
	m.user = user
	m.err = nil
	m.status = fmt.Sprintf("✓ «%s» выполнена. Цветов в саду: %d", p.Title, user.Flowers)
}

func (m Model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	articles := catalog.Articles()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.articleCursor > 0 {
			m.articleCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.articleCursor < len(articles)-1 {
			m.articleCursor++
		}
	case key.Matches(msg, m.keys.Tier):
		cmd := m.openTierForm()
		return m, cmd
	case key.Matches(msg, m.keys.Enter):
		a := articles[m.articleCursor]
		if catalog.ArticleLocked(a, m.user.SubscriptionLevel) {
			m.status = fmt.Sprintf("🔒 Доступно на тарифе «%s»", catalog.TierName(a.RequiredTier))
			return m, nil
		}
		m.article = a
		m.status = ""
		m.state = StateReading
	}
	return m, nil
}
