package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/garden"
	"github.com/julianstephens/resurs/internal/notifier"
	"github.com/julianstephens/resurs/internal/progression"
	"github.com/julianstephens/resurs/internal/scheduler"
)

func (m Model) View() string {
	if m.state == StateOnboarding && m.form != nil {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("🌱 Добро пожаловать в Ресурс"),
			m.form.View(),
			m.viewError(),
		))
	}

	var content string
	switch {
	case m.isFormState():
		content = m.form.View()
	case m.state == StateHome:
		content = m.viewHome()
	case m.state == StatePractices:
		content = m.viewPractices()
	case m.state == StateGarden:
		content = m.viewGarden()
	case m.state == StateJournal:
		content = m.viewJournal()
	case m.state == StateLibrary:
		content = m.viewLibrary()
	case m.state == StateReading:
		content = m.viewReading()
	case m.state == StateSettings:
		content = m.viewSettings()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		"",
		content,
		"",
		m.viewError(),
		m.viewStatus(),
		m.help.View(m.keys),
	))
}

func (m Model) viewTabs() string {
	active := m.activeTab()
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewError() string {
	if m.err == nil {
		return ""
	}
	return dangerStyle.Render("❌ " + m.err.Error())
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s, %s", progression.Greeting(m.now()), m.user.Name)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Цветов в саду") + valueStyle.Render(fmt.Sprintf("%d", m.user.Flowers)) + "\n")
	b.WriteString(labelStyle.Render("Тариф") + valueStyle.Render(catalog.TierName(m.user.SubscriptionLevel)) + "\n")
	if len(m.moods) > 0 {
		last := m.moods[0]
		b.WriteString(labelStyle.Render("Последнее настроение") + valueStyle.Render(cli.MoodBadge(last.Mood)))
		b.WriteString(lockedStyle.Render("  " + cli.FormatDate(last.Date)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.pendingRequest != "":
		b.WriteString(lockedStyle.Render("Подбираю слова поддержки..."))
	case m.affirmation != "":
		width := 60
		if m.width > 10 {
			width = m.width - 10
		}
		b.WriteString(affirmationStyle.Width(width).Render(m.affirmation))
	default:
		b.WriteString(lockedStyle.Render("Нажми m, чтобы отметить настроение, или w, чтобы записать победу."))
	}
	return b.String()
}

func (m Model) viewPractices() string {
	var b strings.Builder
	chips := []string{}
	for i, f := range catalog.PracticeFilters() {
		if i == m.filter {
			chips = append(chips, activeTabStyle.Render(f.Label))
		} else {
			chips = append(chips, inactiveTabStyle.Render(f.Label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	b.WriteString("\n\n")

	visible := m.visiblePractices()
	if len(visible) == 0 {
		b.WriteString(lockedStyle.Render("В этой категории пока нет практик"))
		return b.String()
	}

	for i, p := range visible {
		line := fmt.Sprintf("%s · %s", p.Title, p.Duration)
		if p.IsLocked {
			line = "🔒 " + line
		}
		switch {
		case i == m.practiceCursor:
			b.WriteString(selectedStyle.Render("▸ " + line))
			b.WriteString("\n")
			b.WriteString(lockedStyle.Render("    " + p.Description))
		case p.IsLocked:
			b.WriteString(lockedStyle.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewGarden() string {
	if m.user.Flowers == 0 {
		return lockedStyle.Render(garden.EmptyMessage)
	}

	width, height := 60, 16
	if m.width > 30 {
		width = m.width - 8
	}
	if m.height > 20 {
		height = m.height - 14
	}
	title := titleStyle.Render(fmt.Sprintf("Твой сад · %d", m.user.Flowers))
	return lipgloss.JoinVertical(lipgloss.Left, title,
		gardenStyle.Render(garden.RenderStyled(garden.Layout(m.user.Flowers), width, height)))
}

func (m Model) journalRows() int {
	if m.height > 16 {
		return m.height - 14
	}
	return 10
}

func (m Model) viewJournal() string {
	var b strings.Builder
	rows := m.journalRows()

	if m.showWins {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Победы (%d)", len(m.wins))))
		b.WriteString("\n")
		if len(m.wins) == 0 {
			b.WriteString(lockedStyle.Render("Пока пусто. Нажми w, чтобы записать первую победу."))
		}
		for i, e := range m.wins {
			if i >= rows {
				b.WriteString(lockedStyle.Render(fmt.Sprintf("... ещё %d", len(m.wins)-rows)))
				break
			}
			fmt.Fprintf(&b, "%s  🏆 %s\n", lockedStyle.Render(cli.FormatDate(e.Date)), e.Text)
		}
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Настроение (%d)", len(m.moods))))
	b.WriteString("\n")
	if len(m.moods) == 0 {
		b.WriteString(lockedStyle.Render("Пока пусто. Нажми m, чтобы отметить настроение."))
	}
	for i, e := range m.moods {
		if i >= rows {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("... ещё %d", len(m.moods)-rows)))
			break
		}
		fmt.Fprintf(&b, "%s  %s", lockedStyle.Render(cli.FormatDate(e.Date)), cli.MoodBadge(e.Mood))
		if e.Note != "" {
			b.WriteString(lockedStyle.Render("  " + e.Note))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewLibrary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Библиотека · " + catalog.TierName(m.user.SubscriptionLevel)))
	b.WriteString("\n")
	for i, a := range catalog.Articles() {
		locked := catalog.ArticleLocked(a, m.user.SubscriptionLevel)
		line := fmt.Sprintf("%s · %s", a.Category, a.Title)
		if locked {
			line = "🔒 " + line
		}
		switch {
		case i == m.articleCursor:
			b.WriteString(selectedStyle.Render("▸ " + line))
		case locked:
			b.WriteString(lockedStyle.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lockedStyle.Render("Сообщество: " + catalog.CommunityLink))
	return b.String()
}

func (m Model) viewReading() string {
	width := 60
	if m.width > 10 {
		width = m.width - 10
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lockedStyle.Render(m.article.Category),
		titleStyle.Render(m.article.Title),
		lipgloss.NewStyle().Width(width).Render(m.article.Content),
		"",
		lockedStyle.Render("esc: назад"),
	)
}

func onOff(v bool) string {
	if v {
		return "вкл"
	}
	return "выкл"
}

func (m Model) viewSettings() string {
	s := m.user.Notifications
	rows := []string{
		titleStyle.Render("Напоминания"),
		labelStyle.Render("Пробуждение") + valueStyle.Render(s.WakeUpTime),
		labelStyle.Render("Утреннее") + valueStyle.Render(fmt.Sprintf("%s (%s)", onOff(s.MorningEnabled), notifier.MorningTime(s.WakeUpTime))),
		labelStyle.Render("Вечернее") + valueStyle.Render(fmt.Sprintf("%s (%s)", onOff(s.EveningEnabled), notifier.EveningTime)),
		labelStyle.Render("Итоги недели") + valueStyle.Render(onOff(s.WeeklyEnabled)),
	}

	if upcoming, err := scheduler.New().Upcoming(s, m.now()); err == nil && len(upcoming) > 0 {
		next := upcoming[0]
		line := labelStyle.Render("Ближайшее") + valueStyle.Render(cli.FormatDate(next.At))
		rows = append(rows, "", line+lockedStyle.Render(" · "+string(next.Kind)))
	}

	rows = append(rows, "", lockedStyle.Render("Нажми e, чтобы изменить."))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
