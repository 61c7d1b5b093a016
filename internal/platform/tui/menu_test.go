package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/highscore"
)

func menuKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuListsMazes(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "open")

	if len(m.items) < 3 {
		t.Fatalf("menu has %d items, expected the builtin mazes", len(m.items))
	}
	if m.items[m.cursor].MazeID != "open" {
		t.Errorf("cursor on %q, expected open", m.items[m.cursor].MazeID)
	}
	if view := m.View(); !strings.Contains(view, "Classic") || !strings.Contains(view, "31x28") {
		t.Errorf("view does not list the classic maze:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "classic")
	last := m.items[len(m.items)-1].MazeID

	// Moving past either end clamps.
	m = menuKeys(t, m, runeKey('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top", m.cursor)
	}
	for range len(m.items) + 2 {
		m = menuKeys(t, m, runeKey('j'))
	}
	m = menuKeys(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard || res.MazeID != last {
		t.Errorf("result = %+v, expected maze %q", res, last)
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want MenuResult
	}{
		{"scoreboard", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{WantsScoreboard: true}},
		{"quit", runeKey('q'), MenuResult{Quit: true}},
		{"back", tea.KeyMsg{Type: tea.KeyEscape}, MenuResult{Quit: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuKeys(t, NewMenuModel(core.DefaultConfig(), ""), tc.key)
			res := m.Result()
			res.Config = core.RuntimeConfig{}
			if res != tc.want {
				t.Errorf("result = %+v, expected %+v", res, tc.want)
			}
		})
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	next, _ := NewMenuModel(core.DefaultConfig(), "").Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %+v, expected 120x50", cfg)
	}
}

func TestScoreboardLoadsEntries(t *testing.T) {
	scores := &fakeScores{top: []highscore.Entry{
		{ID: 2, Player: "alice", Score: 300, Date: time.Now()},
		{ID: 1, Player: "bob", Score: 120, Date: time.Now()},
	}}
	m := NewScoreboardModel(scores, 80, 24)

	if !strings.Contains(m.View(), "Loading") {
		t.Error("scoreboard does not show loading state")
	}

	next, _ := m.Update(m.Init()())
	m = next.(ScoreboardModel)

	view := m.View()
	for _, want := range []string{"alice", "300", "bob", "#2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardStates(t *testing.T) {
	tests := []struct {
		name   string
		scores highscore.Service
		want   string
	}{
		{"no service", nil, "not available"},
		{"empty", &fakeScores{}, "No scores recorded yet"},
		{"error", &fakeScores{err: errors.New("boom")}, "Could not load scores"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.scores, 80, 24)
			if cmd := m.Init(); cmd != nil {
				next, _ := m.Update(cmd())
				m = next.(ScoreboardModel)
			}
			if view := m.View(); !strings.Contains(view, tc.want) {
				t.Errorf("view missing %q:\n%s", tc.want, view)
			}
		})
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b did not go back")
	}
	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit")
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	scores := &fakeScores{}
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 40, FPS: 60}
	m := NewSessionModel(scores, config.DefaultChaseConfig(), rc, "  ", nil)

	if m.username != "Anon" {
		t.Errorf("username = %q, expected the default player", m.username)
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil || cmd == nil {
		t.Fatalf("enter did not start a game (view %d)", m.view)
	}
	if m.lastMaze != "classic" {
		t.Errorf("started maze %q, expected classic", m.lastMaze)
	}
	if !m.gameModel.embedded || m.gameModel.player != "Anon" {
		t.Error("session game is not embedded or has the wrong player")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.view != viewMenu || m.quitting {
		t.Fatalf("esc in game should return to the menu (view %d)", m.view)
	}

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores || cmd == nil {
		t.Fatalf("tab did not open the scoreboard (view %d)", m.view)
	}
	m, _ = sessionUpdate(t, m, cmd())
	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("b on the scoreboard should return to the menu (view %d)", m.view)
	}

	m, cmd = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
