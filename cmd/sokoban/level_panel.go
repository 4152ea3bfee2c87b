package main

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sokoban/internal/session"
)

// levelPanel shows the current level, the player and the last move, and
// lets the level be switched by name.
type levelPanel struct {
	session *session.Session
	filter  string
}

func newLevelPanel(sess *session.Session) *levelPanel {
	return &levelPanel{session: sess}
}

func (p *levelPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)
	if !imgui.BeginV("Level", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := p.session.Game
	current := p.session.Current()
	imgui.Text(fmt.Sprintf("Level %d: %s", p.session.Index(), current.Name))
	imgui.Text(fmt.Sprintf("Checksum: %016x", current.Checksum()))
	if pos, ok := game.PlayerPosition(); ok {
		imgui.Text(fmt.Sprintf("Player: %s", pos))
	}
	imgui.Text(fmt.Sprintf("Pending inputs: %d", game.Pending()))
	last := game.LastMove()
	imgui.Text(fmt.Sprintf("Last move: tick %d %s %s", last.Tick, last.Direction, last.Result))

	if imgui.Button("Restart") {
		_ = p.session.Restart()
	}
	imgui.SameLine()
	if imgui.Button("Prev") {
		_ = p.session.Prev()
	}
	imgui.SameLine()
	if imgui.Button("Next") {
		_ = p.session.Next()
	}

	imgui.Separator()
	imgui.InputTextWithHint("##search", "Search...", &p.filter, imgui.InputTextFlagsNone, nil)
	for i, level := range p.session.Levels.Levels {
		if p.filter != "" && !containsFold(level.Name, p.filter) {
			continue
		}
		label := fmt.Sprintf("%d. %s##level%d", i, level.Name, i)
		if imgui.Button(label) {
			_ = p.session.Select(i)
		}
	}

	imgui.End()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
