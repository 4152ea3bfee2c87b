package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sokoban/ecs"
)

// StatsPanel shows frame timing, scheduler stage timings and the archetype
// breakdown of a world storage.
type StatsPanel struct {
	world     *ecs.Storage
	scheduler *ecs.Scheduler

	frameHistory []float32
	frameIndex   int
	lastFrame    time.Time
}

func NewStatsPanel(world *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		world:        world,
		scheduler:    scheduler,
		frameHistory: make([]float32, historyFrames),
		lastFrame:    time.Now(),
	}
}

func (p *StatsPanel) sample() float32 {
	now := time.Now()
	ms := float32(now.Sub(p.lastFrame).Seconds() * 1000)
	p.lastFrame = now

	p.frameHistory[p.frameIndex] = ms
	p.frameIndex = (p.frameIndex + 1) % len(p.frameHistory)

	var total float32
	for _, ft := range p.frameHistory {
		total += ft
	}
	return total / float32(len(p.frameHistory))
}

func (p *StatsPanel) Render() {
	avg := p.sample()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 320), imgui.CondOnce)
	if !imgui.BeginV("World Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.world.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	imgui.Separator()
	sched := p.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Ticks: %d", sched.Ticks))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("StageTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Stage")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableHeadersRow()
		for _, sys := range sched.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Archetypes") {
		if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()
			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(strings.Join(arch.ComponentTypes, ", "))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}
