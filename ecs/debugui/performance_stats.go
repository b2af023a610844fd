package debugui

import (
	"fmt"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/carshooter/ecs"
)

// History is a fixed-size ring of samples.
type History struct {
	samples []float32
	next    int
	filled  bool
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

func (h *History) Add(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Ordered returns the samples oldest first, padded with zeros until the ring
// has filled once.
func (h *History) Ordered() []float32 {
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}

// Average is the mean of the recorded samples.
func (h *History) Average() float32 {
	n := h.next
	if h.filled {
		n = len(h.samples)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}

// PerformanceStats shows frame times, per-system timings and storage counts.
type PerformanceStats struct {
	size    int
	frames  *History
	systems map[string]*History
	last    time.Time
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		size:    historyFrames,
		frames:  NewHistory(historyFrames),
		systems: make(map[string]*History),
	}
}

// Sample records the time since the previous call and the latest duration of
// every system.
func (ps *PerformanceStats) Sample(stats *ecs.SchedulerStats) {
	now := time.Now()
	if !ps.last.IsZero() {
		ps.frames.Add(float32(now.Sub(ps.last).Seconds() * 1000))
	}
	ps.last = now

	for _, sys := range stats.Systems {
		h, ok := ps.systems[sys.Name]
		if !ok {
			h = NewHistory(ps.size)
			ps.systems[sys.Name] = h
		}
		h.Add(float32(sys.LastDuration.Microseconds()) / 1000)
	}
}

func (ps *PerformanceStats) Render(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	stats := scheduler.GetStats()
	ps.Sample(stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 380), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	storageStats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Entities: %d in %d archetypes", storageStats.TotalEntityCount, storageStats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", storageStats.SingletonCount))

	avg := ps.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	frames := ps.frames.Ordered()
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Systems") {
			ps.renderSystemTable(stats)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Latency") {
			ps.renderLatencyPlot()
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Archetypes") {
			renderArchetypes(storageStats)
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000)
}

func (ps *PerformanceStats) renderSystemTable(stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Last (ms)")
	imgui.TableSetupColumn("Avg (ms)")
	imgui.TableSetupColumn("Max (ms)")
	imgui.TableHeadersRow()

	for _, sys := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(ms(sys.LastDuration))
		imgui.TableNextColumn()
		imgui.Text(ms(sys.AvgDuration))
		imgui.TableNextColumn()
		imgui.Text(ms(sys.MaxDuration))
	}
	imgui.EndTable()
}

func (ps *PerformanceStats) renderLatencyPlot() {
	names := make([]string, 0, len(ps.systems))
	for name := range ps.systems {
		names = append(names, name)
	}
	slices.Sort(names)

	if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
		implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
		for _, name := range names {
			samples := ps.systems[name].Ordered()
			implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
		}
		implot.EndPlot()
	}
}

func renderArchetypes(stats ecs.StorageStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		for _, arch := range stats.ArchetypeBreakdown {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", arch.ID))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}
}
