package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/carshooter/ecs"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID          ecs.EntityId
	ArchetypeID uint32
	Label       string
	Components  []string
}

// CollectRows lists every live entity in storage. labeler names rows and may be nil.
func CollectRows(storage *ecs.Storage, labeler func(ecs.EntityId) string) []EntityRow {
	var rows []EntityRow
	for _, archetype := range storage.Archetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		for id := range archetype.Iter() {
			row := EntityRow{ID: id, ArchetypeID: archetype.ID(), Components: names}
			if labeler != nil {
				row.Label = labeler(id)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// FilterRows keeps the rows whose label, id or component names contain text,
// ignoring case.
func FilterRows(rows []EntityRow, text string) []EntityRow {
	if text == "" {
		return rows
	}
	needle := strings.ToLower(text)
	return slices.DeleteFunc(slices.Clone(rows), func(r EntityRow) bool {
		return !strings.Contains(strings.ToLower(r.Label), needle) &&
			!strings.Contains(fmt.Sprint(r.ID), needle) &&
			!strings.Contains(strings.ToLower(strings.Join(r.Components, " ")), needle)
	})
}

// EntityBrowser is a paged, filterable table of entities.
type EntityBrowser struct {
	labeler  func(ecs.EntityId) string
	perPage  int
	page     int
	filter   string
	selected ecs.EntityId
}

func NewEntityBrowser(perPage int, labeler func(ecs.EntityId) string) *EntityBrowser {
	return &EntityBrowser{labeler: labeler, perPage: perPage}
}

// Selected returns the entity last clicked, or zero.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

// Select marks id as the current selection.
func (eb *EntityBrowser) Select(id ecs.EntityId) {
	eb.selected = id
}

// pageBounds clamps the current page and returns its slice bounds.
func (eb *EntityBrowser) pageBounds(n int) (start, end, pages int) {
	pages = max((n+eb.perPage-1)/eb.perPage, 1)
	eb.page = min(max(eb.page, 0), pages-1)
	start = eb.page * eb.perPage
	end = min(start+eb.perPage, n)
	return start, end, pages
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &eb.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filter = ""
	}

	rows := FilterRows(CollectRows(storage, eb.labeler), eb.filter)
	start, end, pages := eb.pageBounds(len(rows))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Label")
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, row := range rows[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			name := row.Label
			if name == "" {
				name = "-"
			}
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d", name, row.ID), eb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.ID
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X:%d", row.ArchetypeID, row.ID.Index()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.Components)))
		}
		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(rows)))
	imgui.SameLine()
	if imgui.Button("Prev") {
		eb.page--
	}
	imgui.SameLine()
	if imgui.Button("Next") {
		eb.page++
	}

	imgui.End()
}
