package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/carshooter/ecs"
)

// ComponentInspector shows and edits the components of one entity.
type ComponentInspector struct{}

func (ci *ComponentInspector) Render(storage *ecs.Storage, id ecs.EntityId) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	archetype := storage.ArchetypeByID(id.ArchetypeId())
	switch {
	case id == 0:
		imgui.Text("No entity selected")
	case archetype == nil || !storage.Alive(id):
		imgui.Text(fmt.Sprintf("Entity %d is gone", id))
	default:
		imgui.Text(fmt.Sprintf("Entity %d (archetype 0x%X)", id, archetype.ID()))
		imgui.Separator()
		for _, t := range archetype.Types() {
			if comp := storage.GetComponent(id, t); comp != nil {
				Inspect(t.Name(), comp)
			}
		}
	}

	imgui.End()
}

// Inspect draws an editable tree for the value ptr points to.
func Inspect(name string, ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		imgui.Text(fmt.Sprintf("%s: %v", name, ptr))
		return
	}
	renderValue(name, v.Elem())
}

func renderValue(name string, v reflect.Value) {
	id := fmt.Sprintf("##%s%p", name, v.Addr().Interface())

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int32(v.Int())
		label(name)
		if imgui.InputInt(id, &n) && v.CanSet() {
			v.SetInt(int64(n))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := int32(v.Uint())
		label(name)
		if imgui.InputInt(id, &n) && n >= 0 && v.CanSet() {
			v.SetUint(uint64(n))
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		label(name)
		if imgui.InputFloat(id, &f) && v.CanSet() {
			v.SetFloat(float64(f))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
		}

	case reflect.String:
		s := v.String()
		label(name)
		if imgui.InputTextWithHint(id, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
		}

	case reflect.Struct:
		fields := Fields(v.Type())
		if len(fields) == 0 {
			imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
			return
		}
		if imgui.TreeNodeStr(name) {
			for _, f := range fields {
				fv := v.Field(f.Index)
				if f.IsPointer {
					if fv.IsNil() {
						imgui.Text(f.Name + ": nil")
						continue
					}
					fv = fv.Elem()
				}
				renderValue(f.Name, fv)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))

	case reflect.Interface:
		if v.IsNil() {
			imgui.Text(name + ": nil")
		} else {
			imgui.Text(fmt.Sprintf("%s: %s", name, v.Elem().Type()))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
	}
}

func label(name string) {
	imgui.Text(name + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}
