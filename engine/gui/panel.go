package gui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Control edits one parameter through a getter/setter pair. Every edit is
// written through immediately; there is no staging.
type Control interface {
	Label() string
	// Components is 1 for scalars and 3 for vectors.
	Components() int
	Value() string
	Adjust(component int, steps float32)
	Reset()
}

type FloatControl struct {
	label        string
	get          func() float32
	set          func(float32)
	step         float32
	defaultValue float32
}

// NewFloatControl remembers the current value as the reset target.
func NewFloatControl(label string, step float32, get func() float32, set func(float32)) *FloatControl {
	return &FloatControl{label: label, get: get, set: set, step: step, defaultValue: get()}
}

func (c *FloatControl) Label() string {
	return c.label
}

func (c *FloatControl) Components() int {
	return 1
}

func (c *FloatControl) Value() string {
	return fmt.Sprintf("%.3f", c.get())
}

func (c *FloatControl) Adjust(component int, steps float32) {
	c.set(c.get() + steps*c.step)
}

func (c *FloatControl) Reset() {
	c.set(c.defaultValue)
}

type Vec3Control struct {
	label        string
	get          func() mgl32.Vec3
	set          func(mgl32.Vec3)
	step         float32
	defaultValue mgl32.Vec3
}

func NewVec3Control(label string, step float32, get func() mgl32.Vec3, set func(mgl32.Vec3)) *Vec3Control {
	return &Vec3Control{label: label, get: get, set: set, step: step, defaultValue: get()}
}

func (c *Vec3Control) Label() string {
	return c.label
}

func (c *Vec3Control) Components() int {
	return 3
}

func (c *Vec3Control) Value() string {
	v := c.get()
	return fmt.Sprintf("%.2f %.2f %.2f", v.X(), v.Y(), v.Z())
}

func (c *Vec3Control) Adjust(component int, steps float32) {
	if component < 0 || component > 2 {
		return
	}
	v := c.get()
	v[component] += steps * c.step
	c.set(v)
}

func (c *Vec3Control) Reset() {
	c.set(c.defaultValue)
}

type Group struct {
	Name     string
	Controls []Control
}

type LineKind int

const (
	LineText LineKind = iota
	LineHeader
	LineSelected
)

type Line struct {
	Text string
	Kind LineKind
}

type panelEntry struct {
	group   int
	control Control
}

// Panel is a keyboard driven list of controls, grouped like a tree view.
type Panel struct {
	groups    []Group
	entries   []panelEntry
	selected  int
	component int
}

func NewPanel(groups ...Group) *Panel {
	p := &Panel{groups: groups}
	for groupIndex, group := range groups {
		for _, control := range group.Controls {
			p.entries = append(p.entries, panelEntry{group: groupIndex, control: control})
		}
	}
	return p
}

// Selected returns the focused control, or nil for an empty panel.
func (p *Panel) Selected() Control {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries[p.selected].control
}

func (p *Panel) SelectedComponent() int {
	return p.component
}

// Select moves the focus by delta entries, wrapping around at both ends.
func (p *Panel) Select(delta int) {
	if len(p.entries) == 0 {
		return
	}
	count := len(p.entries)
	p.selected = ((p.selected+delta)%count + count) % count
	p.component = 0
}

// NextComponent cycles through x, y, z of a vector control.
func (p *Panel) NextComponent() {
	control := p.Selected()
	if control == nil {
		return
	}
	p.component = (p.component + 1) % control.Components()
}

func (p *Panel) Adjust(steps float32) {
	if control := p.Selected(); control != nil {
		control.Adjust(p.component, steps)
	}
}

func (p *Panel) ResetSelected() {
	if control := p.Selected(); control != nil {
		control.Reset()
	}
}

func (p *Panel) ResetAll() {
	for _, entry := range p.entries {
		entry.control.Reset()
	}
}

var componentNames = [3]string{"x", "y", "z"}

// Lines lays the panel out as text, one header per group.
func (p *Panel) Lines() []Line {
	lines := make([]Line, 0, len(p.entries)+len(p.groups))
	lastGroup := -1
	for i, entry := range p.entries {
		if entry.group != lastGroup {
			lastGroup = entry.group
			lines = append(lines, Line{Text: p.groups[entry.group].Name, Kind: LineHeader})
		}
		text := fmt.Sprintf("  %-10s %s", entry.control.Label(), entry.control.Value())
		kind := LineText
		if i == p.selected {
			kind = LineSelected
			if entry.control.Components() > 1 {
				text += " [" + componentNames[p.component] + "]"
			}
		}
		lines = append(lines, Line{Text: text, Kind: kind})
	}
	return lines
}
