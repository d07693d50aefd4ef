//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"ecosystem/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusFunc supplies the free-form status lines drawn above the controls.
type StatusFunc func() []string

// HUD renders the status and parameter panel to the right of the world view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     StatusFunc

	controls     []hudControlState
	setter       core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for sim with the given panel width. status may be
// nil.
func NewHUD(sim core.Sim, width int, status StatusFunc) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, status: status}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	return h
}

// Width reports the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes control values from the sim and handles clicks on the
// +/- buttons. It reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.refreshControlValues(provider.Parameters())
	}
	return h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues(snapshot core.ParameterSnapshot) {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue, state.value = false, "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue, state.value = false, "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatControlValue(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			break
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			break
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.setter == nil || !h.canAdjust(state, direction) {
		return
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.setter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatControlValue(state.control, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.setter == nil || direction == 0 {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return state.floatValue > state.control.Min
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return state.floatValue < state.control.Max
	}
	return true
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Ecosystem", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.status == nil {
		return
	}
	for i, line := range h.status() {
		if i >= statusLines {
			break
		}
		y := panelPadding + headerBaseline + (i+1)*statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 170, G: 190, B: 170, A: 255})
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatControlValue(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := controlStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLines    = 3
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + statusLines*statusSpacing + 14
)
