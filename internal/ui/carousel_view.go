package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/village-noise/internal/model"
)

// CarouselView shows the current page image and turns horizontal drags into
// page moves
type CarouselView struct {
	widget.BaseWidget

	image          *canvas.Image
	gestureHandler *GestureHandler
	onSwipe        func(model.Direction)
	transition     *fyne.Animation
}

// NewCarouselView creates a carousel view; onSwipe receives Previous or Next
func NewCarouselView(minSize float32, onSwipe func(model.Direction)) *CarouselView {
	v := &CarouselView{
		image:   canvas.NewImageFromResource(nil),
		onSwipe: onSwipe,
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.SetMinSize(fyne.NewSize(minSize, minSize))
	v.gestureHandler = NewGestureHandler(v.handleGesture)

	v.ExtendBaseWidget(v)
	return v
}

// SetImage displays res, fading it in when animate is true
func (v *CarouselView) SetImage(res fyne.Resource, animate bool) {
	if v.transition != nil {
		v.transition.Stop()
		v.transition = nil
	}

	v.image.Resource = res
	if !animate {
		v.image.Translucency = 0
		v.image.Refresh()
		return
	}

	v.image.Translucency = 1
	v.image.Refresh()
	v.transition = fyne.NewAnimation(CarouselTransition, func(progress float32) {
		v.image.Translucency = float64(1 - progress)
		v.image.Refresh()
	})
	v.transition.Curve = fyne.AnimationEaseOut
	v.transition.Start()
}

// Resource returns the displayed image resource
func (v *CarouselView) Resource() fyne.Resource {
	return v.image.Resource
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (v *CarouselView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// Dragged is called while the user drags across the image
func (v *CarouselView) Dragged(event *fyne.DragEvent) {
	v.gestureHandler.Dragged(event)
}

// DragEnd is called when the drag finishes
func (v *CarouselView) DragEnd() {
	v.gestureHandler.DragEnd()
}

func (v *CarouselView) handleGesture(gesture GestureType) {
	if d, ok := SwipeDirection(gesture); ok && v.onSwipe != nil {
		v.onSwipe(d)
	}
}
