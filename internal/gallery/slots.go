package gallery

import (
	"fmt"
	"image"
	"sync"

	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
	"github.com/galleryroom/vr-gallery/internal/texture"
)

// Photo plane sizing
const (
	// PhotoUnitSize is the base edge length the photo's larger dimension is
	// clamped to before the uniform halving
	PhotoUnitSize = 2.0

	// FrameOuterMargin and FrameInnerMargin extend the white and black frame
	// planes past the photo on each side
	FrameOuterMargin = 0.07
	FrameInnerMargin = 0.04

	// PhotoElevation is the center height of the photo plane
	PhotoElevation = 1.6

	// CaptionElevation is the center height of the caption plane
	CaptionElevation = 0.82

	// CaptionPlaneWidth sizes the caption plane; height follows the canvas
	// aspect ratio
	CaptionPlaneWidth = 0.9
)

// Fixed per-entity depth offsets, in units toward the viewer, so stacked
// planes never z-fight. The photo sits in front of both frames; the caption
// floats slightly closer still.
const (
	FrameOuterDepthOffset = 0.00
	FrameInnerDepthOffset = 0.01
	PhotoDepthOffset      = 0.02
	CaptionDepthOffset    = 0.03
)

// slotPlacement fixes where each of the three slots lives. Slots 0 and 1
// share the negative-depth wall and face back into the room; slot 2 hangs on
// the opposing wall. This table is the single source of wall assignment.
type slotPlacement struct {
	x         float64
	restZ     float64
	offStageZ float64
	rotationY float64
}

var slotPlacements = [model.PageSize]slotPlacement{
	{x: -2.2, restZ: -3.4, offStageZ: -40, rotationY: 180},
	{x: 2.2, restZ: -3.4, offStageZ: -40, rotationY: 180},
	{x: 0, restZ: 3.4, offStageZ: 40, rotationY: 0},
}

// depthSign returns the direction "toward the viewer" along the depth axis
// for this placement's wall.
func (p slotPlacement) depthSign() float64 {
	if p.restZ < 0 {
		return 1
	}
	return -1
}

// Slot is one of the three fixed photo positions. Either empty (no entities)
// or bound to one work item with a full entity set.
type Slot struct {
	Index        int
	Item         *model.WorkItem
	FrameOuter   *scene.Entity
	FrameInner   *scene.Entity
	Photo        *scene.Entity
	Caption      *scene.Entity
	CaptionImage *image.RGBA

	// OriginalZ is the photo plane's rest depth, the anchor every
	// transition animation returns to.
	OriginalZ float64
}

// Bound reports whether the slot currently holds a work item
func (s *Slot) Bound() bool {
	return s.Item != nil && s.Photo != nil && !s.Photo.Disposed()
}

// Enabled reports whether the slot's visuals are currently shown
func (s *Slot) Enabled() bool {
	return s.Bound() && s.Photo.Enabled()
}

// Entities returns the slot's live entity set, photo first
func (s *Slot) Entities() []*scene.Entity {
	all := []*scene.Entity{s.Photo, s.FrameOuter, s.FrameInner, s.Caption}
	live := make([]*scene.Entity, 0, len(all))
	for _, e := range all {
		if e != nil && !e.Disposed() {
			live = append(live, e)
		}
	}
	return live
}

// SlotManager owns the visual entities of all three slots. Binding disposes
// and recreates; hiding only disables.
type SlotManager struct {
	mu       sync.Mutex
	world    *scene.World
	textures *texture.Service
	painter  *CaptionPainter
	slots    [model.PageSize]*Slot
}

// NewSlotManager creates a manager with three empty slots
func NewSlotManager(world *scene.World, textures *texture.Service) *SlotManager {
	m := &SlotManager{
		world:    world,
		textures: textures,
		painter:  NewCaptionPainter(),
	}
	for i := range m.slots {
		m.slots[i] = &Slot{Index: i}
	}
	return m
}

// Slot returns the slot at index
func (m *SlotManager) Slot(index int) *Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[index]
}

// EnabledSlots returns the slots whose visuals are currently shown
func (m *SlotManager) EnabledSlots() []*Slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	enabled := make([]*Slot, 0, model.PageSize)
	for _, slot := range m.slots {
		if slot.Enabled() {
			enabled = append(enabled, slot)
		}
	}
	return enabled
}

// Bind replaces the slot's content with item: any existing entity set is
// disposed first, then the photo plane, double frame, and caption are built
// at the slot's fixed wall position. The photo texture load is pushed to the
// texture service so it counts toward progress.
func (m *SlotManager) Bind(index int, item model.WorkItem) error {
	if index < 0 || index >= model.PageSize {
		return fmt.Errorf("slot index out of range: %d", index)
	}
	if m.world.Disposed() {
		return fmt.Errorf("world is disposed")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slot := m.slots[index]
	disposeSlotEntities(slot)

	placement := slotPlacements[index]
	sign := placement.depthSign()

	photoW, photoH := photoPlaneSize(item.AspectRatio())

	slot.Item = &item
	slot.OriginalZ = placement.restZ + PhotoDepthOffset*sign

	slot.FrameOuter = m.newPlane(
		fmt.Sprintf("slot%d-frame-outer", index),
		photoW+2*FrameOuterMargin, photoH+2*FrameOuterMargin,
		placement, PhotoElevation, FrameOuterDepthOffset*sign,
	)
	slot.FrameOuter.SetTexture("color:white")

	slot.FrameInner = m.newPlane(
		fmt.Sprintf("slot%d-frame-inner", index),
		photoW+2*FrameInnerMargin, photoH+2*FrameInnerMargin,
		placement, PhotoElevation, FrameInnerDepthOffset*sign,
	)
	slot.FrameInner.SetTexture("color:black")

	slot.Photo = m.newPlane(
		fmt.Sprintf("slot%d-photo", index),
		photoW, photoH,
		placement, PhotoElevation, PhotoDepthOffset*sign,
	)
	slot.Photo.SetTexture(item.Photo.URL)
	if m.textures != nil && item.Photo.URL != "" {
		m.textures.Load(item.Photo.URL)
	}

	captionH := CaptionPlaneWidth * CaptionCanvasHeight / CaptionCanvasWidth
	slot.Caption = m.newPlane(
		fmt.Sprintf("slot%d-caption", index),
		CaptionPlaneWidth, captionH,
		placement, CaptionElevation, CaptionDepthOffset*sign,
	)
	slot.CaptionImage = m.painter.Paint(&item)
	slot.Caption.SetTexture("caption:" + item.ID)

	return nil
}

// Hide disables the slot's entities without disposing them. Used when a page
// has fewer than three items. The next Bind recreates everything regardless.
func (m *SlotManager) Hide(index int) {
	if index < 0 || index >= model.PageSize {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.slots[index].Entities() {
		e.SetEnabled(false)
	}
}

// BindPage binds the page's items to slots in order and hides the remainder
func (m *SlotManager) BindPage(page *model.Page) error {
	for i := 0; i < model.PageSize; i++ {
		if i < len(page.Contents) {
			if err := m.Bind(i, page.Contents[i]); err != nil {
				return err
			}
		} else {
			m.Hide(i)
		}
	}
	return nil
}

// Teardown disposes every slot's entities
func (m *SlotManager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, slot := range m.slots {
		disposeSlotEntities(slot)
	}
}

// newPlane creates one entity at the slot's wall position. Caller holds m.mu.
func (m *SlotManager) newPlane(name string, width, height float64, placement slotPlacement, elevation, depthOffset float64) *scene.Entity {
	e := m.world.NewEntity(name, width, height)
	e.SetPosition(scene.Vec3{X: placement.x, Y: elevation, Z: placement.restZ + depthOffset})
	e.SetRotationY(placement.rotationY)
	return e
}

// disposeSlotEntities clears a slot back to empty
func disposeSlotEntities(slot *Slot) {
	for _, e := range slot.Entities() {
		e.Dispose()
	}
	slot.Item = nil
	slot.FrameOuter = nil
	slot.FrameInner = nil
	slot.Photo = nil
	slot.Caption = nil
	slot.CaptionImage = nil
}

// photoPlaneSize computes plane dimensions from the photo aspect ratio:
// the larger dimension is clamped to PhotoUnitSize, then both are halved.
func photoPlaneSize(aspect float64) (width, height float64) {
	if aspect >= 1 {
		width = PhotoUnitSize
		height = PhotoUnitSize / aspect
	} else {
		width = PhotoUnitSize * aspect
		height = PhotoUnitSize
	}
	return width / 2, height / 2
}
