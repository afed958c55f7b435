package gallery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/scene"
)

// stubFetcher serves a fixed dataset and records request order
type stubFetcher struct {
	mu      sync.Mutex
	items   []model.WorkItem
	offsets []int
	fail    bool
}

func newStubFetcher(count int) *stubFetcher {
	f := &stubFetcher{}
	for i := 0; i < count; i++ {
		f.items = append(f.items, testItem(fmt.Sprintf("item-%d", i), 800, 600))
	}
	return f
}

func (f *stubFetcher) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *stubFetcher) requestedOffsets() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.offsets...)
}

func (f *stubFetcher) FetchPage(ctx context.Context, offset int) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.offsets = append(f.offsets, offset)
	if f.fail {
		return nil, fmt.Errorf("forced fetch failure")
	}

	end := offset + model.PageSize
	if end > len(f.items) {
		end = len(f.items)
	}
	var contents []model.WorkItem
	if offset < len(f.items) {
		contents = f.items[offset:end]
	}
	return &model.Page{
		Contents:   contents,
		TotalCount: len(f.items),
		Offset:     offset,
		Limit:      model.PageSize,
	}, nil
}

func newTestController(t *testing.T, fetcher *stubFetcher) (*Controller, *SlotManager, *scene.World) {
	t.Helper()

	world := scene.NewWorld()
	manager := NewSlotManager(world, nil)

	page, err := fetcher.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("Initial fetch failed: %v", err)
	}
	if err := manager.BindPage(page); err != nil {
		t.Fatalf("Initial bind failed: %v", err)
	}

	controller := NewController(world, manager, fetcher)
	controller.SetPageState(model.PageState{Offset: 0, TotalCount: page.TotalCount})
	controller.SetTweenDuration(20 * time.Millisecond)
	t.Cleanup(controller.Stop)

	return controller, manager, world
}

func awaitTransition(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Transition never resolved")
	}
}

func TestAdvance_ForwardAndWrap(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, manager, _ := newTestController(t, fetcher)

	// 0 -> 3
	awaitTransition(t, controller.Advance(1))
	if got := controller.PageState().Offset; got != 3 {
		t.Errorf("Expected offset 3, got %d", got)
	}
	if manager.Slot(0).Item.ID != "item-3" {
		t.Errorf("Expected slot 0 bound to item-3, got %s", manager.Slot(0).Item.ID)
	}

	// 3 -> 6: partial page, one slot enabled
	awaitTransition(t, controller.Advance(1))
	if got := controller.PageState().Offset; got != 6 {
		t.Errorf("Expected offset 6, got %d", got)
	}
	if got := len(manager.EnabledSlots()); got != 1 {
		t.Errorf("Expected 1 enabled slot at the last page, got %d", got)
	}

	// 6 -> wraps to 0
	awaitTransition(t, controller.Advance(1))
	if got := controller.PageState().Offset; got != 0 {
		t.Errorf("Expected wrap to offset 0, got %d", got)
	}
}

func TestAdvance_BackwardWrap(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, _, _ := newTestController(t, fetcher)

	// 0 -> wraps back to the last page start
	awaitTransition(t, controller.Advance(-1))
	if got := controller.PageState().Offset; got != 6 {
		t.Errorf("Expected backward wrap to offset 6, got %d", got)
	}
}

func TestAdvance_RestDepthRestored(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, manager, _ := newTestController(t, fetcher)

	awaitTransition(t, controller.Advance(1))

	for _, slot := range manager.EnabledSlots() {
		if z := slot.Photo.Z(); z != slot.OriginalZ {
			t.Errorf("Slot %d: photo depth %v, expected rest depth %v", slot.Index, z, slot.OriginalZ)
		}
	}
}

func TestAdvance_StrictlySerialized(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, _, _ := newTestController(t, fetcher)

	var mu sync.Mutex
	var phases []model.TransitionStatus
	controller.SetStatusCallback(func(status model.TransitionStatus) {
		mu.Lock()
		phases = append(phases, status)
		mu.Unlock()
	})

	// Queue two transitions back to back before the first can resolve
	first := controller.Advance(1)
	second := controller.Advance(-1)

	awaitTransition(t, first)
	awaitTransition(t, second)

	expected := []model.TransitionStatus{
		model.TransitionAnimatingOut, model.TransitionFetching, model.TransitionAnimatingIn, model.TransitionIdle,
		model.TransitionAnimatingOut, model.TransitionFetching, model.TransitionAnimatingIn, model.TransitionIdle,
	}

	mu.Lock()
	defer mu.Unlock()
	if len(phases) != len(expected) {
		t.Fatalf("Expected %d phase changes, got %d: %v", len(expected), len(phases), phases)
	}
	for i := range expected {
		if phases[i] != expected[i] {
			t.Fatalf("Phase %d = %s, expected %s (full: %v)", i, phases[i], expected[i], phases)
		}
	}

	// Requests applied in call order: +1 first, then -1 back to the start
	if offsets := fetcher.requestedOffsets(); offsets[len(offsets)-2] != 3 || offsets[len(offsets)-1] != 0 {
		t.Errorf("Expected fetches at offsets 3 then 0, got %v", offsets)
	}
}

func TestAdvance_FetchFailurePreservesSlots(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, manager, _ := newTestController(t, fetcher)

	fetcher.setFail(true)
	awaitTransition(t, controller.Advance(1))

	// Data stays bound; only positions may be off-stage
	for i := 0; i < model.PageSize; i++ {
		slot := manager.Slot(i)
		if !slot.Bound() {
			t.Errorf("Slot %d lost its binding after failed fetch", i)
			continue
		}
		expected := fmt.Sprintf("item-%d", i)
		if slot.Item.ID != expected {
			t.Errorf("Slot %d: expected %s, got %s", i, expected, slot.Item.ID)
		}
	}
	if controller.PageState().Offset != 0 {
		t.Errorf("Expected pagination state unchanged, got offset %d", controller.PageState().Offset)
	}
	if controller.Status() != model.TransitionIdle {
		t.Errorf("Expected Idle after failed transition, got %s", controller.Status())
	}

	// The queue is not wedged: the next advance succeeds
	fetcher.setFail(false)
	awaitTransition(t, controller.Advance(1))
	if got := controller.PageState().Offset; got != 3 {
		t.Errorf("Expected offset 3 after recovery, got %d", got)
	}
}

func TestAdvance_AfterStopResolvesImmediately(t *testing.T) {
	fetcher := newStubFetcher(7)
	controller, _, _ := newTestController(t, fetcher)

	controller.Stop()

	select {
	case <-controller.Advance(1):
	case <-time.After(time.Second):
		t.Fatal("Advance after Stop should resolve immediately")
	}
}
