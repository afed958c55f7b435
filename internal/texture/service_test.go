package texture

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/model"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func waitFinished(t *testing.T, updates <-chan *Task) *Task {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case task := <-updates:
			if task.Status.IsFinished() {
				return task
			}
		case <-deadline:
			t.Fatal("Task never reached a terminal state")
		}
	}
}

func TestLoad(t *testing.T) {
	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer server.Close()

	service := NewService("", nil)
	updates := make(chan *Task, 8)
	service.SetUpdateCallback(func(task *Task) { updates <- task })

	task := service.Load(server.URL + "/photo.png")
	finished := waitFinished(t, updates)

	if finished.ID != task.ID {
		t.Errorf("Expected update for task %s, got %s", task.ID, finished.ID)
	}
	if finished.Status != model.LoadCompleted {
		t.Errorf("Expected Completed, got %s (%s)", finished.Status, finished.LastError)
	}
	if finished.Image == nil {
		t.Fatal("Expected decoded image")
	}
	if bounds := finished.Image.Bounds(); bounds.Dx() != 4 || bounds.Dy() != 2 {
		t.Errorf("Unexpected image bounds: %v", bounds)
	}
}

func TestLoad_FailureCompletesRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	registry := assets.NewRegistry()
	service := NewService("", registry)
	updates := make(chan *Task, 8)
	service.SetUpdateCallback(func(task *Task) { updates <- task })

	service.Load(server.URL + "/missing.png")
	finished := waitFinished(t, updates)

	if finished.Status != model.LoadError {
		t.Errorf("Expected Error status, got %s", finished.Status)
	}
	if finished.LastError == "" {
		t.Error("Expected LastError to be populated")
	}

	// A failed load still completes its registry handle
	loaded, total := registry.Progress()
	if loaded != 1 || total != 1 {
		t.Errorf("Expected registry 1/1 after failed load, got %d/%d", loaded, total)
	}
}

func TestLoad_DiskCache(t *testing.T) {
	data := pngBytes(t)
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(data)
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	service := NewService(cacheDir, nil)
	updates := make(chan *Task, 8)
	service.SetUpdateCallback(func(task *Task) { updates <- task })

	service.Load(server.URL + "/photo.png")
	first := waitFinished(t, updates)
	if first.CachePath == "" {
		t.Fatal("Expected cache path on completed load")
	}

	service.Load(server.URL + "/photo.png")
	second := waitFinished(t, updates)

	if second.Status != model.LoadCompleted {
		t.Errorf("Expected cached load to complete, got %s", second.Status)
	}
	if hits != 1 {
		t.Errorf("Expected 1 server hit with warm cache, got %d", hits)
	}
}

func TestGet(t *testing.T) {
	service := NewService("", nil)

	if _, exists := service.Get("texture-missing"); exists {
		t.Error("Expected missing task to not exist")
	}

	task := service.Load("http://127.0.0.1:1/unreachable.png")
	retrieved, exists := service.Get(task.ID)
	if !exists {
		t.Fatal("Expected task to exist")
	}
	if retrieved.URL != task.URL {
		t.Errorf("Expected URL %s, got %s", task.URL, retrieved.URL)
	}
}
