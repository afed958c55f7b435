package texture

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"github.com/galleryroom/vr-gallery/internal/assets"
	"github.com/galleryroom/vr-gallery/internal/model"
	"github.com/galleryroom/vr-gallery/internal/platform"
)

// Service constants
const (
	// DownloadTimeout bounds one texture fetch
	DownloadTimeout = 30 * time.Second

	// TaskIDPrefix namespaces texture task IDs
	TaskIDPrefix = "texture-"
)

// Task is one asynchronous texture load
type Task struct {
	ID         string
	URL        string
	Status     model.LoadStatus
	Image      image.Image
	CachePath  string
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Service handles texture loading: fetch, decode, and disk caching. Every
// load registers with the asset registry so textures count toward visible
// progress; failed loads still complete their registry handle so progress
// cannot wedge.
type Service struct {
	tasks      map[string]*Task
	tasksMutex sync.RWMutex
	httpClient *http.Client
	cacheDir   string
	registry   *assets.Registry
	onUpdate   func(*Task) // callback for scene/UI updates
}

// NewService creates a texture service. cacheDir may be empty to disable the
// disk cache; registry may be nil to skip progress tracking.
func NewService(cacheDir string, registry *assets.Registry) *Service {
	return &Service{
		tasks: make(map[string]*Task),
		httpClient: &http.Client{
			Timeout: DownloadTimeout,
		},
		cacheDir: cacheDir,
		registry: registry,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*Task)) {
	s.onUpdate = callback
}

// Load starts fetching and decoding the texture at url. The returned task
// transitions through Pending/Fetching to Completed or Error; observe it via
// the update callback.
func (s *Service) Load(url string) *Task {
	task := &Task{
		ID:        TaskIDPrefix + uuid.NewString(),
		URL:       url,
		Status:    model.LoadPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	var done assets.CompletionFunc
	if s.registry != nil {
		done = s.registry.Register(url)
	}

	go s.run(task, done)
	return task
}

// Get returns a task by ID
func (s *Service) Get(id string) (*Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAll returns all tasks
func (s *Service) GetAll() []*Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// run performs the fetch/decode on the task's own goroutine
func (s *Service) run(task *Task, done assets.CompletionFunc) {
	if done != nil {
		defer done()
	}

	s.setStatus(task, model.LoadFetching, nil, "")

	img, cachePath, err := s.fetchAndDecode(task.URL)
	if err != nil {
		log.Printf("texture: load failed for %s: %v", task.URL, err)
		s.setStatus(task, model.LoadError, nil, err.Error())
		return
	}

	s.tasksMutex.Lock()
	task.CachePath = cachePath
	s.tasksMutex.Unlock()

	s.setStatus(task, model.LoadCompleted, img, "")
}

// fetchAndDecode returns the decoded image, serving from the disk cache when
// the URL was fetched before.
func (s *Service) fetchAndDecode(url string) (image.Image, string, error) {
	cachePath := ""
	if s.cacheDir != "" {
		cachePath = platform.CachePathForURL(s.cacheDir, url)
		if data, err := os.ReadFile(cachePath); err == nil {
			img, _, err := image.Decode(bytes.NewReader(data))
			if err == nil {
				return img, cachePath, nil
			}
			// Corrupt cache entry: fall through to a fresh fetch
			os.Remove(cachePath)
		}
	}

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch texture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("texture URL returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read texture data: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode texture: %w", err)
	}

	if cachePath != "" {
		if err := os.WriteFile(cachePath, data, 0644); err != nil {
			log.Printf("texture: failed to cache %s: %v", url, err)
		}
	}

	return img, cachePath, nil
}

// setStatus updates the task and notifies the observer
func (s *Service) setStatus(task *Task, status model.LoadStatus, img image.Image, lastError string) {
	s.tasksMutex.Lock()
	task.Status = status
	task.LastError = lastError
	if img != nil {
		task.Image = img
	}
	if status.IsFinished() {
		task.FinishedAt = time.Now()
	}
	callback := s.onUpdate
	s.tasksMutex.Unlock()

	if callback != nil {
		callback(task)
	}
}
