package roster

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"salesboard/internal/model"
	"salesboard/internal/store"
)

// StorageKey fixed key the salesperson collection lives under
const StorageKey = "salespeople"

// Profile editable salesperson attributes
type Profile struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
	SheetID  string `json:"googleSheetId"`
}

// Service owns the salesperson collection.
// Every mutation copies the snapshot, applies the change, writes the whole
// document and only then replaces the in-memory snapshot.
type Service struct {
	backend store.Backend
	seed    func() []model.Salesperson
	newID   func() string

	mu     sync.Mutex
	people []model.Salesperson
	loaded bool
}

// Option tweaks a Service
type Option func(*Service)

// WithSeed overrides the demo data used when storage is empty. nil disables seeding.
func WithSeed(seed func() []model.Salesperson) Option {
	return func(s *Service) { s.seed = seed }
}

// WithIDGenerator overrides id generation for new salespeople.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(backend store.Backend, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		seed:    func() []model.Salesperson { return DemoSalespeople(nil) },
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored collection, seeding and persisting demo data when none exists.
func (s *Service) Load() ([]model.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	return cloneAll(s.people), nil
}

// Refresh re-issues the initial fetch. There is no live sheet sync behind it.
func (s *Service) Refresh() ([]model.Salesperson, error) {
	return s.Load()
}

func (s *Service) loadLocked() error {
	data, found, err := s.backend.Load(StorageKey)
	if err != nil {
		return fmt.Errorf("failed to load salespeople: %w", err)
	}

	if !found {
		people := []model.Salesperson{}
		if s.seed != nil {
			people = s.seed()
		}
		if err := s.persistLocked(people); err != nil {
			return err
		}
		log.Info().Int("salespeople", len(people)).Msg("storage empty, seeded initial collection")
		s.people = people
		s.loaded = true
		return nil
	}

	var people []model.Salesperson
	if err := json.Unmarshal(data, &people); err != nil {
		return fmt.Errorf("failed to decode salespeople: %w", err)
	}
	if people == nil {
		people = []model.Salesperson{}
	}
	s.people = people
	s.loaded = true
	return nil
}

func (s *Service) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}
	return s.loadLocked()
}

func (s *Service) persistLocked(people []model.Salesperson) error {
	data, err := json.Marshal(people)
	if err != nil {
		return fmt.Errorf("failed to encode salespeople: %w", err)
	}
	if err := s.backend.Save(StorageKey, data); err != nil {
		return fmt.Errorf("failed to save salespeople: %w", err)
	}
	return nil
}

// mutate runs fn on a copy and commits it only if the write succeeds.
func (s *Service) mutate(fn func(people []model.Salesperson) ([]model.Salesperson, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}

	next, err := fn(cloneAll(s.people))
	if err != nil {
		return err
	}
	if err := s.persistLocked(next); err != nil {
		return err
	}
	s.people = next
	return nil
}

// List current collection in insertion order
func (s *Service) List() ([]model.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}
	return cloneAll(s.people), nil
}

// Get one salesperson by id
func (s *Service) Get(id string) (model.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return model.Salesperson{}, err
	}
	for _, sp := range s.people {
		if sp.ID == id {
			return sp.Clone(), nil
		}
	}
	return model.Salesperson{}, ErrSalespersonNotFound
}

// Add creates a salesperson with no records.
func (s *Service) Add(p Profile) (model.Salesperson, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return model.Salesperson{}, ErrNameRequired
	}

	photo := p.PhotoURL
	if photo == "" {
		photo = model.DefaultPhotoURL(name)
	}
	created := model.Salesperson{
		ID:       s.newID(),
		Name:     name,
		Initial:  model.InitialOf(name),
		PhotoURL: photo,
		SheetID:  p.SheetID,
		Records:  []model.DailyRecord{},
	}

	err := s.mutate(func(people []model.Salesperson) ([]model.Salesperson, error) {
		return append(people, created), nil
	})
	if err != nil {
		return model.Salesperson{}, err
	}

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("salesperson added")
	return created.Clone(), nil
}

// Update replaces name, photo and sheet id; records are untouched.
func (s *Service) Update(id string, p Profile) (model.Salesperson, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return model.Salesperson{}, ErrNameRequired
	}

	var updated model.Salesperson
	err := s.mutate(func(people []model.Salesperson) ([]model.Salesperson, error) {
		i := indexOf(people, id)
		if i < 0 {
			return nil, ErrSalespersonNotFound
		}
		people[i].Name = name
		people[i].Initial = model.InitialOf(name)
		people[i].PhotoURL = p.PhotoURL
		people[i].SheetID = p.SheetID
		updated = people[i].Clone()
		return people, nil
	})
	if err != nil {
		return model.Salesperson{}, err
	}

	log.Info().Str("id", id).Msg("salesperson updated")
	return updated, nil
}

// Delete removes a salesperson and its records.
func (s *Service) Delete(id string) error {
	err := s.mutate(func(people []model.Salesperson) ([]model.Salesperson, error) {
		i := indexOf(people, id)
		if i < 0 {
			return nil, ErrSalespersonNotFound
		}
		return append(people[:i], people[i+1:]...), nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("id", id).Msg("salesperson deleted")
	return nil
}

// ReplaceRecords swaps a salesperson's whole record sequence, as an import does.
func (s *Service) ReplaceRecords(id string, records []model.DailyRecord) (model.Salesperson, error) {
	var updated model.Salesperson
	err := s.mutate(func(people []model.Salesperson) ([]model.Salesperson, error) {
		i := indexOf(people, id)
		if i < 0 {
			return nil, ErrSalespersonNotFound
		}
		people[i].Records = append([]model.DailyRecord(nil), records...)
		updated = people[i].Clone()
		return people, nil
	})
	if err != nil {
		return model.Salesperson{}, err
	}
	return updated, nil
}

// ClearAllRecords empties every salesperson's records. Irreversible, so confirm must be true.
func (s *Service) ClearAllRecords(confirm bool) error {
	err := s.mutate(func(people []model.Salesperson) ([]model.Salesperson, error) {
		hasData := false
		for _, sp := range people {
			if sp.HasRecords() {
				hasData = true
				break
			}
		}
		if !hasData {
			return nil, ErrNothingToClear
		}
		if !confirm {
			return nil, ErrConfirmationRequired
		}
		for i := range people {
			people[i].Records = []model.DailyRecord{}
		}
		return people, nil
	})
	if err != nil {
		return err
	}

	log.Warn().Msg("all salesperson records cleared")
	return nil
}

func indexOf(people []model.Salesperson, id string) int {
	for i, sp := range people {
		if sp.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(people []model.Salesperson) []model.Salesperson {
	out := make([]model.Salesperson, len(people))
	for i, sp := range people {
		out[i] = sp.Clone()
	}
	return out
}
