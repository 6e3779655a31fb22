package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"salesboard/internal/model"
	"salesboard/internal/store"
)

type failingBackend struct {
	*store.MemoryStore
	failSave bool
}

func (f *failingBackend) Save(key string, data []byte) error {
	if f.failSave {
		return errors.New("disk full")
	}
	return f.MemoryStore.Save(key, data)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("sp-%d", n)
	}
}

func newEmptyService(backend store.Backend) *Service {
	return NewService(backend, WithSeed(nil), WithIDGenerator(sequentialIDs()))
}

func TestLoad_SeedsDemoDataOnce(t *testing.T) {
	backend := store.NewMemoryStore()
	svc := NewService(backend, WithSeed(func() []model.Salesperson {
		return DemoSalespeople(rand.New(rand.NewPCG(1, 2)))
	}))

	people, err := svc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(people) != 3 {
		t.Fatalf("expected 3 demo salespeople, got %d", len(people))
	}
	for _, sp := range people {
		if len(sp.Records) != 30 {
			t.Fatalf("%s: records=%d, want 30", sp.Name, len(sp.Records))
		}
	}

	// stored document is now authoritative, a second service must not reseed
	other := NewService(backend, WithSeed(func() []model.Salesperson {
		t.Fatalf("seed called with data present")
		return nil
	}))
	again, err := other.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if len(again) != 3 || again[0].Records[0] != people[0].Records[0] {
		t.Fatalf("second load differs from persisted data")
	}
}

func TestAdd_RequiresName(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())

	if _, err := svc.Add(Profile{Name: "   "}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("err=%v, want ErrNameRequired", err)
	}
	people, _ := svc.List()
	if len(people) != 0 {
		t.Fatalf("no salesperson should be created, got %d", len(people))
	}
}

func TestAdd_DerivesInitialAndPhoto(t *testing.T) {
	backend := store.NewMemoryStore()
	svc := newEmptyService(backend)

	sp, err := svc.Add(Profile{Name: "érica"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sp.ID != "sp-1" || sp.Initial != "É" {
		t.Fatalf("unexpected salesperson: %+v", sp)
	}
	if sp.PhotoURL != "https://i.pravatar.cc/150?u=érica" {
		t.Fatalf("PhotoURL=%q", sp.PhotoURL)
	}

	data, found, _ := backend.Load(StorageKey)
	if !found {
		t.Fatalf("collection not persisted")
	}
	var stored []model.Salesperson
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "érica" {
		t.Fatalf("unexpected stored document: %s", data)
	}
}

func TestUpdate_KeepsRecords(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())
	sp, _ := svc.Add(Profile{Name: "Ana"})
	if _, err := svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 1, Paid: 10}}); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}

	updated, err := svc.Update(sp.ID, Profile{Name: "bia", PhotoURL: "data:image/png;base64,AAA", SheetID: "sheet-1"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "bia" || updated.Initial != "B" || updated.SheetID != "sheet-1" {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if len(updated.Records) != 1 {
		t.Fatalf("records lost on update")
	}

	if _, err := svc.Update("missing", Profile{Name: "x"}); !errors.Is(err, ErrSalespersonNotFound) {
		t.Fatalf("err=%v, want ErrSalespersonNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())
	a, _ := svc.Add(Profile{Name: "A"})
	b, _ := svc.Add(Profile{Name: "B"})

	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	people, _ := svc.List()
	if len(people) != 1 || people[0].ID != b.ID {
		t.Fatalf("unexpected collection after delete: %+v", people)
	}
	if err := svc.Delete(a.ID); !errors.Is(err, ErrSalespersonNotFound) {
		t.Fatalf("err=%v, want ErrSalespersonNotFound", err)
	}
}

func TestReplaceRecords_Wholesale(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())
	sp, _ := svc.Add(Profile{Name: "A"})

	_, _ = svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 1}, {Day: 2}, {Day: 3}})
	got, err := svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 9}})
	if err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].Day != 9 {
		t.Fatalf("records not replaced: %+v", got.Records)
	}
}

func TestClearAllRecords(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())
	sp, _ := svc.Add(Profile{Name: "A"})

	if err := svc.ClearAllRecords(true); !errors.Is(err, ErrNothingToClear) {
		t.Fatalf("err=%v, want ErrNothingToClear", err)
	}

	_, _ = svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 1, Paid: 5}})
	if err := svc.ClearAllRecords(false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("err=%v, want ErrConfirmationRequired", err)
	}
	if err := svc.ClearAllRecords(true); err != nil {
		t.Fatalf("ClearAllRecords: %v", err)
	}

	people, _ := svc.List()
	if len(people) != 1 || len(people[0].Records) != 0 {
		t.Fatalf("records should be empty, salesperson kept: %+v", people)
	}
}

func TestMutation_FailedWriteLeavesSnapshot(t *testing.T) {
	backend := &failingBackend{MemoryStore: store.NewMemoryStore()}
	svc := newEmptyService(backend)
	sp, _ := svc.Add(Profile{Name: "A"})
	_, _ = svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 1, Paid: 5}})

	backend.failSave = true
	if _, err := svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 2}}); err == nil {
		t.Fatalf("expected save error")
	}

	got, err := svc.Get(sp.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].Day != 1 {
		t.Fatalf("snapshot changed despite failed write: %+v", got.Records)
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	svc := newEmptyService(store.NewMemoryStore())
	sp, _ := svc.Add(Profile{Name: "A"})
	_, _ = svc.ReplaceRecords(sp.ID, []model.DailyRecord{{Day: 1, Paid: 5}})

	people, _ := svc.List()
	people[0].Records[0].Paid = 999

	again, _ := svc.Get(sp.ID)
	if again.Records[0].Paid != 5 {
		t.Fatalf("caller mutation leaked into snapshot")
	}
}

func TestDemoSalespeople_Invariants(t *testing.T) {
	people := DemoSalespeople(rand.New(rand.NewPCG(7, 7)))
	for _, sp := range people {
		for _, r := range sp.Records {
			if r.NewLeads < 0 || r.QualifiedLeads < 0 || r.ContractsClosed < 0 {
				t.Fatalf("%s day %d: negative counts %+v", sp.Name, r.Day, r)
			}
			if r.PaidWithin5Days > r.Paid {
				t.Fatalf("%s day %d: paid5d %v > paid %v", sp.Name, r.Day, r.PaidWithin5Days, r.Paid)
			}
		}
	}
}
