package contacts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/internal/settings"
	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/errors"
	"github.com/angelmondragon/easydial-core/pkg/logger"
	"github.com/angelmondragon/easydial-core/pkg/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeContactRepo struct {
	mu      sync.Mutex
	records []models.ContactRecord
	listErr error
	saveErr error
	saves   int
}

func (f *fakeContactRepo) ListAll(_ context.Context) ([]models.ContactRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.ContactRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeContactRepo) ReplaceAll(_ context.Context, records []models.ContactRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = records
	return nil
}

func (f *fakeContactRepo) saved() []models.ContactRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ContactRecord, len(f.records))
	copy(out, f.records)
	return out
}

type fakeMarkers struct {
	mu     sync.Mutex
	ints   map[string]int
	getErr error
}

func (f *fakeMarkers) GetInt(_ context.Context, key string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return 0, false, f.getErr
	}
	value, ok := f.ints[key]
	return value, ok, nil
}

func (f *fakeMarkers) SetInt(_ context.Context, key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ints == nil {
		f.ints = map[string]int{}
	}
	f.ints[key] = value
	return nil
}

func (f *fakeMarkers) version() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.ints[settings.KeyContactsDataVersion]
	return value, ok
}

func newTestStore(t *testing.T, params StoreParams) *Store {
	t.Helper()
	if params.Logger == nil {
		params.Logger = logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	}
	if params.Repo == nil {
		params.Repo = &fakeContactRepo{}
	}
	if params.Markers == nil {
		params.Markers = &fakeMarkers{}
	}
	store, err := NewStore(params)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func TestLoadSeedsDefaultsWhenEmpty(t *testing.T) {
	repo := &fakeContactRepo{}
	markers := &fakeMarkers{}
	store := newTestStore(t, StoreParams{Repo: repo, Markers: markers})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Flush()

	if got := len(store.All()); got != 13 {
		t.Fatalf("expected 13 seeded contacts, got %d", got)
	}
	if got := len(store.Family()); got != 4 {
		t.Fatalf("expected 4 family contacts, got %d", got)
	}
	if got := len(store.Others()); got != 9 {
		t.Fatalf("expected 9 other contacts, got %d", got)
	}
	if got := len(repo.saved()); got != 13 {
		t.Fatalf("expected seeded contacts persisted, got %d rows", got)
	}
	if version, ok := markers.version(); !ok || version != DataVersion {
		t.Fatalf("expected data version %d written, got %d %v", DataVersion, version, ok)
	}
}

func TestLoadAppliesDenylist(t *testing.T) {
	repo := &fakeContactRepo{
		records: toRecords([]catalog.Contact{
			catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter),
			catalog.NewOther("Legacy Hotline", "12345", enums.OtherContactTypeOther),
			catalog.NewOther("Legacy Social", "12333", enums.OtherContactTypeOther),
			catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend),
		}),
	}
	store := newTestStore(t, StoreParams{Repo: repo})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.All()
	if len(all) != 2 {
		t.Fatalf("expected banned numbers dropped, got %d contacts", len(all))
	}
	for _, contact := range all {
		if contact.PhoneNumber == "12345" || contact.PhoneNumber == "12333" {
			t.Fatalf("banned number survived: %+v", contact)
		}
	}
}

func TestLoadDecodeFailureFallsBackToDefaults(t *testing.T) {
	repo := &fakeContactRepo{
		records: []models.ContactRecord{
			{ID: uuid.New(), Name: "Broken", PhoneNumber: "5550100", Category: enums.ContactCategoryFamily},
		},
	}
	store := newTestStore(t, StoreParams{Repo: repo})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(store.All()); got != 13 {
		t.Fatalf("expected defaults after decode failure, got %d contacts", got)
	}
}

func TestLoadReadFailureFallsBackToDefaults(t *testing.T) {
	repo := &fakeContactRepo{listErr: fmt.Errorf("disk error")}
	store := newTestStore(t, StoreParams{Repo: repo})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("expected read failure to be swallowed, got %v", err)
	}
	if got := len(store.All()); got != 13 {
		t.Fatalf("expected defaults after read failure, got %d contacts", got)
	}
}

func TestResetPolicyReseedsOutdatedVersion(t *testing.T) {
	repo := &fakeContactRepo{
		records: toRecords([]catalog.Contact{
			catalog.NewFamily("Kept", "5550100", enums.FamilyRelationshipSon),
		}),
	}
	markers := &fakeMarkers{ints: map[string]int{settings.KeyContactsDataVersion: DataVersion - 1}}
	store := newTestStore(t, StoreParams{Repo: repo, Markers: markers, Policy: enums.MigrationPolicyReset})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.All()); got != 13 {
		t.Fatalf("expected outdated data discarded for defaults, got %d contacts", got)
	}
	if version, _ := markers.version(); version != DataVersion {
		t.Fatalf("expected version bumped to %d, got %d", DataVersion, version)
	}
}

func TestResetPolicyKeepsCurrentVersion(t *testing.T) {
	repo := &fakeContactRepo{
		records: toRecords([]catalog.Contact{
			catalog.NewFamily("Kept", "5550100", enums.FamilyRelationshipSon),
		}),
	}
	markers := &fakeMarkers{ints: map[string]int{settings.KeyContactsDataVersion: DataVersion}}
	store := newTestStore(t, StoreParams{Repo: repo, Markers: markers, Policy: enums.MigrationPolicyReset})

	if err := store.Load(context.Background(), enums.AppRegionOther); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.All()
	if len(all) != 1 || all[0].Name != "Kept" {
		t.Fatalf("expected stored contact kept, got %+v", all)
	}
}

func TestSeedRegionDefaultsIsIdempotent(t *testing.T) {
	repo := &fakeContactRepo{
		records: toRecords([]catalog.Contact{
			catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter),
		}),
	}
	store := newTestStore(t, StoreParams{Repo: repo})
	ctx := context.Background()

	if err := store.Load(ctx, enums.AppRegionChina); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := func() int {
		n := 0
		for _, contact := range store.All() {
			if contact.PhoneNumber == "12349" {
				n++
			}
		}
		return n
	}
	if count() != 1 {
		t.Fatalf("expected one reconciled hotline, got %d", count())
	}

	if err := store.SeedRegionDefaults(ctx, enums.AppRegionChina); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count() != 1 {
		t.Fatalf("expected reseed to be idempotent, got %d hotlines", count())
	}
}

func TestAddAssignsFreshID(t *testing.T) {
	store := newTestStore(t, StoreParams{})

	store.Add(catalog.Contact{
		Name:        "Neighbor",
		PhoneNumber: "5550105",
		Details:     catalog.OtherDetails{Type: enums.OtherContactTypeNeighbor},
	})

	all := store.All()
	if len(all) != 1 {
		t.Fatalf("expected one contact, got %d", len(all))
	}
	if all[0].ID == uuid.Nil {
		t.Fatal("expected a fresh id")
	}
}

func TestUpdateUnknownIsNoOp(t *testing.T) {
	store := newTestStore(t, StoreParams{})
	kept := catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter)
	store.Add(kept)

	stranger := catalog.NewFamily("Stranger", "5550199", enums.FamilyRelationshipSon)
	store.Update(stranger)

	all := store.All()
	if len(all) != 1 || all[0].Name != "Daughter" {
		t.Fatalf("expected unknown update ignored, got %+v", all)
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	store := newTestStore(t, StoreParams{})
	first := catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter)
	second := catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend)
	store.Add(first)
	store.Add(second)

	renamed := first
	renamed.Name = "Eldest Daughter"
	store.Update(renamed)

	all := store.All()
	if all[0].Name != "Eldest Daughter" {
		t.Fatalf("expected in-place rename, got %+v", all[0])
	}
	if all[1].ID != second.ID {
		t.Fatal("expected order preserved")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t, StoreParams{})
	contact := catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend)
	store.Add(contact)

	store.Delete(contact.ID)
	store.Delete(contact.ID)

	if got := len(store.All()); got != 0 {
		t.Fatalf("expected empty store, got %d contacts", got)
	}
}

func TestReorderSplicesWithinCategory(t *testing.T) {
	store := newTestStore(t, StoreParams{})
	daughter := catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter)
	doctor := catalog.NewOther("Family Doctor", "5550101", enums.OtherContactTypeDoctor)
	son := catalog.NewFamily("Son", "5550102", enums.FamilyRelationshipSon)
	store.Add(daughter)
	store.Add(doctor)
	store.Add(son)

	store.Reorder(enums.ContactCategoryFamily, []catalog.Contact{son, daughter})

	all := store.All()
	if all[0].Name != "Son" || all[1].Name != "Family Doctor" || all[2].Name != "Daughter" {
		t.Fatalf("expected family slots swapped around the doctor, got %s/%s/%s", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestReorderCountMismatchIsNoOp(t *testing.T) {
	store := newTestStore(t, StoreParams{})
	daughter := catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter)
	son := catalog.NewFamily("Son", "5550102", enums.FamilyRelationshipSon)
	store.Add(daughter)
	store.Add(son)

	store.Reorder(enums.ContactCategoryFamily, []catalog.Contact{son})

	all := store.All()
	if all[0].Name != "Daughter" || all[1].Name != "Son" {
		t.Fatalf("expected order unchanged, got %s/%s", all[0].Name, all[1].Name)
	}
}

func TestPersistFailureIsSwallowedAndCounted(t *testing.T) {
	registry := prometheus.NewRegistry()
	core := metrics.NewCoreMetrics(registry)
	repo := &fakeContactRepo{saveErr: fmt.Errorf("disk full")}
	store := newTestStore(t, StoreParams{Repo: repo, Metrics: core})

	contact := catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend)
	store.Add(contact)
	store.Flush()

	all := store.All()
	if len(all) != 1 || all[0].ID != contact.ID {
		t.Fatalf("expected in-memory list to stay authoritative, got %+v", all)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "contact_persist_failure_total" {
			continue
		}
		if got := family.GetMetric()[0].GetCounter().GetValue(); got != 2 {
			t.Fatalf("expected 2 counted failures (add + flush), got %v", got)
		}
		return
	}
	t.Fatal("expected failure counter to be registered")
}

func TestPersistFailureLogsCodedDump(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	repo := &fakeContactRepo{saveErr: fmt.Errorf("disk full")}
	store := newTestStore(t, StoreParams{Logger: logg, Repo: repo})

	store.Add(catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend))
	store.Flush()

	logged := buf.String()
	if !strings.Contains(logged, string(errors.CodePersistence)) {
		t.Fatalf("expected persistence code in log, got %s", logged)
	}
	if !strings.Contains(logged, "disk full") {
		t.Fatalf("expected cause in dump chain, got %s", logged)
	}
	if !strings.Contains(logged, "fallback") {
		t.Fatalf("expected fallback description in log, got %s", logged)
	}
}

func TestFlushWritesLatestSnapshot(t *testing.T) {
	repo := &fakeContactRepo{}
	store := newTestStore(t, StoreParams{Repo: repo})

	first := catalog.NewFamily("Daughter", "5550100", enums.FamilyRelationshipDaughter)
	second := catalog.NewOther("Friend", "5550101", enums.OtherContactTypeFriend)
	store.Add(first)
	store.Add(second)
	store.Delete(first.ID)
	store.Flush()

	saved := repo.saved()
	if len(saved) != 1 || saved[0].ID != second.ID {
		t.Fatalf("expected latest snapshot persisted, got %+v", saved)
	}
}
