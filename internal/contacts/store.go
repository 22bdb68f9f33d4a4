package contacts

import (
	"context"
	"fmt"
	"sync"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/internal/settings"
	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/errors"
	"github.com/angelmondragon/easydial-core/pkg/logger"
	"github.com/angelmondragon/easydial-core/pkg/metrics"
	"github.com/google/uuid"
)

type contactRepository interface {
	ListAll(ctx context.Context) ([]models.ContactRecord, error)
	ReplaceAll(ctx context.Context, records []models.ContactRecord) error
}

type markerStore interface {
	GetInt(ctx context.Context, key string) (int, bool, error)
	SetInt(ctx context.Context, key string, value int) error
}

// StoreParams configure the contact store.
type StoreParams struct {
	Logger  *logger.Logger
	Repo    contactRepository
	Markers markerStore
	Metrics *metrics.CoreMetrics
	Policy  enums.MigrationPolicy
	Queue   int
}

type persistJob struct {
	records []models.ContactRecord
	done    chan struct{}
}

// Store owns the in-memory contact list. Mutations apply under a mutex and
// enqueue a snapshot for the single persist worker; the in-memory list is
// authoritative and persist failures are swallowed.
type Store struct {
	mu       sync.RWMutex
	contacts []catalog.Contact

	logg    *logger.Logger
	repo    contactRepository
	markers markerStore
	metrics *metrics.CoreMetrics
	policy  enums.MigrationPolicy

	queue chan persistJob
	wg    sync.WaitGroup
	once  sync.Once
}

// NewStore builds the store and starts its persist worker.
func NewStore(params StoreParams) (*Store, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	if params.Markers == nil {
		return nil, fmt.Errorf("marker store required")
	}
	policy := params.Policy
	if !policy.IsValid() {
		policy = enums.MigrationPolicyReconcile
	}
	queue := params.Queue
	if queue <= 0 {
		queue = 16
	}
	store := &Store{
		logg:    params.Logger,
		repo:    params.Repo,
		markers: params.Markers,
		metrics: params.Metrics,
		policy:  policy,
		queue:   make(chan persistJob, queue),
	}
	store.wg.Add(1)
	go store.worker()
	return store, nil
}

// Load reads the stored contacts synchronously, applying the denylist and
// the configured migration policy. Undecodable or unreadable data falls
// back to the demo defaults; the caller never sees the failure.
func (s *Store) Load(ctx context.Context, region enums.AppRegion) error {
	contacts, seeded := s.read(ctx)
	s.mu.Lock()
	s.contacts = contacts
	s.mu.Unlock()

	if seeded {
		s.Persist()
	}
	if s.policy == enums.MigrationPolicyReconcile {
		return s.SeedRegionDefaults(ctx, region)
	}
	return nil
}

func (s *Store) read(ctx context.Context) ([]catalog.Contact, bool) {
	if s.policy == enums.MigrationPolicyReset {
		version, ok, err := s.markers.GetInt(ctx, settings.KeyContactsDataVersion)
		if err != nil {
			s.logg.Error(ctx, "reading contacts data version", err)
		} else if !ok || version < DataVersion {
			return s.seedDefaults(ctx), true
		}
	}

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logg.Error(ctx, "reading stored contacts; reseeding defaults", err)
		return s.seedDefaults(ctx), true
	}
	if len(rows) == 0 {
		return s.seedDefaults(ctx), true
	}

	out := make([]catalog.Contact, 0, len(rows))
	for _, row := range rows {
		contact, err := fromRecord(row)
		if err != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{
				"dump":     errors.Dump(err),
				"fallback": errors.MetadataFor(errors.As(err).Code()).Fallback,
			})
			s.logg.Error(logCtx, "decoding stored contacts; reseeding defaults", err)
			return s.seedDefaults(ctx), true
		}
		if _, banned := bannedNumbers[contact.PhoneNumber]; banned {
			continue
		}
		out = append(out, contact)
	}
	return out, false
}

func (s *Store) seedDefaults(ctx context.Context) []catalog.Contact {
	if err := s.markers.SetInt(ctx, settings.KeyContactsDataVersion, DataVersion); err != nil {
		s.logg.Error(ctx, "writing contacts data version", err)
	}
	return DefaultDemoContacts()
}

// SeedRegionDefaults reconciles the region's default entries into the
// list. Presence is keyed by exact phone number, so reseeding the same
// region is idempotent and user rows are never touched.
func (s *Store) SeedRegionDefaults(ctx context.Context, region enums.AppRegion) error {
	defaults := RegionDefaultContacts(region)
	if len(defaults) == 0 {
		return nil
	}

	s.mu.Lock()
	present := make(map[string]struct{}, len(s.contacts))
	for _, contact := range s.contacts {
		present[contact.PhoneNumber] = struct{}{}
	}
	added := false
	for _, contact := range defaults {
		if _, ok := present[contact.PhoneNumber]; ok {
			continue
		}
		s.contacts = append(s.contacts, contact)
		present[contact.PhoneNumber] = struct{}{}
		added = true
	}
	s.mu.Unlock()

	if added {
		s.logg.Info(s.logg.WithRegion(ctx, string(region)), "reconciled region default contacts")
		s.Persist()
	}
	return nil
}

// Add appends the contact, assigning a fresh id when absent.
func (s *Store) Add(contact catalog.Contact) {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	s.mu.Lock()
	s.contacts = append(s.contacts, contact)
	s.mu.Unlock()
	s.Persist()
}

// Update replaces the contact with the same id. Unknown ids are a silent
// no-op.
func (s *Store) Update(contact catalog.Contact) {
	s.mu.Lock()
	replaced := false
	for i := range s.contacts {
		if s.contacts[i].ID == contact.ID {
			s.contacts[i] = contact
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.Persist()
	}
}

// Delete removes every contact with the given id. Deleting an absent id is
// a no-op, so deletes are idempotent.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	kept := s.contacts[:0]
	for _, contact := range s.contacts {
		if contact.ID != id {
			kept = append(kept, contact)
		}
	}
	s.contacts = kept
	s.mu.Unlock()
	s.Persist()
}

// Reorder splices the reordered subset back into the category's slots,
// leaving contacts of other categories in place. A subset whose length
// does not match the category's current count is rejected as a no-op.
func (s *Store) Reorder(category enums.ContactCategory, reordered []catalog.Contact) {
	s.mu.Lock()
	indices := make([]int, 0, len(reordered))
	for i, contact := range s.contacts {
		if contact.Category() == category {
			indices = append(indices, i)
		}
	}
	if len(indices) != len(reordered) {
		s.mu.Unlock()
		return
	}
	for position, contact := range reordered {
		s.contacts[indices[position]] = contact
	}
	s.mu.Unlock()
	s.Persist()
}

// All returns a copy of the full list in stored order.
func (s *Store) All() []catalog.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Family returns the family contacts in stored order.
func (s *Store) Family() []catalog.Contact {
	return s.filter(enums.ContactCategoryFamily)
}

// Others returns the other-category contacts in stored order.
func (s *Store) Others() []catalog.Contact {
	return s.filter(enums.ContactCategoryOther)
}

func (s *Store) filter(category enums.ContactCategory) []catalog.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		if contact.Category() == category {
			out = append(out, contact)
		}
	}
	return out
}

// Persist enqueues a snapshot for the background worker. Best effort: the
// caller never waits and never sees a failure.
func (s *Store) Persist() {
	s.mu.RLock()
	records := toRecords(s.contacts)
	s.mu.RUnlock()
	s.enqueue(persistJob{records: records})
}

// enqueue never blocks the caller. When the queue is full the oldest
// pending snapshot is dropped; every snapshot is complete, so the newest
// one wins either way.
func (s *Store) enqueue(job persistJob) {
	for {
		select {
		case s.queue <- job:
			return
		default:
			select {
			case stale := <-s.queue:
				if stale.done != nil {
					close(stale.done)
				}
			default:
			}
		}
	}
}

// Flush blocks until every snapshot enqueued before the call has been
// written (or failed and been counted).
func (s *Store) Flush() {
	s.mu.RLock()
	records := toRecords(s.contacts)
	s.mu.RUnlock()

	done := make(chan struct{})
	s.enqueue(persistJob{records: records, done: done})
	<-done
}

// Close flushes the queue and stops the worker. The store must not be used
// afterwards.
func (s *Store) Close() {
	s.once.Do(func() {
		s.Flush()
		close(s.queue)
		s.wg.Wait()
	})
}

func (s *Store) worker() {
	defer s.wg.Done()
	for job := range s.queue {
		s.persist(job)
	}
}

func (s *Store) persist(job persistJob) {
	ctx := context.Background()
	if err := s.repo.ReplaceAll(ctx, job.records); err != nil {
		wrapped := errors.Wrap(errors.CodePersistence, err, "replacing contact rows")
		ctx = s.logg.WithFields(ctx, map[string]any{
			"dump":     errors.Dump(wrapped),
			"fallback": errors.MetadataFor(wrapped.Code()).Fallback,
		})
		s.logg.Error(ctx, "persisting contacts; in-memory list stays authoritative", wrapped)
		s.metrics.IncPersistFailure()
	} else {
		s.metrics.IncPersistSuccess()
	}
	if job.done != nil {
		close(job.done)
	}
}
