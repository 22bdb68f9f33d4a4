package screen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/internal/settings"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/logger"
	"github.com/angelmondragon/easydial-core/pkg/metrics"
	"github.com/google/uuid"
)

// CallState describes the simulated call in progress. The ID is fresh per
// call so a timer armed for an ended call cannot touch its successor.
type CallState struct {
	ID        uuid.UUID
	Contact   catalog.Contact
	StartedAt time.Time
	Phase     enums.CallPhase
}

// RegionRefresher is poked when the home screen shows, fire-and-forget.
type RegionRefresher interface {
	RequestRefresh()
}

type markerStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetBool(ctx context.Context, key string) (bool, bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

// MachineParams configure the screen machine.
type MachineParams struct {
	Logger       *logger.Logger
	Markers      markerStore
	Metrics      *metrics.CoreMetrics
	Refresher    RegionRefresher
	Scheduler    ConnectScheduler
	ConnectDelay time.Duration
}

// Machine owns the navigation state: current screen, mode, selection and
// call. Every transition runs synchronously under one mutex, and an
// invalid transition is a silent no-op, never an error. The hero screen is
// only ever shown once, at launch; home is the resting state.
type Machine struct {
	mu       sync.Mutex
	screen   enums.AppScreen
	mode     enums.AppMode
	selected *catalog.Contact
	call     *CallState
	hintSeen bool

	logg         *logger.Logger
	markers      markerStore
	metrics      *metrics.CoreMetrics
	refresher    RegionRefresher
	scheduler    ConnectScheduler
	connectDelay time.Duration
}

// NewMachine builds the machine resting on the hero screen in use mode.
func NewMachine(params MachineParams) (*Machine, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Markers == nil {
		return nil, fmt.Errorf("marker store required")
	}
	delay := params.ConnectDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &Machine{
		screen:       enums.AppScreenHero,
		mode:         enums.AppModeUse,
		logg:         params.Logger,
		markers:      params.Markers,
		metrics:      params.Metrics,
		refresher:    params.Refresher,
		scheduler:    params.Scheduler,
		connectDelay: delay,
	}, nil
}

// Start restores the persisted mode and swipe-hint latch.
func (m *Machine) Start(ctx context.Context) error {
	raw, ok, err := m.markers.Get(ctx, settings.KeyCurrentMode)
	if err != nil {
		m.logg.Error(ctx, "reading stored mode; staying in use mode", err)
	} else if ok {
		if mode, parseErr := enums.ParseAppMode(raw); parseErr == nil {
			m.mu.Lock()
			m.mode = mode
			m.mu.Unlock()
		}
	}
	seen, ok, err := m.markers.GetBool(ctx, settings.KeyHasSeenSwipeHint)
	if err != nil {
		m.logg.Error(ctx, "reading swipe hint marker", err)
	} else if ok {
		m.mu.Lock()
		m.hintSeen = seen
		m.mu.Unlock()
	}
	return nil
}

// StartExperience leaves the hero screen for home.
func (m *Machine) StartExperience() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = enums.AppScreenHome
}

// ShowHome returns to the resting state, clears the selection and pokes
// the region refresher. Leaving the in-call screen this way tears the
// call down like EndCall does, so the connect timer cannot outlive it.
func (m *Machine) ShowHome() {
	m.mu.Lock()
	hadCall := m.call != nil
	m.call = nil
	m.selected = nil
	m.screen = enums.AppScreenHome
	m.mu.Unlock()

	if hadCall && m.scheduler != nil {
		m.scheduler.Cancel()
	}
	if m.refresher != nil {
		m.refresher.RequestRefresh()
	}
}

// ShowConfirmation selects the contact and moves to the confirm screen.
func (m *Machine) ShowConfirmation(contact catalog.Contact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = &contact
	m.screen = enums.AppScreenConfirm
}

// StartNewFamilyContact opens the family contact form.
func (m *Machine) StartNewFamilyContact() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = enums.AppScreenNewFamily
}

// StartNewOtherContact opens the other contact form.
func (m *Machine) StartNewOtherContact() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = enums.AppScreenNewOther
}

// StartEditing selects the contact and opens the edit form.
func (m *Machine) StartEditing(contact catalog.Contact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = &contact
	m.screen = enums.AppScreenEditContact
}

// StartCall begins a simulated call to the selected contact. Without a
// selection it is a no-op. The machine never sleeps: the connecting phase
// is flipped later by the scheduler through MarkCallActive.
func (m *Machine) StartCall(ctx context.Context) {
	m.mu.Lock()
	if m.selected == nil {
		m.mu.Unlock()
		return
	}
	call := &CallState{
		ID:        uuid.New(),
		Contact:   *m.selected,
		StartedAt: time.Now(),
		Phase:     enums.CallPhaseConnecting,
	}
	m.call = call
	m.screen = enums.AppScreenInCall
	m.mu.Unlock()

	m.logg.Info(m.logg.WithContactID(ctx, call.Contact.ID.String()), "call started")
	m.metrics.IncCallsStarted()

	if m.scheduler != nil {
		callID := call.ID
		m.scheduler.Schedule(m.connectDelay, func() {
			m.MarkCallActive(callID)
		})
	}
}

// MarkCallActive flips the call into the active phase. A stale timer fire
// carries the id of an ended call and is ignored.
func (m *Machine) MarkCallActive(callID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.call == nil || m.call.ID != callID {
		return
	}
	m.call.Phase = enums.CallPhaseActive
}

// EndCall hangs up: cancels the pending flip, clears call and selection,
// and returns home.
func (m *Machine) EndCall() {
	if m.scheduler != nil {
		m.scheduler.Cancel()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.call = nil
	m.selected = nil
	m.screen = enums.AppScreenHome
}

// SwitchToSetupMode enters setup mode. Mode is orthogonal to the screen
// and always legal.
func (m *Machine) SwitchToSetupMode(ctx context.Context) {
	m.switchMode(ctx, enums.AppModeSetup)
}

// SwitchToUseMode returns to use mode.
func (m *Machine) SwitchToUseMode(ctx context.Context) {
	m.switchMode(ctx, enums.AppModeUse)
}

func (m *Machine) switchMode(ctx context.Context, mode enums.AppMode) {
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()

	if err := m.markers.Set(ctx, settings.KeyCurrentMode, string(mode)); err != nil {
		m.logg.Error(ctx, "persisting mode; in-memory mode stays authoritative", err)
	}
}

// MarkSwipeHintSeen latches the hint marker. Once set it never resets.
func (m *Machine) MarkSwipeHintSeen(ctx context.Context) {
	m.mu.Lock()
	if m.hintSeen {
		m.mu.Unlock()
		return
	}
	m.hintSeen = true
	m.mu.Unlock()

	if err := m.markers.SetBool(ctx, settings.KeyHasSeenSwipeHint, true); err != nil {
		m.logg.Error(ctx, "persisting swipe hint marker", err)
	}
}

// Screen returns the current screen.
func (m *Machine) Screen() enums.AppScreen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen
}

// Mode returns the current mode.
func (m *Machine) Mode() enums.AppMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Selected returns a copy of the selected contact when one exists.
func (m *Machine) Selected() (catalog.Contact, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return catalog.Contact{}, false
	}
	return *m.selected, true
}

// Call returns a copy of the current call when one exists.
func (m *Machine) Call() (CallState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.call == nil {
		return CallState{}, false
	}
	return *m.call, true
}

// HasSeenSwipeHint reports the hint latch.
func (m *Machine) HasSeenSwipeHint() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hintSeen
}
