package region

import (
	"context"
	"fmt"
	"sync"

	"github.com/angelmondragon/easydial-core/internal/catalog"
	"github.com/angelmondragon/easydial-core/internal/localization"
	"github.com/angelmondragon/easydial-core/internal/settings"
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/logger"
	"github.com/angelmondragon/easydial-core/pkg/metrics"
)

// LocationProvider is the platform collaborator that produces fixes. Both
// calls are fire-and-forget; results arrive as FixEvents on the resolver
// channel.
type LocationProvider interface {
	RequestOneShotFix()
	StartSignificantChangeMonitoring()
}

// Reseeder receives the new region after a switch so region-specific default
// contacts can be reconciled into the store.
type Reseeder interface {
	SeedRegionDefaults(ctx context.Context, region enums.AppRegion) error
}

// ResolverParams configure the resolver.
type ResolverParams struct {
	Logger   *logger.Logger
	Settings *settings.Repository
	Provider LocationProvider
	Reseeder Reseeder
	Metrics  *metrics.CoreMetrics
	Fallback enums.AppRegion
	Buffer   int
}

// Resolver owns the current region. It starts from the stored region (or
// the configured fallback), then follows location fixes delivered on its
// event channel; a fix that resolves to the already-current region is a
// no-op.
type Resolver struct {
	mu       sync.RWMutex
	current  enums.AppRegion
	events   chan FixEvent
	logg     *logger.Logger
	store    *settings.Repository
	provider LocationProvider
	reseeder Reseeder
	metrics  *metrics.CoreMetrics
	fallback enums.AppRegion
}

// NewResolver builds a resolver. The provider and reseeder are optional.
func NewResolver(params ResolverParams) (*Resolver, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	fallback := params.Fallback
	if !fallback.IsValid() {
		fallback = enums.AppRegionUS
	}
	buffer := params.Buffer
	if buffer <= 0 {
		buffer = 8
	}
	return &Resolver{
		current:  fallback,
		events:   make(chan FixEvent, buffer),
		logg:     params.Logger,
		store:    params.Settings,
		provider: params.Provider,
		reseeder: params.Reseeder,
		metrics:  params.Metrics,
		fallback: fallback,
	}, nil
}

// Start restores the stored region if one exists and begins significant
// change monitoring. Must run before the first screen is shown.
func (r *Resolver) Start(ctx context.Context) error {
	raw, ok, err := r.store.Get(ctx, settings.KeyCurrentRegion)
	if err != nil {
		r.logg.Error(ctx, "reading stored region; using fallback", err)
	} else if ok {
		if stored, parseErr := enums.ParseAppRegion(raw); parseErr == nil {
			r.mu.Lock()
			r.current = stored
			r.mu.Unlock()
		}
	}
	if r.provider != nil {
		r.provider.StartSignificantChangeMonitoring()
	}
	return nil
}

// Events returns the inbound channel the location provider pushes into.
func (r *Resolver) Events() chan<- FixEvent {
	return r.events
}

// Run consumes fix events until the context is canceled. Events are applied
// one at a time; a fix arriving mid-application queues behind it.
func (r *Resolver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.logg.Info(ctx, "region resolver context canceled")
			return ctx.Err()
		case event := <-r.events:
			r.apply(ctx, event)
		}
	}
}

func (r *Resolver) apply(ctx context.Context, event FixEvent) {
	switch ev := event.(type) {
	case FixAcquired:
		r.applyFix(ctx, ev)
	case FixFailed:
		// Keep the stored/fallback region; never surfaced to the user.
		r.logg.Warn(r.logg.WithRegion(ctx, string(r.Current())), "location fix failed; keeping current region")
	case AuthorizationChanged:
		if ev.Status == enums.AuthorizationStatusAuthorized && r.provider != nil {
			r.provider.RequestOneShotFix()
		}
	}
}

func (r *Resolver) applyFix(ctx context.Context, fix FixAcquired) {
	resolved := ResolveCoordinate(fix.Coordinate)

	r.mu.Lock()
	if resolved == r.current {
		r.mu.Unlock()
		return
	}
	r.current = resolved
	r.mu.Unlock()

	ctx = r.logg.WithRegion(ctx, string(resolved))
	r.logg.Info(ctx, "region changed")
	r.metrics.IncRegionChanges()

	if err := r.store.Set(ctx, settings.KeyCurrentRegion, string(resolved)); err != nil {
		r.logg.Error(ctx, "persisting region; in-memory region stays authoritative", err)
	}
	if r.reseeder != nil {
		if err := r.reseeder.SeedRegionDefaults(ctx, resolved); err != nil {
			r.logg.Error(ctx, "seeding region defaults", err)
		}
	}
}

// RequestRefresh asks the provider for a one-shot fix. Fire-and-forget; a
// resolver without a provider ignores the request.
func (r *Resolver) RequestRefresh() {
	if r.provider == nil {
		return
	}
	r.provider.RequestOneShotFix()
}

// Current returns the active region.
func (r *Resolver) Current() enums.AppRegion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Language returns the display language for the active region.
func (r *Resolver) Language() enums.AppLanguage {
	return Language(r.Current())
}

// PhonePrefix returns the dialing prefix for the active region.
func (r *Resolver) PhonePrefix() string {
	return PhonePrefix(r.Current())
}

// ExpectedPhoneDigits returns the local-number length for the active region.
func (r *Resolver) ExpectedPhoneDigits() int {
	return ExpectedPhoneDigits(r.Current())
}

// EmergencyContacts returns the synthetic emergency contacts for the active
// region, recomputed on every call.
func (r *Resolver) EmergencyContacts(table *localization.Table) []catalog.Contact {
	return EmergencyContacts(r.Current(), table)
}
