package region

import (
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/types"
)

// FixEvent is the inbound message delivered by the location provider. The
// resolver consumes events from a single channel, so deliveries queue
// instead of racing.
type FixEvent interface {
	isFixEvent()
}

// FixAcquired carries a successful geographic fix.
type FixAcquired struct {
	Coordinate types.Coordinate
}

func (FixAcquired) isFixEvent() {}

// FixFailed reports that the provider could not produce a fix.
type FixFailed struct {
	Reason error
}

func (FixFailed) isFixEvent() {}

// AuthorizationChanged reports a location permission change.
type AuthorizationChanged struct {
	Status enums.AuthorizationStatus
}

func (AuthorizationChanged) isFixEvent() {}
