// Package events publica los cambios de villas para que otros servicios
// (por ejemplo un indexador de búsqueda) puedan reaccionar.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action es el tipo de cambio que sufrió la villa
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// VillaEvent es el mensaje que se publica por cada cambio
type VillaEvent struct {
	ID         string    `json:"id"`
	Action     Action    `json:"action"`
	VillaID    uint      `json:"villa_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewVillaEvent arma un evento con id y fecha nuevos
func NewVillaEvent(action Action, villaID uint) VillaEvent {
	return VillaEvent{
		ID:         uuid.NewString(),
		Action:     action,
		VillaID:    villaID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher publica eventos de villas
type Publisher interface {
	Publish(ctx context.Context, event VillaEvent) error
	Close() error
}

// NoopPublisher descarta los eventos. Se usa cuando no hay broker configurado.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, VillaEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
