package application

import (
	"context"
	"encoding/json"
	"fmt"

	"folderstar/internal/ports"
)

// Welcome message shown once per installation
const (
	WelcomeMessage = "⭐ Folder Star activated! Star any folder to keep it one keystroke away."
	WelcomeAck     = "Got it!"
)

// Onboarding gates the one-time welcome message on a flag in the
// installation-wide state store
type Onboarding struct {
	global ports.StateStore
}

// NewOnboarding creates an Onboarding backed by the global state store
func NewOnboarding(global ports.StateStore) *Onboarding {
	return &Onboarding{global: global}
}

// Welcome returns the welcome message and true the first time it is
// called for an installation, and false on every later call
func (o *Onboarding) Welcome(ctx context.Context) (string, bool, error) {
	firstTime := true

	raw, ok, err := o.global.Get(ctx, KeyFirstTime)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", KeyFirstTime, err)
	}
	if ok {
		if err := json.Unmarshal(raw, &firstTime); err != nil {
			return "", false, fmt.Errorf("failed to decode %s: %w", KeyFirstTime, err)
		}
	}
	if !firstTime {
		return "", false, nil
	}

	raw, _ = json.Marshal(false)
	if err := o.global.Update(ctx, KeyFirstTime, raw); err != nil {
		return "", false, &PersistenceError{Key: KeyFirstTime, Err: err}
	}
	return WelcomeMessage, true, nil
}
