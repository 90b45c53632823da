package activities

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/mergington/activities/internal/platform/errors"
)

// Registry is the in-memory store mapping activity names to activities.
// The catalog is fixed at construction; the only mutation is adding a
// participant. A single mutex serializes the duplicate-check-then-append
// sequence so concurrent signups cannot admit the same email twice.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*Activity
}

// NewRegistry builds a registry seeded with the given catalog. The seed is
// copied, so callers keep no aliases into registry state.
func NewRegistry(seed []Activity) (*Registry, error) {
	registry := &Registry{activities: make(map[string]*Activity, len(seed))}
	for _, activity := range seed {
		name := strings.TrimSpace(activity.Name)
		if name == "" {
			return nil, apperrors.New(apperrors.CodeActivityNameEmpty, "seed activity name is empty")
		}
		if _, exists := registry.activities[name]; exists {
			return nil, apperrors.WithMetadata(apperrors.CodeActivityNameTaken, fmt.Sprintf("seed activity %q is duplicated", name), map[string]string{"activity": name})
		}
		seeded := activity.clone()
		seeded.Name = name
		seen := make(map[string]struct{}, len(seeded.Participants))
		for _, email := range seeded.Participants {
			if _, dup := seen[email]; dup {
				return nil, apperrors.WithMetadata(apperrors.CodeAlreadyRegistered, fmt.Sprintf("seed roster for %q repeats %q", name, email), map[string]string{"activity": name, "email": email})
			}
			seen[email] = struct{}{}
		}
		registry.activities[name] = &seeded
	}
	return registry, nil
}

// List returns a snapshot of every activity keyed by name. Participant
// slices are cloned, so mutating the result never touches registry state.
func (r *Registry) List(ctx context.Context) (map[string]Activity, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r == nil {
		return nil, apperrors.New(apperrors.CodeUnknown, "activity registry is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.clone()
	}
	return snapshot, nil
}

// Signup appends email to the named activity's roster.
//
// The activity name must match a catalog key exactly, embedded spaces and
// case included. The email is treated as an opaque string; it is never
// validated as a well-formed address, only required to be non-blank and
// absent from the roster.
func (r *Registry) Signup(ctx context.Context, activityName, email string) (Confirmation, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Confirmation{}, err
		}
	}
	if r == nil {
		return Confirmation{}, apperrors.New(apperrors.CodeUnknown, "activity registry is required")
	}
	if strings.TrimSpace(activityName) == "" {
		return Confirmation{}, apperrors.New(apperrors.CodeActivityNameEmpty, "activity name is required")
	}
	if strings.TrimSpace(email) == "" {
		return Confirmation{}, apperrors.New(apperrors.CodeEmailEmpty, "student email is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return Confirmation{}, apperrors.WithMetadata(
			apperrors.CodeActivityNotFound,
			fmt.Sprintf("activity %q is not in the catalog", activityName),
			map[string]string{"activity": activityName},
		)
	}
	if slices.Contains(activity.Participants, email) {
		return Confirmation{}, apperrors.WithMetadata(
			apperrors.CodeAlreadyRegistered,
			fmt.Sprintf("%s is already signed up for %s", email, activityName),
			map[string]string{"activity": activityName, "email": email},
		)
	}

	activity.Participants = append(activity.Participants, email)
	return Confirmation{
		Activity: activityName,
		Email:    email,
		Message:  fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}
