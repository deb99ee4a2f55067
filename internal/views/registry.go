package views

import (
	"fmt"

	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// Registry maps each collection kind to its view.
type Registry struct {
	views map[domain.Kind]View
}

// NewRegistry returns a registry holding the view of every known kind.
func NewRegistry() *Registry {
	r := &Registry{views: make(map[domain.Kind]View, len(domain.AllKinds))}
	for _, v := range []View{
		employeesView(),
		departmentsView(),
		attendanceView(),
		leaveRequestsView(),
		jobPostingsView(),
		onboardingView(),
		auditLogsView(),
		notificationsView(),
	} {
		r.views[v.Kind()] = v
	}
	return r
}

// Get returns the view for kind.
func (r *Registry) Get(kind domain.Kind) (View, error) {
	v, ok := r.views[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
	}
	return v, nil
}

// Kinds returns the registered kinds in display order.
func (r *Registry) Kinds() []domain.Kind {
	kinds := make([]domain.Kind, 0, len(r.views))
	for _, k := range domain.AllKinds {
		if _, ok := r.views[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
