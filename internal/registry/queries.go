package registry

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"freelancercheckin/internal/domain"
)

// CountRegistrationsForEvent returns how many registrations reference eventID.
func (r *Registry) CountRegistrationsForEvent(eventID string) int {
	n := 0
	for _, reg := range r.registrations {
		if reg.EventID == eventID {
			n++
		}
	}
	return n
}

// RegistrationsForEvent returns the registrations referencing eventID in storage order.
// The event need not exist.
func (r *Registry) RegistrationsForEvent(eventID string) []domain.Registration {
	out := []domain.Registration{}
	for _, reg := range r.registrations {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out
}

// GroupByRole returns one group per role of ev, in the event's role order, each sorted
// by full name. Registrations whose selected role matches no role title are left out.
// When stored roles repeat a title, registrations go to the first of them only.
func (r *Registry) GroupByRole(ev domain.Event) []domain.RoleGroup {
	owner := roleOwners(ev)
	members := make([][]domain.Registration, len(ev.Roles))
	for i := range members {
		members[i] = []domain.Registration{}
	}
	for _, reg := range r.RegistrationsForEvent(ev.ID) {
		if i, ok := owner[reg.SelectedRole]; ok {
			members[i] = append(members[i], reg)
		}
	}
	groups := make([]domain.RoleGroup, 0, len(ev.Roles))
	for i, role := range ev.Roles {
		sortByName(members[i])
		groups = append(groups, domain.RoleGroup{
			Role:          role,
			Registrations: members[i],
			Full:          IsRoleFull(role, members[i]),
		})
	}
	return groups
}

// roleOwners maps each role title to the index of the first role carrying it.
func roleOwners(ev domain.Event) map[string]int {
	owner := make(map[string]int, len(ev.Roles))
	for i, role := range ev.Roles {
		if _, taken := owner[role.Title]; !taken {
			owner[role.Title] = i
		}
	}
	return owner
}

// IsRoleFull reports whether the role's vacancies are taken. It is advisory only.
func IsRoleFull(role domain.Role, registrations []domain.Registration) bool {
	return len(registrations) >= role.Vacancies
}

// Roster returns the grouped registrant list of a live event.
func (r *Registry) Roster(eventID string) (domain.EventRoster, bool) {
	ev, ok := r.Event(eventID)
	if !ok {
		return domain.EventRoster{}, false
	}
	owner := roleOwners(ev)
	total, unmatched := 0, 0
	for _, reg := range r.registrations {
		if reg.EventID != eventID {
			continue
		}
		total++
		if _, ok := owner[reg.SelectedRole]; !ok {
			unmatched++
		}
	}
	return domain.EventRoster{
		Event:     ev,
		Total:     total,
		Groups:    r.GroupByRole(ev),
		Unmatched: unmatched,
	}, true
}

// GlobalSearch returns the registrations matching term, sorted by full name.
// A registration matches when term is contained, ignoring case, in its full name or
// selected role, or literally in its CPF. An empty term matches everything.
func (r *Registry) GlobalSearch(term string) []domain.Registration {
	needle := strings.ToLower(term)
	out := []domain.Registration{}
	for _, reg := range r.registrations {
		if strings.Contains(strings.ToLower(reg.FullName), needle) ||
			strings.Contains(reg.CPF, term) ||
			strings.Contains(strings.ToLower(reg.SelectedRole), needle) {
			out = append(out, reg)
		}
	}
	sortByName(out)
	return out
}

// Search is GlobalSearch with each registration's event title resolved.
func (r *Registry) Search(term string) []domain.RegistrantRow {
	regs := r.GlobalSearch(term)
	// with repeated ids in a stored snapshot, the last event wins
	titles := make(map[string]string, len(r.events))
	for _, ev := range r.events {
		titles[ev.ID] = ev.Title
	}
	rows := make([]domain.RegistrantRow, 0, len(regs))
	for _, reg := range regs {
		title, ok := titles[reg.EventID]
		if !ok {
			title = domain.RemovedEventTitle
		}
		rows = append(rows, domain.RegistrantRow{Registration: reg, EventTitle: title})
	}
	return rows
}

// sortByName orders registrations by full name using Brazilian Portuguese collation.
// Equal names keep their relative order.
func sortByName(regs []domain.Registration) {
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(regs, func(i, j int) bool {
		return c.CompareString(regs[i].FullName, regs[j].FullName) < 0
	})
}
