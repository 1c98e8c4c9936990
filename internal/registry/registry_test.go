package registry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freelancercheckin/internal/domain"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func rockInRio() domain.Event {
	return domain.Event{
		ID:        "ev-1",
		Title:     "Rock in Rio",
		Location:  "Estádio Mineirão",
		Date:      "2025-09-13",
		StartTime: "12:00",
		EndTime:   "00:00",
		Roles:     []domain.Role{{Title: "Garçom", Vacancies: 2}},
	}
}

func freelancer(name, role string) domain.Freelancer {
	return domain.Freelancer{
		FullName:     name,
		CPF:          "000.000.000-00",
		RG:           "MG-00.000.000",
		Phone:        "(31) 90000-0000",
		Address:      "Rua A, 1",
		SelectedRole: role,
	}
}

func names(regs []domain.Registration) []string {
	out := make([]string, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.FullName)
	}
	return out
}

func TestRegistry_AddEvent(t *testing.T) {
	tests := []struct {
		name    string
		initial []domain.Event
		add     domain.Event
		wantIDs []string
	}{
		{
			name:    "prepends to empty registry",
			add:     domain.Event{ID: "a", Title: "A"},
			wantIDs: []string{"a"},
		},
		{
			name:    "new event becomes most recent",
			initial: []domain.Event{{ID: "a"}, {ID: "b"}},
			add:     domain.Event{ID: "c"},
			wantIDs: []string{"c", "a", "b"},
		},
		{
			name:    "missing id is generated",
			initial: []domain.Event{{ID: "a"}},
			add:     domain.Event{Title: "no id"},
			wantIDs: []string{"gen-1", "a"},
		},
		{
			name:    "taken id is replaced",
			initial: []domain.Event{{ID: "a"}},
			add:     domain.Event{ID: "a", Title: "copy"},
			wantIDs: []string{"gen-1", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.initial, nil, WithIDGenerator(sequentialIDs("gen")))
			r.AddEvent(tt.add)
			var got []string
			for _, ev := range r.Events() {
				got = append(got, ev.ID)
			}
			require.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestRegistry_GeneratedIDsSkipTakenOnes(t *testing.T) {
	ids := []string{"dup", "", "dup", "fresh"}
	i := 0
	next := func() string {
		id := ids[i]
		i++
		return id
	}
	r := New(nil, []domain.Registration{{ID: "dup"}}, WithIDGenerator(next))

	reg := r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")
	require.Equal(t, "fresh", reg.ID)
}

func TestRegistry_RemoveEvent(t *testing.T) {
	r := New([]domain.Event{{ID: "a"}, {ID: "b"}}, nil)

	require.False(t, r.RemoveEvent("missing"))
	require.Len(t, r.Events(), 2)

	require.True(t, r.RemoveEvent("a"))
	require.Len(t, r.Events(), 1)
	require.Equal(t, "b", r.Events()[0].ID)

	require.False(t, r.RemoveEvent("a"))
}

func TestRegistry_RemovedEventIDsAreNotReused(t *testing.T) {
	ids := []string{"a", "a", "b"}
	i := 0
	next := func() string {
		id := ids[i]
		i++
		return id
	}
	r := New(nil, nil, WithIDGenerator(next))

	first := r.AddEvent(domain.Event{Title: "first"})
	require.Equal(t, "a", first.ID)
	r.AddRegistration(freelancer("Ana", "Garçom"), first.ID)
	require.True(t, r.RemoveEvent(first.ID))

	// explicit reuse of the removed id is replaced too
	second := r.AddEvent(domain.Event{ID: "a", Title: "second"})
	require.Equal(t, "b", second.ID)
	require.Empty(t, r.RegistrationsForEvent(second.ID))
	require.Equal(t, domain.RemovedEventTitle, r.ResolveEventTitle("a"))
}

func TestRegistry_OrphanEventIDsStayTakenAfterReload(t *testing.T) {
	regs := []domain.Registration{{ID: "r-1", EventID: "gone"}}
	r := New(nil, regs, WithIDGenerator(func() func() string {
		ids := []string{"gone", "new"}
		i := 0
		return func() string {
			id := ids[i]
			i++
			return id
		}
	}()))

	ev := r.AddEvent(domain.Event{Title: "fresh"})
	require.Equal(t, "new", ev.ID)
	require.Equal(t, 0, r.CountRegistrationsForEvent(ev.ID))
}

func TestRegistry_AddRegistration(t *testing.T) {
	stamp := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := New([]domain.Event{rockInRio()}, nil,
		WithIDGenerator(sequentialIDs("reg")),
		WithClock(func() time.Time { return stamp }),
	)

	reg := r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")
	require.Equal(t, "reg-1", reg.ID)
	require.Equal(t, "ev-1", reg.EventID)
	require.Equal(t, stamp, reg.Timestamp)
	require.Equal(t, "Ana", reg.FullName)

	// unknown event and unknown role are still accepted
	orphan := r.AddRegistration(freelancer("Bia", "Segurança"), "gone")
	require.Equal(t, "reg-2", orphan.ID)
	require.Len(t, r.Registrations(), 2)
	require.Equal(t, "Ana", r.Registrations()[0].FullName)
}

func TestRegistry_RockInRioScenario(t *testing.T) {
	r := New(nil, nil)
	ev := r.AddEvent(rockInRio())
	for _, n := range []string{"Bruna", "Ana", "Carlos"} {
		r.AddRegistration(freelancer(n, "Garçom"), ev.ID)
	}

	groups := r.GroupByRole(ev)
	require.Len(t, groups, 1)
	require.Equal(t, []string{"Ana", "Bruna", "Carlos"}, names(groups[0].Registrations))
	require.True(t, IsRoleFull(ev.Roles[0], groups[0].Registrations))
	require.True(t, groups[0].Full)

	require.True(t, r.RemoveEvent(ev.ID))
	require.Equal(t, domain.RemovedEventTitle, r.ResolveEventTitle(ev.ID))
	require.Len(t, r.RegistrationsForEvent(ev.ID), 3)
	require.Equal(t, 3, r.CountRegistrationsForEvent(ev.ID))
}

func TestRegistry_GroupByRole(t *testing.T) {
	ev := domain.Event{
		ID: "ev-1",
		Roles: []domain.Role{
			{Title: "Bar", Vacancies: 3},
			{Title: "Caixa", Vacancies: 1},
			{Title: "Chefe", Vacancies: 0},
		},
	}
	r := New([]domain.Event{ev}, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Zeca", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Beto", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Ana", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Érica", "Caixa"), "ev-1")
	r.AddRegistration(freelancer("Fabio", "Caixa"), "ev-1")
	r.AddRegistration(freelancer("Fora", "Segurança"), "ev-1")
	r.AddRegistration(freelancer("Outro", "Bar"), "ev-2")

	groups := r.GroupByRole(ev)
	require.Len(t, groups, 3)

	require.Equal(t, "Bar", groups[0].Role.Title)
	require.Equal(t, []string{"Ana", "Beto", "Zeca"}, names(groups[0].Registrations))
	require.True(t, groups[0].Full)

	require.Equal(t, "Caixa", groups[1].Role.Title)
	// accented names sort by letter, not by byte
	require.Equal(t, []string{"Érica", "Fabio"}, names(groups[1].Registrations))
	require.True(t, groups[1].Full)

	require.Equal(t, "Chefe", groups[2].Role.Title)
	require.Empty(t, groups[2].Registrations)
	require.True(t, groups[2].Full, "zero vacancies is always full")

	roster, ok := r.Roster("ev-1")
	require.True(t, ok)
	require.Equal(t, 6, roster.Total)
	require.Equal(t, 1, roster.Unmatched)

	_, ok = r.Roster("ev-2")
	require.False(t, ok)
}

func TestRegistry_GroupByRole_StableForEqualNames(t *testing.T) {
	ev := domain.Event{ID: "ev-1", Roles: []domain.Role{{Title: "Bar", Vacancies: 5}}}
	r := New([]domain.Event{ev}, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Maria", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Ana", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Maria", "Bar"), "ev-1")

	group := r.GroupByRole(ev)[0].Registrations
	require.Equal(t, []string{"r-2", "r-1", "r-3"}, []string{group[0].ID, group[1].ID, group[2].ID})
}

func TestRegistry_Roster_DuplicateRoleTitles(t *testing.T) {
	// stored before titles had to be unique
	ev := domain.Event{
		ID: "ev-1",
		Roles: []domain.Role{
			{Title: "Garçom", Vacancies: 2},
			{Title: "Garçom", Vacancies: 1},
			{Title: "Bar", Vacancies: 1},
		},
	}
	r := New([]domain.Event{ev}, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")
	r.AddRegistration(freelancer("Zeca", "Segurança"), "ev-1")

	roster, ok := r.Roster("ev-1")
	require.True(t, ok)
	require.Equal(t, 2, roster.Total)
	require.Equal(t, 1, roster.Unmatched)
	require.Len(t, roster.Groups, 3)
	require.Equal(t, []string{"Ana"}, names(roster.Groups[0].Registrations))
	require.Empty(t, roster.Groups[1].Registrations)
	require.Empty(t, roster.Groups[2].Registrations)

	grouped := 0
	for _, g := range roster.Groups {
		grouped += len(g.Registrations)
	}
	require.Equal(t, roster.Total, grouped+roster.Unmatched)
}

func TestIsRoleFull(t *testing.T) {
	role := domain.Role{Title: "Bar", Vacancies: 2}
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"empty", 0, false},
		{"below", 1, false},
		{"at capacity", 2, true},
		{"overbooked", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := make([]domain.Registration, tt.count)
			require.Equal(t, tt.want, IsRoleFull(role, regs))
		})
	}
}

func TestRegistry_GlobalSearch(t *testing.T) {
	r := New([]domain.Event{rockInRio()}, nil, WithIDGenerator(sequentialIDs("r")))
	add := func(name, cpf, role string) {
		f := freelancer(name, role)
		f.CPF = cpf
		r.AddRegistration(f, "ev-1")
	}
	add("Carlos Souza", "111.222.333-44", "Garçom")
	add("ana lima", "555.666.777-88", "Atendente de Bar")
	add("Bruno Costa", "ABC-123", "Operador de Caixa")

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty matches all sorted", "", []string{"ana lima", "Bruno Costa", "Carlos Souza"}},
		{"name ignores case", "CARLOS", []string{"Carlos Souza"}},
		{"role ignores case", "bar", []string{"ana lima"}},
		{"cpf literal", "555.666", []string{"ana lima"}},
		{"cpf is case sensitive", "abc-123", []string{}},
		{"cpf exact case", "ABC-123", []string{"Bruno Costa"}},
		{"role substring", "caixa", []string{"Bruno Costa"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, names(r.GlobalSearch(tt.term)))
		})
	}
}

func TestRegistry_GlobalSearch_StableForEqualNames(t *testing.T) {
	r := New(nil, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Maria", "Bar"), "ev-1")
	r.AddRegistration(freelancer("Ana", "Bar"), "ev-2")
	r.AddRegistration(freelancer("Maria", "Caixa"), "ev-1")
	r.AddRegistration(freelancer("Maria", "Bar"), "ev-3")

	got := r.GlobalSearch("")
	ids := make([]string, 0, len(got))
	for _, reg := range got {
		ids = append(ids, reg.ID)
	}
	require.Equal(t, []string{"r-2", "r-1", "r-3", "r-4"}, ids)
}

func TestRegistry_Search_ResolvesTitles(t *testing.T) {
	r := New([]domain.Event{rockInRio()}, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")
	r.AddRegistration(freelancer("Bia", "Garçom"), "deleted")

	rows := r.Search("")
	require.Len(t, rows, 2)
	require.Equal(t, "Rock in Rio", rows[0].EventTitle)
	require.Equal(t, domain.RemovedEventTitle, rows[1].EventTitle)
}

func TestRegistry_Search_RepeatedEventIDUsesLastTitle(t *testing.T) {
	r := New([]domain.Event{
		{ID: "ev-1", Title: "Edição nova"},
		{ID: "ev-1", Title: "Edição antiga"},
	}, nil, WithIDGenerator(sequentialIDs("r")))
	r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")

	rows := r.Search("")
	require.Len(t, rows, 1)
	require.Equal(t, "Edição antiga", rows[0].EventTitle)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := New([]domain.Event{rockInRio()}, nil)
	r.AddRegistration(freelancer("Ana", "Garçom"), "ev-1")

	evs := r.Events()
	evs[0].Title = "changed"
	regs := r.Registrations()
	regs[0].FullName = "changed"

	require.Equal(t, "Rock in Rio", r.Events()[0].Title)
	require.Equal(t, "Ana", r.Registrations()[0].FullName)
}
