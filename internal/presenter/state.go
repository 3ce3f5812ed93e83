package presenter

import (
	"github.com/naka-gawa/github-portfolio/internal/domain"
)

// User-visible status messages.
const (
	LoadingMessage     = "Carregando projetos do GitHub..."
	EmptyMessage       = "Nenhum projeto encontrado para o filtro selecionado."
	errorMessagePrefix = "Erro ao carregar projetos: "
)

// State is the UI state of the portfolio: the loaded projects, the load
// outcome and the active filter. It only changes through its transitions.
type State struct {
	projects []domain.ProjectCard
	filter   domain.FilterSelection
	loading  bool
	err      error
}

// NewState returns an idle state with the "all" filter selected.
func NewState() *State {
	return &State{filter: domain.FilterAll}
}

// LoadStarted discards any previous outcome.
func (s *State) LoadStarted() {
	s.loading = true
	s.projects = nil
	s.err = nil
}

// LoadCompleted stores the loaded projects.
func (s *State) LoadCompleted(projects []domain.ProjectCard) {
	s.loading = false
	s.projects = projects
	s.err = nil
}

// LoadFailed records the failure; no partial result is kept.
func (s *State) LoadFailed(err error) {
	s.loading = false
	s.projects = nil
	s.err = err
}

// SelectFilter changes the active filter.
func (s *State) SelectFilter(sel domain.FilterSelection) {
	s.filter = sel
}

// Clone returns a copy that can take its own transitions. The project
// slice is shared; cards are never mutated after loading.
func (s *State) Clone() *State {
	c := *s
	return &c
}

func (s *State) Projects() []domain.ProjectCard { return s.projects }
func (s *State) Filter() domain.FilterSelection  { return s.filter }
func (s *State) Err() error                      { return s.err }

// Project looks a loaded card up by title.
func (s *State) Project(title string) (domain.ProjectCard, bool) {
	for _, p := range s.projects {
		if p.Title == title {
			return p, true
		}
	}
	return domain.ProjectCard{}, false
}

// View is a render-ready snapshot of the state.
type View struct {
	Filter   domain.FilterSelection
	Controls []FilterControl
	Cards    []domain.ProjectCard
	// Message replaces the cards when non-empty.
	Message string
	IsError bool
}

// View computes what should be displayed for the current state.
func (s *State) View() View {
	v := View{
		Filter:   s.filter,
		Controls: FilterControls(s.filter),
	}
	switch {
	case s.loading:
		v.Message = LoadingMessage
	case s.err != nil:
		v.Message = errorMessagePrefix + s.err.Error()
		v.IsError = true
	default:
		v.Cards = Filter(s.projects, s.filter)
		if len(v.Cards) == 0 {
			v.Message = EmptyMessage
		}
	}
	return v
}
