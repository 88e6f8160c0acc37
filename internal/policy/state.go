package policy

import (
	"sync"

	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

// RunState accumulates the outcome of evaluating one pull request.
// It only ever grows: nothing recorded is removed.
type RunState struct {
	mu             sync.Mutex
	violations     map[models.ViolationCategory]struct{}
	newRootDirs    orderedSet
	rootFiles      orderedSet
	oversizedFiles []models.Finding
	findings       []models.Finding
}

func NewRunState() *RunState {
	return &RunState{
		violations:  make(map[models.ViolationCategory]struct{}),
		newRootDirs: newOrderedSet(),
		rootFiles:   newOrderedSet(),
	}
}

// Record marks a category as violated. Recording a category twice is a no-op.
func (s *RunState) Record(category models.ViolationCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.violations[category] = struct{}{}
}

func (s *RunState) HasViolations() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.violations) > 0
}

func (s *RunState) HasCategory(category models.ViolationCategory) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.violations[category]
	return ok
}

// Categories returns the recorded categories in reporting order.
func (s *RunState) Categories() []models.ViolationCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ViolationCategory
	for _, c := range models.ViolationCategories {
		if _, ok := s.violations[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *RunState) AddRootDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newRootDirs.add(dir)
}

func (s *RunState) AddRootFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootFiles.add(path)
}

func (s *RunState) AddOversized(path string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oversizedFiles = append(s.oversizedFiles, models.Finding{
		Path:     path,
		Category: models.OversizedFile,
		Size:     size,
	})
}

func (s *RunState) AddFinding(f models.Finding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findings = append(s.findings, f)
}

func (s *RunState) NewRootDirectories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newRootDirs.values()
}

func (s *RunState) RootFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootFiles.values()
}

func (s *RunState) OversizedFiles() []models.Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Finding(nil), s.oversizedFiles...)
}

func (s *RunState) Findings() []models.Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Finding(nil), s.findings...)
}

type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() orderedSet {
	return orderedSet{seen: make(map[string]struct{})}
}

func (o *orderedSet) add(v string) bool {
	if _, ok := o.seen[v]; ok {
		return false
	}
	o.seen[v] = struct{}{}
	o.order = append(o.order, v)
	return true
}

func (o *orderedSet) values() []string {
	return append([]string(nil), o.order...)
}
