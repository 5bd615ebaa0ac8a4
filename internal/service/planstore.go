package service

import (
	"sync"

	"github.com/google/uuid"

	"AI-TRAVEL-PLANNER_BACK-END/internal/llm"
)

// PlanStore keeps each user's most recent generated plan in memory.
// Generations are sequenced per user: Begin hands out a ticket, and Complete
// only installs the result if no newer generation has begun since. A slow
// earlier generation can therefore never overwrite a later one.
type PlanStore struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*userPlan
}

type userPlan struct {
	seq     uint64
	current *llm.Result
	currSeq uint64
}

// NewPlanStore creates a new PlanStore instance
func NewPlanStore() *PlanStore {
	return &PlanStore{plans: make(map[uuid.UUID]*userPlan)}
}

// Begin registers a new generation for the user and returns its sequence
// number.
func (s *PlanStore) Begin(userID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[userID]
	if !ok {
		p = &userPlan{}
		s.plans[userID] = p
	}
	p.seq++
	return p.seq
}

// Complete installs the result for the given generation. It returns false and
// leaves the stored plan untouched if a newer generation began after seq was
// issued or if a newer result is already installed.
func (s *PlanStore) Complete(userID uuid.UUID, seq uint64, result llm.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[userID]
	if !ok || seq < p.seq || seq <= p.currSeq {
		return false
	}
	p.current = &result
	p.currSeq = seq
	return true
}

// Current returns the user's most recently completed plan, or false if none
// has completed yet.
func (s *PlanStore) Current(userID uuid.UUID) (llm.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[userID]
	if !ok || p.current == nil {
		return llm.Result{}, false
	}
	return *p.current, true
}
