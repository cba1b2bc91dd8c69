package bot

import "aroma/internal/domain"

// State is the per-conversation memory the orchestrator mutates on every
// message. One instance per session; never share across conversations. Not
// safe for concurrent use; the host serializes access per session.
type State struct {
	Stage                 string
	MessageCount          int
	CasualMessageCount    int
	CasualTopicsDiscussed map[string]struct{}
	OfferMade             bool
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns the conversation to its initial casual stage. Invoked on
// session start and after a goodbye.
func (s *State) Reset() {
	s.Stage = domain.StageCasual
	s.MessageCount = 0
	s.CasualMessageCount = 0
	s.CasualTopicsDiscussed = make(map[string]struct{})
	s.OfferMade = false
}
