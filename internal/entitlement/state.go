// Package entitlement holds the subscription tier and share toggles that gate
// promotional content in shared posts.
package entitlement

import "sync"

// FreeDailyLimit is the number of rephrases a free-tier user may run per day.
const FreeDailyLimit = 5

// Snapshot is an immutable copy of the entitlement state at one point in time.
// The stored toggles are raw values; callers must use EffectiveTags and
// EffectiveLink when deciding what to render.
type Snapshot struct {
	IsPro              bool `json:"is_pro"`
	ShareTagsEnabled   bool `json:"share_tags_enabled"`
	LpLinkEnabled      bool `json:"lp_link_enabled"`
	SaveHistoryEnabled bool `json:"save_history_enabled"`
	DailyCount         int  `json:"daily_count"`
}

// DefaultSnapshot returns the state a new process starts with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		IsPro:              false,
		ShareTagsEnabled:   true,
		LpLinkEnabled:      true,
		SaveHistoryEnabled: true,
	}
}

// EffectiveTags reports whether share hashtags must be rendered.
// The free tier can never suppress them.
func (s Snapshot) EffectiveTags() bool {
	if s.IsPro {
		return s.ShareTagsEnabled
	}
	return true
}

// EffectiveLink reports whether the landing-page link must be rendered.
// The free tier can never suppress it.
func (s Snapshot) EffectiveLink() bool {
	if s.IsPro {
		return s.LpLinkEnabled
	}
	return true
}

// EffectiveSaveHistory reports whether rephrases are recorded. Only Pro can
// turn history off.
func (s Snapshot) EffectiveSaveHistory() bool {
	if s.IsPro {
		return s.SaveHistoryEnabled
	}
	return true
}

// CanRemoveTags reports whether the tag toggle has any effect.
func (s Snapshot) CanRemoveTags() bool { return s.IsPro }

// CanRemoveLink reports whether the link toggle has any effect.
func (s Snapshot) CanRemoveLink() bool { return s.IsPro }

// Remaining returns how many rephrases are left today, or -1 when unlimited.
func (s Snapshot) Remaining() int {
	if s.IsPro {
		return -1
	}
	return max(FreeDailyLimit-s.DailyCount, 0)
}

// State is the process-wide mutable entitlement. It is safe for concurrent use;
// readers should take a Snapshot and pass it by value.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState creates a State with default values.
func NewState() *State {
	return &State{snap: DefaultSnapshot()}
}

// NewStateFrom creates a State seeded from a previously loaded snapshot.
func NewStateFrom(s Snapshot) *State {
	return &State{snap: s}
}

// Snapshot returns a copy of the current state.
func (st *State) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// SetPro sets the subscription tier.
func (st *State) SetPro(isPro bool) {
	st.update(func(s *Snapshot) { s.IsPro = isPro })
}

// Upgrade switches to the Pro tier and clears today's usage.
func (st *State) Upgrade() {
	st.update(func(s *Snapshot) {
		s.IsPro = true
		s.DailyCount = 0
	})
}

// SetShareTagsEnabled stores the hashtag toggle. It only takes effect for Pro.
func (st *State) SetShareTagsEnabled(enabled bool) {
	st.update(func(s *Snapshot) { s.ShareTagsEnabled = enabled })
}

// SetLpLinkEnabled stores the landing-page link toggle. It only takes effect for Pro.
func (st *State) SetLpLinkEnabled(enabled bool) {
	st.update(func(s *Snapshot) { s.LpLinkEnabled = enabled })
}

// SetSaveHistoryEnabled toggles recording of rephrase history.
func (st *State) SetSaveHistoryEnabled(enabled bool) {
	st.update(func(s *Snapshot) { s.SaveHistoryEnabled = enabled })
}

// ResetDailyCount clears today's rephrase usage.
func (st *State) ResetDailyCount() {
	st.update(func(s *Snapshot) { s.DailyCount = 0 })
}

// ConsumeRephrase records n rephrases against today's usage. On the free tier it
// fails with a *LimitError, leaving the count untouched, if n would exceed the
// daily limit.
func (st *State) ConsumeRephrase(n int) error {
	if n <= 0 {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.snap.IsPro && st.snap.DailyCount+n > FreeDailyLimit {
		return &LimitError{Limit: FreeDailyLimit, Used: st.snap.DailyCount, Requested: n}
	}
	st.snap.DailyCount += n
	return nil
}

// ReleaseRephrase returns n previously consumed rephrases, for calls that
// failed after ConsumeRephrase. The count never drops below zero.
func (st *State) ReleaseRephrase(n int) {
	if n <= 0 {
		return
	}
	st.update(func(s *Snapshot) { s.DailyCount = max(s.DailyCount-n, 0) })
}

func (st *State) update(fn func(*Snapshot)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.snap)
}
