/*
 * movie-night is a Discord bot for browsing, discussing and tracking movies together.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package bullying implements the bot's running gag: a designated target
// gets their button presses "rejected" twice before every third press goes
// through and buys them a quiet period.
//
// The rules for the target, per press of ANY tracked control:
//
//	press 1: blocked, the bot calls them out publicly
//	press 2: blocked, the bot mocks them again
//	press 3: the action proceeds and a cooldown window starts
//
// While the window is open every press proceeds silently. Once it lapses the
// three-strike cycle starts over. Users other than the target are never
// affected.
package bullying

import (
	"sync"
	"time"

	"github.com/lucasduport/movie-night/pkg/messages"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// DefaultCooldown is the quiet period earned by a third press.
const DefaultCooldown = 30 * time.Minute

type pressState struct {
	count         int
	cooldownStart time.Time
}

// Tracker holds the current target and per-user press state. Safe for
// concurrent use by interaction handlers.
type Tracker struct {
	mu     sync.Mutex
	target string
	states map[string]*pressState
	window time.Duration
	msg    *messages.Catalog

	now func() time.Time
}

// NewTracker builds a tracker with the given cooldown window. A zero or
// negative cooldown falls back to DefaultCooldown.
func NewTracker(cooldown time.Duration, msg *messages.Catalog) *Tracker {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Tracker{
		states: make(map[string]*pressState),
		window: cooldown,
		msg:    msg,
		now:    time.Now,
	}
}

// SetTarget designates the user to bully. An empty ID disables the gag.
// Previously accumulated press state is kept, so a user who is re-targeted
// later resumes where they left off.
func (t *Tracker) SetTarget(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = userID
	if userID == "" {
		utils.InfoLog("Bully mode disabled")
	} else {
		utils.InfoLog("Bully mode enabled for user %s", userID)
	}
}

// Target returns the current target's user ID, or "" when disabled.
func (t *Tracker) Target() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target
}

// Evaluate decides whether a press goes through. It returns "" when the
// action should proceed, or the message to post when the press is blocked.
// Presses of every control share one counter; which button was pressed only
// matters for logging.
func (t *Tracker) Evaluate(userID, action, subjectID, displayName string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target == "" || userID != t.target {
		return ""
	}

	st := t.states[userID]
	if st == nil {
		st = &pressState{}
		t.states[userID] = st
	}

	if !st.cooldownStart.IsZero() {
		elapsed := t.now().Sub(st.cooldownStart)
		if elapsed <= t.window {
			utils.DebugLog("Bully: %s pressed %s on %s during cooldown, letting it through", userID, action, subjectID)
			return ""
		}
		st.count = 0
		st.cooldownStart = time.Time{}
		utils.DebugLog("Bully: cooldown expired for %s, cycle restarts", userID)
	}

	st.count++
	switch st.count {
	case 1:
		utils.InfoLog("Bully: first strike for %s (%s on %s)", userID, action, subjectID)
		return t.msg.FirstStrike(displayName)
	case 2:
		utils.InfoLog("Bully: second strike for %s (%s on %s)", userID, action, subjectID)
		return t.msg.SecondStrike(displayName)
	default:
		st.count = 0
		st.cooldownStart = t.now()
		utils.InfoLog("Bully: third press for %s goes through, cooldown started", userID)
		return ""
	}
}

// RemainingCooldown returns how much of the user's quiet period is left,
// or zero when they are not in cooldown.
func (t *Tracker) RemainingCooldown(userID string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.states[userID]
	if st == nil || st.cooldownStart.IsZero() {
		return 0
	}
	elapsed := t.now().Sub(st.cooldownStart)
	if elapsed > t.window {
		return 0
	}
	return t.window - elapsed
}

// StatusForTarget reports the target's strike count and remaining cooldown.
func (t *Tracker) StatusForTarget() (strikes int, remaining time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target == "" {
		return 0, 0
	}
	st := t.states[t.target]
	if st == nil {
		return 0, 0
	}
	if !st.cooldownStart.IsZero() {
		elapsed := t.now().Sub(st.cooldownStart)
		if elapsed <= t.window {
			remaining = t.window - elapsed
		}
	}
	return st.count, remaining
}

// ResetTarget wipes the target's press state, ending any cooldown early.
// It reports whether there was anything to reset.
func (t *Tracker) ResetTarget() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target == "" {
		return false
	}
	st := t.states[t.target]
	if st == nil || (st.count == 0 && st.cooldownStart.IsZero()) {
		return false
	}
	delete(t.states, t.target)
	utils.InfoLog("Bully: state reset for %s", t.target)
	return true
}

// ClearAll drops every user's press state and the target.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = ""
	t.states = make(map[string]*pressState)
}
