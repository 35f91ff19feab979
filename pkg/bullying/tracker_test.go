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

package bullying

import (
	"testing"
	"time"

	"github.com/lucasduport/movie-night/pkg/messages"
)

func newTestTracker(window time.Duration) (*Tracker, *time.Time) {
	t := NewTracker(window, messages.ForLanguage("en"))
	clock := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	t.now = func() time.Time { return clock }
	return t, &clock
}

func TestNonTargetAlwaysProceeds(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	for i := 0; i < 10; i++ {
		if msg := tr.Evaluate("bystander", "watched", "603", "Bystander"); msg != "" {
			t.Fatalf("press %d: bystander got blocked: %q", i, msg)
		}
	}
	if len(tr.states) != 0 {
		t.Errorf("bystander presses allocated state: %d entries", len(tr.states))
	}
}

func TestNoTargetMeansNoTracking(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)

	if msg := tr.Evaluate("anyone", "watchlist", "603", "Anyone"); msg != "" {
		t.Errorf("with no target every press should proceed, got %q", msg)
	}
}

func TestThreeStrikeCycle(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	first := tr.Evaluate("victim", "watched", "603", "Victim")
	if first == "" {
		t.Fatal("first press should be blocked")
	}
	second := tr.Evaluate("victim", "watched", "603", "Victim")
	if second == "" {
		t.Fatal("second press should be blocked")
	}
	if first == second {
		t.Error("first and second strike messages should differ")
	}
	if third := tr.Evaluate("victim", "watched", "603", "Victim"); third != "" {
		t.Errorf("third press should proceed, got %q", third)
	}
}

func TestStrikesAreSharedAcrossControls(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	if tr.Evaluate("victim", "watched", "603", "Victim") == "" {
		t.Fatal("strike 1 expected")
	}
	// A different button on a different movie still advances the counter.
	if tr.Evaluate("victim", "watchlist", "27205", "Victim") == "" {
		t.Fatal("strike 2 expected")
	}
	if got := tr.Evaluate("victim", "delete", "603", "Victim"); got != "" {
		t.Errorf("third press should proceed regardless of control, got %q", got)
	}
}

func TestCooldownLetsPressesThrough(t *testing.T) {
	tr, clock := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")

	*clock = clock.Add(10 * time.Minute)
	for i := 0; i < 5; i++ {
		if msg := tr.Evaluate("victim", "watched", "603", "Victim"); msg != "" {
			t.Fatalf("press during cooldown should proceed, got %q", msg)
		}
	}

	if remaining := tr.RemainingCooldown("victim"); remaining != 20*time.Minute {
		t.Errorf("RemainingCooldown = %v, want 20m", remaining)
	}
}

func TestCooldownBoundary(t *testing.T) {
	tr, clock := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")

	// Exactly at the window edge the cooldown still holds.
	*clock = clock.Add(30 * time.Minute)
	if msg := tr.Evaluate("victim", "watched", "603", "Victim"); msg != "" {
		t.Errorf("press at exactly the window edge should proceed, got %q", msg)
	}

	// One tick past the edge the cycle restarts with a fresh strike.
	*clock = clock.Add(time.Millisecond)
	if msg := tr.Evaluate("victim", "watched", "603", "Victim"); msg == "" {
		t.Error("press after the window should start a new cycle with strike 1")
	}
}

func TestCooldownExpiryRestartsCycle(t *testing.T) {
	tr, clock := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	for cycle := 0; cycle < 3; cycle++ {
		if tr.Evaluate("victim", "watched", "603", "Victim") == "" {
			t.Fatalf("cycle %d: strike 1 expected", cycle)
		}
		if tr.Evaluate("victim", "watched", "603", "Victim") == "" {
			t.Fatalf("cycle %d: strike 2 expected", cycle)
		}
		if tr.Evaluate("victim", "watched", "603", "Victim") != "" {
			t.Fatalf("cycle %d: third press should proceed", cycle)
		}
		*clock = clock.Add(31 * time.Minute)
	}
}

func TestRetargetingKeepsResidualState(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	tr.Evaluate("victim", "watched", "603", "Victim")

	tr.SetTarget("other")
	if msg := tr.Evaluate("victim", "watched", "603", "Victim"); msg != "" {
		t.Errorf("former target should not be blocked, got %q", msg)
	}

	// Back on target, the old strike still counts.
	tr.SetTarget("victim")
	if tr.Evaluate("victim", "watched", "603", "Victim") == "" {
		t.Fatal("strike 2 expected after re-targeting")
	}
	if tr.Evaluate("victim", "watched", "603", "Victim") != "" {
		t.Error("third press should proceed after re-targeting")
	}
}

func TestResetTarget(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)
	tr.SetTarget("victim")

	if tr.ResetTarget() {
		t.Error("nothing to reset yet")
	}

	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")

	if !tr.ResetTarget() {
		t.Error("expected a cooldown to reset")
	}
	if tr.RemainingCooldown("victim") != 0 {
		t.Error("cooldown should be gone after reset")
	}
	// Cycle starts over from strike 1.
	if tr.Evaluate("victim", "watched", "603", "Victim") == "" {
		t.Error("strike 1 expected after reset")
	}
}

func TestStatusForTarget(t *testing.T) {
	tr, _ := newTestTracker(30 * time.Minute)

	strikes, remaining := tr.StatusForTarget()
	if strikes != 0 || remaining != 0 {
		t.Errorf("no target: got strikes=%d remaining=%v", strikes, remaining)
	}

	tr.SetTarget("victim")
	tr.Evaluate("victim", "watched", "603", "Victim")
	strikes, remaining = tr.StatusForTarget()
	if strikes != 1 || remaining != 0 {
		t.Errorf("after one strike: got strikes=%d remaining=%v", strikes, remaining)
	}

	tr.Evaluate("victim", "watched", "603", "Victim")
	tr.Evaluate("victim", "watched", "603", "Victim")
	strikes, remaining = tr.StatusForTarget()
	if strikes != 0 || remaining != 30*time.Minute {
		t.Errorf("in cooldown: got strikes=%d remaining=%v", strikes, remaining)
	}
}

func TestDefaultCooldownFallback(t *testing.T) {
	tr := NewTracker(0, messages.ForLanguage("en"))
	if tr.window != DefaultCooldown {
		t.Errorf("window = %v, want %v", tr.window, DefaultCooldown)
	}
}
