package models

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestTagProfileValidate(t *testing.T) {
	valid := TagProfile{"cleaning": 5, "plumbing": 0.01}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}

	if err := (TagProfile{"cleaning": -1}).Validate(); err == nil {
		t.Error("negative weight should be rejected")
	}
	if err := (TagProfile{"cleaning": math.NaN()}).Validate(); err == nil {
		t.Error("NaN weight should be rejected")
	}
	if err := (TagProfile{"cleaning": math.Inf(1)}).Validate(); err == nil {
		t.Error("infinite weight should be rejected")
	}
}

func TestTagProfileDecay(t *testing.T) {
	profile := TagProfile{"cleaning": 5, "plumbing": 2}

	profile.Decay(0.8)

	if profile["cleaning"] != 4.0 {
		t.Errorf("cleaning = %v, want 4.0", profile["cleaning"])
	}
	if profile["plumbing"] != 1.6 {
		t.Errorf("plumbing = %v, want 1.6", profile["plumbing"])
	}
}

// One decay-boost cycle without reinforcement must leave a tag at no
// more than 0.8 of its prior weight.
func TestDecayMonotonicity(t *testing.T) {
	profile := TagProfile{"cleaning": 5, "plumbing": 2}

	profile.Decay(0.8 * TimeDecayFactor(0.95, time.Now().Add(-48*time.Hour), time.Now()))
	profile.Boost("plumbing", 1, 1)

	if profile["cleaning"] > 5*0.8 {
		t.Errorf("unreinforced tag decayed to %v, want <= %v", profile["cleaning"], 5*0.8)
	}
}

func TestTagProfileBoost(t *testing.T) {
	profile := TagProfile{"cleaning": 2}

	profile.Boost("cleaning", 1, 2)
	if profile["cleaning"] != 3.0 {
		t.Errorf("existing tag should add amount: got %v, want 3.0", profile["cleaning"])
	}

	profile.Boost("plumbing", 1, 2)
	if profile["plumbing"] != 2.0 {
		t.Errorf("new tag should start at newAmount: got %v, want 2.0", profile["plumbing"])
	}
}

func TestTagProfilePrune(t *testing.T) {
	profile := TagProfile{"keep": 0.01, "drop": 0.009}

	profile.Prune(0.01)

	if _, ok := profile["drop"]; ok {
		t.Error("weight below threshold should be pruned")
	}
	if _, ok := profile["keep"]; !ok {
		t.Error("weight at threshold should survive")
	}
}

func TestTagProfileCap(t *testing.T) {
	profile := TagProfile{}
	for i := 0; i < 60; i++ {
		profile[fmt.Sprintf("tag%02d", i)] = float64(i)
	}

	profile.Cap(50)

	if len(profile) != 50 {
		t.Fatalf("profile has %d entries, want 50", len(profile))
	}
	// The lightest ten (weights 0..9) must be gone, the heaviest kept
	if _, ok := profile["tag05"]; ok {
		t.Error("lightest entries should be dropped")
	}
	if _, ok := profile["tag59"]; !ok {
		t.Error("heaviest entry should survive")
	}
}

func TestTagProfileCap_UnderLimit(t *testing.T) {
	profile := TagProfile{"a": 1, "b": 2}
	profile.Cap(50)
	if len(profile) != 2 {
		t.Errorf("profile under the cap should be untouched, got %d entries", len(profile))
	}
}

func TestTimeDecayFactor(t *testing.T) {
	now := time.Now()

	if got := TimeDecayFactor(0.95, time.Time{}, now); got != 1.0 {
		t.Errorf("zero lastUpdated should not decay, got %v", got)
	}
	if got := TimeDecayFactor(0.95, now, now); got != 1.0 {
		t.Errorf("no elapsed time should not decay, got %v", got)
	}

	oneDay := TimeDecayFactor(0.95, now.Add(-24*time.Hour), now)
	if math.Abs(oneDay-0.95) > 1e-6 {
		t.Errorf("one day should decay by 0.95, got %v", oneDay)
	}

	tenDays := TimeDecayFactor(0.95, now.Add(-240*time.Hour), now)
	want := math.Pow(0.95, 10)
	if math.Abs(tenDays-want) > 1e-6 {
		t.Errorf("ten days should decay by 0.95^10, got %v", tenDays)
	}
}

func TestTagProfileClone(t *testing.T) {
	original := TagProfile{"cleaning": 5}
	clone := original.Clone()

	clone["cleaning"] = 1
	clone["extra"] = 2

	if original["cleaning"] != 5 || len(original) != 1 {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestBoostMagnitudes(t *testing.T) {
	tests := []struct {
		interactionType string
		serviceBoost    float64
		tagBoost        float64
	}{
		{InteractionView, 3, 1},
		{InteractionClick, 6, 2},
		{InteractionBooking, 10, 4},
	}

	for _, tt := range tests {
		service, tag := BoostMagnitudes(tt.interactionType)
		if service != tt.serviceBoost || tag != tt.tagBoost {
			t.Errorf("BoostMagnitudes(%s) = (%v, %v), want (%v, %v)",
				tt.interactionType, service, tag, tt.serviceBoost, tt.tagBoost)
		}
	}
}

func TestSourceBoost(t *testing.T) {
	tests := []struct {
		source string
		boost  float64
		ok     bool
	}{
		{"bot", 1.0, true},
		{"content", 0.5, true},
		{"collab", 0.4, true},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		boost, ok := SourceBoost(tt.source)
		if boost != tt.boost || ok != tt.ok {
			t.Errorf("SourceBoost(%s) = (%v, %v), want (%v, %v)", tt.source, boost, ok, tt.boost, tt.ok)
		}
	}
}

func TestValidInteractionType(t *testing.T) {
	for _, valid := range []string{InteractionView, InteractionClick, InteractionBooking} {
		if !ValidInteractionType(valid) {
			t.Errorf("%s should be valid", valid)
		}
	}
	if ValidInteractionType(InteractionBotChat) {
		t.Error("bot_chat goes through its own endpoint, not the service path")
	}
	if ValidInteractionType("purchase") {
		t.Error("unknown type should be invalid")
	}
}
