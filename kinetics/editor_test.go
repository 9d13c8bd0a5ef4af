// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import (
	"testing"

	"github.com/WangHan-combustion/cantera/internal/assert"
)

// Testable property 7: reduced-engine equivalence when the mask is all-true.
func TestReduceAllActiveEquivalence(t *testing.T) {
	ph := demoPhase(t)
	k, err := NewKineticsFromReactions(ph, []Reaction{elementaryHOHReaction()})
	if err != nil {
		t.Fatal(err)
	}
	if err := k.UpdateROP(); err != nil {
		t.Fatal(err)
	}
	want := append([]float64(nil), k.NetROP()...)

	reduced, err := k.Reduce([]bool{true})
	if err != nil {
		t.Fatal(err)
	}
	if err := reduced.UpdateROP(); err != nil {
		t.Fatal(err)
	}
	for i, v := range reduced.NetROP() {
		assert.Scalar(t, "reduced net ROP", 0, v, want[i])
	}
}

func TestReduceDropsInactive(t *testing.T) {
	ph := demoPhase(t)
	k, err := NewKineticsFromReactions(ph, []Reaction{elementaryHOHReaction(), elementaryHOHReaction()})
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := k.Reduce([]bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	if reduced.NReactions() != 1 {
		t.Fatalf("expected 1 remaining reaction, got %d", reduced.NReactions())
	}
}

func TestForwardIndexMap(t *testing.T) {
	L, M := ForwardIndexMap([]bool{true, false, true, true})
	if len(L) != 3 || L[0] != 0 || L[1] != 2 || L[2] != 3 {
		t.Fatalf("unexpected L = %v", L)
	}
	if M[0] != 0 || M[1] != -1 || M[2] != 1 || M[3] != 2 {
		t.Fatalf("unexpected M = %v", M)
	}
}
