// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rkbel_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/rkbel"
)

func pairsInt(got []rkbel.Pair[int]) [][2]uint64 {
	out := make([][2]uint64, len(got))
	for i, p := range got {
		out[i] = [2]uint64{uint64(p.Value), p.Rank.ValueOr(^uint64(0))}
	}
	return out
}

func TestScenarioFromListAndMaterialize(t *testing.T) {
	seq := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 1, Rank: rkbel.Zero()},
		{Value: 2, Rank: rkbel.MustFromValue(1)},
		{Value: 3, Rank: rkbel.MustFromValue(2)},
	}, false)
	got, err := rkbel.MaterializePrefix(seq, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]uint64{{1, 0}, {2, 1}, {3, 2}}
	if got2 := pairsInt(got); !equalPairSlices(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

func TestScenarioMergeSmall(t *testing.T) {
	a := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 1, Rank: rkbel.Zero()},
		{Value: 3, Rank: rkbel.MustFromValue(2)},
	}, false)
	b := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 2, Rank: rkbel.MustFromValue(1)},
		{Value: 4, Rank: rkbel.MustFromValue(3)},
	}, false)
	got, err := rkbel.MaterializePrefix(rkbel.Merge(a, b, false), 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]uint64{{1, 0}, {2, 1}, {3, 2}, {4, 3}}
	if got2 := pairsInt(got); !equalPairSlices(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

func TestScenarioMergeTieBreak(t *testing.T) {
	a := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 1, Rank: rkbel.Zero()},
		{Value: 3, Rank: rkbel.MustFromValue(1)},
	}, false)
	b := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 2, Rank: rkbel.Zero()},
		{Value: 4, Rank: rkbel.MustFromValue(1)},
	}, false)
	got, err := rkbel.MaterializePrefix(rkbel.Merge(a, b, false), 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]uint64{{1, 0}, {2, 0}, {3, 1}, {4, 1}}
	if got2 := pairsInt(got); !equalPairSlices(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

func TestScenarioObserveRenormalizes(t *testing.T) {
	a := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 1, Rank: rkbel.MustFromValue(2)},
		{Value: 2, Rank: rkbel.MustFromValue(5)},
		{Value: 3, Rank: rkbel.MustFromValue(9)},
	}, false)
	observed := rkbel.Observe(a, func(v int) (bool, error) { return v >= 2, nil }, false)
	got, err := rkbel.MaterializePrefix(observed, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]uint64{{2, 0}, {3, 4}}
	if got2 := pairsInt(got); !equalPairSlices(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

func TestScenarioMergeApplyRankSum(t *testing.T) {
	a := rkbel.FromList([]rkbel.Pair[int]{
		{Value: 1, Rank: rkbel.Zero()},
		{Value: 2, Rank: rkbel.MustFromValue(1)},
		{Value: 3, Rank: rkbel.MustFromValue(2)},
	}, false)
	f := func(n int) (rkbel.Sequence[int], error) {
		return rkbel.FromList([]rkbel.Pair[int]{
			{Value: n, Rank: rkbel.Zero()},
			{Value: 10 * n, Rank: rkbel.MustFromValue(1)},
		}, false), nil
	}
	got, err := rkbel.MaterializePrefix(rkbel.MergeApply(a, f, false), 10)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]uint64{{1, 0}, {10, 1}, {2, 1}, {20, 2}, {3, 2}, {30, 3}}
	if got2 := pairsInt(got); !equalPairSlices(got2, want) {
		t.Fatalf("got %v, want %v", got2, want)
	}
}

// MontyHallOutcome is the event space of a single round: the prize door,
// the contestant's initial pick, and the door the host reveals.
type MontyHallOutcome struct {
	Prize, Pick, Host int
}

func montyHallSequence(t *testing.T) rkbel.Sequence[MontyHallOutcome] {
	doors := rkbel.FromValuesUniform([]int{0, 1, 2}, rkbel.Zero(), false)
	prizeAndPick := rkbel.MergeApply(doors, func(prize int) (rkbel.Sequence[[2]int], error) {
		picks := rkbel.FromValuesUniform([]int{0, 1, 2}, rkbel.Zero(), false)
		return rkbel.Map(picks, func(pick int) ([2]int, error) {
			return [2]int{prize, pick}, nil
		}, false), nil
	}, false)

	return rkbel.MergeApply(prizeAndPick, func(pp [2]int) (rkbel.Sequence[MontyHallOutcome], error) {
		prize, pick := pp[0], pp[1]
		var candidates []int
		for d := 0; d < 3; d++ {
			if d != prize && d != pick {
				candidates = append(candidates, d)
			}
		}
		pairs := make([]rkbel.Pair[MontyHallOutcome], 0, len(candidates))
		var rank rkbel.Rank
		if len(candidates) > 1 {
			rank = rkbel.MustFromValue(1)
		} else {
			rank = rkbel.Zero()
		}
		for _, host := range candidates {
			pairs = append(pairs, rkbel.Pair[MontyHallOutcome]{
				Value: MontyHallOutcome{Prize: prize, Pick: pick, Host: host},
				Rank:  rank,
			})
		}
		return rkbel.FromList(pairs, false), nil
	}, false)
}

func TestScenarioMontyHall(t *testing.T) {
	outcomes := montyHallSequence(t)
	conditioned := rkbel.Observe(outcomes, func(o MontyHallOutcome) (bool, error) { return o.Host == 1, nil }, false)

	switchWins := rkbel.Map(conditioned, func(o MontyHallOutcome) (bool, error) {
		remaining := 3 - o.Pick - o.Host
		return remaining == o.Prize, nil
	}, false)
	stayWins := rkbel.Map(conditioned, func(o MontyHallOutcome) (bool, error) {
		return o.Pick == o.Prize, nil
	}, false)

	minRankSwitchTrue, err := minRankFor(switchWins, true)
	if err != nil {
		t.Fatal(err)
	}
	minRankSwitchFalse, err := minRankFor(switchWins, false)
	if err != nil {
		t.Fatal(err)
	}
	if !minRankSwitchTrue.Less(minRankSwitchFalse) {
		t.Fatalf("switching should be strictly more normal when it wins: true-rank=%v false-rank=%v", minRankSwitchTrue, minRankSwitchFalse)
	}

	minRankStayTrue, err := minRankFor(stayWins, true)
	if err != nil {
		t.Fatal(err)
	}
	minRankStayFalse, err := minRankFor(stayWins, false)
	if err != nil {
		t.Fatal(err)
	}
	if minRankStayTrue.Compare(minRankStayFalse) <= 0 {
		t.Fatalf("staying should be strictly less normal when it wins: true-rank=%v false-rank=%v", minRankStayTrue, minRankStayFalse)
	}
}

func minRankFor(seq rkbel.Sequence[bool], want bool) (rkbel.Rank, error) {
	best := rkbel.Infinity()
	it := rkbel.NewIterator(seq)
	for !it.Exhausted() {
		v, r, ok, err := it.Peek()
		if err != nil {
			return rkbel.Rank{}, err
		}
		if !ok {
			break
		}
		if v == want && r.Less(best) {
			best = r
		}
		if err := it.Advance(); err != nil {
			return rkbel.Rank{}, err
		}
	}
	return best, nil
}

func TestScenarioFibonacciGenerator(t *testing.T) {
	var calls int
	fib := func(i int) int {
		a, b := 0, 1
		for j := 0; j < i; j++ {
			a, b = b, a+b
		}
		return a
	}
	g := func(i int) (int, rkbel.Rank, error) {
		calls++
		return fib(i), rkbel.MustFromValue(uint64(i)), nil
	}
	seq := rkbel.FromGenerator(g, 0, false)
	if calls > 1 {
		t.Fatalf("constructing from_generator must call g at most once, called %d times", calls)
	}

	_, ok, err := rkbel.First(seq)
	if err != nil || !ok {
		t.Fatalf("First() = %v, %v", ok, err)
	}
	if calls != 1 {
		t.Fatalf("First() should trigger exactly one call, got %d", calls)
	}

	got, err := rkbel.MaterializePrefix(seq, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 7 {
		t.Fatalf("got %d entries, want 7", len(got))
	}
	if calls < 7 || calls > 8 {
		t.Fatalf("materializing 7 elements should trigger between 7 and 8 total calls, got %d", calls)
	}
	wantFib := []int{0, 1, 1, 2, 3, 5, 8}
	for i, p := range got {
		if p.Value != wantFib[i] {
			t.Fatalf("got[%d] = %d, want %d", i, p.Value, wantFib[i])
		}
	}
}

func TestScenarioCrashStickiness(t *testing.T) {
	seq, err := rkbel.FromValuesSequential([]int{1, 2, 0, 4}, rkbel.Zero(), false)
	if err != nil {
		t.Fatal(err)
	}
	divided := rkbel.Map(seq, func(v int) (int, error) {
		if v == 0 {
			return 0, errors.New("division by zero")
		}
		return 10 / v, nil
	}, false)

	_, err1 := rkbel.MaterializePrefix(divided, 10)
	if err1 == nil {
		t.Fatal("expected a division error")
	}
	_, err2 := rkbel.MaterializePrefix(divided, 10)
	if err2 == nil {
		t.Fatal("expected the identical division error on re-materialization")
	}
	if err1.Error() != err2.Error() {
		t.Fatalf("errors differ across runs: %v vs %v", err1, err2)
	}
}

func equalPairSlices(a, b [][2]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
