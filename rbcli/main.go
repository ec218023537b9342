// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command rbcli scripts two of the library's end-to-end scenarios —
// Monty Hall and a Fibonacci generator — as an effectful pipeline built
// from code.hybscloud.com/kont's continuation monad, the way a host
// binding might sequence calls into the ranking-function core from the
// outside.
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rkbel"
)

// outcome is a single Monty Hall round: the prize door, the contestant's
// initial pick, and the door the host reveals.
type outcome struct {
	prize, pick, host int
}

// report lifts a side-effecting print into the continuation monad, so it
// composes with Bind exactly as kont's own handler examples sequence
// effects.
func report(format string, args ...any) kont.Cont[int, struct{}] {
	return kont.Suspend(func(k func(struct{}) int) int {
		fmt.Printf(format+"\n", args...)
		return k(struct{}{})
	})
}

func montyHallOutcomes() rkbel.Sequence[outcome] {
	doors := rkbel.FromValuesUniform([]int{0, 1, 2}, rkbel.Zero(), false)
	prizeAndPick := rkbel.MergeApply(doors, func(prize int) (rkbel.Sequence[[2]int], error) {
		picks := rkbel.FromValuesUniform([]int{0, 1, 2}, rkbel.Zero(), false)
		return rkbel.Map(picks, func(pick int) ([2]int, error) {
			return [2]int{prize, pick}, nil
		}, false), nil
	}, false)

	return rkbel.MergeApply(prizeAndPick, func(pp [2]int) (rkbel.Sequence[outcome], error) {
		prize, pick := pp[0], pp[1]
		var candidates []int
		for d := 0; d < 3; d++ {
			if d != prize && d != pick {
				candidates = append(candidates, d)
			}
		}
		rank := rkbel.Zero()
		if len(candidates) > 1 {
			rank = rkbel.MustFromValue(1)
		}
		pairs := make([]rkbel.Pair[outcome], 0, len(candidates))
		for _, host := range candidates {
			pairs = append(pairs, rkbel.Pair[outcome]{Value: outcome{prize, pick, host}, Rank: rank})
		}
		return rkbel.FromList(pairs, false), nil
	}, false)
}

// minRankWhere scans seq for the smallest rank among elements satisfying
// want, returning Infinity if none match.
func minRankWhere(seq rkbel.Sequence[outcome], want func(outcome) bool) (rkbel.Rank, error) {
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
		if want(v) && r.Less(best) {
			best = r
		}
		if err := it.Advance(); err != nil {
			return rkbel.Rank{}, err
		}
	}
	return best, nil
}

func montyHallPipeline() kont.Cont[int, struct{}] {
	return kont.Bind(report("monty hall: uniform prize and pick over 3 doors, host reveals a losing door"),
		func(struct{}) kont.Cont[int, struct{}] {
			outcomes := montyHallOutcomes()
			conditioned := rkbel.Observe(outcomes, func(o outcome) (bool, error) { return o.host == 1, nil }, false)

			switchRank, err := minRankWhere(conditioned, func(o outcome) bool {
				remaining := 3 - o.pick - o.host
				return remaining == o.prize
			})
			if err != nil {
				return report("error: %v", err)
			}
			stayRank, err := minRankWhere(conditioned, func(o outcome) bool { return o.pick == o.prize })
			if err != nil {
				return report("error: %v", err)
			}
			return report("most normal winning rank: switch=%v stay=%v", switchRank, stayRank)
		})
}

func fibonacci(i int) int {
	a, b := 0, 1
	for j := 0; j < i; j++ {
		a, b = b, a+b
	}
	return a
}

func fibonacciPipeline() kont.Cont[int, struct{}] {
	return kont.Bind(report("fibonacci via from_generator, first 10 terms"),
		func(struct{}) kont.Cont[int, struct{}] {
			seq := rkbel.FromGenerator(func(i int) (int, rkbel.Rank, error) {
				return fibonacci(i), rkbel.MustFromValue(uint64(i)), nil
			}, 0, false)

			got, err := rkbel.MaterializePrefix(seq, 10)
			if err != nil {
				return report("error: %v", err)
			}
			values := make([]int, len(got))
			for i, p := range got {
				values[i] = p.Value
			}
			return report("%v", values)
		})
}

func main() {
	pipeline := kont.Bind(montyHallPipeline(), func(struct{}) kont.Cont[int, struct{}] {
		return fibonacciPipeline()
	})
	exitCode := kont.RunWith(pipeline, func(struct{}) int { return 0 })
	os.Exit(exitCode)
}
