// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

var errInvalidStressOptions = errors.New("invalid stress options")

// StressResult summarizes a stress run.
type StressResult struct {
	Seed            int64
	Operations      int
	Inserts         int
	Deletes         int
	NoOps           int
	SingleRotations int // operations that needed one rotation
	DoubleRotations int // operations that needed two or more
	MaxHeight       int
	FinalSize       int
}

// heightBound is the proven upper limit on the height of an AVL tree
// holding n values.
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

// RunStress applies a random mix of inserts and deletes and checks every
// invariant after each step. The run is reproducible for a given seed.
func RunStress(ctx context.Context, options StressConfig, out io.Writer) (StressResult, error) {
	result := StressResult{Seed: options.Seed}
	if options.Operations <= 0 {
		return result, fmt.Errorf("%w: operations must be positive, got %d", errInvalidStressOptions, options.Operations)
	}
	if options.ValueRange <= 0 {
		return result, fmt.Errorf("%w: value range must be positive, got %d", errInvalidStressOptions, options.ValueRange)
	}
	if options.Readers < 0 {
		return result, fmt.Errorf("%w: readers must not be negative, got %d", errInvalidStressOptions, options.Readers)
	}

	rng := rand.New(rand.NewSource(options.Seed))
	tree := avl.NewSyncTree(nil)
	reference := make(map[int]bool)

	readerCtx, stopReaders := context.WithCancel(ctx)
	defer stopReaders()
	readerErrs := make(chan error, options.Readers)
	var readers sync.WaitGroup
	for i := 0; i < options.Readers; i++ {
		readers.Add(1)
		go func(id int) {
			defer readers.Done()
			if err := readSorted(readerCtx, tree); err != nil {
				readerErrs <- fmt.Errorf("reader %d: %w", id, err)
			}
		}(i)
	}

	var bar *progressbar.ProgressBar
	if options.Progress && out != nil {
		bar = progressbar.NewOptions(options.Operations,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(out)
			}),
		)
	}

	runErr := func() error {
		for step := 0; step < options.Operations; step++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			v := rng.Intn(options.ValueRange)
			verb := "insert"
			var rotations []avl.Rotation
			if rng.Intn(3) == 0 {
				verb = "delete"
				if reference[v] {
					result.Deletes++
					delete(reference, v)
				} else {
					result.NoOps++
				}
				rotations = tree.Delete(v)
			} else {
				if reference[v] {
					result.NoOps++
				} else {
					result.Inserts++
					reference[v] = true
				}
				rotations = tree.Insert(v)
			}
			result.Operations++

			switch len(rotations) {
			case 0:
			case 1:
				result.SingleRotations++
			default:
				result.DoubleRotations++
			}

			if err := verifyStep(tree, len(reference)); err != nil {
				return fmt.Errorf("step %d (%s %d): %w", step, verb, v, err)
			}
			if h := tree.Height(); h > result.MaxHeight {
				result.MaxHeight = h
			}
			if bar != nil {
				bar.Add(1)
			}
		}
		return verifyContents(tree, reference)
	}()

	stopReaders()
	readers.Wait()
	close(readerErrs)

	result.FinalSize = tree.Len()
	if runErr != nil {
		return result, runErr
	}
	if err, ok := <-readerErrs; ok {
		return result, err
	}
	return result, nil
}

func verifyStep(tree *avl.SyncTree, want int) error {
	if err := tree.Check(); err != nil {
		return err
	}
	if n := tree.Len(); n != want {
		return fmt.Errorf("tree holds %d values, expected %d", n, want)
	}
	if h := tree.Height(); float64(h) >= heightBound(want) {
		return fmt.Errorf("height %d exceeds the bound for %d values", h, want)
	}
	return nil
}

func verifyContents(tree *avl.SyncTree, reference map[int]bool) error {
	want := make([]int, 0, len(reference))
	for v := range reference {
		want = append(want, v)
	}
	sort.Ints(want)

	got := tree.InOrderValues()
	if len(got) != len(want) {
		return fmt.Errorf("final contents hold %d values, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("final contents differ at index %d: %d, expected %d", i, got[i], want[i])
		}
	}
	return nil
}

// readSorted keeps reading the tree until ctx is done, failing if a read
// ever observes values out of order.
func readSorted(ctx context.Context, tree *avl.SyncTree) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		values := tree.InOrderValues()
		for i := 1; i < len(values); i++ {
			if values[i-1] >= values[i] {
				return fmt.Errorf("values not ascending at index %d: %d, %d", i, values[i-1], values[i])
			}
		}
	}
}

func printStressResult(w io.Writer, styles *Styles, result StressResult) {
	fmt.Fprintln(w, styles.Title.Render("Stress run"))
	fmt.Fprintf(w, "%s %d\n", styles.Label.Render("Seed:"), result.Seed)
	fmt.Fprintf(w, "%s %d (inserts %d, deletes %d, no-ops %d)\n", styles.Label.Render("Operations:"),
		result.Operations, result.Inserts, result.Deletes, result.NoOps)
	fmt.Fprintf(w, "%s single %d, double %d\n", styles.Label.Render("Rebalances:"),
		result.SingleRotations, result.DoubleRotations)
	fmt.Fprintf(w, "%s %d  %s %d\n", styles.Label.Render("Final size:"), result.FinalSize,
		styles.Label.Render("Max height:"), result.MaxHeight)
}
