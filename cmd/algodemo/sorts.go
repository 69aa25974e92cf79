package main

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"search_algo_code/algo"
)

var sortInput = []int{
	95422, 28902, 59695, 51038, 92653, 22568, 62664, 65812, 85193, 6970,
	117181, 108792, 1152, 99284, 97047, 52711, 18498, 57024, 62044,
}

type namedSort struct {
	name string
	sort func([]int)
}

func allSorts(seed int64) []namedSort {
	rng := rand.New(rand.NewSource(seed))
	return []namedSort{
		{"Insertion Sort", algo.InsertionSort[int]},
		{"Binary Insertion Sort", algo.BinaryInsertionSort[int]},
		{"Shell Sort", algo.ShellSort[int]},
		{"Bubble Sort", algo.BubbleSort[int]},
		{"Bidirectional Bubble Sort", algo.CocktailSort[int]},
		{"Selection Sort", algo.SelectionSort[int]},
		{"Quick Sort", algo.QuickSort[int]},
		{"Randomized Quick Sort", func(s []int) { algo.RandomizedQuickSort(s, rng) }},
		{"Heap Sort", algo.HeapSort[int]},
	}
}

func runSorts(cctx *cli.Context) error {
	log, done, err := newLogger(cctx, "sorts")
	if err != nil {
		return err
	}
	defer done()

	w := cctx.App.Writer
	header := color.New(color.Bold, color.FgYellow)
	header.Fprintln(w, "========== SORTING ALGORITHMS ==========")
	fmt.Fprintf(w, "Original: %v\n\n", sortInput)

	sorts := allSorts(cctx.Int64("seed"))
	var failed []string
	for _, s := range sorts {
		arr := slices.Clone(sortInput)
		start := time.Now()
		s.sort(arr)
		log.Debugw("sorted", "algorithm", s.name, "n", len(arr), "took", time.Since(start))
		if !printResult(w, s.name, arr) {
			failed = append(failed, s.name)
		}
	}

	if len(failed) > 0 {
		log.Errorw("sorts produced unsorted output", "algorithms", failed)
		return cli.Exit(fmt.Sprintf("%d sort(s) failed", len(failed)), 1)
	}
	log.Infow("all sorts passed", "count", len(sorts))
	return nil
}

// printResult prints arr with each element green if it is in order relative to
// its predecessor and red otherwise, followed by a verdict. It reports whether
// arr is sorted.
func printResult(w io.Writer, name string, arr []int) bool {
	color.New(color.Bold, color.FgCyan).Fprintf(w, "=== %s ===\n", name)
	inOrder := color.New(color.FgGreen).SprintFunc()
	outOfOrder := color.New(color.FgRed).SprintFunc()
	fmt.Fprint(w, "Array: ")
	for i, x := range arr {
		if i > 0 && x < arr[i-1] {
			fmt.Fprint(w, outOfOrder(x), " ")
		} else {
			fmt.Fprint(w, inOrder(x), " ")
		}
	}
	fmt.Fprintln(w)

	sorted := algo.IsSorted(arr)
	if sorted {
		color.New(color.Bold, color.FgGreen).Fprintln(w, "PASSED: array is sorted")
	} else {
		color.New(color.Bold, color.FgRed).Fprintln(w, "FAILED: array is not sorted")
	}
	fmt.Fprintln(w)
	return sorted
}
