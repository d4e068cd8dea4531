// Command wordlecover finds sets of five-letter words that together cover
// 25 of the 26 letters of the alphabet exactly once each, leaving exactly
// one letter unused. It is a second front-end for the dlx core, built
// around the same exact-cover encoding as the original Dancing Links
// word-cover example: each candidate word is a row spanning its five
// (distinct) letter columns, and a 27th marker column forces exactly one
// of 26 synthetic single-letter "filler" rows into every solution so that
// the all-filler, zero-word solution doesn't dominate the count.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/dlx"
)

const (
	letterColumns = 26
	markerColumn  = letterColumns
	totalColumns  = letterColumns + 1
	wordLength    = 5
)

func main() {
	if len(os.Args) != 2 {
		fatal("usage: wordlecover <word-list-file>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fatal("can't open %s: %v", os.Args[1], err)
	}
	defer f.Close()

	matrix := dlx.NewMatrix(dlx.Silent)
	registry := dlx.NewRegistry[string]()

	wordCount := addWordRows(matrix, registry, f)
	addFillerRows(matrix, registry)

	fmt.Fprintf(os.Stderr, "%s %d words, %d columns\n",
		color.HiBlueString("loaded"), wordCount, matrix.Columns())

	total := matrix.Search(math.MaxUint64, func(index uint64, tags []dlx.Tag, depth int) {
		printSolution(index, tags, registry)
	})

	fmt.Fprintf(os.Stderr, "%s\n", color.HiGreenString("%d solutions found", total))
}

// addWordRows scans f for five-letter lines made of distinct lowercase
// letters and adds one exact-cover row per word, tagged with the word
// itself via registry. It returns the number of rows added.
func addWordRows(matrix *dlx.Matrix, registry *dlx.Registry[string], f *os.File) int {
	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) != wordLength {
			continue
		}
		cols, ok := letterColumnsOf(word)
		if !ok {
			continue
		}
		tag := registry.Put(word)
		matrix.AddRow(tag, cols)
		count++
	}
	if err := scanner.Err(); err != nil {
		fatal("error reading word list: %v", err)
	}
	return count
}

// letterColumnsOf returns the strictly increasing column indices for
// word's distinct letters, and false if word contains anything other than
// five distinct lowercase letters.
func letterColumnsOf(word string) ([]uint, bool) {
	var bits uint32
	for _, c := range word {
		if c < 'a' || c > 'z' {
			return nil, false
		}
		bits |= 1 << uint(c-'a')
	}
	cols := make([]uint, 0, wordLength)
	for i := range uint(letterColumns) {
		if bits&(1<<i) != 0 {
			cols = append(cols, i)
		}
	}
	return cols, len(cols) == wordLength
}

// addFillerRows adds, for each letter, a two-column row covering just that
// letter and the marker column. A solution may use at most one filler row
// (the marker column can only be covered once), which is exactly what
// keeps "25 single letters plus nothing" from crowding out real word
// solutions while still allowing the 26th, genuinely uncovered letter.
func addFillerRows(matrix *dlx.Matrix, registry *dlx.Registry[string]) {
	for i := range uint(letterColumns) {
		tag := registry.Put("")
		matrix.AddRow(tag, []uint{i, markerColumn})
	}
}

func printSolution(index uint64, tags []dlx.Tag, registry *dlx.Registry[string]) {
	fmt.Printf("%d:", index)
	for _, t := range tags {
		if word := registry.Get(t); word != "" {
			fmt.Printf(" %s", word)
		}
	}
	fmt.Println()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.HiRedString("wordlecover:"), fmt.Sprintf(format, args...))
	os.Exit(1)
}
