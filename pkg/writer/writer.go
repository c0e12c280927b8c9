// Package writer serializes generation results into the benchmark's flat
// file formats.
package writer

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/gilchrisn/abcd-graph-generator/pkg/abcd"
)

// WriteNetwork writes one edge per line as "a<TAB>b", sorted
// lexicographically ascending. The input slice is not modified.
func WriteNetwork(path string, edges []abcd.Edge) error {
	sorted := append([]abcd.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].A != sorted[j].A {
			return sorted[i].A < sorted[j].A
		}
		return sorted[i].B < sorted[j].B
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, e := range sorted {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", e.A, e.B); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCommunities writes one vertex per line as "i<TAB>c" in vertex order.
func WriteCommunities(path string, clusters []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i, c := range clusters {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", i+1, c); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteDegrees writes the degree sequence, one integer per line.
func WriteDegrees(path string, degrees []int32) error {
	return writeInts(path, degrees)
}

// WriteCommunitySizes writes the community-size sequence, one integer per
// line.
func WriteCommunitySizes(path string, sizes []int32) error {
	return writeInts(path, sizes)
}

func writeInts(path string, values []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
