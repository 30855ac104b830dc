// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Graphemes is an editable text storage whose index unit is a single
// extended grapheme cluster, as defined by UAX #29.
//
// Cluster boundaries are computed when text enters the storage and are not
// recomputed afterwards: replacing a range never merges the replacement with
// its neighbors, so the length always changes by exactly the number of
// clusters in the replacement.
//
// A zero Graphemes is empty and ready to use.
type Graphemes struct {
	clusters []string
}

// NewGraphemes segments text into a new [Graphemes].
func NewGraphemes(text string) *Graphemes {
	return &Graphemes{clusters: segment(text)}
}

// Len implements [Storage].
func (g *Graphemes) Len() int {
	return len(g.clusters)
}

// Cluster returns the i-th grapheme cluster.
func (g *Graphemes) Cluster(i int) string {
	return g.clusters[i]
}

// Width returns the monospace display width of clusters [start, end).
func (g *Graphemes) Width(start, end int) int {
	checkRange(start, end, len(g.clusters))

	var width int
	for _, cluster := range g.clusters[start:end] {
		width += uniseg.StringWidth(cluster)
	}
	return width
}

// String returns the contents of this storage.
func (g *Graphemes) String() string {
	return strings.Join(g.clusters, "")
}

// ReplaceRange implements [Editable].
//
// start and end are cluster indices, so they cannot split a cluster.
func (g *Graphemes) ReplaceRange(start, end int, replacement string) {
	checkRange(start, end, len(g.clusters))
	g.clusters = slices.Replace(g.clusters, start, end, segment(replacement)...)
}

// segment splits text into grapheme clusters.
func segment(text string) []string {
	var clusters []string
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
