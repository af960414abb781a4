package mapreduce

import (
	"sort"
	"strings"
	"sync"
)

// group is a (key, value-list, cursor) triple inside a partition. Its
// key and every value are engine-owned copies — the mapper's buffers
// are never aliased.
type group struct {
	key    string
	values []string
	cursor int
}

// partition is one of P in-memory buckets. During the map phase mu
// serializes writers within this partition; during the reduce phase
// exactly one goroutine owns the partition, so no further locking is
// required (spec.md §5).
type partition struct {
	mu     sync.Mutex
	groups []*group
}

const (
	initialGroupCapacity = 64
	initialValueCapacity = 8
)

func newPartitionStore(numPartitions int) []*partition {
	partitions := make([]*partition, numPartitions)
	for i := range partitions {
		partitions[i] = &partition{groups: make([]*group, 0, initialGroupCapacity)}
	}
	return partitions
}

// emit finds-or-creates the group for key within p and appends value.
// Both key and value are cloned so the caller's backing storage can be
// reused or discarded once emit returns. p.mu must not already be held
// by the caller.
func (p *partition) emit(key, value string) {
	keyCopy := strings.Clone(key)
	valueCopy := strings.Clone(value)

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, g := range p.groups {
		if g.key == keyCopy {
			g.values = append(g.values, valueCopy)
			return
		}
	}

	g := &group{key: keyCopy, values: make([]string, 0, initialValueCapacity)}
	g.values = append(g.values, valueCopy)
	p.groups = append(p.groups, g)
}

// sort orders p's groups by key ascending and, within each group, its
// values ascending — both byte-lexicographic, which is exactly what
// Go's native string comparison does. Must run after the map phase has
// fully joined and before any reducer starts; not safe to call
// concurrently with emit.
func (p *partition) sort() {
	sort.Slice(p.groups, func(i, j int) bool {
		return p.groups[i].key < p.groups[j].key
	})
	for _, g := range p.groups {
		sort.Strings(g.values)
	}
}

// get implements the Getter contract for a single partition: linear
// scan for key, return the value at the group's cursor and advance it,
// or reset the cursor to zero and report absence once exhausted. Only
// ever called from the single reduce worker that owns this partition,
// so it needs no lock of its own.
func (p *partition) get(key string) (string, bool) {
	for _, g := range p.groups {
		if g.key != key {
			continue
		}
		if g.cursor < len(g.values) {
			v := g.values[g.cursor]
			g.cursor++
			return v, true
		}
		g.cursor = 0
		return "", false
	}
	return "", false
}
