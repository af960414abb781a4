package mapreduce

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runMapPhase drives the map worker pool (spec.md §4.5): numWorkers
// goroutines share fileQueue and each repeatedly claims the next file
// until the queue is drained, invoking mapper on every claimed file
// with an EmitFunc bound to partitions. It blocks until every worker
// has joined.
func runMapPhase(ctx context.Context, logger *zap.Logger, queue *fileQueue, mapper MapFunc,
	numWorkers int, emit EmitFunc) error {
	g, _ := errgroup.WithContext(ctx)

	for i := 0; i < numWorkers; i++ {
		worker := i
		g.Go(func() error {
			for {
				name, ok := queue.claim()
				if !ok {
					return nil
				}
				logger.Debug("map worker claimed file",
					zap.Int("worker", worker), zap.String("file", name))
				mapper(name, emit)
			}
		})
	}

	return g.Wait()
}

// runSortPhase sorts every partition, one goroutine per partition,
// joined before any reducer starts (spec.md §4.3 — partitions are
// independent and may be sorted in parallel).
func runSortPhase(ctx context.Context, logger *zap.Logger, partitions []*partition) error {
	g, _ := errgroup.WithContext(ctx)

	for i := range partitions {
		p := partitions[i]
		idx := i
		g.Go(func() error {
			p.sort()
			logger.Debug("partition sorted", zap.Int("partition", idx), zap.Int("groups", len(p.groups)))
			return nil
		})
	}

	return g.Wait()
}

// runReducePhase drives the reduce worker pool (spec.md §4.6): exactly
// one goroutine per partition walks that partition's groups in
// post-sort order and invokes reducer once per group. It blocks until
// every worker has joined.
func runReducePhase(ctx context.Context, logger *zap.Logger, partitions []*partition, reducer ReduceFunc) error {
	g, _ := errgroup.WithContext(ctx)

	for i := range partitions {
		p := partitions[i]
		idx := i
		g.Go(func() error {
			get := func(key string, partitionNumber int) (string, bool) {
				return partitions[partitionNumber].get(key)
			}
			for _, grp := range p.groups {
				reducer(grp.key, get, idx)
			}
			logger.Debug("partition drained", zap.Int("partition", idx), zap.Int("keys", len(p.groups)))
			return nil
		})
	}

	return g.Wait()
}
