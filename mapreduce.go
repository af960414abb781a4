package mapreduce

import (
	"context"

	"go.uber.org/zap"
)

// Run drives the full MapReduce pipeline: parallel map, per-partition
// sort, parallel reduce.
//
// args follows the argv convention: args[0] is ignored (program name),
// args[1:] are input file names. numMappers mapper goroutines share a
// single file queue; numReducers reducer goroutines each own exactly
// one partition, so numReducers also fixes the number of partitions
// (P == numReducers, spec.md §2). partitioner routes every emitted key
// to a partition in [0, numReducers); DefaultPartition is provided for
// callers who don't need a custom scheme.
//
// Run returns a configuration error (see ValidateConfig) if args is
// nil, has no input files, or numMappers/numReducers is zero. It does
// not recover panics from user code: an allocation failure or a bug in
// mapper/reducer crashes the process, matching spec.md §7's "fatal,
// aborts the process" policy for unrecoverable errors.
func Run(args []string, mapper MapFunc, numMappers int, reducer ReduceFunc, numReducers int,
	partitioner PartitionFunc, opts ...Option) error {
	cfg := newRunConfig(opts...)
	logger := cfg.logger

	if err := ValidateConfig(args, numMappers, numReducers); err != nil {
		logger.Error("mapreduce: invalid configuration", zap.Error(err))
		return err
	}

	files := args[1:]
	partitions := newPartitionStore(numReducers)
	emit := buildEmitFunc(partitions, numReducers, partitioner)

	ctx := context.Background()
	populated := newPhaseBarrier()
	sorted := newPhaseBarrier()

	logger.Info("mapreduce: map phase starting",
		zap.Int("files", len(files)), zap.Int("workers", numMappers))
	if err := runMapPhase(ctx, logger, newFileQueue(files), mapper, numMappers, emit); err != nil {
		return err
	}
	populated.cross()
	logger.Info("mapreduce: map phase done")

	logger.Info("mapreduce: sort phase starting", zap.Int("partitions", numReducers))
	if err := runSortPhase(ctx, logger, partitions); err != nil {
		return err
	}
	sorted.cross()
	logger.Info("mapreduce: sort phase done")

	logger.Info("mapreduce: reduce phase starting", zap.Int("workers", numReducers))
	if err := runReducePhase(ctx, logger, partitions, reducer); err != nil {
		return err
	}
	logger.Info("mapreduce: reduce phase done")

	return nil
}

// buildEmitFunc closes over the engine's partition store instead of
// keeping it in package-level state (spec.md §9's "Process-wide
// partition state" note: an implementation may thread a context object
// everywhere instead of using globals, with an unchanged external
// contract for Emit). It always routes through the caller-supplied
// partitioner, never a hardcoded default (spec.md §9's resolved open
// question on partitioner use in Emit).
func buildEmitFunc(partitions []*partition, numPartitions int, partitioner PartitionFunc) EmitFunc {
	return func(key, value string) {
		p := partitioner(key, numPartitions)
		partitions[p].emit(key, value)
	}
}
