package mapreduce

// DefaultPartition is the engine's default PartitionFunc. It hashes
// key with djb2 (h = h*33 + c, seeded with 5381, over the raw bytes of
// key, 64-bit unsigned with wraparound) and reduces modulo
// numPartitions.
//
// djb2 is specified as 64-bit unsigned arithmetic so results are
// identical across platforms regardless of the native "unsigned long"
// width the reference C implementation used.
func DefaultPartition(key string, numPartitions int) int {
	var hash uint64 = 5381
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}
	return int(hash % uint64(numPartitions))
}
