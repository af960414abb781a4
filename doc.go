/*
Package mapreduce is an in-process, multi-threaded MapReduce execution
engine.

A caller supplies a mapper, a reducer, a partitioner, and a list of
input file names. Run drives a three-phase pipeline — parallel map,
per-partition sort, parallel reduce — and guarantees each reducer
observes its partition's keys in sorted order and each key's values in
sorted order.

Unlike a distributed MapReduce, everything here lives in one process:
there is no fault tolerance across worker failures, no persistence of
intermediate state, and no spilling to disk. It is meant for jobs whose
intermediate pairs comfortably fit in memory.

The package ships no example programs; the traditional "word count"
job is exercised end to end by the package's own tests.
*/
package mapreduce
