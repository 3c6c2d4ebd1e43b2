// Package cache implements a single-process, in-memory key-value cache with a
// fixed capacity and a pluggable eviction policy (Unbounded, FIFO or LIFO).
//
// Every eviction writes one "DISCARD: <key>" line to the configured notify
// writer; external tooling matches on that exact format.
package cache
