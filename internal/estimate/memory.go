package estimate

import "vramfit/pkg/types"

// overheadFactor inflates the raw weight-byte cost to cover activations,
// optimizer state and runtime buffers observed when loading for inference.
// Fixed constant, not configurable.
const overheadFactor = 1.2

// MemoryBytes estimates the GPU memory needed to load params parameters at
// the given precision: a 4-byte-per-parameter baseline scaled down by the
// bit-width ratio, times the overhead factor. Callers pass an already
// validated precision.
func MemoryBytes(params int64, p types.Precision) float64 {
	return float64(params) * 4 / (32 / float64(p)) * overheadFactor
}

// ParamsFromFileSize estimates a parameter count from a serialized weight
// file size. Integer ceiling division: the result never understates the
// count, so downstream memory estimates err on the conservative side.
func ParamsFromFileSize(sizeBytes int64, p types.Precision) int64 {
	totalBits := sizeBytes * 8
	per := int64(p)
	return (totalBits + per - 1) / per
}
