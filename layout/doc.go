// Package layout provides canonical ABI layout calculations for sequences of
// scalar elements.
//
// A Sequence[T, N] of a Scalar T is laid out in linear memory like a WIT
// tuple of N T values: elements are contiguous, each aligned to its own size.
// This package computes size, alignment and element offsets, names the
// matching WIT type, and encodes individual scalars in little-endian order.
//
// # Layout Rules
//
//   - Primitives: size equals alignment (u8=1, u32=4, u64=8, etc.)
//   - Tuples: elements laid out sequentially with padding for alignment
//   - Empty tuples: size 0, alignment 1
//
// # Usage
//
//	info, typ, err := layout.Sequence[uint32, nat.U4]()
//	// info.Size == 16, info.Align == 4, typ is tuple<u32, u32, u32, u32>
package layout
