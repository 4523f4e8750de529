// Package memory relocates fixed-length sequences of scalars into and out of
// linear memory.
//
// A sequence moves as one block: Store checks that the destination region
// is aligned and in bounds, consumes the sequence, and writes its canonical
// ABI encoding at the given offset. Load reads such a block back into a new
// sequence.
//
//	scratch, err := memory.NewScratch(ctx, 1)
//	defer scratch.Close(ctx)
//
//	n, err := memory.Store(scratch.Memory(), 64, s)    // s is consumed
//	back, err := memory.Load[nat.U4, uint32](scratch.Memory(), 64)
//
// # Memory Backends
//
// WrapMemory adapts a wazero api.Memory, such as the memory exported by a
// guest module. NewBuffer provides the same interface over a Go byte slice.
// Scratch instantiates a minimal wazero module that exports a memory of a
// chosen number of pages.
//
// Relocation events are logged at debug level through Logger.
package memory
