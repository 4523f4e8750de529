package memory

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fixedseq/errors"
)

// MaxPages is the largest memory a 32-bit wasm module can declare.
const MaxPages = 65536

// Scratch is a wazero runtime hosting a module whose only content is an
// exported linear memory.
type Scratch struct {
	rt  wazero.Runtime
	mod api.Module
	mem Memory
}

// NewScratch instantiates a module with pages 64 KiB pages of memory.
func NewScratch(ctx context.Context, pages uint32) (*Scratch, error) {
	if pages > MaxPages {
		return nil, errors.Overflow(errors.PhaseRelocate, "scratch", "page count exceeds 65536")
	}

	rt := wazero.NewRuntime(ctx)

	compiled, err := rt.CompileModule(ctx, memoryModule(pages))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseRelocate, errors.KindNotInitialized, err, "compile scratch module")
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("scratch"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseRelocate, errors.KindNotInitialized, err, "instantiate scratch module")
	}

	Logger().Debug("scratch memory ready")
	return &Scratch{
		rt:  rt,
		mod: mod,
		mem: WrapMemory(mod.ExportedMemory("memory")),
	}, nil
}

// Memory returns the exported linear memory.
func (s *Scratch) Memory() Memory {
	return s.mem
}

// Close releases the module and its runtime.
func (s *Scratch) Close(ctx context.Context) error {
	return s.rt.Close(ctx)
}

// memoryModule assembles a binary module exporting one memory of the given
// minimum size and no maximum.
func memoryModule(pages uint32) []byte {
	minPages := appendULEB128(nil, pages)

	b := []byte{
		0x00, 0x61, 0x73, 0x6d, // magic
		0x01, 0x00, 0x00, 0x00, // version
	}

	// memory section: 1 memory, limits flag 0 (min only)
	b = append(b, 0x05, byte(2+len(minPages)), 0x01, 0x00)
	b = append(b, minPages...)

	// export section: 1 export, "memory", kind memory, index 0
	b = append(b,
		0x07, 0x0a, 0x01,
		0x06, 'm', 'e', 'm', 'o', 'r', 'y',
		0x02, 0x00,
	)
	return b
}

func appendULEB128(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b = append(b, c)
		if v == 0 {
			return b
		}
	}
}
