package layout

import (
	"sync"

	"go.bytecodealliance.org/wit"
)

// Info is the size and alignment of a type in linear memory.
type Info struct {
	// ElemOffs holds the offset of each tuple element.
	ElemOffs []uint32
	Size     uint32
	Align    uint32
}

// Calculator computes canonical ABI layouts of numeric primitives and tuples
// of them. Tuple layouts are cached per TypeDef. Safe for concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
	mu    sync.Mutex
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) Info {
	if info, ok := primitive(t); ok {
		return info
	}
	if typ, ok := t.(*wit.TypeDef); ok {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.calculateTypeDef(typ)
	}
	return Info{Size: 0, Align: 1}
}

func primitive(t wit.Type) (Info, bool) {
	switch t.(type) {
	case wit.U8, wit.S8:
		return Info{Size: 1, Align: 1}, true
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}, true
	case wit.U32, wit.S32, wit.F32:
		return Info{Size: 4, Align: 4}, true
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}, true
	}
	return Info{}, false
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	info := Info{Size: 0, Align: 1}
	if tuple, ok := t.Kind.(*wit.Tuple); ok {
		info = c.calculateTuple(tuple)
	}

	c.cache[t] = info
	return info
}

func (c *Calculator) calculateTuple(t *wit.Tuple) Info {
	if len(t.Types) == 0 {
		return Info{Size: 0, Align: 1}
	}

	maxAlign := uint32(1)
	offset := uint32(0)
	offs := make([]uint32, len(t.Types))

	for i, typ := range t.Types {
		elemLayout, _ := primitive(typ)
		offset = AlignTo(offset, elemLayout.Align)
		offs[i] = offset

		if elemLayout.Align > maxAlign {
			maxAlign = elemLayout.Align
		}

		offset += elemLayout.Size
	}

	totalSize := AlignTo(offset, maxAlign)

	return Info{
		Size:     totalSize,
		Align:    maxAlign,
		ElemOffs: offs,
	}
}
