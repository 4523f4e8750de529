package layout

import (
	"encoding/binary"
	"math"
	"reflect"
	"slices"
	"sync"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/nat"
)

// Scalar is a fixed-width numeric element type with a canonical ABI layout.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

func kindOf[T Scalar]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// WitType returns the WIT primitive for T.
func WitType[T Scalar]() wit.Type {
	switch kindOf[T]() {
	case reflect.Int8:
		return wit.S8{}
	case reflect.Uint8:
		return wit.U8{}
	case reflect.Int16:
		return wit.S16{}
	case reflect.Uint16:
		return wit.U16{}
	case reflect.Int32:
		return wit.S32{}
	case reflect.Uint32:
		return wit.U32{}
	case reflect.Int64:
		return wit.S64{}
	case reflect.Uint64:
		return wit.U64{}
	case reflect.Float32:
		return wit.F32{}
	default:
		return wit.F64{}
	}
}

// Of returns the layout of a single T.
func Of[T Scalar]() Info {
	info, _ := primitive(WitType[T]())
	return info
}

// Sequence returns the layout of N consecutive T values and the matching
// WIT type, a tuple of N elements.
func Sequence[T Scalar, N nat.Nat]() (Info, wit.Type, error) {
	n := nat.Value[N]()
	elem := Of[T]()
	if uint64(n) > math.MaxUint32 {
		return Info{}, nil, errors.Overflow(errors.PhaseLayout, "sequence", "element count exceeds u32")
	}
	if _, ok := SafeMulU32(uint32(n), elem.Size); !ok {
		return Info{}, nil, errors.New(errors.PhaseLayout, errors.KindOverflow).
			Op("sequence").
			Detail("%d elements of size %d exceed u32", n, elem.Size).
			Build()
	}

	typ := sequenceType(kindOf[T](), n, WitType[T]())
	info := sequences.Calculate(typ)
	info.ElemOffs = slices.Clone(info.ElemOffs)
	return info, typ, nil
}

type sequenceKey struct {
	kind reflect.Kind
	n    int
}

var (
	sequences     = NewCalculator()
	sequenceMu    sync.Mutex
	sequenceTypes = make(map[sequenceKey]*wit.TypeDef)
)

// sequenceType returns the tuple TypeDef shared by every sequence of n
// elements of the given kind.
func sequenceType(kind reflect.Kind, n int, elem wit.Type) *wit.TypeDef {
	key := sequenceKey{kind: kind, n: n}

	sequenceMu.Lock()
	defer sequenceMu.Unlock()
	if typ, ok := sequenceTypes[key]; ok {
		return typ
	}

	types := make([]wit.Type, n)
	for i := range types {
		types[i] = elem
	}
	typ := &wit.TypeDef{Kind: &wit.Tuple{Types: types}}
	sequenceTypes[key] = typ
	return typ
}

// Encode writes v to dst in little-endian order. dst must hold Of[T]().Size bytes.
func Encode[T Scalar](dst []byte, v T) {
	switch kindOf[T]() {
	case reflect.Int8, reflect.Uint8:
		dst[0] = byte(v)
	case reflect.Int16, reflect.Uint16:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case reflect.Int32, reflect.Uint32:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case reflect.Int64, reflect.Uint64:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	case reflect.Float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case reflect.Float64:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(v)))
	}
}

// Decode reads a little-endian T from src.
func Decode[T Scalar](src []byte) T {
	switch kindOf[T]() {
	case reflect.Int8:
		return T(int8(src[0]))
	case reflect.Uint8:
		return T(src[0])
	case reflect.Int16:
		return T(int16(binary.LittleEndian.Uint16(src)))
	case reflect.Uint16:
		return T(binary.LittleEndian.Uint16(src))
	case reflect.Int32:
		return T(int32(binary.LittleEndian.Uint32(src)))
	case reflect.Uint32:
		return T(binary.LittleEndian.Uint32(src))
	case reflect.Int64:
		return T(int64(binary.LittleEndian.Uint64(src)))
	case reflect.Uint64:
		return T(binary.LittleEndian.Uint64(src))
	case reflect.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	default:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(src)))
	}
}

// EncodeAll writes elems back to back into dst.
func EncodeAll[T Scalar](dst []byte, elems []T) {
	size := int(Of[T]().Size)
	for i, v := range elems {
		Encode(dst[i*size:], v)
	}
}

// DecodeAll fills dst from consecutive values in src.
func DecodeAll[T Scalar](dst []T, src []byte) {
	size := int(Of[T]().Size)
	for i := range dst {
		dst[i] = Decode[T](src[i*size:])
	}
}
