package memory

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Memory is linear memory addressed by byte offset.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	Size() uint32
}

// WrapMemory wraps a wazero api.Memory to implement Memory.
func WrapMemory(mem api.Memory) Memory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the Memory interface.
type Wrapper struct {
	Mem api.Memory
}

// Read returns a view of length bytes at offset. The view aliases guest
// memory and is valid until the memory grows.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// Size returns the memory size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}

// Buffer is a Memory backed by a Go byte slice.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zeroed buffer of size bytes.
func NewBuffer(size uint32) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Read returns a view of length bytes at offset.
func (b *Buffer) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(b.data)) {
		return nil, fmt.Errorf("buffer read out of bounds: offset=%d, length=%d", offset, length)
	}
	return b.data[offset:end:end], nil
}

// Write copies data into the buffer at offset.
func (b *Buffer) Write(offset uint32, data []byte) error {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(b.data)) {
		return fmt.Errorf("buffer write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	copy(b.data[offset:], data)
	return nil
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint32 {
	return uint32(len(b.data))
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte {
	return b.data
}
