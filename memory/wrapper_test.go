package memory

import (
	"context"
	"testing"
)

func newTestScratch(t *testing.T, pages uint32) *Scratch {
	t.Helper()
	ctx := context.Background()
	s, err := NewScratch(ctx, pages)
	if err != nil {
		t.Fatalf("failed to create scratch memory: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })
	return s
}

func TestWrapMemory_Nil(t *testing.T) {
	mem := WrapMemory(nil)
	if mem != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_ReadWrite(t *testing.T) {
	mem := newTestScratch(t, 1).Memory()
	if mem == nil {
		t.Fatal("expected non-nil wrapped memory")
	}

	data := []byte{1, 2, 3, 4}
	if err := mem.Write(0, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := mem.Read(0, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range read {
		if b != data[i] {
			t.Errorf("byte %d: expected %d, got %d", i, data[i], b)
		}
	}
}

func TestWrapper_Size(t *testing.T) {
	if got := newTestScratch(t, 1).Memory().Size(); got != 65536 {
		t.Errorf("Size: expected 65536, got %d", got)
	}
	if got := newTestScratch(t, 3).Memory().Size(); got != 3*65536 {
		t.Errorf("Size: expected %d, got %d", 3*65536, got)
	}
	if got := newTestScratch(t, 200).Memory().Size(); got != 200*65536 {
		t.Errorf("Size with multi-byte page count: expected %d, got %d", 200*65536, got)
	}
}

func TestWrapper_OutOfBounds(t *testing.T) {
	mem := newTestScratch(t, 1).Memory()

	if _, err := mem.Read(65536, 1); err == nil {
		t.Error("expected error for out of bounds read")
	}
	if err := mem.Write(65536, []byte{1}); err == nil {
		t.Error("expected error for out of bounds write")
	}
}

func TestNewScratch_TooManyPages(t *testing.T) {
	if _, err := NewScratch(context.Background(), MaxPages+1); err == nil {
		t.Error("expected error for page count above limit")
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(8)
	if b.Size() != 8 {
		t.Fatalf("Size: expected 8, got %d", b.Size())
	}

	if err := b.Write(6, []byte{9, 9}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := b.Write(7, []byte{1, 1}); err == nil {
		t.Error("expected error for write past end")
	}
	if _, err := b.Read(4, 5); err == nil {
		t.Error("expected error for read past end")
	}
	if _, err := b.Read(0xFFFFFFFF, 2); err == nil {
		t.Error("expected error for wrapping read")
	}

	view, err := b.Read(6, 2)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if view[0] != 9 || view[1] != 9 {
		t.Errorf("unexpected view %v", view)
	}
	if cap(view) != 2 {
		t.Errorf("view capacity should be limited, got %d", cap(view))
	}
	if b.Bytes()[6] != 9 {
		t.Error("Bytes should expose storage")
	}
}

func TestMemoryModule(t *testing.T) {
	tests := []struct {
		pages uint32
		want  []byte
	}{
		{0, []byte{0x05, 0x03, 0x01, 0x00, 0x00}},
		{1, []byte{0x05, 0x03, 0x01, 0x00, 0x01}},
		{128, []byte{0x05, 0x04, 0x01, 0x00, 0x80, 0x01}},
	}

	for _, tt := range tests {
		mod := memoryModule(tt.pages)
		section := mod[8 : 8+len(tt.want)]
		for i := range tt.want {
			if section[i] != tt.want[i] {
				t.Errorf("pages=%d: memory section %x, want %x", tt.pages, section, tt.want)
				break
			}
		}
	}
}
