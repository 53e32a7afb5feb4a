package components

import (
	"testing"

	"github.com/tripmesh/tripmesh/schema"
)

func TestMemoryOverflow(t *testing.T) {
	mem := NewMemory(2)
	mem.NewTurn()
	mem.NewMessage(UserRole, schema.String("first"))
	mem.NewMessage(AssistantRole, schema.String("second"))
	mem.NewMessage(UserRole, schema.String("third"))
	if n := mem.MessageCount(); n != 2 {
		t.Fatalf("Expect 2 messages after overflow, but got %d", n)
	}
	if got := schema.Stringify(mem.History()[0].Content()); got != "second" {
		t.Errorf("Expect oldest message dropped, but head is %s", got)
	}
}

func TestMemoryDeleteTurn(t *testing.T) {
	mem := NewMemory(0)
	mem.SetTurnID("t1")
	mem.NewMessage(UserRole, schema.String("q"))
	mem.SetTurnID("t2")
	mem.NewMessage(AssistantRole, schema.String("a"))
	if err := mem.DeleteTurn("t1"); err != nil {
		t.Fatalf("DeleteTurn failed: %v", err)
	}
	if n := mem.MessageCount(); n != 1 {
		t.Errorf("Expect 1 message, but got %d", n)
	}
	if err := mem.DeleteTurn("missing"); err == nil {
		t.Error("expected error for unknown turn ID")
	}
}

func TestMemoryCopy(t *testing.T) {
	src := NewMemory(5)
	src.NewTurn()
	src.NewMessage(UserRole, schema.String("hello"))
	dst := NewMemory(0)
	dst.Copy(src)
	if dst.MessageCount() != 1 || dst.MaxMessages() != 5 || dst.TurnID() != src.TurnID() {
		t.Errorf("copy mismatch: count=%d max=%d", dst.MessageCount(), dst.MaxMessages())
	}
}
