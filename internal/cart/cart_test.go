package cart

import "testing"

func sampleMenu() []MenuItem {
	return []MenuItem{
		{Name: "茶", TranslatedName: "Tea", Price: 2},
		{Name: "Rice", Price: 5},
		{Name: "Soup", Description: "of the day", Price: 3},
	}
}

func TestReplaceItemsResetsQuantities(t *testing.T) {
	c := New()
	c.ReplaceItems(sampleMenu())

	key := c.Lines()[0].Key
	if _, ok := c.Increment(key); !ok {
		t.Fatal("expected line to exist")
	}
	if _, ok := c.Increment(key); !ok {
		t.Fatal("expected line to exist")
	}

	c.ReplaceItems(sampleMenu())

	for _, l := range c.Lines() {
		if l.Quantity != 0 {
			t.Fatalf("expected quantity 0 after replace, got %d", l.Quantity)
		}
	}
	if got := c.Total(); got != 0 {
		t.Fatalf("expected total 0 after replace, got %v", got)
	}
}

func TestReplaceItemsIssuesFreshKeys(t *testing.T) {
	c := New()
	c.ReplaceItems(sampleMenu())
	oldKey := c.Lines()[0].Key

	c.ReplaceItems(sampleMenu())

	if _, ok := c.Increment(oldKey); ok {
		t.Fatal("stale key should not address a line after replace")
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	c := New()
	c.ReplaceItems(sampleMenu())
	key := c.Lines()[1].Key

	line, ok := c.Decrement(key)
	if !ok {
		t.Fatal("expected line to exist")
	}
	if line.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", line.Quantity)
	}

	c.Increment(key)
	c.Decrement(key)
	line, _ = c.Decrement(key)
	if line.Quantity != 0 {
		t.Fatalf("quantity went negative: %d", line.Quantity)
	}
}

func TestUnknownKeyIsExplicitMiss(t *testing.T) {
	c := New()
	c.ReplaceItems(sampleMenu())

	if _, ok := c.Increment("no-such-key"); ok {
		t.Fatal("expected miss for unknown key on increment")
	}
	if _, ok := c.Decrement("no-such-key"); ok {
		t.Fatal("expected miss for unknown key on decrement")
	}
	if got := c.Total(); got != 0 {
		t.Fatalf("miss must not mutate the cart, total=%v", got)
	}
}

func TestTotalRecomputedEachCall(t *testing.T) {
	c := New()
	c.ReplaceItems([]MenuItem{
		{Name: "A", Price: 5},
		{Name: "B", Price: 3},
	})
	lines := c.Lines()

	c.Increment(lines[0].Key)
	c.Increment(lines[0].Key)
	c.Increment(lines[1].Key)

	if got := c.Total(); got != 13 {
		t.Fatalf("expected total 13, got %v", got)
	}

	c.Decrement(lines[1].Key)
	if got := c.Total(); got != 10 {
		t.Fatalf("expected total 10 after decrement, got %v", got)
	}
}

func TestSelectedLinesFilterAndOrder(t *testing.T) {
	c := New()
	c.ReplaceItems(sampleMenu())
	lines := c.Lines()

	// Select third then first; order must still follow the menu.
	c.Increment(lines[2].Key)
	c.Increment(lines[0].Key)
	c.Increment(lines[0].Key)

	sel := c.SelectedLines()
	if len(sel) != 2 {
		t.Fatalf("expected 2 selected lines, got %d", len(sel))
	}
	if sel[0].DisplayName != "Tea" || sel[0].Quantity != 2 {
		t.Fatalf("unexpected first selection: %+v", sel[0])
	}
	if sel[1].DisplayName != "Soup" || sel[1].Quantity != 1 {
		t.Fatalf("unexpected second selection: %+v", sel[1])
	}
}

func TestDisplayNameFallsBackToName(t *testing.T) {
	m := MenuItem{Name: "Rice"}
	if m.DisplayName() != "Rice" {
		t.Fatalf("expected fallback to name, got %q", m.DisplayName())
	}
	m.TranslatedName = "Reis"
	if m.DisplayName() != "Reis" {
		t.Fatalf("expected translated name, got %q", m.DisplayName())
	}
}
