package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinCatalogParses(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin returned error: %v", err)
	}
	for _, tier := range []Tier{TierEasy, TierStandard, TierNightmare} {
		if len(c.Orders(tier)) == 0 {
			t.Fatalf("expected %s tier to have orders", tier)
		}
	}
	if c.Len() != 9 {
		t.Fatalf("expected 9 built-in orders, got %d", c.Len())
	}
}

func TestTierForRound(t *testing.T) {
	cases := map[int]Tier{
		1:  TierEasy,
		3:  TierEasy,
		4:  TierStandard,
		7:  TierStandard,
		8:  TierNightmare,
		20: TierNightmare,
	}
	for round, want := range cases {
		if got := TierForRound(round); got != want {
			t.Fatalf("round %d: expected %s, got %s", round, want, got)
		}
	}
}

func TestMergeAppendsToMatchingTier(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	easyBefore := len(c.Orders(TierEasy))

	packYAML := strings.TrimSpace(`
orders:
  easy:
    - name: Teddy Bear
      dialog: "A classic bear, please."
      arrows: 5
      time_limit: 8
      decay_rate: 0.3
      zone_size: 0.3
      toy:
        good: Soft Bear
        bad: One-Eyed Bear
`)
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte(packYAML), 0644); err != nil {
		t.Fatal(err)
	}
	pack, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack returned error: %v", err)
	}
	c.Merge(pack)
	orders := c.Orders(TierEasy)
	if len(orders) != easyBefore+1 {
		t.Fatalf("expected %d easy orders after merge, got %d", easyBefore+1, len(orders))
	}
	if orders[len(orders)-1].Name != "Teddy Bear" {
		t.Fatalf("expected merged order last, got %s", orders[len(orders)-1].Name)
	}
}

func TestLoadPackRejectsInvalidZone(t *testing.T) {
	packYAML := strings.TrimSpace(`
orders:
  nightmare:
    - name: Impossible Toy
      arrows: 10
      time_limit: 10
      decay_rate: 0.5
      zone_size: 0
`)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(packYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPack(path); err == nil {
		t.Fatalf("expected zone size validation error")
	} else if !strings.Contains(err.Error(), "zone size") {
		t.Fatalf("expected zone size error, got: %v", err)
	}
}

func TestGiftVariantPick(t *testing.T) {
	v := GiftVariant{Good: "Grand Piano", Bad: "Broken Piano"}
	if v.Pick(true) != "Grand Piano" {
		t.Fatalf("expected good variant")
	}
	if v.Pick(false) != "Broken Piano" {
		t.Fatalf("expected bad variant")
	}
}
