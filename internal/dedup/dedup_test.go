package dedup

import (
	"reflect"
	"testing"

	"github.com/corona10/goimagehash"
)

// --- Resolve tests ---

func setOf(paths ...string) map[string]bool {
	s := make(map[string]bool, len(paths))
	for _, p := range paths {
		s[p] = true
	}
	return s
}

func TestResolve_AsymmetricCluster(t *testing.T) {
	// A lists B and C, B lists only A, C lists nothing. Sorted order A,B,C:
	// A survives, B is claimed by A, C is untouched.
	duplicates := map[string][]string{
		"a.jpg": {"b.jpg", "c.jpg"},
		"b.jpg": {"a.jpg"},
		"c.jpg": {},
	}
	res := Resolve(duplicates)

	if !reflect.DeepEqual(res.Kept, setOf("a.jpg")) {
		t.Errorf("kept = %v, want {a.jpg}", res.Kept)
	}
	if !reflect.DeepEqual(res.Removed, setOf("b.jpg", "c.jpg")) {
		t.Errorf("removed = %v, want {b.jpg, c.jpg}", res.Removed)
	}
}

func TestResolve_UnlistedMemberSurvivesUntouched(t *testing.T) {
	// C has no duplicates and nothing lists it: in neither set.
	duplicates := map[string][]string{
		"a.jpg": {"b.jpg"},
		"b.jpg": {"a.jpg"},
		"c.jpg": {},
	}
	res := Resolve(duplicates)

	if res.Removed["c.jpg"] || res.Kept["c.jpg"] {
		t.Errorf("c.jpg classified (kept=%v removed=%v), want untouched",
			res.Kept["c.jpg"], res.Removed["c.jpg"])
	}
	if !res.Kept["a.jpg"] || !res.Removed["b.jpg"] {
		t.Errorf("kept = %v, removed = %v", res.Kept, res.Removed)
	}
}

func TestResolve_SelfDuplicateGuard(t *testing.T) {
	duplicates := map[string][]string{
		"a.jpg": {"a.jpg", "b.jpg"},
		"b.jpg": {},
	}
	res := Resolve(duplicates)

	if res.Removed["a.jpg"] {
		t.Error("a.jpg removed despite listing itself")
	}
	if !res.Kept["a.jpg"] {
		t.Error("a.jpg not kept")
	}
	if !res.Removed["b.jpg"] {
		t.Error("b.jpg not removed")
	}
}

func TestResolve_KeptPrecedence(t *testing.T) {
	// b is promoted to kept before d's list references it; d must not pull
	// an already-kept file into the removed set.
	duplicates := map[string][]string{
		"a.jpg": {},
		"b.jpg": {"c.jpg"},
		"d.jpg": {"b.jpg", "e.jpg"},
	}
	res := Resolve(duplicates)

	if res.Removed["b.jpg"] {
		t.Error("b.jpg moved to removed after being kept")
	}
	if !res.Kept["b.jpg"] || !res.Kept["d.jpg"] {
		t.Errorf("kept = %v, want b.jpg and d.jpg kept", res.Kept)
	}
	if !res.Removed["c.jpg"] || !res.Removed["e.jpg"] {
		t.Errorf("removed = %v, want c.jpg and e.jpg", res.Removed)
	}
}

func TestResolve_RemovedKeyNeverBecomesOriginal(t *testing.T) {
	// b is removed under a; when the walk reaches b, its own list must not
	// be expanded, so c survives untouched.
	duplicates := map[string][]string{
		"a.jpg": {"b.jpg"},
		"b.jpg": {"c.jpg"},
		"c.jpg": {},
	}
	res := Resolve(duplicates)

	if !res.Kept["a.jpg"] {
		t.Error("a.jpg not kept")
	}
	if !res.Removed["b.jpg"] {
		t.Error("b.jpg not removed")
	}
	if res.Removed["c.jpg"] || res.Kept["c.jpg"] {
		t.Error("c.jpg classified through a removed key's list")
	}
}

func TestResolve_LowestSortingPathWins(t *testing.T) {
	duplicates := map[string][]string{
		"z.jpg": {"m.jpg"},
		"m.jpg": {"z.jpg"},
	}
	res := Resolve(duplicates)

	if !res.Kept["m.jpg"] {
		t.Error("m.jpg (lowest-sorting) not kept")
	}
	if !res.Removed["z.jpg"] {
		t.Error("z.jpg not removed")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	duplicates := map[string][]string{
		"d.jpg": {"e.jpg", "f.jpg"},
		"e.jpg": {"d.jpg"},
		"f.jpg": {"d.jpg"},
		"g.jpg": {"h.jpg"},
		"h.jpg": {"g.jpg"},
		"i.jpg": {},
	}
	first := Resolve(duplicates)
	for i := 0; i < 10; i++ {
		again := Resolve(duplicates)
		if !reflect.DeepEqual(first.Kept, again.Kept) || !reflect.DeepEqual(first.Removed, again.Removed) {
			t.Fatalf("run %d differs: kept %v vs %v, removed %v vs %v",
				i, first.Kept, again.Kept, first.Removed, again.Removed)
		}
	}
}

func TestResolve_KeptAndRemovedDisjoint(t *testing.T) {
	duplicates := map[string][]string{
		"a.jpg": {"b.jpg", "c.jpg"},
		"b.jpg": {"a.jpg", "c.jpg"},
		"c.jpg": {"a.jpg", "b.jpg"},
		"x.jpg": {"y.jpg"},
		"y.jpg": {"x.jpg"},
	}
	res := Resolve(duplicates)
	for p := range res.Kept {
		if res.Removed[p] {
			t.Errorf("%s in both kept and removed", p)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	res := Resolve(map[string][]string{})
	if len(res.Kept) != 0 || len(res.Removed) != 0 {
		t.Errorf("kept = %v, removed = %v, want empty", res.Kept, res.Removed)
	}
}

// --- FindDuplicates tests ---

func hashOf(t *testing.T, bits uint64) *goimagehash.ImageHash {
	t.Helper()
	return goimagehash.NewImageHash(bits, goimagehash.PHash)
}

func TestFindDuplicates_WithinThreshold(t *testing.T) {
	encodings := map[string]*goimagehash.ImageHash{
		"a.jpg": hashOf(t, 0b0000),
		"b.jpg": hashOf(t, 0b0011), // distance 2 from a
		"c.jpg": hashOf(t, 0xFFFFFFFFFFFFFFFF),
	}
	duplicates := FindDuplicates(encodings, 2)

	if !reflect.DeepEqual(duplicates["a.jpg"], []string{"b.jpg"}) {
		t.Errorf("a.jpg dups = %v, want [b.jpg]", duplicates["a.jpg"])
	}
	if !reflect.DeepEqual(duplicates["b.jpg"], []string{"a.jpg"}) {
		t.Errorf("b.jpg dups = %v, want [a.jpg]", duplicates["b.jpg"])
	}
	if len(duplicates["c.jpg"]) != 0 {
		t.Errorf("c.jpg dups = %v, want none", duplicates["c.jpg"])
	}
}

func TestFindDuplicates_ThresholdBoundary(t *testing.T) {
	encodings := map[string]*goimagehash.ImageHash{
		"a.jpg": hashOf(t, 0),
		"b.jpg": hashOf(t, 0b111), // distance 3
	}

	// Equal to threshold: duplicate.
	duplicates := FindDuplicates(encodings, 3)
	if len(duplicates["a.jpg"]) != 1 {
		t.Errorf("distance == threshold not treated as duplicate: %v", duplicates["a.jpg"])
	}

	// One above: not a duplicate.
	duplicates = FindDuplicates(encodings, 2)
	if len(duplicates["a.jpg"]) != 0 {
		t.Errorf("distance > threshold treated as duplicate: %v", duplicates["a.jpg"])
	}
}

func TestFindDuplicates_EveryPathIsAKey(t *testing.T) {
	encodings := map[string]*goimagehash.ImageHash{
		"a.jpg": hashOf(t, 0),
		"b.jpg": hashOf(t, 0xFF),
	}
	duplicates := FindDuplicates(encodings, 0)
	if len(duplicates) != len(encodings) {
		t.Errorf("duplicate map has %d keys, want %d", len(duplicates), len(encodings))
	}
	for p := range encodings {
		if _, ok := duplicates[p]; !ok {
			t.Errorf("missing key %s", p)
		}
	}
}

func TestFindDuplicates_ZeroThresholdExactOnly(t *testing.T) {
	encodings := map[string]*goimagehash.ImageHash{
		"a.jpg": hashOf(t, 42),
		"b.jpg": hashOf(t, 42),
		"c.jpg": hashOf(t, 43),
	}
	duplicates := FindDuplicates(encodings, 0)
	if !reflect.DeepEqual(duplicates["a.jpg"], []string{"b.jpg"}) {
		t.Errorf("a.jpg dups = %v, want [b.jpg]", duplicates["a.jpg"])
	}
	if len(duplicates["c.jpg"]) != 0 {
		t.Errorf("c.jpg dups = %v, want none", duplicates["c.jpg"])
	}
}

// --- End-to-end partition identity ---

func TestGroupThenResolve_PartitionIdentity(t *testing.T) {
	encodings := map[string]*goimagehash.ImageHash{
		"cat/1.jpg": hashOf(t, 0),
		"cat/2.jpg": hashOf(t, 1),
		"cat/3.jpg": hashOf(t, 0),
		"dog/1.jpg": hashOf(t, 0xF0F0F0F0F0F0F0F0),
		"dog/2.jpg": hashOf(t, 0x0F0F0F0F0F0F0F0F),
	}
	duplicates := FindDuplicates(encodings, 2)
	res := Resolve(duplicates)

	kept := len(encodings) - len(res.Removed)
	if kept+len(res.Removed) != len(encodings) {
		t.Errorf("kept %d + removed %d != encoded %d", kept, len(res.Removed), len(encodings))
	}
	// The cat cluster keeps its lowest-sorting member.
	if !res.Kept["cat/1.jpg"] {
		t.Error("cat/1.jpg not kept")
	}
	if !res.Removed["cat/2.jpg"] || !res.Removed["cat/3.jpg"] {
		t.Errorf("removed = %v, want cat/2.jpg and cat/3.jpg", res.Removed)
	}
	if res.Removed["dog/1.jpg"] || res.Removed["dog/2.jpg"] {
		t.Errorf("distant dog files removed: %v", res.Removed)
	}
}
