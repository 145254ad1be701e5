package dedup

import "sort"

// Resolution partitions the paths that appear in a duplicate map into a
// kept set (survivors) and a removed set (their duplicates). Paths with an
// empty duplicate list that nothing else claims appear in neither set.
type Resolution struct {
	Kept    map[string]bool
	Removed map[string]bool
}

// Resolve walks the duplicate map in sorted key order and decides which
// files survive. The rules are order-sensitive:
//
//   - a key already claimed as someone else's duplicate is skipped, so it
//     never becomes a second original;
//   - a key with an empty duplicate list is skipped;
//   - otherwise the key is kept and each listed duplicate is removed,
//     unless it is the key itself, already removed, or already kept.
//
// Sorting the keys makes the outcome deterministic: the lowest-sorting
// path of any mutually-referencing cluster is always the survivor. The
// input may be asymmetric (A listing B without B listing A); the skip
// rules above tolerate that without special cases.
func Resolve(duplicates map[string][]string) Resolution {
	res := Resolution{
		Kept:    make(map[string]bool),
		Removed: make(map[string]bool),
	}

	keys := make([]string, 0, len(duplicates))
	for k := range duplicates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if res.Removed[key] {
			continue
		}
		dups := duplicates[key]
		if len(dups) == 0 {
			continue
		}
		res.Kept[key] = true
		for _, dup := range dups {
			if dup == key || res.Removed[dup] || res.Kept[dup] {
				continue
			}
			res.Removed[dup] = true
		}
	}
	return res
}
