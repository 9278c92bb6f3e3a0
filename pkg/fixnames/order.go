package fixnames

import (
	"sort"
)

// Order partitions entries into the two rename phases and sorts each one in
// descending byte-wise order of its path. Descending order puts a child such
// as "a/b" ahead of its parent "a", so renaming a directory never moves an
// entry that is still waiting to be processed. Entries that are neither files
// nor directories come back in skipped, in the same order.
func Order(entries []Entry) (files, dirs, skipped []Entry) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path > sorted[j].Path
	})

	for _, e := range sorted {
		switch e.Kind {
		case KindFile:
			files = append(files, e)
		case KindDirectory:
			dirs = append(dirs, e)
		default:
			skipped = append(skipped, e)
		}
	}
	return files, dirs, skipped
}
