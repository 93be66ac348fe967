package memory

import "sort"

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// collect devolve cópias rasas dos valores que passam no filtro, em ordem de id
func collect[T any](items map[int]*T, keep func(*T) bool) []*T {
	ids := make([]int, 0, len(items))
	for id, item := range items {
		if keep(item) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyOf(items[id]))
	}
	return out
}
