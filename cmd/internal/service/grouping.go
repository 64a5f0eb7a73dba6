package service

import (
	"sort"

	"compliancehub/cmd/internal/contract"
)

// CountByField tallies records by a derived key. Slices keep the order in
// which each key was first seen, so charts render stably across refreshes.
func CountByField[T any](items []T, key func(T) string) []contract.FieldCount {
	index := make(map[string]int)
	counts := []contract.FieldCount{}

	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			counts[i].Value++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, contract.FieldCount{Name: k, Value: 1})
	}
	return counts
}

// GroupByDueDate buckets compliances by their due date, one group per
// distinct date, groups sorted ascending. Within a group the input order
// is preserved.
func GroupByDueDate(compliances []*contract.ComplianceResponse) []*contract.CalendarGroup {
	index := make(map[string]int)
	groups := []*contract.CalendarGroup{}

	for _, c := range compliances {
		i, ok := index[c.NextDueDate]
		if !ok {
			i = len(groups)
			index[c.NextDueDate] = i
			groups = append(groups, &contract.CalendarGroup{Date: c.NextDueDate})
		}
		groups[i].Compliances = append(groups[i].Compliances, c)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Date < groups[b].Date
	})
	return groups
}
