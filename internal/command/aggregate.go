package command

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// GroupHash orders groups in the help overlay. It is stable across runs for
// a given group name and deliberately unrelated to alphabetical order.
func GroupHash(group string) uint64 {
	return xxhash.Sum64String(group)
}

// Aggregate drops commands hidden from help, removes exact duplicates and
// orders the rest so that groups are contiguous. The input is not modified.
func Aggregate(batch []Info) []Info {
	cmds := make([]Info, 0, len(batch))
	for _, c := range batch {
		if c.Text.HideHelp {
			continue
		}
		cmds = append(cmds, c)
	}
	slices.SortStableFunc(cmds, compareIdentity)
	cmds = slices.CompactFunc(cmds, func(a, b Info) bool {
		return compareIdentity(a, b) == 0
	})
	slices.SortStableFunc(cmds, func(a, b Info) int {
		return cmp.Compare(GroupHash(a.Text.Group), GroupHash(b.Text.Group))
	})
	return cmds
}

// Groups splits an aggregated list into runs of commands sharing a group,
// each run ordered by rank.
func Groups(cmds []Info) []Group {
	var groups []Group
	for start := 0; start < len(cmds); {
		end := start + 1
		for end < len(cmds) && cmds[end].Text.Group == cmds[start].Text.Group {
			end++
		}
		run := slices.Clone(cmds[start:end])
		slices.SortStableFunc(run, func(a, b Info) int {
			return cmp.Compare(a.Order, b.Order)
		})
		groups = append(groups, Group{Name: cmds[start].Text.Group, Commands: run})
		start = end
	}
	return groups
}

// Group is a run of commands displayed under one header.
type Group struct {
	Name     string
	Commands []Info
}
