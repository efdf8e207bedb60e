package devops

import "fmt"

// Groups function as a stack, so we keep track of the groups in a stack.
var groups = make([]*Group, 0)

// Opens a new group and adds it to the stack.
func OpenGroup(name string) *Group {
	newGroup := &Group{name: name}
	groups = append(groups, newGroup)
	fmt.Fprintf(Output, "##[group]%s\n", name)
	return newGroup
}

// Group carries the name it was opened with so every handle has its own
// allocation and identity.
type Group struct {
	name string
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	var index int = len(groups) - 1
	for index >= 0 {
		// Pop the last group from the stack
		last := groups[index]
		groups = groups[:index]
		fmt.Fprintln(Output, "##[endgroup]")
		if last == g {
			break
		}
		index--
	}
}
