package builder

import (
	"fmt"
	"sort"
	"strings"
)

// topology describes a named constructor and how many size arguments it takes.
type topology struct {
	arity int
	make  func(sizes []int) Constructor
}

var topologies = map[string]topology{
	"path":      {1, func(s []int) Constructor { return Path(s[0]) }},
	"cycle":     {1, func(s []int) Constructor { return Cycle(s[0]) }},
	"star":      {1, func(s []int) Constructor { return Star(s[0]) }},
	"wheel":     {1, func(s []int) Constructor { return Wheel(s[0]) }},
	"complete":  {1, func(s []int) Constructor { return Complete(s[0]) }},
	"bipartite": {2, func(s []int) Constructor { return CompleteBipartite(s[0], s[1]) }},
	"grid":      {2, func(s []int) Constructor { return Grid(s[0], s[1]) }},
}

// Names returns the topology names FromName accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Arity returns how many size arguments the named topology takes, or 0 if the
// name is unknown.
func Arity(name string) int {
	return topologies[strings.ToLower(name)].arity
}

// FromName resolves a case-insensitive topology name and its sizes to a
// Constructor. Size validation is left to the constructor itself.
func FromName(name string, sizes ...int) (Constructor, error) {
	t, ok := topologies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(Names(), ", "))
	}
	if len(sizes) != t.arity {
		return nil, fmt.Errorf("%w: %s takes %d size(s), got %d", ErrUnknownTopology, strings.ToLower(name), t.arity, len(sizes))
	}

	return t.make(sizes), nil
}
