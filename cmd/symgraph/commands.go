package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/builder"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print every vertex followed by its neighbours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			return a.printGraph(cmd, g)
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print vertex and edge counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "vertices: %d\nedges: %d\n", g.VertexCount(), g.EdgeCount())
		},
	}
}

func (a *app) adjCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adj FILE VERTEX",
		Short: "Print the neighbours of VERTEX, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			nbrs, err := g.AdjacentTo(args[1])
			if err != nil {
				return err
			}
			for _, w := range nbrs {
				if err := a.print(cmd, "%s\n", w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) degreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "degree FILE VERTEX",
		Short: "Print the degree of VERTEX (0 if absent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, "%d\n", g.Degree(args[1]))
		},
	}
}

func (a *app) hasEdgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has-edge FILE V W",
		Short: "Print true if V and W are adjacent",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			ok, err := g.HasEdge(args[1], args[2])
			if err != nil {
				return err
			}
			return a.print(cmd, "%t\n", ok)
		},
	}
}

func (a *app) genCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen KIND N [M]",
		Short: "Build a standard topology and print it",
		Long: fmt.Sprintf(`Build a standard topology and print it in the same layout as "show".
KIND is one of: %v. bipartite and grid take two sizes.`, builder.Names()),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]int, 0, len(args)-1)
			for _, s := range args[1:] {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("gen: size %q: %w", s, err)
				}
				sizes = append(sizes, n)
			}
			cons, err := builder.FromName(args[0], sizes...)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithBackend(a.cfg.GraphFactory())}, cons)
			if err != nil {
				return err
			}
			a.logger.Debug("generated", "kind", args[0], "sizes", sizes,
				"vertices", g.VertexCount(), "edges", g.EdgeCount())
			return a.printGraph(cmd, g)
		},
	}
}
