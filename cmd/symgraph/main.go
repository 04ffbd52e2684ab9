// Command symgraph loads delimited adjacency files into an undirected graph
// and answers queries about them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
