package main

import (
	"github.com/Sushanth145/graphql-intro/graph"
	"github.com/Sushanth145/graphql-intro/internal/server"
)

func main() {
	server.Main(graph.ReadWrite)
}
