package main

import (
	"github.com/Sushanth145/graphql-intro/graph"
	"github.com/Sushanth145/graphql-intro/internal/server"
)

// Вариант без мутаций: только post и posts
func main() {
	server.Main(graph.ReadOnly)
}
