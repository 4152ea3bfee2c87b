package ecs_test

import (
	"fmt"

	"github.com/plus3/sokoban/ecs"
)

// ExampleCommands stages spawns and applies them in one flush.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	storage := ecs.NewStorage(registry)

	commands := ecs.NewCommands()
	commands.Spawn(Transform{X: 1})
	commands.Spawn(Transform{X: 2})
	commands.Defer(func() {
		fmt.Println("flushed", storage.EntityCount())
	})

	fmt.Println("staged", commands.Len(), "live", storage.EntityCount())
	commands.Flush(storage)
	// Output:
	// staged 3 live 0
	// flushed 2
}
