package ecs_test

import (
	"fmt"

	"github.com/plus3/sokoban/ecs"
)

type Label struct {
	Text string
}

// ExampleView looks up one entity through a view with an optional field.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Label](registry)
	storage := ecs.NewStorage(registry)

	plain := storage.Spawn(Transform{X: 1, Y: 2})
	tagged := storage.Spawn(Transform{X: 3, Y: 4}, Label{Text: "exit"})

	view := ecs.NewView[struct {
		Transform *Transform
		Label     *Label `ecs:"optional"`
	}](storage)

	for _, id := range []ecs.EntityId{plain, tagged} {
		item := view.Get(id)
		if item.Label != nil {
			fmt.Println(*item.Transform, item.Label.Text)
			continue
		}
		fmt.Println(*item.Transform, "-")
	}
	fmt.Println(view.Count())
	// Output:
	// {1 2} -
	// {3 4} exit
	// 2
}
