package infinite_test

import (
	"fmt"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

func ExampleList() {
	items := core.NewObservable([]string{"A", "B", "C"})
	loading := core.NewObservable(false)

	list, err := infinite.New(infinite.Config[string, string]{
		Data:        items,
		IsLoading:   loading,
		LoadingView: "loading",
		LoadMore:    func() { fmt.Println("loadMore") },
		Content:     func(s string) string { return "[" + s + "]" },
	})
	if err != nil {
		panic(err)
	}

	list.Mount()
	frame := list.Render()
	fmt.Println(frame.Container.Mode)
	for _, entry := range frame.All() {
		fmt.Println(entry.View)
	}
	list.Subscribe("C").Appear()

	// Output:
	// loadMore
	// plain-list
	// [A]
	// [B]
	// [C]
	// loadMore
}

func ExampleSelectMode() {
	fmt.Println(infinite.SelectMode(false, infinite.Capabilities{LazyStack: true}))
	fmt.Println(infinite.SelectMode(true, infinite.Capabilities{LazyStack: true}))
	fmt.Println(infinite.SelectMode(true, infinite.Capabilities{}))

	// Output:
	// plain-list
	// refreshable-lazy
	// refreshable-eager
}
