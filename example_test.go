package navstack_test

import (
	"fmt"

	"github.com/phanxgames/navstack"
	"github.com/zclconf/go-cty/cty"
)

const (
	ScreenHome navstack.ScreenID = iota
	ScreenDetail
)

func materializeScreen(stack *navstack.Stack, screen navstack.ScreenID, container *navstack.Node) *navstack.Node {
	return navstack.NewPanel(fmt.Sprintf("screen-%d", screen), 320, 240)
}

func pump(stage *navstack.Stage, frames int) {
	for i := 0; i < frames; i++ {
		stage.Step(0.1)
	}
}

func Example() {
	stage := navstack.NewStage()
	nav := navstack.NewContainer("nav")
	stage.Root().AddChild(nav)

	stack, err := navstack.New(stage, nav, materializeScreen, nil)
	if err != nil {
		fmt.Println("restore failed:", err)
		return
	}

	stack.StartWith(ScreenHome, navstack.NoParams)
	pump(stage, 6)

	stack.Push(ScreenDetail, cty.StringVal("item-42"))
	pump(stage, 6)
	fmt.Println("screens:", stack.Len())
	fmt.Println("params:", stack.GetParameters(stack.TopView()).AsString())

	stack.PopTopWithResult(cty.BoolVal(true))
	pump(stage, 6)
	fmt.Println("result:", stack.Result().True())
	fmt.Println("screens:", stack.Len())

	// Output:
	// screens: 2
	// params: item-42
	// result: true
	// screens: 1
}
