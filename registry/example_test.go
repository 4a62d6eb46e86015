package registry_test

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/registry"
)

func ExampleRegistry() {
	r := registry.New()
	r.Register("Bus_1")
	r.Register("Dup")
	r.Register("Dup")

	idx, ok := r.Lookup("Dup")
	fmt.Println(idx, ok)
	_, ok = r.Lookup("Bus_999")
	fmt.Println(ok)
	fmt.Println(r.Len(), r.Next())

	// Output:
	// 2 true
	// false
	// 2 3
}
