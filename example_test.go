package uapiversion_test

import (
	"fmt"

	uapiversion "github.com/nikstur/uapi-version"
)

func ExampleCompare() {
	fmt.Println(uapiversion.Compare("225.1", "2"))
	fmt.Println(uapiversion.Compare("1.0.0", "2.0.0"))
	fmt.Println(uapiversion.Compare("124", "124"))
	// Output:
	// 1
	// -1
	// 0
}

func ExampleSort() {
	versions := []uapiversion.Version{
		uapiversion.New("5.2"),
		uapiversion.New("abc-5"),
		uapiversion.New("1.0.0~rc1"),
	}

	uapiversion.Sort(versions)

	fmt.Println(versions)
	// Output:
	// [abc-5 1.0.0~rc1 5.2]
}

func ExampleVersion_Compare() {
	a := uapiversion.New("123~rc1")
	b := uapiversion.New("123")

	// a pre-release sorts before the release it precedes
	fmt.Println(a.Compare(b))
	// Output:
	// -1
}
