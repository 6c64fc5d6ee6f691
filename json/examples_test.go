package json

import (
	"fmt"
	"os"
)

func ExampleDecode() {
	v, err := Decode([]byte(`{"name":"jot","sizes":[1,2,3]}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	o := v.(*Object)
	fmt.Println(o.Get([]byte("name")).(*String).Text())
	fmt.Println(o.Get([]byte("sizes")).(*Array).Len())
	// Output:
	// jot
	// 3
}

func ExampleEncode() {
	o := NewObject()
	o.Set([]byte("greeting"), NewString("hello"))
	o.Set([]byte("answer"), NewNumber(42))
	o.Set([]byte("extra"), nil)
	fmt.Println(string(Encode(o)))
	// Output:
	// {"greeting":"hello","answer":42,"extra":null}
}

func ExampleFprint() {
	v, err := Decode([]byte(`{"on":true,"tags":["a","b"]}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = Fprintln(os.Stdout, v); err != nil {
		fmt.Println(err)
	}
	// Output:
	// {
	//   "on": true,
	//   "tags": [
	//     "a",
	//     "b"
	//   ]
	// }
}

func ExampleObject_Remove() {
	v, _ := Decode([]byte(`{"a":1,"b":2,"c":3}`))
	o := v.(*Object)
	o.Remove([]byte("b"))
	fmt.Println(string(Encode(o)))
	// Output:
	// {"a":1,"c":3}
}
