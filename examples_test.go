package listmap

import "fmt"

func ExampleMap_Put() {
	m := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	fmt.Println(m.Len())
	// Output: 2
}

func ExampleMap_Get() {
	m := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Get(1)
	fmt.Printf("%s %t\n", val, ok)
	// Output: one true
}

func ExampleMap_Delete() {
	m := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	val, ok := m.Delete(1)
	fmt.Printf("%s %t\n", val, ok)
	fmt.Println(m.Len())
	// Output: one true
	// 1
}

func ExampleMap_Iterator() {
	m := NewOrdered[int, string]()
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")
	it := m.Iterator()
	for it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleMap_SeekGE() {
	m := NewOrdered[int, string]()
	m.Put(1, "one")
	m.Put(3, "three")
	m.Put(5, "five")
	it := m.SeekGE(2)
	for it.Valid() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
		it.Next()
	}
	fmt.Println()
	// Output: 3:three 5:five
}

func ExampleMap_Keys() {
	m := NewOrdered[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)
	for k := range m.Keys() {
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output: a b c
}

func ExampleMap_Rank() {
	m := NewOrdered[string, int]()
	for i, k := range []string{"A", "C", "E", "H"} {
		m.Put(k, i)
	}
	fmt.Println(m.Rank("E"), m.Rank("D"), m.Rank("Z"))
	// Output: 3 2 4
}

func ExampleMap_Floor() {
	m := NewOrdered[int, string]()
	m.Put(10, "ten")
	m.Put(20, "twenty")
	if k, ok := m.Floor(15); ok {
		fmt.Println(k)
	}
	if k, ok := m.Ceiling(15); ok {
		fmt.Println(k)
	}
	// Output: 10
	// 20
}
