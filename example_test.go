// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/dalzilio/robdd"
)

// This example shows the basic usage of the package: create a BDD, compute some
// expressions and output the result.
func Example_basic() {
	// Create a new BDD with an initial node table of 10 000 nodes and a memo
	// table for ITE of 3 000 entries.
	bdd, _ := robdd.New(robdd.Nodesize(10000), robdd.Cachesize(3000))
	x1, x2, x3 := bdd.Leaf("x1"), bdd.Leaf("x2"), bdd.Leaf("x3")
	// n1 == !(x1 | x2) & x3
	n1 := bdd.And(bdd.Not(bdd.Or(x1, x2)), x3)
	// n2 == x3 & !x2 & !x1
	n2 := bdd.And(x3, bdd.Not(x2), bdd.Not(x1))
	// You can print the statistics or export a BDD in Graphviz's DOT format
	log.Print(bdd.Stats())
	fmt.Printf("Equivalent: %v\n", n1 == n2)
	fmt.Printf("Number of sat. assignments: %s\n", bdd.Satcount(n1))
	// Output:
	// Equivalent: true
	// Number of sat. assignments: 1
}

// This example shows how to list the cubes of a Boolean function.
func ExampleBDD_Allsat() {
	bdd, _ := robdd.New()
	n := bdd.Or(bdd.Leaf("a"), bdd.Leaf("b"))
	vars := bdd.Vars()
	bdd.Allsat(n, func(varset []int) error {
		line := make([]string, len(varset))
		for k, v := range varset {
			line[k] = fmt.Sprintf("%s=%2d", vars[k], v)
		}
		fmt.Println(strings.Join(line, " "))
		return nil
	})
	// Output:
	// a= 0 b= 1
	// a= 1 b=-1
}
