// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), used to decide the semantic equivalence of Boolean
expressions over named variables.

Basics

A BDD is created with New and owns every node it ever produces. Variables are
identified by a string key and are totally ordered using the lexicographic
order on keys; along every path of a diagram keys strictly increase. A fresh
variable is obtained with Leaf and larger diagrams are built with And, Or, Not
and the other operators, all of them specializations of the if-then-else
operator Ite.

Most operations return a Node; that is an index in the node table of the BDD.
We use the convention that 1 (respectively 0) is the index of the constant
function True (respectively False). Because the node table is hash-consed, two
nodes built by the same BDD denote the same Boolean function if and only if
they are equal. This is what makes equivalence checking a simple comparison.

Memory management

Nodes are never freed: the node table and the memo table of Ite grow
monotonically for the lifetime of the BDD. Use the Maxnodesize option to bound
the size of the table. When an operation fails, for instance because the table
is full, it returns an invalid node and records an error in the BDD (see
methods Error and Errored). Invalid nodes are propagated by every operation, so
computations can be chained and checked once at the end.

Several BDD can coexist in the same program; they share no state. A BDD can be
used from several goroutines, operations are serialized using an internal lock.

Use of build tags

To check the canonical-form invariants each time a node is created, and to log
internal inconsistencies before panicking, compile your executable with the
build tag `debug`.
*/
package robdd
