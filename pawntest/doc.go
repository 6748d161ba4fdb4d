/*
Package pawntest provides mocks and supporting structures that are
useful for testing. Structures implemented here are mostly
implementation of interfaces declared in the root package, prepared so
that their state can be fully controlled by the test author.
*/
package pawntest
