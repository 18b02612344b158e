// Package internalcheck holds static policy tests for the ecpoint packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They have no runtime API.
package internalcheck
