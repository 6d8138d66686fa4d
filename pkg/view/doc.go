// Package view provides the description-node vocabulary that render
// delegates return: immutable widgets that map directly onto retained
// nodes in the element tree.
//
// The nodes here carry data and interaction callbacks only. Layout,
// styling, and painting are the host application's concern; this
// package describes structure.
package view
