// Package ast is the program representation the external YAPL parser hands
// to the semantic core. Nodes are plain tagged structs without interfaces so
// that a parsed program can be stored as JSON or MessagePack and decoded
// back without custom codecs. Kinds marshal as their spelling.
package ast
