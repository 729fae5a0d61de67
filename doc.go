// Package jabert matches documents against patterns.
//
// The codecs live in packages parse, encode, direct and codec, the
// mapping between Go values and documents in package gomap.
package jabert
