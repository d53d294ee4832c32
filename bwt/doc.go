// Package bwt implements the Burrows-Wheeler Transform: a reversible
// permutation of a block's bytes obtained by sorting all of its cyclic
// rotations and reading off their last characters.
//
// Forward and Inverse operate on a single block at a time; the package has
// no notion of a stream. See package codec for the block-oriented
// read/transform/write pipeline, and package block for the on-wire framing.
package bwt
