// doc.go -- package overview for go-rtcrack
//
// (c) 2024 opencoff contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package rtcrack implements an offline rainbow-table engine for
// attacking seeded pseudo-random number generators whose seed space
// fits in 32 bits.
//
// Given a HashFunc mapping a 32-bit seed to a fixed-width digest, the
// package can precompute a set of compressed chain tables that
// probabilistically cover the seed space (Generate), persist them to
// disk in a compact 8-byte-record format (CreateTable, OpenTableRO), sort them
// in-place by endpoint (Sort), and later recover a seed from an
// observed digest by walking those tables (Search). As a fallback it
// can brute-force the seed space directly (Crack).
//
// Concrete hash functions are resolved by name through a small
// registry (Resolve); a handful are built in (md5, wikihash, siphash,
// fasthash) and more can be added at runtime through dynamically
// loaded plug-ins (LoadPlugins).
package rtcrack
