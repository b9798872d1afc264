// Package testutil provides testing utilities for rowview.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG and a naive [Oracle] that answers logical-view queries
// by linear scan, so mappers can be checked against it.
//
//	rng := testutil.NewRNG(4711)
//	oracle := testutil.NewOracle(100)
//	oracle.Delete(rng.Intn(oracle.Len()))
package testutil
