// Package guidance picks a previously returned solution as the warm start
// of the next annealer request.
//
// Select draws one solution uniformly from a batch, but only after checking
// that the batch was produced for the same lattice (Γ, strength, L, H) as
// the request that will consume it. On a mismatch nothing is chosen and
// nothing is written.
//
// Seed performs the file round trip: run name → metadata check → solution
// file → problem file rewrite with the new "guidance_config".
package guidance
