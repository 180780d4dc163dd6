// SPDX-License-Identifier: MIT

// Command tfim builds the classical-equivalent QUBO of a transverse-field
// Ising model on a stacked triangular lattice and analyzes the annealer's
// answers.
//
//	tfim -L 12 -H 4 -G 0.5 -T 60        # write input.json and metadata.json
//	tfim -g ./target/Gamma0.5/Strength1.0_Lattice12_12_4_Time60.json
//	tfim -c ./target/Gamma0.5/Strength1.0_Lattice12_12_4_Time60.json
//	tfim verify ./target/Gamma0.5/Strength1.0_Lattice12_12_4_Time60.json
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
