package ludo

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var dieSides = big.NewInt(6)

// RollDie returns a uniformly distributed value in [1,6] read from r.
func RollDie(r io.Reader) (int, error) {
	n, err := crand.Int(r, dieSides)
	if err != nil {
		return 0, fmt.Errorf("roll die: %w", err)
	}
	return int(n.Int64()) + 1, nil
}
