package digest

// Accumulator folds a sequence of byte buffers into one logical stream.
// The final digest covers the whole concatenation, not per-chunk
// checkpoints, so the algorithm choice is fixed for the run and supplied
// at read time rather than construction.
//
// The raw bytes are retained instead of a live hash state so a running
// digest can be reported after each update without disturbing the final
// computation. Inputs are small and bounded, so holding them in memory
// is acceptable.
//
// Not safe for concurrent use; a run owns exactly one Accumulator.
type Accumulator struct {
	buf       []byte
	finalized bool
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update appends p to the running stream.
// Panics if the accumulator has been finalized.
func (a *Accumulator) Update(p []byte) {
	if a.finalized {
		panic("digest: Update after Finalize")
	}
	a.buf = append(a.buf, p...)
}

// Len returns the number of bytes accumulated so far.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// RunningSum computes the digest of everything accumulated so far without
// consuming the state. Used for per-input progress reporting.
func (a *Accumulator) RunningSum(algo Algorithm) Digest {
	if a.finalized {
		panic("digest: RunningSum after Finalize")
	}
	return Sum(a.buf, algo)
}

// Finalize computes the digest over the entire accumulated stream and
// consumes the state: the accumulator is invalid for further use.
func (a *Accumulator) Finalize(algo Algorithm) Digest {
	if a.finalized {
		panic("digest: Finalize called twice")
	}
	a.finalized = true
	d := Sum(a.buf, algo)
	a.buf = nil
	return d
}
