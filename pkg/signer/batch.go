package signer

import (
	"sync"

	"github.com/uhyunpark/hyperlicked/pkg/envelope"
)

// defaultBatchWorkers bounds the worker pool SignAll uses when
// the caller does not override it, mirroring the teacher's dispatcher
// pattern of a small fixed pool rather than one goroutine per item.
const defaultBatchWorkers = 8

// BatchOptions configures SignAll. There is no batched counterpart of
// Prepare; Prepare handles one intent per call. Account and Signer, if set,
// apply to every item in the batch. BaseNonce, if set, is the first of N
// contiguously allocated nonces (item i gets BaseNonce+i); otherwise the
// dispatcher reads the wall clock once and allocates contiguously from
// there, per spec.md §4.6. Workers bounds concurrency; zero selects
// defaultBatchWorkers.
type BatchOptions struct {
	Account   *[32]byte
	Signer    *[32]byte
	BaseNonce *uint64
	Workers   int
}

// Result pairs one batch item's outcome with its index, since SignAll
// returns per-item failures without aborting the whole batch (spec.md
// §7, propagation policy).
type Result struct {
	Index    int
	Envelope *envelope.Envelope
	Err      error
}

// SignAll produces one independent envelope per intent, each with its own
// single-item order-batch action and its own nonce allocated contiguously
// from a single base (spec.md §4.6). Results are returned in input order
// regardless of completion order.
func (s *Signer) SignAll(intents []Intent, opts BatchOptions) []Result {
	n := len(intents)
	results := make([]Result, n)
	if n == 0 {
		return results
	}

	base := opts.BaseNonce
	if base == nil {
		b := s.clk.NowMillis()
		base = &b
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	if workers > n {
		workers = n
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				nonce := *base + uint64(i)
				itemOpts := Options{Account: opts.Account, Signer: opts.Signer, Nonce: &nonce}
				env, err := s.Sign(intents[i], itemOpts)
				results[i] = Result{Index: i, Envelope: env, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}
