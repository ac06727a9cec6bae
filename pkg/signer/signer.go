// Package signer assembles pre-images, produces Ed25519 signatures and
// content-addressed order ids, and emits signed envelopes. It owns no
// process-wide state and does no logging — the core invariant from
// spec.md §7 is that this package never imports a logger.
package signer

import (
	"time"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/envelope"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
)

// clock abstracts the millisecond wall clock the batch dispatcher reads
// exactly once per call, following the same seam the teacher's
// pkg/util.Clock gives its scheduler — a test can substitute a fixed
// clock and assert on exact nonce values.
type clock interface {
	NowMillis() uint64
}

type realClock struct{}

func (realClock) NowMillis() uint64 { return uint64(time.Now().UnixMilli()) }

// Options configures a single sign/prepare call. The zero value signs
// with the Signer's own keypair as both account and signer, and with a
// freshly generated nonce.
type Options struct {
	Account *[32]byte // defaults to the signer's own pubkey
	Signer  *[32]byte // defaults to the signer's own pubkey
	Nonce   *uint64   // defaults to a millisecond-wall-clock reading
}

// Signer signs actions on behalf of one Ed25519 keypair. A Signer is safe
// for concurrent use: Sign/SignAll/SignGroup only read from kp and clk.
type Signer struct {
	kp  *keypair.Keypair
	clk clock
}

// New returns a Signer backed by kp, using the real wall clock for nonce
// generation.
func New(kp *keypair.Keypair) *Signer {
	return &Signer{kp: kp, clk: realClock{}}
}

func (s *Signer) resolve(opts Options) (account, signerPub [32]byte, nonce uint64) {
	pub := s.kp.Pubkey()
	account, signerPub = pub, pub
	if opts.Account != nil {
		account = *opts.Account
	}
	if opts.Signer != nil {
		signerPub = *opts.Signer
	}
	if opts.Nonce != nil {
		nonce = *opts.Nonce
	} else {
		nonce = s.clk.NowMillis()
	}
	return account, signerPub, nonce
}

// Sign signs a single intent, producing exactly one envelope. Order-type
// intents (OrderIntent, CancelIntent, CancelAllIntent) are wrapped in a
// single-item batch, per spec.md §4.4.
func (s *Signer) Sign(intent Intent, opts Options) (*envelope.Envelope, error) {
	a, err := intent.toAction()
	if err != nil {
		return nil, err
	}
	return s.signAction(a, opts)
}

func (s *Signer) signAction(a action.Action, opts Options) (*envelope.Envelope, error) {
	account, signerPub, nonce := s.resolve(opts)
	preimage := buildPreimage(a, nonce, account, signerPub)
	sig := s.kp.Sign(preimage)

	actionJSON, err := envelope.ActionJSON(a, nonce)
	if err != nil {
		return nil, err
	}

	var orderIDs [][32]byte
	if batch, ok := a.(action.OrderBatch); ok {
		for _, place := range batch.PlaceItems() {
			orderIDs = append(orderIDs, singleItemOrderID(place.Order, nonce, account, signerPub))
		}
	}

	return envelope.New(actionJSON, account, signerPub, sig, orderIDs), nil
}

// singleItemOrderID computes a place item's order id under the given
// nonce/account/signer — for Sign/SignAll this is simply the item's own
// pre-image (the batch has exactly one item); for SignGroup it is the
// hypothetical single-item pre-image the spec's group-mode rule requires.
func singleItemOrderID(item action.PlaceOrder, nonce uint64, account, signerPub [32]byte) [32]byte {
	return orderID(singleItemPreimage(item, nonce, account, signerPub))
}

// SignGroup signs a GroupIntent as one atomic multi-item order-batch
// action: a single signature over the full batch, but order ids computed
// per-item using the hypothetical single-item pre-image rule (spec.md
// §4.4, testable property 3).
func (s *Signer) SignGroup(group GroupIntent, opts Options) (*envelope.Envelope, error) {
	a, err := group.toAction()
	if err != nil {
		return nil, err
	}
	return s.signAction(a, opts)
}

// SignFaucet, SignAgentWallet, SignUserSettings, SignOracle, and
// SignTestnetAdmin are thin conveniences over Sign for the non-order
// action kinds, kept as named methods because these are the entry points
// most callers reach for directly rather than constructing an Intent.

func (s *Signer) SignFaucet(intent FaucetIntent, opts Options) (*envelope.Envelope, error) {
	return s.Sign(intent, opts)
}

// SignAgentWallet signs an agent-wallet authorization/revocation and
// attaches a human-readable delegation label to the resulting envelope
// (spec.md "Agent wallet delegation metadata" addendum) — an empty label
// generates one from a fresh UUID.
func (s *Signer) SignAgentWallet(intent AgentWalletIntent, label string, opts Options) (*envelope.Envelope, error) {
	env, err := s.Sign(intent, opts)
	if err != nil {
		return nil, err
	}
	return env.WithAgentLabel(label), nil
}

func (s *Signer) SignUserSettings(intent UserSettingsIntent, opts Options) (*envelope.Envelope, error) {
	return s.Sign(intent, opts)
}

func (s *Signer) SignOracle(intent OracleIntent, opts Options) (*envelope.Envelope, error) {
	return s.Sign(intent, opts)
}

func (s *Signer) SignTestnetAdmin(intent TestnetAdminIntent, opts Options) (*envelope.Envelope, error) {
	return s.Sign(intent, opts)
}
