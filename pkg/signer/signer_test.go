package signer

import (
	"testing"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
	"github.com/uhyunpark/hyperlicked/pkg/keypair"
)

func mustKeypair(t *testing.T) *keypair.Keypair {
	t.Helper()
	kp, err := keypair.Generate()
	if err != nil {
		t.Fatalf("keypair.Generate: %v", err)
	}
	return kp
}

func sampleOrder() OrderIntent {
	return OrderIntent{
		Symbol: "BTC-USD",
		IsBuy:  true,
		Price:  100000.0,
		Size:   0.1,
		OrderType: OrderTypeIntent{
			Type: "limit",
			TIF:  action.GTC,
		},
	}
}

func TestSignDefaultsAccountAndSignerToOwnPubkey(t *testing.T) {
	kp := mustKeypair(t)
	s := New(kp)

	env, err := s.Sign(sampleOrder(), Options{})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	pub := kp.Pubkey()
	acc, err := env.DecodeAccount()
	if err != nil || acc != pub {
		t.Fatalf("account = %x, err = %v; want %x", acc, err, pub)
	}
	sig, err := env.DecodeSigner()
	if err != nil || sig != pub {
		t.Fatalf("signer = %x, err = %v; want %x", sig, err, pub)
	}
}

func TestSignProducesVerifiableSignature(t *testing.T) {
	kp := mustKeypair(t)
	s := New(kp)
	nonce := uint64(1704067200000)

	env, err := s.Sign(sampleOrder(), Options{Nonce: &nonce})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	account, _ := env.DecodeAccount()
	signerPub, _ := env.DecodeSigner()
	sig, _ := env.DecodeSignature()

	ord, err := sampleOrder().toAction()
	if err != nil {
		t.Fatalf("toAction: %v", err)
	}
	preimage := buildPreimage(ord, nonce, account, signerPub)

	if !keypair.Verify(signerPub, preimage, sig) {
		t.Error("signature does not verify over the reconstructed pre-image")
	}
}

func TestSignOrderIDMatchesSHA256OfPreimage(t *testing.T) {
	kp := mustKeypair(t)
	s := New(kp)
	nonce := uint64(42)

	env, err := s.Sign(sampleOrder(), Options{Nonce: &nonce})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(env.OrderIDs) != 1 {
		t.Fatalf("expected exactly one order id, got %d", len(env.OrderIDs))
	}

	account, _ := env.DecodeAccount()
	signerPub, _ := env.DecodeSigner()

	place, err := sampleOrder().toPlaceOrder()
	if err != nil {
		t.Fatalf("toPlaceOrder: %v", err)
	}
	want := orderID(singleItemPreimage(place, nonce, account, signerPub))

	got, err := codec.DecodeBlob32(env.OrderIDs[0])
	if err != nil {
		t.Fatalf("decode order id: %v", err)
	}
	if got != want {
		t.Errorf("order id = %x, want %x", got, want)
	}
}

func TestSignGroupComputesPerItemHypotheticalOrderIDs(t *testing.T) {
	kp := mustKeypair(t)
	s := New(kp)
	nonce := uint64(7)

	mk := func(sym string) Intent {
		return OrderIntent{Symbol: sym, IsBuy: true, Price: 1, Size: 1, OrderType: OrderTypeIntent{Type: "limit", TIF: action.GTC}}
	}
	group := GroupIntent{Items: []Intent{mk("A"), mk("B"), mk("C")}}

	env, err := s.SignGroup(group, Options{Nonce: &nonce})
	if err != nil {
		t.Fatalf("SignGroup: %v", err)
	}
	if len(env.OrderIDs) != 3 {
		t.Fatalf("expected 3 order ids, got %d", len(env.OrderIDs))
	}

	account, _ := env.DecodeAccount()
	signerPub, _ := env.DecodeSigner()

	for i, sym := range []string{"A", "B", "C"} {
		place := action.PlaceOrder{Symbol: sym, IsBuy: true, Price: 1, Size: 1, OrderType: action.LimitSpec{TimeInForce: action.GTC}}
		want := orderID(singleItemPreimage(place, nonce, account, signerPub))
		got, err := codec.DecodeBlob32(env.OrderIDs[i])
		if err != nil {
			t.Fatalf("decode order id %d: %v", i, err)
		}
		if got != want {
			t.Errorf("item %d: order id = %x, want %x", i, got, want)
		}
	}
}

func TestSignGroupRejectsEmptyBatch(t *testing.T) {
	kp := mustKeypair(t)
	s := New(kp)
	if _, err := s.SignGroup(GroupIntent{}, Options{}); err == nil {
		t.Error("expected error for empty group, got nil")
	}
}

func TestOrderIntentRejectsEmptySymbol(t *testing.T) {
	intent := OrderIntent{OrderType: OrderTypeIntent{Type: "limit"}}
	if _, err := intent.toAction(); err == nil {
		t.Error("expected error for empty symbol, got nil")
	}
}

func TestOrderIntentRejectsUnknownOrderType(t *testing.T) {
	intent := OrderIntent{Symbol: "BTC-USD", OrderType: OrderTypeIntent{Type: "bogus"}}
	if _, err := intent.toAction(); err == nil {
		t.Error("expected error for unrecognized order type, got nil")
	}
}
