package action

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/uhyunpark/hyperlicked/pkg/codec"
)

// TestLimitBuyNoClientID checks the exact seed vector from spec.md §8,
// scenario 1: a limit buy order with no client id, nonce 1704067200000.
func TestLimitBuyNoClientID(t *testing.T) {
	batch := OrderBatch{
		Items: []OrderItem{
			PlaceOrder{
				Symbol:     "BTC-USD",
				IsBuy:      true,
				Price:      100000.0,
				Size:       0.1,
				ReduceOnly: false,
				OrderType:  LimitSpec{TimeInForce: GTC},
				ClientID:   nil,
			},
		},
	}

	w := codec.NewWriter(0)
	Encode(w, batch, 1704067200000)
	got := w.Bytes()

	var exp bytes.Buffer
	exp.Write(mustHex("00000000"))         // action discriminant: order
	exp.Write(mustHex("0100000000000000")) // 1 item
	exp.Write(mustHex("00000000"))         // item discriminant: place
	exp.Write(mustHex("0700000000000000")) // symbol len=7
	exp.WriteString("BTC-USD")
	exp.WriteByte(0x01)                    // isBuy = true
	exp.Write(mustHex("00000000006af840")) // price 100000.0 LE f64
	exp.Write(mustHex("9a9999999999b93f")) // size 0.1 LE f64
	exp.WriteByte(0x00)                    // reduceOnly = false
	exp.Write(mustHex("00000000"))         // order type: limit
	exp.Write(mustHex("00000000"))         // time in force: GTC
	exp.WriteByte(0x00)                    // client id: absent
	exp.Write(mustHex("00f451c28c010000")) // nonce 1704067200000 LE

	if !bytes.Equal(got, exp.Bytes()) {
		t.Errorf("pre-image mismatch:\ngot:  %x\nwant: %x", got, exp.Bytes())
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCancelEncodesRawOrderIDNotBase58String(t *testing.T) {
	var orderID [32]byte
	for i := range orderID {
		orderID[i] = byte(i + 1)
	}
	batch := OrderBatch{Items: []OrderItem{
		CancelOrder{Symbol: "BTC-USD", OrderID: orderID},
	}}

	w := codec.NewWriter(0)
	Encode(w, batch, 0)
	got := w.Bytes()

	// Walk the encoding with a reader from offset 0 to assert its structure
	// precisely.
	r := codec.NewReader(got)
	actionDisc, _ := r.ReadU32()
	if actionDisc != DiscriminantOrder {
		t.Fatalf("wrong action discriminant: %d", actionDisc)
	}
	n, _ := r.ReadU64()
	if n != 1 {
		t.Fatalf("wrong item count: %d", n)
	}
	itemDisc, _ := r.ReadU32()
	if itemDisc != itemDiscriminantCancel {
		t.Fatalf("wrong item discriminant: %d", itemDisc)
	}
	symbol, _ := r.ReadString()
	if symbol != "BTC-USD" {
		t.Fatalf("wrong symbol: %q", symbol)
	}
	rawID, err := r.ReadBlob32()
	if err != nil {
		t.Fatalf("ReadBlob32: %v", err)
	}
	if rawID != orderID {
		t.Errorf("order id not encoded as raw 32 bytes: got %x want %x", rawID, orderID)
	}
}

func TestCancelAllEmptySymbolsEncodesZeroCount(t *testing.T) {
	batch := OrderBatch{Items: []OrderItem{
		CancelAllOrders{Symbols: nil},
	}}
	w := codec.NewWriter(0)
	Encode(w, batch, 0)

	r := codec.NewReader(w.Bytes())
	r.ReadU32() // action disc
	r.ReadU64() // item count = 1
	itemDisc, _ := r.ReadU32()
	if itemDisc != itemDiscriminantCancelAll {
		t.Fatalf("wrong item discriminant: %d", itemDisc)
	}
	count, _ := r.ReadU64()
	if count != 0 {
		t.Errorf("expected zero symbols, got %d", count)
	}
}

func TestFaucetNoAmount(t *testing.T) {
	var user [32]byte
	for i := range user {
		user[i] = byte(i)
	}
	f := Faucet{User: user, Amount: nil}

	w := codec.NewWriter(0)
	Encode(w, f, 42)

	var exp bytes.Buffer
	exp.Write(mustHex("02000000")) // action=faucet
	exp.Write(user[:])
	exp.WriteByte(0x00) // no amount
	exp.Write(mustHex("2a00000000000000"))

	if !bytes.Equal(w.Bytes(), exp.Bytes()) {
		t.Errorf("faucet pre-image mismatch:\ngot:  %x\nwant: %x", w.Bytes(), exp.Bytes())
	}
}

func TestGroupOfThreeOrdersPreservesOrder(t *testing.T) {
	mk := func(sym string) PlaceOrder {
		return PlaceOrder{Symbol: sym, IsBuy: true, Price: 1, Size: 1, OrderType: LimitSpec{TimeInForce: GTC}}
	}
	batch := OrderBatch{Items: []OrderItem{mk("A"), mk("B"), mk("C")}}
	places := batch.PlaceItems()
	if len(places) != 3 {
		t.Fatalf("expected 3 place items, got %d", len(places))
	}
	for i, want := range []string{"A", "B", "C"} {
		if places[i].Order.Symbol != want {
			t.Errorf("item %d: got %q, want %q", i, places[i].Order.Symbol, want)
		}
		if places[i].Index != i {
			t.Errorf("item %d: wrong index %d", i, places[i].Index)
		}
	}
}

func TestDeterministicEncoding(t *testing.T) {
	batch := OrderBatch{Items: []OrderItem{
		PlaceOrder{Symbol: "ETH-USD", IsBuy: false, Price: 3000.5, Size: 2, OrderType: TriggerSpec{IsMarket: true, TriggerPrice: 2990}},
	}}

	w1 := codec.NewWriter(0)
	Encode(w1, batch, 99)
	w2 := codec.NewWriter(0)
	Encode(w2, batch, 99)

	if !bytes.Equal(w1.Bytes(), w2.Bytes()) {
		t.Error("identical action+nonce encoded to different bytes")
	}
}
