package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/uhyunpark/hyperlicked/pkg/action"
	"github.com/uhyunpark/hyperlicked/pkg/codec"
)

// ActionJSON renders a into the server's documented short-key camelCase
// request shape (spec §6.2) — a different, independent encoding from the
// binary pre-image pkg/action produces. The two must never be confused:
// this is what the exchange's REST layer parses, the binary form is what
// its signature verifier recomputes.
func ActionJSON(a action.Action, nonce uint64) (json.RawMessage, error) {
	switch v := a.(type) {
	case action.OrderBatch:
		return orderBatchJSON(v, nonce)
	case action.Oracle:
		return oracleJSON(v, nonce)
	case action.Faucet:
		return faucetJSON(v, nonce)
	case action.UpdateUserSettings:
		return userSettingsJSON(v, nonce)
	case action.AgentWalletCreation:
		return agentWalletJSON(v, nonce)
	case action.TestnetAdmin:
		return testnetAdminJSON(v, nonce)
	default:
		return nil, fmt.Errorf("envelope: unrecognized action type %T", a)
	}
}

func orderBatchJSON(b action.OrderBatch, nonce uint64) (json.RawMessage, error) {
	orders := make([]json.RawMessage, len(b.Items))
	for i, item := range b.Items {
		raw, err := orderItemJSON(item)
		if err != nil {
			return nil, fmt.Errorf("order item %d: %w", i, err)
		}
		orders[i] = raw
	}
	return json.Marshal(struct {
		Type   string            `json:"type"`
		Orders []json.RawMessage `json:"orders"`
		Nonce  uint64            `json:"nonce"`
	}{Type: "order", Orders: orders, Nonce: nonce})
}

func orderItemJSON(item action.OrderItem) (json.RawMessage, error) {
	switch v := item.(type) {
	case action.PlaceOrder:
		place, err := placeOrderJSON(v)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Order json.RawMessage `json:"order"`
		}{Order: place})
	case action.CancelOrder:
		return json.Marshal(struct {
			Cancel struct {
				C   string `json:"c"`
				OID string `json:"oid"`
			} `json:"cancel"`
		}{Cancel: struct {
			C   string `json:"c"`
			OID string `json:"oid"`
		}{C: v.Symbol, OID: codec.EncodeBlob(v.OrderID[:])}})
	case action.CancelAllOrders:
		return json.Marshal(struct {
			CancelAll struct {
				C []string `json:"c"`
			} `json:"cancelAll"`
		}{CancelAll: struct {
			C []string `json:"c"`
		}{C: v.Symbols}})
	default:
		return nil, fmt.Errorf("envelope: unrecognized order item type %T", item)
	}
}

type placeOrderShape struct {
	C     string          `json:"c"`
	B     bool            `json:"b"`
	Px    float64         `json:"px"`
	Sz    float64         `json:"sz"`
	R     bool            `json:"r"`
	T     json.RawMessage `json:"t"`
	Cloid *string         `json:"cloid,omitempty"`
}

func placeOrderJSON(p action.PlaceOrder) (json.RawMessage, error) {
	t, err := orderTypeJSON(p.OrderType)
	if err != nil {
		return nil, err
	}
	shape := placeOrderShape{C: p.Symbol, B: p.IsBuy, Px: p.Price, Sz: p.Size, R: p.ReduceOnly, T: t}
	if p.ClientID != nil {
		s := codec.EncodeBlob(p.ClientID[:])
		shape.Cloid = &s
	}
	return json.Marshal(shape)
}

func orderTypeJSON(ot action.OrderType) (json.RawMessage, error) {
	switch v := ot.(type) {
	case action.LimitSpec:
		return json.Marshal(struct {
			Limit struct {
				TIF string `json:"tif"`
			} `json:"limit"`
		}{Limit: struct {
			TIF string `json:"tif"`
		}{TIF: tifString(v.TimeInForce)}})
	case action.TriggerSpec:
		return json.Marshal(struct {
			Trigger struct {
				IsMarket  bool    `json:"is_market"`
				TriggerPx float64 `json:"triggerPx"`
			} `json:"trigger"`
		}{Trigger: struct {
			IsMarket  bool    `json:"is_market"`
			TriggerPx float64 `json:"triggerPx"`
		}{IsMarket: v.IsMarket, TriggerPx: v.TriggerPrice}})
	default:
		return nil, fmt.Errorf("envelope: unrecognized order type %T", ot)
	}
}

func tifString(tif action.TimeInForce) string {
	switch tif {
	case action.GTC:
		return "GTC"
	case action.IOC:
		return "IOC"
	case action.ALO:
		return "ALO"
	default:
		return "GTC"
	}
}

func oracleJSON(o action.Oracle, nonce uint64) (json.RawMessage, error) {
	updates := make([]struct {
		Timestamp uint64  `json:"timestamp"`
		Asset     string  `json:"asset"`
		Price     float64 `json:"price"`
	}, len(o.Updates))
	for i, u := range o.Updates {
		updates[i].Timestamp = u.Timestamp
		updates[i].Asset = u.Asset
		updates[i].Price = u.Price
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		Updates any    `json:"updates"`
		Nonce   uint64 `json:"nonce"`
	}{Type: "oracle", Updates: updates, Nonce: nonce})
}

func faucetJSON(f action.Faucet, nonce uint64) (json.RawMessage, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Faucet struct {
			U string   `json:"u"`
			A *float64 `json:"a,omitempty"`
		} `json:"faucet"`
		Nonce uint64 `json:"nonce"`
	}{
		Type: "faucet",
		Faucet: struct {
			U string   `json:"u"`
			A *float64 `json:"a,omitempty"`
		}{U: codec.EncodeBlob(f.User[:]), A: f.Amount},
		Nonce: nonce,
	})
}

func userSettingsJSON(u action.UpdateUserSettings, nonce uint64) (json.RawMessage, error) {
	settings := make([]struct {
		Symbol   string  `json:"symbol"`
		Leverage float64 `json:"leverage"`
	}, len(u.Settings))
	for i, s := range u.Settings {
		settings[i].Symbol = s.Symbol
		settings[i].Leverage = s.Leverage
	}
	return json.Marshal(struct {
		Type     string `json:"type"`
		Settings any    `json:"settings"`
		Nonce    uint64 `json:"nonce"`
	}{Type: "updateUserSettings", Settings: settings, Nonce: nonce})
}

func agentWalletJSON(a action.AgentWalletCreation, nonce uint64) (json.RawMessage, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Agent struct {
			Agent  string `json:"agent"`
			Delete bool   `json:"delete"`
		} `json:"agentWallet"`
		Nonce uint64 `json:"nonce"`
	}{
		Type: "agentWalletCreate",
		Agent: struct {
			Agent  string `json:"agent"`
			Delete bool   `json:"delete"`
		}{Agent: codec.EncodeBlob(a.Agent[:]), Delete: a.Delete},
		Nonce: nonce,
	})
}

func testnetAdminJSON(t action.TestnetAdmin, nonce uint64) (json.RawMessage, error) {
	subs := make([]json.RawMessage, len(t.SubActions))
	for i, sa := range t.SubActions {
		wf, ok := sa.(action.WhitelistFaucet)
		if !ok {
			return nil, fmt.Errorf("envelope: unrecognized admin sub-action type %T", sa)
		}
		raw, err := json.Marshal(struct {
			WhitelistFaucet struct {
				Account   string `json:"account"`
				Whitelist bool   `json:"whitelist"`
			} `json:"whitelistFaucet"`
		}{WhitelistFaucet: struct {
			Account   string `json:"account"`
			Whitelist bool   `json:"whitelist"`
		}{Account: codec.EncodeBlob(wf.Account[:]), Whitelist: wf.Whitelist}})
		if err != nil {
			return nil, err
		}
		subs[i] = raw
	}
	return json.Marshal(struct {
		Type       string            `json:"type"`
		SubActions []json.RawMessage `json:"subActions"`
		Nonce      uint64            `json:"nonce"`
	}{Type: "testnetAdmin", SubActions: subs, Nonce: nonce})
}
