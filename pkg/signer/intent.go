package signer

import (
	"fmt"

	"github.com/uhyunpark/hyperlicked/pkg/action"
)

// Intent is any of the user-facing request shapes this package accepts —
// the camelCase API surface of spec.md §6.3, distinct from both the
// binary action model (pkg/action) and the short-key wire JSON
// (pkg/envelope). toAction converts an intent to its action-model form,
// which is the only thing the codec and the signature ever see.
type Intent interface {
	toAction() (action.Action, error)
}

// OrderTypeIntent is the user-facing order-type shape: either a limit
// order ({Type:"limit", TIF}) or a trigger order ({Type:"trigger",
// IsMarket, TriggerPrice}).
type OrderTypeIntent struct {
	Type         string // "limit" or "trigger"
	TIF          action.TimeInForce
	IsMarket     bool
	TriggerPrice float64
}

func (o OrderTypeIntent) toOrderType() (action.OrderType, error) {
	switch o.Type {
	case "limit":
		return action.LimitSpec{TimeInForce: o.TIF}, nil
	case "trigger":
		return action.TriggerSpec{IsMarket: o.IsMarket, TriggerPrice: o.TriggerPrice}, nil
	default:
		return nil, fmt.Errorf("%w: order type must be \"limit\" or \"trigger\", got %q", action.ErrInvalidIntent, o.Type)
	}
}

// OrderIntent places a single order.
type OrderIntent struct {
	Symbol     string
	IsBuy      bool
	Price      float64
	Size       float64
	ReduceOnly bool
	OrderType  OrderTypeIntent
	ClientID   *[32]byte
}

func (o OrderIntent) toAction() (action.Action, error) {
	item, err := o.toPlaceOrder()
	if err != nil {
		return nil, err
	}
	return action.OrderBatch{Items: []action.OrderItem{item}}, nil
}

func (o OrderIntent) toPlaceOrder() (action.PlaceOrder, error) {
	if o.Symbol == "" {
		return action.PlaceOrder{}, fmt.Errorf("%w: symbol is required", action.ErrInvalidIntent)
	}
	ot, err := o.OrderType.toOrderType()
	if err != nil {
		return action.PlaceOrder{}, err
	}
	return action.PlaceOrder{
		Symbol:     o.Symbol,
		IsBuy:      o.IsBuy,
		Price:      o.Price,
		Size:       o.Size,
		ReduceOnly: o.ReduceOnly,
		OrderType:  ot,
		ClientID:   o.ClientID,
	}, nil
}

// CancelIntent cancels one resting order by id.
type CancelIntent struct {
	Symbol  string
	OrderID [32]byte
}

func (c CancelIntent) toAction() (action.Action, error) {
	if c.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", action.ErrInvalidIntent)
	}
	return action.OrderBatch{Items: []action.OrderItem{
		action.CancelOrder{Symbol: c.Symbol, OrderID: c.OrderID},
	}}, nil
}

// CancelAllIntent cancels every resting order on the given symbols (all
// symbols, if empty).
type CancelAllIntent struct {
	Symbols []string
}

func (c CancelAllIntent) toAction() (action.Action, error) {
	return action.OrderBatch{Items: []action.OrderItem{
		action.CancelAllOrders{Symbols: c.Symbols},
	}}, nil
}

// FaucetIntent requests testnet funds for User. A nil Amount lets the
// exchange apply its own default drip size.
type FaucetIntent struct {
	User   [32]byte
	Amount *float64
}

func (f FaucetIntent) toAction() (action.Action, error) {
	return action.Faucet{User: f.User, Amount: f.Amount}, nil
}

// UserSettingsIntent updates per-symbol leverage.
type UserSettingsIntent struct {
	Settings []action.LeverageSetting
}

func (u UserSettingsIntent) toAction() (action.Action, error) {
	return action.UpdateUserSettings{Settings: u.Settings}, nil
}

// OracleIntent pushes a batch of price updates.
type OracleIntent struct {
	Updates []action.OraclePriceUpdate
}

func (o OracleIntent) toAction() (action.Action, error) {
	return action.Oracle{Updates: o.Updates}, nil
}

// AgentWalletIntent authorizes (or, if Delete is set, revokes) Agent as a
// secondary signer.
type AgentWalletIntent struct {
	Agent  [32]byte
	Delete bool
}

func (a AgentWalletIntent) toAction() (action.Action, error) {
	return action.AgentWalletCreation{Agent: a.Agent, Delete: a.Delete}, nil
}

// TestnetAdminIntent carries an ordered batch of admin sub-actions.
type TestnetAdminIntent struct {
	SubActions []action.AdminSubAction
}

func (t TestnetAdminIntent) toAction() (action.Action, error) {
	return action.TestnetAdmin{SubActions: t.SubActions}, nil
}

// GroupIntent batches multiple order-type intents (OrderIntent, CancelIntent,
// CancelAllIntent) into a single atomic order-batch action, for SignGroup /
// PrepareGroup.
type GroupIntent struct {
	Items []Intent
}

func (g GroupIntent) toAction() (action.Action, error) {
	if len(g.Items) == 0 {
		return nil, ErrEmptyBatch
	}
	items := make([]action.OrderItem, 0, len(g.Items))
	for i, it := range g.Items {
		a, err := it.toAction()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		batch, ok := a.(action.OrderBatch)
		if !ok || len(batch.Items) != 1 {
			return nil, fmt.Errorf("%w: item %d is not an order-type intent", action.ErrInvalidIntent, i)
		}
		items = append(items, batch.Items[0])
	}
	return action.OrderBatch{Items: items}, nil
}
