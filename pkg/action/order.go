package action

import "github.com/uhyunpark/hyperlicked/pkg/codec"

// Item-kind discriminants within an order-batch action.
const (
	itemDiscriminantPlace      uint32 = 0
	itemDiscriminantCancel     uint32 = 1
	itemDiscriminantCancelAll  uint32 = 2
)

// Order-type discriminants for a place item.
const (
	orderTypeDiscriminantLimit   uint32 = 0
	orderTypeDiscriminantTrigger uint32 = 1
)

// TimeInForce is the resting behavior of a limit order.
type TimeInForce uint32

const (
	GTC TimeInForce = 0 // Good-til-cancel: rests on the book.
	IOC TimeInForce = 1 // Immediate-or-cancel.
	ALO TimeInForce = 2 // Add-liquidity-only (post-only).
)

// OrderType is the sum type { Limit{tif}, Trigger{isMarket, triggerPrice} }.
// Modeled as an interface rather than optional fields so the codec's
// discriminant mapping is defined only on this closed set, per the
// re-architecture note in spec.md §9.
type OrderType interface {
	encodeOrderType(w *codec.Writer)
}

// LimitSpec is a resting limit order with the given time-in-force.
type LimitSpec struct {
	TimeInForce TimeInForce
}

func (s LimitSpec) encodeOrderType(w *codec.Writer) {
	w.WriteU32(orderTypeDiscriminantLimit)
	w.WriteU32(uint32(s.TimeInForce))
}

// TriggerSpec is a stop/take-profit order that activates at TriggerPrice,
// executing as a market order if IsMarket is set.
type TriggerSpec struct {
	IsMarket     bool
	TriggerPrice float64
}

func (s TriggerSpec) encodeOrderType(w *codec.Writer) {
	w.WriteU32(orderTypeDiscriminantTrigger)
	w.WriteBool(s.IsMarket)
	w.WriteF64(s.TriggerPrice)
}

// OrderItem is the sum type of place/cancel/cancel-all line items that make
// up an order-batch action. Order within the containing batch is
// semantically significant and preserved verbatim on the wire.
type OrderItem interface {
	encodeItem(w *codec.Writer)
}

// PlaceOrder opens a new order.
type PlaceOrder struct {
	Symbol      string
	IsBuy       bool
	Price       float64
	Size        float64
	ReduceOnly  bool
	OrderType   OrderType
	ClientID    *[32]byte // nil encodes as Option-absent.
}

func (p PlaceOrder) encodeItem(w *codec.Writer) {
	w.WriteU32(itemDiscriminantPlace)
	w.WriteString(p.Symbol)
	w.WriteBool(p.IsBuy)
	w.WriteF64(p.Price)
	w.WriteF64(p.Size)
	w.WriteBool(p.ReduceOnly)
	p.OrderType.encodeOrderType(w)
	if p.ClientID == nil {
		w.WriteOptionAbsent()
	} else {
		w.WriteOptionPresent()
		w.WriteBlob32(*p.ClientID)
	}
}

// CancelOrder cancels a single resting order by its content-addressed id.
type CancelOrder struct {
	Symbol  string
	OrderID [32]byte
}

func (c CancelOrder) encodeItem(w *codec.Writer) {
	w.WriteU32(itemDiscriminantCancel)
	w.WriteString(c.Symbol)
	w.WriteBlob32(c.OrderID)
}

// CancelAllOrders cancels every resting order on the given symbols. An
// empty Symbols means "all symbols".
type CancelAllOrders struct {
	Symbols []string
}

func (c CancelAllOrders) encodeItem(w *codec.Writer) {
	w.WriteU32(itemDiscriminantCancelAll)
	w.WriteSeqLen(len(c.Symbols))
	for _, s := range c.Symbols {
		w.WriteString(s)
	}
}

// OrderBatch is an ordered sequence of place/cancel/cancel-all items,
// signed and submitted atomically in group mode or split one-per-envelope
// in independent mode (pkg/signer decides which).
type OrderBatch struct {
	Items []OrderItem
}

func (OrderBatch) Discriminant() uint32 { return DiscriminantOrder }

func (b OrderBatch) encodePayload(w *codec.Writer) {
	w.WriteSeqLen(len(b.Items))
	for _, item := range b.Items {
		item.encodeItem(w)
	}
}

// PlaceItems returns the indices and values of every PlaceOrder item in the
// batch, in batch order — used by pkg/signer to compute per-item order ids.
func (b OrderBatch) PlaceItems() []PlaceOrderAt {
	var out []PlaceOrderAt
	for i, item := range b.Items {
		if p, ok := item.(PlaceOrder); ok {
			out = append(out, PlaceOrderAt{Index: i, Order: p})
		}
	}
	return out
}

// PlaceOrderAt pairs a PlaceOrder with its position in the containing
// batch's Items slice.
type PlaceOrderAt struct {
	Index int
	Order PlaceOrder
}
