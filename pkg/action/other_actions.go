package action

import "github.com/uhyunpark/hyperlicked/pkg/codec"

// OraclePriceUpdate is one (timestamp, asset, price) triple within an
// Oracle action.
type OraclePriceUpdate struct {
	Timestamp uint64
	Asset     string
	Price     float64
}

// Oracle pushes a batch of price updates.
type Oracle struct {
	Updates []OraclePriceUpdate
}

func (Oracle) Discriminant() uint32 { return DiscriminantOracle }

func (o Oracle) encodePayload(w *codec.Writer) {
	w.WriteSeqLen(len(o.Updates))
	for _, u := range o.Updates {
		w.WriteU64(u.Timestamp)
		w.WriteString(u.Asset)
		w.WriteF64(u.Price)
	}
}

// Faucet requests testnet funds be credited to User. Amount is optional —
// a nil Amount lets the exchange apply its own default drip size.
type Faucet struct {
	User   [32]byte
	Amount *float64
}

func (Faucet) Discriminant() uint32 { return DiscriminantFaucet }

func (f Faucet) encodePayload(w *codec.Writer) {
	w.WriteBlob32(f.User)
	if f.Amount == nil {
		w.WriteOptionAbsent()
	} else {
		w.WriteOptionPresent()
		w.WriteF64(*f.Amount)
	}
}

// LeverageSetting is one (symbol, leverage) pair within a settings update.
type LeverageSetting struct {
	Symbol   string
	Leverage float64
}

// UpdateUserSettings sets per-symbol leverage for the signing account.
type UpdateUserSettings struct {
	Settings []LeverageSetting
}

func (UpdateUserSettings) Discriminant() uint32 { return DiscriminantUpdateUserSettings }

func (u UpdateUserSettings) encodePayload(w *codec.Writer) {
	w.WriteSeqLen(len(u.Settings))
	for _, s := range u.Settings {
		w.WriteString(s.Symbol)
		w.WriteF64(s.Leverage)
	}
}

// AgentWalletCreation authorizes (or revokes, if Delete is set) Agent as a
// secondary signer for the account.
type AgentWalletCreation struct {
	Agent  [32]byte
	Delete bool
}

func (AgentWalletCreation) Discriminant() uint32 { return DiscriminantAgentWalletCreate }

func (a AgentWalletCreation) encodePayload(w *codec.Writer) {
	w.WriteBlob32(a.Agent)
	w.WriteBool(a.Delete)
}
