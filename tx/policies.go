package tx

// Default policy values applied by Normalize when the caller leaves a
// field unset.
const (
	// DefaultGasPriceCeiling is the highest gas price the client accepts
	// when none is configured.
	DefaultGasPriceCeiling uint64 = 1_000

	// DefaultWitnessLimit bounds the total witness bytes of a transaction.
	DefaultWitnessLimit uint64 = 8_192

	// NoExpiration disables the expiration policy.
	NoExpiration uint64 = 0
)

// TxPolicies configures transaction validity and pricing bounds.
// Zero-valued fields mean "unset" and receive defaults via Normalize,
// except Maturity and Expiration where zero is a meaningful value
// (immediately valid, never expires).
type TxPolicies struct {
	// GasPriceCeiling bounds the gas price the transaction will pay.
	GasPriceCeiling uint64 `json:"gas_price_ceiling"`

	// Maturity is the earliest block height at which the transaction is
	// valid.
	Maturity uint64 `json:"maturity"`

	// Expiration is the latest block height at which the transaction is
	// valid. NoExpiration disables the bound.
	Expiration uint64 `json:"expiration"`

	// WitnessLimit bounds the total witness bytes.
	WitnessLimit uint64 `json:"witness_limit"`
}

// Normalize returns a copy with defaults applied to unset fields.
func (p TxPolicies) Normalize() TxPolicies {
	if p.GasPriceCeiling == 0 {
		p.GasPriceCeiling = DefaultGasPriceCeiling
	}
	if p.WitnessLimit == 0 {
		p.WitnessLimit = DefaultWitnessLimit
	}
	return p
}
