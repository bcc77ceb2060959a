package domain

// Money is an amount in minor currency units (cents). Stored amounts keep
// full precision; display rounding belongs to the presentation layer.
type Money int64
