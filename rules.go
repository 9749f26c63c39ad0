package checkers

// Rules selects between the capture-chain behaviours the ruleset
// leaves open.  The zero value is StandardRules.
type Rules struct {
	// CapturedPiecesBlock keeps pieces jumped earlier in a chain on the
	// board as obstacles until the chain completes.  When false they
	// vanish from the chain's geometry as soon as they are jumped.
	// Either way they can never be jumped twice or landed on.
	CapturedPiecesBlock bool
}

// StandardRules is the default ruleset: mandatory capture, maximal
// chains, forward-only men, long-range kings and captured pieces that
// stop blocking as soon as they are jumped.
var StandardRules = Rules{}

// String returns a short name for the ruleset.
func (r Rules) String() string {
	if r.CapturedPiecesBlock {
		return "blocking-captures"
	}
	return "standard"
}
