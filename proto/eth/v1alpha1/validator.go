package v1alpha1

// Validator is one registered staker (spec §3). Invariant reported by
// helpers.ValidatorLifecycleOK and not enforced by the struct itself:
// ActivationEligibilityEpoch <= ActivationEpoch <= ExitEpoch <= WithdrawableEpoch
// whenever each is not the FAR_FUTURE_EPOCH sentinel.
type Validator struct {
	PublicKey                  []byte `ssz-size:"48"`
	WithdrawalCredentials       []byte `ssz-size:"32"`
	EffectiveBalance            uint64
	Slashed                      bool
	ActivationEligibilityEpoch  uint64
	ActivationEpoch              uint64
	ExitEpoch                    uint64
	WithdrawableEpoch            uint64
}

// Clone returns a deep copy of v.
func (v *Validator) Clone() *Validator {
	if v == nil {
		return nil
	}
	cpy := *v
	cpy.PublicKey = append([]byte(nil), v.PublicKey...)
	cpy.WithdrawalCredentials = append([]byte(nil), v.WithdrawalCredentials...)
	return &cpy
}
