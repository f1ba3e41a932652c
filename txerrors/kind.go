// Package txerrors implements the tagged outcome design note §9 calls for:
// a typed Kind enum wrapped in an *Error, instead of collapsing failures
// into opaque strings.
package txerrors

// Kind enumerates every failure class the transition can report, per spec §7.
type Kind int

const (
	Unknown Kind = iota

	// Query failures on invalid indices.
	EpochOutOfBounds
	SlotOutOfBounds
	UnknownValidator

	// Cryptographic rejections.
	InvalidBlockSignature
	InvalidRandaoReveal
	InvalidAttestationSignature
	InvalidDepositProof

	// Post-state / block-header mismatches.
	BadStateRoot
	BadParentRoot
	BadProposerIndex
	BadBlockSlot
	ProposerSlashed

	// Attestation index-set rules.
	MaxIndicesExceeded
	BadValidatorIndicesOrdering
	CustodyBitValidatorsIntersect
	EmptyIndexedAttestation

	// Attestation data / inclusion-window rules.
	AttestationTooEarly
	AttestationTooLate
	AttestationBadSourceEpoch
	AttestationBadSourceRoot
	AttestationBadTargetEpoch
	BadAggregationBitsLength

	// Slashing predicate hits. Informational: these are not by themselves
	// transition failures, they trigger slashing processing (spec §7).
	DoubleVote
	SurroundVote

	// Registry violations.
	InsufficientBalance
	ValidatorIsWithdrawable
	PubkeyCacheInconsistent
	ValidatorAlreadyExited
	ValidatorNotActiveLongEnough

	// Codec failures.
	SszTypesError

	// Operation-specific structural rejections.
	BadProposerSlashing
	BadAttesterSlashing
	InvalidExitSignature
	CommitteeIndexOutOfRange

	// Broken internal invariants (spec §7): a well-formed state makes
	// these unreachable, so accessors panic with a Bug of this Kind
	// rather than returning a recoverable error.
	UnableToDetermineProducer
)

var names = map[Kind]string{
	Unknown:                       "unknown",
	EpochOutOfBounds:              "epoch out of bounds",
	SlotOutOfBounds:               "slot out of bounds",
	UnknownValidator:              "unknown validator",
	InvalidBlockSignature:         "invalid block signature",
	InvalidRandaoReveal:           "invalid randao reveal",
	InvalidAttestationSignature:   "invalid attestation signature",
	InvalidDepositProof:           "invalid deposit proof",
	BadStateRoot:                  "bad state root",
	BadParentRoot:                 "bad parent root",
	BadProposerIndex:              "bad proposer index",
	BadBlockSlot:                  "bad block slot",
	ProposerSlashed:               "proposer slashed",
	MaxIndicesExceeded:            "max indices exceeded",
	BadValidatorIndicesOrdering:   "bad validator indices ordering",
	CustodyBitValidatorsIntersect: "custody bit validators intersect",
	EmptyIndexedAttestation:       "empty indexed attestation",
	AttestationTooEarly:           "attestation too early",
	AttestationTooLate:            "attestation too late",
	AttestationBadSourceEpoch:     "attestation bad source epoch",
	AttestationBadSourceRoot:      "attestation bad source root",
	AttestationBadTargetEpoch:     "attestation bad target epoch",
	BadAggregationBitsLength:      "bad aggregation bits length",
	DoubleVote:                    "double vote",
	SurroundVote:                  "surround vote",
	InsufficientBalance:           "insufficient balance",
	ValidatorIsWithdrawable:       "validator is withdrawable",
	PubkeyCacheInconsistent:       "pubkey cache inconsistent",
	ValidatorAlreadyExited:        "validator already exited",
	ValidatorNotActiveLongEnough:  "validator not active long enough",
	SszTypesError:                 "ssz types error",
	BadProposerSlashing:           "bad proposer slashing",
	BadAttesterSlashing:           "bad attester slashing",
	InvalidExitSignature:          "invalid exit signature",
	CommitteeIndexOutOfRange:      "committee index out of range",
	UnableToDetermineProducer:     "unable to determine producer",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unrecognized error kind"
}
