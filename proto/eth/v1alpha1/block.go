package v1alpha1

// Eth1Data is the bridge checkpoint into the deposit contract (spec §3).
type Eth1Data struct {
	DepositRoot  []byte `ssz-size:"32"`
	DepositCount uint64
	BlockHash    []byte `ssz-size:"32"`
}

// Clone returns a deep copy of e.
func (e *Eth1Data) Clone() *Eth1Data {
	if e == nil {
		return nil
	}
	return &Eth1Data{
		DepositRoot:  append([]byte(nil), e.DepositRoot...),
		DepositCount: e.DepositCount,
		BlockHash:    append([]byte(nil), e.BlockHash...),
	}
}

// Equals reports whether e and other vote for the same Eth1Data.
func (e *Eth1Data) Equals(other *Eth1Data) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.DepositCount != other.DepositCount {
		return false
	}
	for i := range e.DepositRoot {
		if e.DepositRoot[i] != other.DepositRoot[i] {
			return false
		}
	}
	for i := range e.BlockHash {
		if e.BlockHash[i] != other.BlockHash[i] {
			return false
		}
	}
	return true
}

// DepositData is the deposit-contract log payload a Deposit proves
// inclusion of.
type DepositData struct {
	PublicKey             []byte `ssz-size:"48"`
	WithdrawalCredentials []byte `ssz-size:"32"`
	Amount                uint64
	Signature             []byte `ssz-size:"96"`
}

// Deposit carries a Merkle proof of DepositData's inclusion in the deposit
// contract's tree, rooted at Eth1Data.DepositRoot (spec §4.5).
type Deposit struct {
	Proof [][]byte `ssz-size:"33,32"`
	Data  *DepositData
}

// DepositMessage is DepositData with its signature stripped: the object a
// deposit's own BLS signature actually covers (spec §4.5 process_deposit).
type DepositMessage struct {
	PublicKey             []byte `ssz-size:"48"`
	WithdrawalCredentials []byte `ssz-size:"32"`
	Amount                uint64
}

// ProposerSlashing proves a proposer double-signed a block header at the
// same slot.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// AttesterSlashing proves a slashable attestation-data pair per
// is_slashable_attestation_data (spec §4.1).
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}

// VoluntaryExit is a validator's signed request to leave the active set.
type VoluntaryExit struct {
	Epoch          uint64
	ValidatorIndex uint64
}

// SignedVoluntaryExit pairs a VoluntaryExit with its BLS signature.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit
	Signature []byte `ssz-size:"96"`
}

// BeaconBlockHeader is the compact block summary retained by
// BeaconState.LatestBlockHeader and the block/state-root history rings
// (spec §3).
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	BodyRoot      []byte `ssz-size:"32"`
}

// Clone returns a deep copy of h.
func (h *BeaconBlockHeader) Clone() *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	return &BeaconBlockHeader{
		Slot:          h.Slot,
		ProposerIndex: h.ProposerIndex,
		ParentRoot:    append([]byte(nil), h.ParentRoot...),
		StateRoot:     append([]byte(nil), h.StateRoot...),
		BodyRoot:      append([]byte(nil), h.BodyRoot...),
	}
}

// SignedBeaconBlockHeader pairs a BeaconBlockHeader with its signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature []byte `ssz-size:"96"`
}

// BeaconBlockBody carries every per-block operation list processed by
// process_block, in the fixed order spec §4.5 names.
type BeaconBlockBody struct {
	RandaoReveal      []byte `ssz-size:"96"`
	Eth1Data          *Eth1Data
	Graffiti          []byte `ssz-size:"32"`
	ProposerSlashings []*ProposerSlashing `dynssz-size:"MAX_PROPOSER_SLASHINGS"`
	AttesterSlashings []*AttesterSlashing `dynssz-size:"MAX_ATTESTER_SLASHINGS"`
	Attestations      []*Attestation      `dynssz-size:"MAX_ATTESTATIONS"`
	Deposits          []*Deposit          `dynssz-size:"MAX_DEPOSITS"`
	VoluntaryExits    []*SignedVoluntaryExit `dynssz-size:"MAX_VOLUNTARY_EXITS"`
}

// BeaconBlock is the unsigned block: spec §3/§4.5/§4.6.
type BeaconBlock struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	Body          *BeaconBlockBody
}

// SignedBeaconBlock pairs a BeaconBlock with the proposer's BLS signature.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature []byte `ssz-size:"96"`
}
