package v1alpha1

// ForkData is hashed to derive a domain-separated signature domain
// (spec §4.2 get_domain): current_version ++ genesis_validators_root.
type ForkData struct {
	CurrentVersion        [4]byte  `ssz-size:"4"`
	GenesisValidatorsRoot [32]byte `ssz-size:"32"`
}

// SigningData is hashed to derive compute_signing_root(object, domain)
// (spec §4.2): the object's own root paired with the domain tag.
type SigningData struct {
	ObjectRoot [32]byte `ssz-size:"32"`
	Domain     [32]byte `ssz-size:"32"`
}
