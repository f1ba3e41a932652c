package primitives

// ValidatorIndex identifies a position in the state's validator registry.
type ValidatorIndex uint64

// CommitteeIndex identifies a committee within a slot.
type CommitteeIndex uint64

// DomainType is a 4-byte signature-domain tag, extended to 32 bytes by
// get_domain (spec §4.2) before use as a BLS domain.
type DomainType [4]byte

// Domain is the full 32-byte domain-separated tag consumed by BLS verify.
type Domain [32]byte

// Root is a 32-byte SHA-256 Merkle digest: block roots, state roots,
// hash_tree_root outputs, and checkpoint roots all use this shape.
type Root [32]byte
