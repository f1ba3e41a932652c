// Package signing implements spec §4.2's get_domain and
// compute_signing_root: the domain-separation layer every BLS verification
// in this engine routes through.
package signing

import (
	"github.com/sigmaprime/beacon-core/consensus-types/primitives"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
	"github.com/sigmaprime/beacon-core/txerrors"
)

// Domain returns get_domain(state, domain_type, epoch): a 32-byte tag
// combining the fork version active at epoch, domain_type, and
// genesis_validators_root (spec §4.2).
func Domain(fork *ethpb.Fork, epoch primitives.Epoch, domainType primitives.DomainType, genesisValidatorsRoot []byte) (primitives.Domain, error) {
	var forkVersion [4]byte
	if fork == nil || uint64(epoch) < fork.Epoch {
		if fork != nil {
			forkVersion = fork.PreviousVersion
		}
	} else {
		forkVersion = fork.CurrentVersion
	}
	return ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)
}

// ComputeDomain builds the 32-byte domain tag from an explicit fork
// version, for callers (e.g. get_domain at a non-current epoch, or
// genesis-time signing) that already resolved the version themselves.
func ComputeDomain(domainType primitives.DomainType, forkVersion [4]byte, genesisValidatorsRoot []byte) (primitives.Domain, error) {
	var root [32]byte
	copy(root[:], genesisValidatorsRoot)

	forkData := &ethpb.ForkData{CurrentVersion: forkVersion, GenesisValidatorsRoot: root}
	forkDataRoot, err := szz.HashTreeRoot(forkData)
	if err != nil {
		return primitives.Domain{}, txerrors.Wrap(txerrors.SszTypesError, err, "hash_tree_root(fork_data)")
	}

	var domain primitives.Domain
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}
