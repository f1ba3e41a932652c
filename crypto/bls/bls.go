// Package bls wraps github.com/supranational/blst behind the narrow
// interface the state-transition engine actually consumes (spec §6): single
// and aggregate verification against a domain-separated message, and
// public-key aggregation. The BLS12-381 curve arithmetic itself is an
// external collaborator per spec §1 — this package only adapts it.
package bls

import (
	"github.com/pkg/errors"
	blst "github.com/supranational/blst/bindings/go"
)

const dst = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

var errInfinityPubkey = errors.New("bls: public key is the group-identity element")

// PublicKey is a compressed 48-byte BLS12-381 G1 public key.
type PublicKey struct {
	p *blst.P1Affine
}

// Signature is a compressed 96-byte BLS12-381 G2 signature.
type Signature struct {
	s *blst.P2Affine
}

// SecretKey is a BLS12-381 scalar secret key. Key generation/management is
// out of scope for the transition engine (spec §1 Non-goals); this type
// exists only so test fixtures can sign attestations and blocks.
type SecretKey struct {
	k *blst.SecretKey
}

// SecretKeyFromSeed deterministically derives a secret key from a 32-byte
// (or longer) seed via blst's EIP-2333-style KeyGen. Used by fixture
// generation, never by the transition engine itself.
func SecretKeyFromSeed(seed []byte) (SecretKey, error) {
	k := new(blst.SecretKey).KeyGen(seed)
	if k == nil {
		return SecretKey{}, errors.New("bls: key generation failed, seed too short")
	}
	return SecretKey{k: k}, nil
}

// PublicKeyFromBytes decompresses a 48-byte public key.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	p := new(blst.P1Affine).Uncompress(b)
	if p == nil {
		return PublicKey{}, errors.New("bls: invalid public key bytes")
	}
	if !p.KeyValidate() {
		return PublicKey{}, errInfinityPubkey
	}
	return PublicKey{p: p}, nil
}

// SignatureFromBytes decompresses a 96-byte signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	s := new(blst.P2Affine).Uncompress(b)
	if s == nil {
		return Signature{}, errors.New("bls: invalid signature bytes")
	}
	return Signature{s: s}, nil
}

// Marshal returns the compressed 96-byte encoding of s.
func (s Signature) Marshal() []byte {
	return s.s.Compress()
}

// Marshal returns the compressed 48-byte encoding of p.
func (p PublicKey) Marshal() []byte {
	return p.p.Compress()
}

// Sign produces a signature over msg under sk, domain-separated by dst.
// Test-fixture use only; the transition engine never signs.
func (sk SecretKey) Sign(msg []byte) Signature {
	s := new(blst.P2Affine).Sign(sk.k, msg, []byte(dst))
	return Signature{s: s}
}

// PublicKey derives the public key corresponding to sk.
func (sk SecretKey) PublicKey() PublicKey {
	p := new(blst.P1Affine).From(sk.k)
	return PublicKey{p: p}
}

// Verify reports whether sig is a valid signature over msg under pubkey.
func Verify(pubkey PublicKey, msg []byte, sig Signature) bool {
	return sig.s.Verify(true, pubkey.p, true, msg, []byte(dst))
}

// AggregatePublicKeys combines a list of public keys into a single
// aggregate, per spec §6's aggregate_pubkeys.
func AggregatePublicKeys(pubkeys []PublicKey) (PublicKey, error) {
	if len(pubkeys) == 0 {
		return PublicKey{}, errors.New("bls: empty public key list")
	}
	agg := new(blst.P1Aggregate)
	for _, pk := range pubkeys {
		if !agg.Add(pk.p, false) {
			return PublicKey{}, errors.New("bls: failed to aggregate public key")
		}
	}
	return PublicKey{p: agg.ToAffine()}, nil
}

// AggregateSignatures combines a list of signatures into a single
// aggregate signature over (possibly distinct) messages.
func AggregateSignatures(sigs []Signature) Signature {
	agg := new(blst.P2Aggregate)
	for _, sig := range sigs {
		agg.Add(sig.s, false)
	}
	return Signature{s: agg.ToAffine()}
}

// FastAggregateVerify reports whether sig is a valid aggregate signature by
// every key in pubkeys over the single shared message msg, per spec §6's
// fast_aggregate_verify. Used by is_valid_indexed_attestation (spec §4.1).
func FastAggregateVerify(pubkeys []PublicKey, msg []byte, sig Signature) bool {
	if len(pubkeys) == 0 {
		return false
	}
	raw := make([]*blst.P1Affine, len(pubkeys))
	for i, pk := range pubkeys {
		raw[i] = pk.p
	}
	return sig.s.FastAggregateVerify(true, raw, msg, []byte(dst))
}

// AggregateVerify reports whether sig is a valid aggregate signature by
// each pubkeys[i] over its corresponding msgs[i].
func AggregateVerify(pubkeys []PublicKey, msgs [][]byte, sig Signature) bool {
	if len(pubkeys) != len(msgs) || len(pubkeys) == 0 {
		return false
	}
	raw := make([]*blst.P1Affine, len(pubkeys))
	for i, pk := range pubkeys {
		raw[i] = pk.p
	}
	return sig.s.AggregateVerify(true, raw, true, msgs, []byte(dst))
}
