// Package testvector loads spec-conformance fixtures (spec §6's
// test-vector interface): a directory holding an SSZ-encoded pre-state, a
// meta.yaml describing the operation to apply, and either a post-state SSZ
// file or no post-state at all (meaning the transition must fail).
//
// Modeled on the teacher's beacon-chain/rpc/eth/config testdata loaders,
// which pair a YAML side-car with a binary fixture file on disk.
package testvector

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sigmaprime/beacon-core/beacon-chain/state"
	"github.com/sigmaprime/beacon-core/encoding/szz"
	ethpb "github.com/sigmaprime/beacon-core/proto/eth/v1alpha1"
)

// Meta is the YAML side-car accompanying a fixture directory. Exactly one
// of Slots or BlocksCount must be set, enforced by validate on Load.
type Meta struct {
	// Slots is set for "sanity/slots" fixtures: the target slot to advance
	// pre-state to via process_slots.
	Slots uint64 `yaml:"slots,omitempty" validate:"required_without=BlocksCount,excluded_with=BlocksCount"`
	// BlocksCount is set for "sanity/blocks" fixtures: the number of
	// blocks_N.ssz files to apply in order via state_transition.
	BlocksCount int `yaml:"blocks_count,omitempty" validate:"required_without=Slots,gte=0"`
	// Bls controls whether block/attestation signatures are verified; some
	// fixtures intentionally carry non-verifying signatures to isolate the
	// state-transition logic under test.
	Bls bool `yaml:"bls_setting,omitempty"`
}

var validate = validator.New()

// Fixture is one decoded spec-conformance test case.
type Fixture struct {
	Meta        Meta
	Pre         *state.BeaconState
	Blocks      []*ethpb.SignedBeaconBlock
	Post        *state.BeaconState
	ExpectFail  bool
}

// Load reads a fixture directory laid out as:
//
//	dir/meta.yaml
//	dir/pre.ssz
//	dir/blocks_0.ssz, blocks_1.ssz, ... (sanity/blocks only)
//	dir/post.ssz (absent means the transition must fail)
func Load(dir string) (*Fixture, error) {
	var meta Meta
	metaBytes, err := os.ReadFile(filepath.Join(dir, "meta.yaml"))
	if err != nil {
		return nil, errors.Wrap(err, "testvector: reading meta.yaml")
	}
	if err := yaml.Unmarshal(metaBytes, &meta); err != nil {
		return nil, errors.Wrap(err, "testvector: decoding meta.yaml")
	}
	if err := validate.Struct(meta); err != nil {
		return nil, errors.Wrap(err, "testvector: malformed meta.yaml")
	}

	pre, err := loadState(filepath.Join(dir, "pre.ssz"))
	if err != nil {
		return nil, errors.Wrap(err, "testvector: loading pre-state")
	}

	blocks := make([]*ethpb.SignedBeaconBlock, 0, meta.BlocksCount)
	for i := 0; i < meta.BlocksCount; i++ {
		b := &ethpb.SignedBeaconBlock{}
		raw, err := os.ReadFile(filepath.Join(dir, blockFileName(i)))
		if err != nil {
			return nil, errors.Wrapf(err, "testvector: reading %s", blockFileName(i))
		}
		if err := szz.Unmarshal(raw, b); err != nil {
			return nil, errors.Wrapf(err, "testvector: decoding %s", blockFileName(i))
		}
		blocks = append(blocks, b)
	}

	postPath := filepath.Join(dir, "post.ssz")
	if _, err := os.Stat(postPath); errors.Is(err, os.ErrNotExist) {
		return &Fixture{Meta: meta, Pre: pre, Blocks: blocks, ExpectFail: true}, nil
	}
	post, err := loadState(postPath)
	if err != nil {
		return nil, errors.Wrap(err, "testvector: loading post-state")
	}

	return &Fixture{Meta: meta, Pre: pre, Blocks: blocks, Post: post}, nil
}

func blockFileName(i int) string {
	return "blocks_" + strconv.Itoa(i) + ".ssz"
}

func loadState(path string) (*state.BeaconState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pb := &ethpb.BeaconState{}
	if err := szz.Unmarshal(raw, pb); err != nil {
		return nil, err
	}
	return state.InitializeFromProto(pb)
}
