// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package consensus_spec_tests

import "github.com/prysmaticlabs/go-bitfield"

type (
	Hash         [32]byte
	Address      [20]byte
	BLSPubkey    [48]byte
	BLSSignature [96]byte
)

type Attestation struct {
	AggregationBits        bitfield.Bitlist `json:"aggregation_bits" ssz-max:"MAX_VALIDATORS_PER_COMMITTEE" ssz-fork:"!electra"`
	AggregationBitsElectra bitfield.Bitlist `json:"aggregation_bits" ssz-max:"MAX_VALIDATORS_PER_COMMITTEE*MAX_COMMITTEES_PER_SLOT" ssz-fork:"electra"`
	Data                   *AttestationData `json:"data"`
	Signature              BLSSignature     `json:"signature"`
	CommitteeBits          [8]byte          `json:"committee_bits" ssz:"bits" ssz-size:"MAX_COMMITTEES_PER_SLOT" ssz-fork:"electra"`
}

type AttestationData struct {
	Slot            uint64      `json:"slot"`
	Index           uint64      `json:"index"`
	BeaconBlockRoot Hash        `json:"beacon_block_root"`
	Source          *Checkpoint `json:"source"`
	Target          *Checkpoint `json:"target"`
}

type AttesterSlashing struct {
	Attestation1 *IndexedAttestation `json:"attestation_1"`
	Attestation2 *IndexedAttestation `json:"attestation_2"`
}

type BeaconBlockHeader struct {
	Slot          uint64 `json:"slot"`
	ProposerIndex uint64 `json:"proposer_index"`
	ParentRoot    Hash   `json:"parent_root"`
	StateRoot     Hash   `json:"state_root"`
	BodyRoot      Hash   `json:"body_root"`
}

type BLSToExecutionChange struct {
	ValidatorIndex     uint64    `json:"validator_index"`
	FromBLSPubkey      BLSPubkey `json:"from_bls_pubkey"`
	ToExecutionAddress Address   `json:"to_execution_address"`
}

type Checkpoint struct {
	Epoch uint64 `json:"epoch"`
	Root  Hash   `json:"root"`
}

type ConsolidationRequest struct {
	SourceAddress Address   `json:"source_address"`
	SourcePubkey  BLSPubkey `json:"source_pubkey"`
	TargetPubkey  BLSPubkey `json:"target_pubkey"`
}

type Deposit struct {
	Proof [33][32]byte `json:"proof"`
	Data  *DepositData `json:"data"`
}

type DepositData struct {
	Pubkey                BLSPubkey    `json:"pubkey"`
	WithdrawalCredentials [32]byte     `json:"withdrawal_credentials"`
	Amount                uint64       `json:"amount"`
	Signature             BLSSignature `json:"signature"`
}

type DepositRequest struct {
	Pubkey                BLSPubkey    `json:"pubkey"`
	WithdrawalCredentials [32]byte     `json:"withdrawal_credentials"`
	Amount                uint64       `json:"amount"`
	Signature             BLSSignature `json:"signature"`
	Index                 uint64       `json:"index"`
}

type Eth1Data struct {
	DepositRoot  Hash   `json:"deposit_root"`
	DepositCount uint64 `json:"deposit_count"`
	BlockHash    Hash   `json:"block_hash"`
}

type ExecutionRequests struct {
	Deposits       []*DepositRequest       `json:"deposits" ssz-max:"MAX_DEPOSIT_REQUESTS_PER_PAYLOAD"`
	Withdrawals    []*WithdrawalRequest    `json:"withdrawals" ssz-max:"MAX_WITHDRAWAL_REQUESTS_PER_PAYLOAD"`
	Consolidations []*ConsolidationRequest `json:"consolidations" ssz-max:"MAX_CONSOLIDATION_REQUESTS_PER_PAYLOAD"`
}

type HistoricalBatch struct {
	BlockRoots []Hash `json:"block_roots" ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
	StateRoots []Hash `json:"state_roots" ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
}

type IndexedAttestation struct {
	AttestingIndices        []uint64         `json:"attesting_indices" ssz-max:"MAX_VALIDATORS_PER_COMMITTEE" ssz-fork:"!electra"`
	AttestingIndicesElectra []uint64         `json:"attesting_indices" ssz-max:"MAX_VALIDATORS_PER_COMMITTEE*MAX_COMMITTEES_PER_SLOT" ssz-fork:"electra"`
	Data                    *AttestationData `json:"data"`
	Signature               BLSSignature     `json:"signature"`
}

type ProposerSlashing struct {
	SignedHeader1 *SignedBeaconBlockHeader `json:"signed_header_1"`
	SignedHeader2 *SignedBeaconBlockHeader `json:"signed_header_2"`
}

type SignedBeaconBlockHeader struct {
	Message   *BeaconBlockHeader `json:"message"`
	Signature BLSSignature       `json:"signature"`
}

type SignedBLSToExecutionChange struct {
	Message   *BLSToExecutionChange `json:"message"`
	Signature BLSSignature          `json:"signature"`
}

type SignedVoluntaryExit struct {
	Message   *VoluntaryExit `json:"message"`
	Signature BLSSignature   `json:"signature"`
}

type SyncAggregate struct {
	SyncCommitteeBits      [64]byte     `json:"sync_committee_bits" ssz:"bits" ssz-size:"SYNC_COMMITTEE_SIZE"`
	SyncCommitteeSignature BLSSignature `json:"sync_committee_signature"`
}

type Validator struct {
	Pubkey                     BLSPubkey `json:"pubkey"`
	WithdrawalCredentials      [32]byte  `json:"withdrawal_credentials"`
	EffectiveBalance           uint64    `json:"effective_balance"`
	Slashed                    bool      `json:"slashed"`
	ActivationEligibilityEpoch uint64    `json:"activation_eligibility_epoch"`
	ActivationEpoch            uint64    `json:"activation_epoch"`
	ExitEpoch                  uint64    `json:"exit_epoch"`
	WithdrawableEpoch          uint64    `json:"withdrawable_epoch"`
}

type VoluntaryExit struct {
	Epoch          uint64 `json:"epoch"`
	ValidatorIndex uint64 `json:"validator_index"`
}

type Withdrawal struct {
	Index          uint64  `json:"index"`
	ValidatorIndex uint64  `json:"validator_index"`
	Address        Address `json:"address"`
	Amount         uint64  `json:"amount"`
}

type WithdrawalRequest struct {
	SourceAddress   Address   `json:"source_address"`
	ValidatorPubkey BLSPubkey `json:"validator_pubkey"`
	Amount          uint64    `json:"amount"`
}
