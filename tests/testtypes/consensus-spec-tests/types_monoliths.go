// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package consensus_spec_tests

import "github.com/holiman/uint256"

type BeaconBlockBodyMonolith struct {
	RandaoReveal             BLSSignature                  `json:"randao_reveal"`
	Eth1Data                 *Eth1Data                     `json:"eth1_data"`
	Graffiti                 Hash                          `json:"graffiti"`
	ProposerSlashings        []*ProposerSlashing           `json:"proposer_slashings" ssz-max:"MAX_PROPOSER_SLASHINGS"`
	AttesterSlashings        []*AttesterSlashing           `json:"attester_slashings" ssz-max:"MAX_ATTESTER_SLASHINGS" ssz-fork:"!electra"`
	AttesterSlashingsElectra []*AttesterSlashing           `json:"attester_slashings" ssz-max:"MAX_ATTESTER_SLASHINGS_ELECTRA" ssz-fork:"electra"`
	Attestations             []*Attestation                `json:"attestations" ssz-max:"MAX_ATTESTATIONS" ssz-fork:"!electra"`
	AttestationsElectra      []*Attestation                `json:"attestations" ssz-max:"MAX_ATTESTATIONS_ELECTRA" ssz-fork:"electra"`
	Deposits                 []*Deposit                    `json:"deposits" ssz-max:"MAX_DEPOSITS"`
	VoluntaryExits           []*SignedVoluntaryExit        `json:"voluntary_exits" ssz-max:"MAX_VOLUNTARY_EXITS"`
	SyncAggregate            *SyncAggregate                `json:"sync_aggregate" ssz-fork:"altair"`
	ExecutionPayload         *ExecutionPayloadMonolith     `json:"execution_payload" ssz-fork:"bellatrix"`
	BLSToExecutionChanges    []*SignedBLSToExecutionChange `json:"bls_to_execution_changes" ssz-max:"MAX_BLS_TO_EXECUTION_CHANGES" ssz-fork:"capella"`
	BlobKZGCommitments       [][48]byte                    `json:"blob_kzg_commitments" ssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK" ssz-fork:"deneb"`
	ExecutionRequests        *ExecutionRequests            `json:"execution_requests" ssz-fork:"electra"`
}

type ExecutionPayloadMonolith struct {
	ParentHash    Hash          `json:"parent_hash"`
	FeeRecipient  Address       `json:"fee_recipient"`
	StateRoot     Hash          `json:"state_root"`
	ReceiptsRoot  Hash          `json:"receipts_root"`
	LogsBloom     [256]byte     `json:"logs_bloom"`
	PrevRandao    Hash          `json:"prev_randao"`
	BlockNumber   uint64        `json:"block_number"`
	GasLimit      uint64        `json:"gas_limit"`
	GasUsed       uint64        `json:"gas_used"`
	Timestamp     uint64        `json:"timestamp"`
	ExtraData     []byte        `json:"extra_data" ssz-max:"MAX_EXTRA_DATA_BYTES"`
	BaseFeePerGas *uint256.Int  `json:"base_fee_per_gas"`
	BlockHash     Hash          `json:"block_hash"`
	Transactions  [][]byte      `json:"transactions" ssz-max:"MAX_TRANSACTIONS_PER_PAYLOAD,MAX_BYTES_PER_TRANSACTION"`
	Withdrawals   []*Withdrawal `json:"withdrawals" ssz-max:"MAX_WITHDRAWALS_PER_PAYLOAD" ssz-fork:"capella"`
	BlobGasUsed   uint64        `json:"blob_gas_used" ssz-fork:"deneb"`
	ExcessBlobGas uint64        `json:"excess_blob_gas" ssz-fork:"deneb"`
}

type ExecutionPayloadHeaderMonolith struct {
	ParentHash       Hash         `json:"parent_hash"`
	FeeRecipient     Address      `json:"fee_recipient"`
	StateRoot        Hash         `json:"state_root"`
	ReceiptsRoot     Hash         `json:"receipts_root"`
	LogsBloom        [256]byte    `json:"logs_bloom"`
	PrevRandao       Hash         `json:"prev_randao"`
	BlockNumber      uint64       `json:"block_number"`
	GasLimit         uint64       `json:"gas_limit"`
	GasUsed          uint64       `json:"gas_used"`
	Timestamp        uint64       `json:"timestamp"`
	ExtraData        []byte       `json:"extra_data" ssz-max:"MAX_EXTRA_DATA_BYTES"`
	BaseFeePerGas    *uint256.Int `json:"base_fee_per_gas"`
	BlockHash        Hash         `json:"block_hash"`
	TransactionsRoot Hash         `json:"transactions_root"`
	WithdrawalsRoot  Hash         `json:"withdrawals_root" ssz-fork:"capella"`
	BlobGasUsed      uint64       `json:"blob_gas_used" ssz-fork:"deneb"`
	ExcessBlobGas    uint64       `json:"excess_blob_gas" ssz-fork:"deneb"`
}
