// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package presets

// Names of the constants shaping the consensus containers.
const (
	MaxProposerSlashings               = "MAX_PROPOSER_SLASHINGS"
	MaxAttesterSlashings               = "MAX_ATTESTER_SLASHINGS"
	MaxAttestations                    = "MAX_ATTESTATIONS"
	MaxDeposits                        = "MAX_DEPOSITS"
	MaxVoluntaryExits                  = "MAX_VOLUNTARY_EXITS"
	MaxValidatorsPerCommittee          = "MAX_VALIDATORS_PER_COMMITTEE"
	MaxCommitteesPerSlot               = "MAX_COMMITTEES_PER_SLOT"
	SyncCommitteeSize                  = "SYNC_COMMITTEE_SIZE"
	BytesPerLogsBloom                  = "BYTES_PER_LOGS_BLOOM"
	MaxExtraDataBytes                  = "MAX_EXTRA_DATA_BYTES"
	MaxBytesPerTransaction             = "MAX_BYTES_PER_TRANSACTION"
	MaxTransactionsPerPayload          = "MAX_TRANSACTIONS_PER_PAYLOAD"
	MaxWithdrawalsPerPayload           = "MAX_WITHDRAWALS_PER_PAYLOAD"
	MaxBLSToExecutionChanges           = "MAX_BLS_TO_EXECUTION_CHANGES"
	MaxBlobCommitmentsPerBlock         = "MAX_BLOB_COMMITMENTS_PER_BLOCK"
	FieldElementsPerBlob               = "FIELD_ELEMENTS_PER_BLOB"
	KZGCommitmentInclusionProofDepth   = "KZG_COMMITMENT_INCLUSION_PROOF_DEPTH"
	MaxAttesterSlashingsElectra        = "MAX_ATTESTER_SLASHINGS_ELECTRA"
	MaxAttestationsElectra             = "MAX_ATTESTATIONS_ELECTRA"
	MaxDepositRequestsPerPayload       = "MAX_DEPOSIT_REQUESTS_PER_PAYLOAD"
	MaxWithdrawalRequestsPerPayload    = "MAX_WITHDRAWAL_REQUESTS_PER_PAYLOAD"
	MaxConsolidationRequestsPerPayload = "MAX_CONSOLIDATION_REQUESTS_PER_PAYLOAD"
	SlotsPerEpoch                      = "SLOTS_PER_EPOCH"
	SlotsPerHistoricalRoot             = "SLOTS_PER_HISTORICAL_ROOT"
	EpochsPerHistoricalVector          = "EPOCHS_PER_HISTORICAL_VECTOR"
	EpochsPerSlashingsVector           = "EPOCHS_PER_SLASHINGS_VECTOR"
	EpochsPerEth1VotingPeriod          = "EPOCHS_PER_ETH1_VOTING_PERIOD"
	HistoricalRootsLimit               = "HISTORICAL_ROOTS_LIMIT"
	ValidatorRegistryLimit             = "VALIDATOR_REGISTRY_LIMIT"
	PendingDepositsLimit               = "PENDING_DEPOSITS_LIMIT"
	PendingPartialWithdrawalsLimit     = "PENDING_PARTIAL_WITHDRAWALS_LIMIT"
	PendingConsolidationsLimit         = "PENDING_CONSOLIDATIONS_LIMIT"
	DepositContractTreeDepth           = "DEPOSIT_CONTRACT_TREE_DEPTH"
	BytesPerFieldElement               = "BYTES_PER_FIELD_ELEMENT"
)

// mainnet is the constant table of the Ethereum mainnet configuration.
var mainnet = map[string]uint64{
	// Phase0
	MaxProposerSlashings:      16,
	MaxAttesterSlashings:      2,
	MaxAttestations:           128,
	MaxDeposits:               16,
	MaxVoluntaryExits:         16,
	MaxValidatorsPerCommittee: 2048,
	MaxCommitteesPerSlot:      64,
	SlotsPerEpoch:             32,
	SlotsPerHistoricalRoot:    8192,
	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	EpochsPerEth1VotingPeriod: 64,
	HistoricalRootsLimit:      1 << 24,
	ValidatorRegistryLimit:    1 << 40,
	DepositContractTreeDepth:  32,
	"TARGET_COMMITTEE_SIZE":   128,
	"SHUFFLE_ROUND_COUNT":     90,
	"MIN_SEED_LOOKAHEAD":      1,
	"MAX_SEED_LOOKAHEAD":      4,
	"BASE_REWARD_FACTOR":      64,
	"MIN_DEPOSIT_AMOUNT":      1_000_000_000,
	"MAX_EFFECTIVE_BALANCE":   32_000_000_000,

	"EFFECTIVE_BALANCE_INCREMENT": 1_000_000_000,

	// Altair
	SyncCommitteeSize:                  512,
	"EPOCHS_PER_SYNC_COMMITTEE_PERIOD": 256,
	"MIN_SYNC_COMMITTEE_PARTICIPANTS":  1,

	// Bellatrix
	BytesPerLogsBloom:         256,
	MaxExtraDataBytes:         32,
	MaxBytesPerTransaction:    1 << 30,
	MaxTransactionsPerPayload: 1 << 20,

	// Capella
	MaxWithdrawalsPerPayload:               16,
	MaxBLSToExecutionChanges:               16,
	"MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP": 16384,

	// Deneb
	MaxBlobCommitmentsPerBlock:       4096,
	FieldElementsPerBlob:             4096,
	BytesPerFieldElement:             32,
	KZGCommitmentInclusionProofDepth: 17,

	// Electra
	MaxAttesterSlashingsElectra:        1,
	MaxAttestationsElectra:             8,
	MaxDepositRequestsPerPayload:       8192,
	MaxWithdrawalRequestsPerPayload:    16,
	MaxConsolidationRequestsPerPayload: 2,
	PendingDepositsLimit:               1 << 27,
	PendingPartialWithdrawalsLimit:     1 << 27,
	PendingConsolidationsLimit:         1 << 18,

	"MIN_ACTIVATION_BALANCE":                     32_000_000_000,
	"MAX_EFFECTIVE_BALANCE_ELECTRA":              2_048_000_000_000,
	"MAX_PENDING_PARTIALS_PER_WITHDRAWALS_SWEEP": 8,
	"MAX_PENDING_DEPOSITS_PER_EPOCH":             16,
}

// Mainnet is the Ethereum mainnet preset.
var Mainnet = New("mainnet", mainnet)

// Minimal is the reduced preset used by the consensus spec tests and local
// devnets.
var Minimal = Mainnet.With("minimal", map[string]uint64{
	MaxCommitteesPerSlot:      4,
	SlotsPerEpoch:             8,
	SlotsPerHistoricalRoot:    64,
	EpochsPerHistoricalVector: 64,
	EpochsPerSlashingsVector:  64,
	EpochsPerEth1VotingPeriod: 4,
	"TARGET_COMMITTEE_SIZE":   4,
	"SHUFFLE_ROUND_COUNT":     10,

	SyncCommitteeSize:                  32,
	"EPOCHS_PER_SYNC_COMMITTEE_PERIOD": 8,

	MaxWithdrawalsPerPayload:               4,
	"MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP": 16,

	MaxBlobCommitmentsPerBlock:       32,
	KZGCommitmentInclusionProofDepth: 10,

	MaxDepositRequestsPerPayload:    4,
	MaxWithdrawalRequestsPerPayload: 2,
	PendingPartialWithdrawalsLimit:  64,
	PendingConsolidationsLimit:      64,

	"MAX_PENDING_PARTIALS_PER_WITHDRAWALS_SWEEP": 2,
})

// Gnosis is the Gnosis chain preset, a mainnet derivative with faster epochs.
var Gnosis = Mainnet.With("gnosis", map[string]uint64{
	SlotsPerEpoch:                      16,
	MaxWithdrawalsPerPayload:           8,
	"BASE_REWARD_FACTOR":               25,
	"EPOCHS_PER_SYNC_COMMITTEE_PERIOD": 512,

	"MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP":       8192,
	"MAX_PENDING_PARTIALS_PER_WITHDRAWALS_SWEEP": 6,
})
