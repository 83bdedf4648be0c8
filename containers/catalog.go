// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package containers

import (
	"github.com/beaconkit/ssz"
	p "github.com/beaconkit/ssz/presets"
)

// Fork filters of the fields and containers introduced or retired over time.
var (
	fromAltair    = ssz.ForkFilter{Added: ssz.ForkAltair}
	fromBellatrix = ssz.ForkFilter{Added: ssz.ForkBellatrix}
	fromCapella   = ssz.ForkFilter{Added: ssz.ForkCapella}
	fromDeneb     = ssz.ForkFilter{Added: ssz.ForkDeneb}
	fromElectra   = ssz.ForkFilter{Added: ssz.ForkElectra}
	allForks      = ssz.ForkFilter{}
)

// Aliased byte arrays of the consensus specs.
var (
	version          = ssz.ByteVector(4).Named("Version")
	domain           = ssz.ByteVector(32).Named("Domain")
	root             = ssz.ByteVector(32).Named("Root")
	hash32           = ssz.ByteVector(32).Named("Hash32")
	executionAddress = ssz.ByteVector(20).Named("ExecutionAddress")
	blsPubkey        = ssz.ByteVector(48).Named("BLSPubkey")
	blsSignature     = ssz.ByteVector(96).Named("BLSSignature")
	kzgCommitment    = ssz.ByteVector(48).Named("KZGCommitment")
	kzgProof         = ssz.ByteVector(48).Named("KZGProof")
)

// catalogEntry is a container known by name, along with the forks it exists in
// and the method to build its descriptor.
type catalogEntry struct {
	name   string
	filter ssz.ForkFilter
	build  func(b *builder) *ssz.Type
}

// catalog is the list of all containers, dependencies first. It's populated in
// init since the constructors recurse into the catalog themselves.
var catalog []catalogEntry

func init() {
	catalog = []catalogEntry{
		{"Fork", allForks, (*builder).forkInfo},
		{"ForkData", allForks, (*builder).forkData},
		{"SigningData", allForks, (*builder).signingData},
		{"Checkpoint", allForks, (*builder).checkpoint},
		{"Validator", allForks, (*builder).validator},
		{"HistoricalBatch", allForks, (*builder).historicalBatch},
		{"AttestationData", allForks, (*builder).attestationData},
		{"Eth1Data", allForks, (*builder).eth1Data},
		{"BeaconBlockHeader", allForks, (*builder).beaconBlockHeader},
		{"SignedBeaconBlockHeader", allForks, (*builder).signedBeaconBlockHeader},
		{"ProposerSlashing", allForks, (*builder).proposerSlashing},
		{"IndexedAttestation", allForks, (*builder).indexedAttestation},
		{"AttesterSlashing", allForks, (*builder).attesterSlashing},
		{"Attestation", allForks, (*builder).attestation},
		{"DepositData", allForks, (*builder).depositData},
		{"Deposit", allForks, (*builder).deposit},
		{"VoluntaryExit", allForks, (*builder).voluntaryExit},
		{"SignedVoluntaryExit", allForks, (*builder).signedVoluntaryExit},
		{"SyncAggregate", fromAltair, (*builder).syncAggregate},
		{"Withdrawal", fromCapella, (*builder).withdrawal},
		{"BLSToExecutionChange", fromCapella, (*builder).blsToExecutionChange},
		{"SignedBLSToExecutionChange", fromCapella, (*builder).signedBLSToExecutionChange},
		{"ExecutionPayload", fromBellatrix, (*builder).executionPayload},
		{"ExecutionPayloadHeader", fromBellatrix, (*builder).executionPayloadHeader},
		{"DepositRequest", fromElectra, (*builder).depositRequest},
		{"WithdrawalRequest", fromElectra, (*builder).withdrawalRequest},
		{"ConsolidationRequest", fromElectra, (*builder).consolidationRequest},
		{"ExecutionRequests", fromElectra, (*builder).executionRequests},
		{"BeaconBlockBody", allForks, (*builder).beaconBlockBody},
		{"BeaconBlock", allForks, (*builder).beaconBlock},
		{"SignedBeaconBlock", allForks, (*builder).signedBeaconBlock},
		{"BlindedBeaconBlockBody", fromBellatrix, (*builder).blindedBeaconBlockBody},
		{"BlindedBeaconBlock", fromBellatrix, (*builder).blindedBeaconBlock},
		{"SignedBlindedBeaconBlock", fromBellatrix, (*builder).signedBlindedBeaconBlock},
		{"BeaconBlockContents", fromDeneb, (*builder).beaconBlockContents},
		{"SignedBeaconBlockContents", fromDeneb, (*builder).signedBeaconBlockContents},
	}
}

func (b *builder) forkInfo() *ssz.Type {
	return ssz.Container("Fork",
		ssz.NewField("previous_version", version),
		ssz.NewField("current_version", version),
		ssz.NewField("epoch", ssz.Uint64()),
	)
}

func (b *builder) forkData() *ssz.Type {
	return ssz.Container("ForkData",
		ssz.NewField("current_version", version),
		ssz.NewField("genesis_validators_root", root),
	)
}

func (b *builder) signingData() *ssz.Type {
	return ssz.Container("SigningData",
		ssz.NewField("object_root", root),
		ssz.NewField("domain", domain),
	)
}

func (b *builder) checkpoint() *ssz.Type {
	return ssz.Container("Checkpoint",
		ssz.NewField("epoch", ssz.Uint64()),
		ssz.NewField("root", root),
	)
}

func (b *builder) validator() *ssz.Type {
	return ssz.Container("Validator",
		ssz.NewField("pubkey", blsPubkey),
		ssz.NewField("withdrawal_credentials", ssz.ByteVector(32)),
		ssz.NewField("effective_balance", ssz.Uint64()),
		ssz.NewField("slashed", ssz.Bool()),
		ssz.NewField("activation_eligibility_epoch", ssz.Uint64()),
		ssz.NewField("activation_epoch", ssz.Uint64()),
		ssz.NewField("exit_epoch", ssz.Uint64()),
		ssz.NewField("withdrawable_epoch", ssz.Uint64()),
	)
}

func (b *builder) historicalBatch() *ssz.Type {
	roots := b.vector(root, b.length(p.SlotsPerHistoricalRoot))
	return ssz.Container("HistoricalBatch",
		ssz.NewField("block_roots", roots),
		ssz.NewField("state_roots", roots),
	)
}

func (b *builder) attestationData() *ssz.Type {
	return ssz.Container("AttestationData",
		ssz.NewField("slot", ssz.Uint64()),
		ssz.NewField("index", ssz.Uint64()),
		ssz.NewField("beacon_block_root", root),
		ssz.NewField("source", b.get("Checkpoint")),
		ssz.NewField("target", b.get("Checkpoint")),
	)
}

func (b *builder) eth1Data() *ssz.Type {
	return ssz.Container("Eth1Data",
		ssz.NewField("deposit_root", root),
		ssz.NewField("deposit_count", ssz.Uint64()),
		ssz.NewField("block_hash", hash32),
	)
}

func (b *builder) beaconBlockHeader() *ssz.Type {
	return ssz.Container("BeaconBlockHeader",
		ssz.NewField("slot", ssz.Uint64()),
		ssz.NewField("proposer_index", ssz.Uint64()),
		ssz.NewField("parent_root", root),
		ssz.NewField("state_root", root),
		ssz.NewField("body_root", root),
	)
}

func (b *builder) signedBeaconBlockHeader() *ssz.Type {
	return b.signed("SignedBeaconBlockHeader", "BeaconBlockHeader")
}

func (b *builder) proposerSlashing() *ssz.Type {
	return ssz.Container("ProposerSlashing",
		ssz.NewField("signed_header_1", b.get("SignedBeaconBlockHeader")),
		ssz.NewField("signed_header_2", b.get("SignedBeaconBlockHeader")),
	)
}

// attestingLimit is the maximum number of validators attesting in a single
// attestation. Electra aggregates across all the committees of a slot.
func (b *builder) attestingLimit() uint64 {
	limit := b.limit(p.MaxValidatorsPerCommittee)
	if b.fork >= ssz.ForkElectra {
		limit = b.product(limit, b.limit(p.MaxCommitteesPerSlot))
	}
	return limit
}

func (b *builder) indexedAttestation() *ssz.Type {
	return ssz.Container("IndexedAttestation",
		ssz.NewField("attesting_indices", ssz.List(ssz.Uint64(), b.attestingLimit())),
		ssz.NewField("data", b.get("AttestationData")),
		ssz.NewField("signature", blsSignature),
	)
}

func (b *builder) attesterSlashing() *ssz.Type {
	return ssz.Container("AttesterSlashing",
		ssz.NewField("attestation_1", b.get("IndexedAttestation")),
		ssz.NewField("attestation_2", b.get("IndexedAttestation")),
	)
}

func (b *builder) attestation() *ssz.Type {
	return ssz.ContainerOnFork("Attestation", b.fork,
		ssz.NewField("aggregation_bits", ssz.Bitlist(b.attestingLimit())),
		ssz.NewField("data", b.get("AttestationData")),
		ssz.NewField("signature", blsSignature),
		b.optional("committee_bits", fromElectra, func() *ssz.Type {
			return b.bitvector(b.length(p.MaxCommitteesPerSlot))
		}),
	)
}

func (b *builder) depositData() *ssz.Type {
	return ssz.Container("DepositData",
		ssz.NewField("pubkey", blsPubkey),
		ssz.NewField("withdrawal_credentials", ssz.ByteVector(32)),
		ssz.NewField("amount", ssz.Uint64()),
		ssz.NewField("signature", blsSignature),
	)
}

func (b *builder) deposit() *ssz.Type {
	return ssz.Container("Deposit",
		ssz.NewField("proof", b.vector(ssz.ByteVector(32), b.limit(p.DepositContractTreeDepth)+1)),
		ssz.NewField("data", b.get("DepositData")),
	)
}

func (b *builder) voluntaryExit() *ssz.Type {
	return ssz.Container("VoluntaryExit",
		ssz.NewField("epoch", ssz.Uint64()),
		ssz.NewField("validator_index", ssz.Uint64()),
	)
}

func (b *builder) signedVoluntaryExit() *ssz.Type {
	return b.signed("SignedVoluntaryExit", "VoluntaryExit")
}

func (b *builder) syncAggregate() *ssz.Type {
	return ssz.Container("SyncAggregate",
		ssz.NewField("sync_committee_bits", b.bitvector(b.length(p.SyncCommitteeSize))),
		ssz.NewField("sync_committee_signature", blsSignature),
	)
}

func (b *builder) withdrawal() *ssz.Type {
	return ssz.Container("Withdrawal",
		ssz.NewField("index", ssz.Uint64()),
		ssz.NewField("validator_index", ssz.Uint64()),
		ssz.NewField("address", executionAddress),
		ssz.NewField("amount", ssz.Uint64()),
	)
}

func (b *builder) blsToExecutionChange() *ssz.Type {
	return ssz.Container("BLSToExecutionChange",
		ssz.NewField("validator_index", ssz.Uint64()),
		ssz.NewField("from_bls_pubkey", blsPubkey),
		ssz.NewField("to_execution_address", executionAddress),
	)
}

func (b *builder) signedBLSToExecutionChange() *ssz.Type {
	return b.signed("SignedBLSToExecutionChange", "BLSToExecutionChange")
}

// executionFields is the monolith field set shared by the execution payload and
// its header, differing only in how transactions and withdrawals are carried.
func (b *builder) executionFields(header bool) []*ssz.Field {
	fields := []*ssz.Field{
		ssz.NewField("parent_hash", hash32),
		ssz.NewField("fee_recipient", executionAddress),
		ssz.NewField("state_root", ssz.ByteVector(32)),
		ssz.NewField("receipts_root", ssz.ByteVector(32)),
		ssz.NewField("logs_bloom", b.byteVector(b.length(p.BytesPerLogsBloom))),
		ssz.NewField("prev_randao", ssz.ByteVector(32)),
		ssz.NewField("block_number", ssz.Uint64()),
		ssz.NewField("gas_limit", ssz.Uint64()),
		ssz.NewField("gas_used", ssz.Uint64()),
		ssz.NewField("timestamp", ssz.Uint64()),
		ssz.NewField("extra_data", ssz.ByteList(b.limit(p.MaxExtraDataBytes))),
		ssz.NewField("base_fee_per_gas", ssz.Uint256()),
		ssz.NewField("block_hash", hash32),
	}
	if header {
		fields = append(fields,
			ssz.NewField("transactions_root", root),
			b.optional("withdrawals_root", fromCapella, func() *ssz.Type { return root }),
		)
	} else {
		fields = append(fields,
			ssz.NewField("transactions", ssz.List(
				ssz.ByteList(b.limit(p.MaxBytesPerTransaction)).Named("Transaction"),
				b.limit(p.MaxTransactionsPerPayload),
			)),
			b.optional("withdrawals", fromCapella, func() *ssz.Type {
				return ssz.List(b.get("Withdrawal"), b.limit(p.MaxWithdrawalsPerPayload))
			}),
		)
	}
	return append(fields,
		b.optional("blob_gas_used", fromDeneb, ssz.Uint64),
		b.optional("excess_blob_gas", fromDeneb, ssz.Uint64),
	)
}

func (b *builder) executionPayload() *ssz.Type {
	return ssz.ContainerOnFork("ExecutionPayload", b.fork, b.executionFields(false)...)
}

func (b *builder) executionPayloadHeader() *ssz.Type {
	return ssz.ContainerOnFork("ExecutionPayloadHeader", b.fork, b.executionFields(true)...)
}

func (b *builder) depositRequest() *ssz.Type {
	return ssz.Container("DepositRequest",
		ssz.NewField("pubkey", blsPubkey),
		ssz.NewField("withdrawal_credentials", ssz.ByteVector(32)),
		ssz.NewField("amount", ssz.Uint64()),
		ssz.NewField("signature", blsSignature),
		ssz.NewField("index", ssz.Uint64()),
	)
}

func (b *builder) withdrawalRequest() *ssz.Type {
	return ssz.Container("WithdrawalRequest",
		ssz.NewField("source_address", executionAddress),
		ssz.NewField("validator_pubkey", blsPubkey),
		ssz.NewField("amount", ssz.Uint64()),
	)
}

func (b *builder) consolidationRequest() *ssz.Type {
	return ssz.Container("ConsolidationRequest",
		ssz.NewField("source_address", executionAddress),
		ssz.NewField("source_pubkey", blsPubkey),
		ssz.NewField("target_pubkey", blsPubkey),
	)
}

func (b *builder) executionRequests() *ssz.Type {
	return ssz.Container("ExecutionRequests",
		ssz.NewField("deposits", ssz.List(b.get("DepositRequest"), b.limit(p.MaxDepositRequestsPerPayload))),
		ssz.NewField("withdrawals", ssz.List(b.get("WithdrawalRequest"), b.limit(p.MaxWithdrawalRequestsPerPayload))),
		ssz.NewField("consolidations", ssz.List(b.get("ConsolidationRequest"), b.limit(p.MaxConsolidationRequestsPerPayload))),
	)
}

// bodyFields is the monolith field set of the full and blinded block bodies.
func (b *builder) bodyFields(blinded bool) []*ssz.Field {
	attesterSlashings, attestations := p.MaxAttesterSlashings, p.MaxAttestations
	if b.fork >= ssz.ForkElectra {
		attesterSlashings, attestations = p.MaxAttesterSlashingsElectra, p.MaxAttestationsElectra
	}
	payload := b.optional("execution_payload", fromBellatrix, func() *ssz.Type {
		return b.get("ExecutionPayload")
	})
	if blinded {
		payload = b.optional("execution_payload_header", fromBellatrix, func() *ssz.Type {
			return b.get("ExecutionPayloadHeader")
		})
	}
	return []*ssz.Field{
		ssz.NewField("randao_reveal", blsSignature),
		ssz.NewField("eth1_data", b.get("Eth1Data")),
		ssz.NewField("graffiti", ssz.ByteVector(32)),
		ssz.NewField("proposer_slashings", ssz.List(b.get("ProposerSlashing"), b.limit(p.MaxProposerSlashings))),
		ssz.NewField("attester_slashings", ssz.List(b.get("AttesterSlashing"), b.limit(attesterSlashings))),
		ssz.NewField("attestations", ssz.List(b.get("Attestation"), b.limit(attestations))),
		ssz.NewField("deposits", ssz.List(b.get("Deposit"), b.limit(p.MaxDeposits))),
		ssz.NewField("voluntary_exits", ssz.List(b.get("SignedVoluntaryExit"), b.limit(p.MaxVoluntaryExits))),
		b.optional("sync_aggregate", fromAltair, func() *ssz.Type { return b.get("SyncAggregate") }),
		payload,
		b.optional("bls_to_execution_changes", fromCapella, func() *ssz.Type {
			return ssz.List(b.get("SignedBLSToExecutionChange"), b.limit(p.MaxBLSToExecutionChanges))
		}),
		b.optional("blob_kzg_commitments", fromDeneb, func() *ssz.Type {
			return ssz.List(kzgCommitment, b.limit(p.MaxBlobCommitmentsPerBlock))
		}),
		b.optional("execution_requests", fromElectra, func() *ssz.Type { return b.get("ExecutionRequests") }),
	}
}

func (b *builder) beaconBlockBody() *ssz.Type {
	return ssz.ContainerOnFork("BeaconBlockBody", b.fork, b.bodyFields(false)...)
}

func (b *builder) blindedBeaconBlockBody() *ssz.Type {
	return ssz.ContainerOnFork("BlindedBeaconBlockBody", b.fork, b.bodyFields(true)...)
}

// block creates a block container around a body.
func (b *builder) block(name string, body string) *ssz.Type {
	return ssz.Container(name,
		ssz.NewField("slot", ssz.Uint64()),
		ssz.NewField("proposer_index", ssz.Uint64()),
		ssz.NewField("parent_root", root),
		ssz.NewField("state_root", root),
		ssz.NewField("body", b.get(body)),
	)
}

// signed creates a container wrapping a message with its BLS signature.
func (b *builder) signed(name string, message string) *ssz.Type {
	return ssz.Container(name,
		ssz.NewField("message", b.get(message)),
		ssz.NewField("signature", blsSignature),
	)
}

func (b *builder) beaconBlock() *ssz.Type {
	return b.block("BeaconBlock", "BeaconBlockBody")
}

func (b *builder) signedBeaconBlock() *ssz.Type {
	return b.signed("SignedBeaconBlock", "BeaconBlock")
}

func (b *builder) blindedBeaconBlock() *ssz.Type {
	return b.block("BlindedBeaconBlock", "BlindedBeaconBlockBody")
}

func (b *builder) signedBlindedBeaconBlock() *ssz.Type {
	return b.signed("SignedBlindedBeaconBlock", "BlindedBeaconBlock")
}

// blobFields are the sidecar fields shipped alongside a block by the builder
// and validator APIs.
func (b *builder) blobFields() []*ssz.Field {
	blob := b.byteVector(b.product(b.length(p.BytesPerFieldElement), b.length(p.FieldElementsPerBlob))).Named("Blob")
	limit := b.limit(p.MaxBlobCommitmentsPerBlock)
	return []*ssz.Field{
		ssz.NewField("kzg_proofs", ssz.List(kzgProof, limit)),
		ssz.NewField("blobs", ssz.List(blob, limit)),
	}
}

func (b *builder) beaconBlockContents() *ssz.Type {
	fields := append([]*ssz.Field{ssz.NewField("block", b.get("BeaconBlock"))}, b.blobFields()...)
	return ssz.Container("BeaconBlockContents", fields...)
}

func (b *builder) signedBeaconBlockContents() *ssz.Type {
	fields := append([]*ssz.Field{ssz.NewField("signed_block", b.get("SignedBeaconBlock"))}, b.blobFields()...)
	return ssz.Container("SignedBeaconBlockContents", fields...)
}
