// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CorruptedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProofError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised               = ExistsError("already initialised")
	ErrBalanceOverflow                  = ProcessError("balance overflow")
	ErrCannotDeleteDocument             = InvalidError("documents of this type cannot be deleted")
	ErrCannotUpdateDocument             = InvalidError("documents of this type are not mutable")
	ErrChainNotConfigured               = InvalidError("chain is not configured")
	ErrCommitNotFound                   = NotFoundError("commit not found")
	ErrConfigurationNotTable            = InvalidError("configuration did not return a table")
	ErrContestAlreadyResolved           = InvalidError("contest already resolved")
	ErrContestLocked                    = InvalidError("contested resource is locked")
	ErrContractAlreadyExists            = ExistsError("data contract already exists")
	ErrContractNotFound                 = NotFoundError("data contract not found")
	ErrContractReadOnly                 = InvalidError("data contract is read only")
	ErrCorruptedCodeExecution           = CorruptedError("corrupted code execution")
	ErrCorruptedContestedSubTreeExists  = CorruptedError("contested votes sub tree document already exists")
	ErrCorruptedContestedTreeExists     = CorruptedError("contested votes tree already exists")
	ErrCorruptedContractIndexes         = CorruptedError("reference already exists")
	ErrCorruptedDocumentAlreadyExists   = CorruptedError("item already exists")
	ErrCorruptedElementType             = CorruptedError("unexpected element type")
	ErrCorruptedReference               = CorruptedError("reference does not resolve")
	ErrCorruptedSerialization           = CorruptedError("corrupted serialization")
	ErrCorruptedSolvency                = CorruptedError("total credits do not balance")
	ErrDatabaseIsNotSet                 = ProcessError("database is not set")
	ErrDocumentAlreadyExists            = ExistsError("document already exists")
	ErrDocumentMissingInProof           = NotFoundError("document missing in proof")
	ErrDocumentNotFound                 = NotFoundError("document not found")
	ErrDocumentTypeNotFound             = NotFoundError("document type not found")
	ErrDuplicateIndexName               = InvalidError("duplicate index name")
	ErrDuplicateUniqueIndex             = ExistsError("duplicate unique index")
	ErrEmptyResponseMetadata            = ProofError("empty response metadata")
	ErrEmptyVersion                     = ProofError("empty version")
	ErrIdentifierLength                 = LengthError("identifier length is invalid")
	ErrIdentityAlreadyExists            = ExistsError("identity already exists")
	ErrIdentityNotFound                 = NotFoundError("identity not found")
	ErrIncompleteProof                  = ProofError("proof does not cover the requested key")
	ErrIndexNotFound                    = NotFoundError("index not found")
	ErrIndexValuesCount                 = LengthError("index values count does not match index")
	ErrInsufficientBalance              = InvalidError("insufficient balance")
	ErrInvalidBalanceKind               = InvalidError("invalid balance kind")
	ErrInvalidBlockHeight               = InvalidError("invalid block height")
	ErrInvalidChain                     = InvalidError("invalid chain")
	ErrInvalidContract                  = InvalidError("invalid data contract")
	ErrInvalidCount                     = InvalidError("invalid count")
	ErrInvalidElement                   = InvalidError("invalid element")
	ErrInvalidIndexDefinition           = InvalidError("invalid index definition")
	ErrInvalidLoggerChannel             = ProcessError("invalid logger channel")
	ErrInvalidPath                      = InvalidError("invalid path")
	ErrInvalidPropertyName              = InvalidError("invalid property name")
	ErrInvalidPropertyType              = InvalidError("invalid property type")
	ErrInvalidPropertyValue             = InvalidError("invalid property value")
	ErrInvalidProof                     = ProofError("invalid proof")
	ErrInvalidProtocolVersion           = InvalidError("invalid protocol version")
	ErrInvalidRevision                  = InvalidError("invalid document revision")
	ErrInvalidSignature                 = ProofError("invalid signature")
	ErrInvalidStateTransition           = InvalidError("invalid state transition")
	ErrInvalidStorageFlags              = InvalidError("invalid storage flags")
	ErrInvalidVarint                    = LengthError("invalid varint")
	ErrInvalidVoteChoice                = InvalidError("invalid vote choice")
	ErrMissingRequiredProperty          = InvalidError("missing required property")
	ErrNoProofInResult                  = ProofError("no proof in result")
	ErrNotAContestedIndex               = InvalidError("index is not contested")
	ErrNotFound                         = NotFoundError("not found")
	ErrParentLayerNotFound              = NotFoundError("parent layer not found")
	ErrPathNotFound                     = NotFoundError("path not found")
	ErrProofMetadataMismatch            = ProofError("proof metadata does not match")
	ErrQuorumKeyNotFound                = NotFoundError("quorum public key not found")
	ErrRateLimited                      = ProcessError("rate limited")
	ErrTooManyContestedIndexes          = InvalidError("more than one contested index")
	ErrTransactionAlreadyInUse          = ProcessError("transaction already in use")
	ErrTransactionFinished              = ProcessError("transaction already finished")
	ErrTruncatedData                    = LengthError("truncated data")
	ErrUnknownMethodVersion             = CorruptedError("unknown method version")
	ErrUnknownProtocolVersion           = NotFoundError("unknown protocol version")
	ErrVoteAlreadyCast                  = ExistsError("vote already cast for this choice")
	ErrVoteMissingInProof               = NotFoundError("vote missing in proof")
	ErrVotePollNotFound                 = NotFoundError("vote poll not found")
	ErrWrongContenderCount              = InvalidError("contest has no contenders")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptedError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e ProofError) Error() string     { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrCorrupted(e error) bool { var t CorruptedError; return as(e, &t) }
func IsErrExists(e error) bool    { var t ExistsError; return as(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return as(e, &t) }
func IsErrLength(e error) bool    { var t LengthError; return as(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return as(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return as(e, &t) }
func IsErrProof(e error) bool     { var t ProofError; return as(e, &t) }
