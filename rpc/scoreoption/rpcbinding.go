// Package scoreoption contains RPC wrappers for CipherScore ScoreOption contract.
package scoreoption

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ScoreoptionDecryptionRequest is a contract-specific scoreoption.DecryptionRequest type used by its methods.
type ScoreoptionDecryptionRequest struct {
	BatchID     *big.Int
	BindingHash util.Uint256
	Processed   bool
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner      util.Uint160
}

// ProviderAddedEvent represents "ProviderAdded" event emitted by the contract.
type ProviderAddedEvent struct {
	Provider util.Uint160
}

// ProviderRemovedEvent represents "ProviderRemoved" event emitted by the contract.
type ProviderRemovedEvent struct {
	Provider util.Uint160
}

// CooldownChangedEvent represents "CooldownChanged" event emitted by the contract.
type CooldownChangedEvent struct {
	CooldownSeconds *big.Int
}

// PausedEvent represents "Paused" event emitted by the contract.
type PausedEvent struct {
}

// UnpausedEvent represents "Unpaused" event emitted by the contract.
type UnpausedEvent struct {
}

// BatchOpenedEvent represents "BatchOpened" event emitted by the contract.
type BatchOpenedEvent struct {
	BatchId *big.Int
}

// BatchClosedEvent represents "BatchClosed" event emitted by the contract.
type BatchClosedEvent struct {
	BatchId *big.Int
}

// ScoreSubmittedEvent represents "ScoreSubmitted" event emitted by the contract.
type ScoreSubmittedEvent struct {
	Provider    util.Uint160
	BatchId     *big.Int
	ScoreDigest util.Uint256
}

// ParametersSetEvent represents "ParametersSet" event emitted by the contract.
type ParametersSetEvent struct {
	BatchId           *big.Int
	PriceDigest       util.Uint256
	ExercisableDigest util.Uint256
}

// DecryptionRequestedEvent represents "DecryptionRequested" event emitted by the contract.
type DecryptionRequestedEvent struct {
	RequestId   *big.Int
	BatchId     *big.Int
	BindingHash util.Uint256
}

// DecryptionCompletedEvent represents "DecryptionCompleted" event emitted by the contract.
type DecryptionCompletedEvent struct {
	RequestId      *big.Int
	BatchId        *big.Int
	AggregateScore *big.Int
	Price          *big.Int
	Exercisable    bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Accumulator invokes `accumulator` method of contract.
func (c *ContractReader) Accumulator(batchID *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "accumulator", batchID))
}

// BatchOpen invokes `batchOpen` method of contract.
func (c *ContractReader) BatchOpen() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "batchOpen"))
}

// CooldownSeconds invokes `cooldownSeconds` method of contract.
func (c *ContractReader) CooldownSeconds() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "cooldownSeconds"))
}

// CurrentBatchID invokes `currentBatchID` method of contract.
func (c *ContractReader) CurrentBatchID() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentBatchID"))
}

// DecryptionOracle invokes `decryptionOracle` method of contract.
func (c *ContractReader) DecryptionOracle() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "decryptionOracle"))
}

// ExercisableParameter invokes `exercisableParameter` method of contract.
func (c *ContractReader) ExercisableParameter(batchID *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "exercisableParameter", batchID))
}

// GetDecryptionRequest invokes `getDecryptionRequest` method of contract.
func (c *ContractReader) GetDecryptionRequest(requestID *big.Int) (*ScoreoptionDecryptionRequest, error) {
	return itemToScoreoptionDecryptionRequest(unwrap.Item(c.invoker.Call(c.hash, "getDecryptionRequest", requestID)))
}

// IsProvider invokes `isProvider` method of contract.
func (c *ContractReader) IsProvider(p util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isProvider", p))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Paused invokes `paused` method of contract.
func (c *ContractReader) Paused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "paused"))
}

// PriceParameter invokes `priceParameter` method of contract.
func (c *ContractReader) PriceParameter(batchID *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "priceParameter", batchID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddProvider creates a transaction invoking `addProvider` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProvider(p util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addProvider", p)
}

// AddProviderTransaction creates a transaction invoking `addProvider` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddProviderTransaction(p util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addProvider", p)
}

// AddProviderUnsigned creates a transaction invoking `addProvider` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddProviderUnsigned(p util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addProvider", nil, p)
}

// CloseBatch creates a transaction invoking `closeBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CloseBatch() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closeBatch")
}

// CloseBatchTransaction creates a transaction invoking `closeBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseBatchTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closeBatch")
}

// CloseBatchUnsigned creates a transaction invoking `closeBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseBatchUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closeBatch", nil)
}

// OnDecryptionResult creates a transaction invoking `onDecryptionResult` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnDecryptionResult(requestID *big.Int, cleartexts []byte, proof []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onDecryptionResult", requestID, cleartexts, proof)
}

// OnDecryptionResultTransaction creates a transaction invoking `onDecryptionResult` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnDecryptionResultTransaction(requestID *big.Int, cleartexts []byte, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onDecryptionResult", requestID, cleartexts, proof)
}

// OnDecryptionResultUnsigned creates a transaction invoking `onDecryptionResult` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnDecryptionResultUnsigned(requestID *big.Int, cleartexts []byte, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onDecryptionResult", nil, requestID, cleartexts, proof)
}

// OpenBatch creates a transaction invoking `openBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OpenBatch() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "openBatch")
}

// OpenBatchTransaction creates a transaction invoking `openBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OpenBatchTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "openBatch")
}

// OpenBatchUnsigned creates a transaction invoking `openBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OpenBatchUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "openBatch", nil)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// RemoveProvider creates a transaction invoking `removeProvider` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveProvider(p util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeProvider", p)
}

// RemoveProviderTransaction creates a transaction invoking `removeProvider` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveProviderTransaction(p util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeProvider", p)
}

// RemoveProviderUnsigned creates a transaction invoking `removeProvider` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveProviderUnsigned(p util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeProvider", nil, p)
}

// RequestDecryption creates a transaction invoking `requestDecryption` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RequestDecryption(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "requestDecryption", caller)
}

// RequestDecryptionTransaction creates a transaction invoking `requestDecryption` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RequestDecryptionTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "requestDecryption", caller)
}

// RequestDecryptionUnsigned creates a transaction invoking `requestDecryption` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RequestDecryptionUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "requestDecryption", nil, caller)
}

// SetCooldownSeconds creates a transaction invoking `setCooldownSeconds` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCooldownSeconds(v *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCooldownSeconds", v)
}

// SetCooldownSecondsTransaction creates a transaction invoking `setCooldownSeconds` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCooldownSecondsTransaction(v *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCooldownSeconds", v)
}

// SetCooldownSecondsUnsigned creates a transaction invoking `setCooldownSeconds` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCooldownSecondsUnsigned(v *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCooldownSeconds", nil, v)
}

// SetParameters creates a transaction invoking `setParameters` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetParameters(encPrice []byte, encExercisable []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setParameters", encPrice, encExercisable)
}

// SetParametersTransaction creates a transaction invoking `setParameters` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetParametersTransaction(encPrice []byte, encExercisable []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setParameters", encPrice, encExercisable)
}

// SetParametersUnsigned creates a transaction invoking `setParameters` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetParametersUnsigned(encPrice []byte, encExercisable []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setParameters", nil, encPrice, encExercisable)
}

// SubmitScore creates a transaction invoking `submitScore` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitScore(provider util.Uint160, encScore []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitScore", provider, encScore)
}

// SubmitScoreTransaction creates a transaction invoking `submitScore` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitScoreTransaction(provider util.Uint160, encScore []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitScore", provider, encScore)
}

// SubmitScoreUnsigned creates a transaction invoking `submitScore` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitScoreUnsigned(provider util.Uint160, encScore []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitScore", nil, provider, encScore)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause")
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause")
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToScoreoptionDecryptionRequest converts stack item into *ScoreoptionDecryptionRequest.
func itemToScoreoptionDecryptionRequest(item stackitem.Item, err error) (*ScoreoptionDecryptionRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ScoreoptionDecryptionRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ScoreoptionDecryptionRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ScoreoptionDecryptionRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.BatchID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchID: %w", err)
	}

	index++
	res.BindingHash, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field BindingHash: %w", err)
	}

	index++
	res.Processed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Processed: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.PreviousOwner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	index++
	e.NewOwner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}

// ProviderAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProviderAdded" name from the provided [result.ApplicationLog].
func ProviderAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProviderAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProviderAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProviderAdded" {
				continue
			}
			event := new(ProviderAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProviderAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProviderAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ProviderAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Provider, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Provider: %w", err)
	}

	return nil
}

// ProviderRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProviderRemoved" name from the provided [result.ApplicationLog].
func ProviderRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProviderRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProviderRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProviderRemoved" {
				continue
			}
			event := new(ProviderRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProviderRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProviderRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *ProviderRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Provider, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Provider: %w", err)
	}

	return nil
}

// CooldownChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "CooldownChanged" name from the provided [result.ApplicationLog].
func CooldownChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CooldownChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CooldownChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CooldownChanged" {
				continue
			}
			event := new(CooldownChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CooldownChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CooldownChangedEvent or
// returns an error if it's not possible to do to so.
func (e *CooldownChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.CooldownSeconds, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CooldownSeconds: %w", err)
	}

	return nil
}

// PausedEventsFromApplicationLog retrieves a set of all emitted events
// with "Paused" name from the provided [result.ApplicationLog].
func PausedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PausedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PausedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Paused" {
				continue
			}
			event := new(PausedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PausedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PausedEvent or
// returns an error if it's not possible to do to so.
func (e *PausedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 0 {
		return errors.New("wrong number of structure elements")
	}

	return nil
}

// UnpausedEventsFromApplicationLog retrieves a set of all emitted events
// with "Unpaused" name from the provided [result.ApplicationLog].
func UnpausedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnpausedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnpausedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unpaused" {
				continue
			}
			event := new(UnpausedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnpausedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnpausedEvent or
// returns an error if it's not possible to do to so.
func (e *UnpausedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 0 {
		return errors.New("wrong number of structure elements")
	}

	return nil
}

// BatchOpenedEventsFromApplicationLog retrieves a set of all emitted events
// with "BatchOpened" name from the provided [result.ApplicationLog].
func BatchOpenedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BatchOpenedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BatchOpenedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BatchOpened" {
				continue
			}
			event := new(BatchOpenedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BatchOpenedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BatchOpenedEvent or
// returns an error if it's not possible to do to so.
func (e *BatchOpenedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	return nil
}

// BatchClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "BatchClosed" name from the provided [result.ApplicationLog].
func BatchClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BatchClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BatchClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BatchClosed" {
				continue
			}
			event := new(BatchClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BatchClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BatchClosedEvent or
// returns an error if it's not possible to do to so.
func (e *BatchClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	return nil
}

// ScoreSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ScoreSubmitted" name from the provided [result.ApplicationLog].
func ScoreSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ScoreSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ScoreSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ScoreSubmitted" {
				continue
			}
			event := new(ScoreSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ScoreSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ScoreSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ScoreSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Provider, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Provider: %w", err)
	}

	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	index++
	e.ScoreDigest, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field ScoreDigest: %w", err)
	}

	return nil
}

// ParametersSetEventsFromApplicationLog retrieves a set of all emitted events
// with "ParametersSet" name from the provided [result.ApplicationLog].
func ParametersSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*ParametersSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ParametersSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ParametersSet" {
				continue
			}
			event := new(ParametersSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ParametersSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ParametersSetEvent or
// returns an error if it's not possible to do to so.
func (e *ParametersSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	index++
	e.PriceDigest, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PriceDigest: %w", err)
	}

	index++
	e.ExercisableDigest, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field ExercisableDigest: %w", err)
	}

	return nil
}

// DecryptionRequestedEventsFromApplicationLog retrieves a set of all emitted events
// with "DecryptionRequested" name from the provided [result.ApplicationLog].
func DecryptionRequestedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DecryptionRequestedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DecryptionRequestedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DecryptionRequested" {
				continue
			}
			event := new(DecryptionRequestedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DecryptionRequestedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DecryptionRequestedEvent or
// returns an error if it's not possible to do to so.
func (e *DecryptionRequestedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.RequestId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequestId: %w", err)
	}

	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	index++
	e.BindingHash, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field BindingHash: %w", err)
	}

	return nil
}

// DecryptionCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "DecryptionCompleted" name from the provided [result.ApplicationLog].
func DecryptionCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DecryptionCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DecryptionCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DecryptionCompleted" {
				continue
			}
			event := new(DecryptionCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DecryptionCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DecryptionCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *DecryptionCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.RequestId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequestId: %w", err)
	}

	index++
	e.BatchId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchId: %w", err)
	}

	index++
	e.AggregateScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AggregateScore: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	index++
	e.Exercisable, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Exercisable: %w", err)
	}

	return nil
}
