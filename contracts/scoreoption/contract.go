package scoreoption

import (
	"github.com/cipherscore/cipherscore-contract/common"
	cst "github.com/cipherscore/cipherscore-contract/contracts/scoreoption/scoreoptionconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// DecryptionRequest is the bookkeeping context of a single decryption
	// request issued to the oracle. A missing context deserializes to the
	// zero value, so BatchID 0 doubles as the "never issued" sentinel.
	DecryptionRequest struct {
		// Batch the request was issued against.
		BatchID int
		// Digest of the batch ciphertexts captured at request time.
		BindingHash interop.Hash256
		// Set once on the first valid callback, never reset.
		Processed bool
	}
)

const (
	ownerKey        = "owner"
	oracleKey       = "decryptionOracle"
	pausedKey       = "paused"
	cooldownKey     = "cooldownSeconds"
	batchCounterKey = "currentBatchID"
	batchOpenKey    = "batchOpen"

	providerPrefix    = 'p'
	accumulatorPrefix = 'a'
	pricePrefix       = 'q'
	exercisablePrefix = 'e'
	submitTimePrefix  = 's'
	requestTimePrefix = 'd'
	requestPrefix     = 'r'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	owner := args[0].(interop.Hash160)
	oracle := args[1].(interop.Hash160)
	cooldown := args[2].(int)

	if len(owner) != interop.Hash160Len || isNullPrincipal(owner) {
		panic("invalid owner")
	}
	if len(oracle) != interop.Hash160Len || isNullPrincipal(oracle) {
		panic("invalid decryption oracle")
	}
	if cooldown < 0 {
		panic("negative cooldown")
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, oracleKey, oracle)
	storage.Put(ctx, cooldownKey, cooldown)

	// The owner acts as a provider at genesis only; once removed, the flag
	// is never restored implicitly.
	storage.Put(ctx, providerKey(owner), true)

	runtime.Log("score option contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	checkOwnerWitness(storage.GetContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("score option contract updated")
}

// TransferOwnership replaces the contract owner. It can be invoked only by
// the current owner; a null principal is rejected.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	prev := ownerOf(ctx)
	checkOwnerWitness(ctx)

	if len(newOwner) != interop.Hash160Len || isNullPrincipal(newOwner) {
		panic("invalid new owner")
	}

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("OwnershipTransferred", prev, newOwner)
}

// AddProvider registers an account as a trusted score provider. Owner-only.
// Adding an already registered provider is a silent no-op.
//
// It produces ProviderAdded notification.
func AddProvider(p interop.Hash160) {
	ctx := storage.GetContext()
	checkOwnerWitness(ctx)

	if len(p) != interop.Hash160Len {
		panic("invalid provider")
	}

	key := providerKey(p)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, true)
	runtime.Notify("ProviderAdded", p)
}

// RemoveProvider drops an account from the provider registry. Owner-only.
// Removing an unregistered account is a silent no-op. Removing the owner is
// allowed and permanent: genesis owner-as-provider is not restored.
//
// It produces ProviderRemoved notification.
func RemoveProvider(p interop.Hash160) {
	ctx := storage.GetContext()
	checkOwnerWitness(ctx)

	if len(p) != interop.Hash160Len {
		panic("invalid provider")
	}

	key := providerKey(p)
	if storage.Get(ctx, key) == nil {
		return
	}

	storage.Delete(ctx, key)
	runtime.Notify("ProviderRemoved", p)
}

// SetCooldownSeconds replaces the global per-actor cooldown. Owner-only.
// Takes effect for all subsequent checks, already recorded timestamps are
// not rewritten.
//
// It produces CooldownChanged notification.
func SetCooldownSeconds(v int) {
	ctx := storage.GetContext()
	requireNotPaused(ctx)
	checkOwnerWitness(ctx)

	if v < 0 {
		panic("negative cooldown")
	}

	storage.Put(ctx, cooldownKey, v)
	runtime.Notify("CooldownChanged", v)
}

// Pause stops all batch and decryption mutations. Owner-only, fails if the
// contract is already paused.
//
// It produces Paused notification.
func Pause() {
	ctx := storage.GetContext()
	checkOwnerWitness(ctx)

	if isPaused(ctx) {
		panic(cst.ErrAlreadyPaused)
	}

	storage.Put(ctx, pausedKey, true)
	runtime.Notify("Paused")
}

// Unpause resumes operation. Owner-only and deliberately unconditional:
// it must stay reachable even if the pause flag bookkeeping is inconsistent.
//
// It produces Unpaused notification.
func Unpause() {
	ctx := storage.GetContext()
	checkOwnerWitness(ctx)

	storage.Delete(ctx, pausedKey)
	runtime.Notify("Unpaused")
}

// OpenBatch starts the next accumulation window and returns its id. Owner-only,
// requires the previous batch to be closed, so there is never more than one
// open batch.
//
// It produces BatchOpened notification.
func OpenBatch() int {
	ctx := storage.GetContext()
	requireNotPaused(ctx)
	checkOwnerWitness(ctx)

	if batchIsOpen(ctx) {
		panic(cst.ErrBatchStillOpen)
	}

	id := common.GetInt(ctx, batchCounterKey) + 1
	storage.Put(ctx, batchCounterKey, id)
	storage.Put(ctx, batchOpenKey, true)

	runtime.Notify("BatchOpened", id)
	return id
}

// CloseBatch closes the current batch for contributions. Owner-only. The
// batch's ciphertext slots remain readable, a batch with no contributions
// closes fine.
//
// It produces BatchClosed notification.
func CloseBatch() {
	ctx := storage.GetContext()
	requireNotPaused(ctx)
	checkOwnerWitness(ctx)

	id := common.GetInt(ctx, batchCounterKey)
	if id == 0 || !batchIsOpen(ctx) {
		panic(cst.ErrBatchNotOpen)
	}

	storage.Put(ctx, batchOpenKey, false)
	runtime.Notify("BatchClosed", id)
}

// SubmitScore folds an encrypted reputation score into the accumulator of the
// currently open batch. Provider-only, witnessed by the provider itself and
// throttled by the submission cooldown. The accumulator is lazily initialized
// with the co-processor's encrypted zero on first use and only ever grows by
// homomorphic addition.
//
// It produces ScoreSubmitted notification carrying the batch id and a content
// digest of the submitted ciphertext, never its plaintext.
func SubmitScore(provider interop.Hash160, encScore []byte) {
	ctx := storage.GetContext()
	requireNotPaused(ctx)

	if len(provider) != interop.Hash160Len {
		panic("invalid provider")
	}
	common.CheckWitness(provider)

	if storage.Get(ctx, providerKey(provider)) == nil {
		panic(cst.ErrNotProvider)
	}
	if len(encScore) == 0 {
		panic("empty ciphertext")
	}

	id := common.GetInt(ctx, batchCounterKey)
	if id == 0 || !batchIsOpen(ctx) {
		panic(cst.ErrBatchNotOpen)
	}

	// The cooldown timestamp is recorded last so that a submission refused
	// by any of the checks above does not burn the provider's slot.
	touchCooldown(ctx, submitTimePrefix, provider)

	oracle := oracleOf(ctx)
	key := batchKey(accumulatorPrefix, id)

	var acc []byte
	if raw := storage.Get(ctx, key); raw != nil {
		acc = raw.([]byte)
	} else {
		acc = contract.Call(oracle, "identity", contract.ReadOnly).([]byte)
	}

	acc = contract.Call(oracle, "add", contract.ReadOnly, acc, encScore).([]byte)
	storage.Put(ctx, key, acc)

	runtime.Notify("ScoreSubmitted", provider, id, crypto.Sha256(encScore))
}

// SetParameters attaches encrypted derivative parameters (strike price and
// exercisability flag) to the currently open batch. Owner-only. Re-setting
// overwrites the previous values while the batch stays open.
//
// It produces ParametersSet notification.
func SetParameters(encPrice, encExercisable []byte) {
	ctx := storage.GetContext()
	requireNotPaused(ctx)
	checkOwnerWitness(ctx)

	if len(encPrice) == 0 || len(encExercisable) == 0 {
		panic("empty ciphertext")
	}

	id := common.GetInt(ctx, batchCounterKey)
	if id == 0 || !batchIsOpen(ctx) {
		panic(cst.ErrBatchNotOpen)
	}

	storage.Put(ctx, batchKey(pricePrefix, id), encPrice)
	storage.Put(ctx, batchKey(exercisablePrefix, id), encExercisable)

	runtime.Notify("ParametersSet", id, crypto.Sha256(encPrice), crypto.Sha256(encExercisable))
}

// RequestDecryption snapshots the current batch's three ciphertext slots,
// binds them into a content hash and hands them to the decryption oracle.
// Any witnessed caller may request, throttled by the decryption cooldown.
// Requesting against a still-open batch is allowed: if the batch mutates
// before the callback lands, the binding hash diverges and the stale result
// is refused in OnDecryptionResult.
//
// It produces DecryptionRequested notification and returns the oracle-assigned
// request id.
func RequestDecryption(caller interop.Hash160) int {
	ctx := storage.GetContext()
	requireNotPaused(ctx)

	if len(caller) != interop.Hash160Len {
		panic("invalid caller")
	}
	common.CheckWitness(caller)

	id := common.GetInt(ctx, batchCounterKey)
	if id == 0 {
		panic(cst.ErrNoBatch)
	}

	touchCooldown(ctx, requestTimePrefix, caller)

	acc, price, flag := ciphertextSlots(ctx, id)
	h := bindingHash(acc, price, flag)

	reqID := contract.Call(oracleOf(ctx), "requestDecryption", contract.All,
		[][]byte{acc, price, flag}).(int)

	common.SetSerialized(ctx, requestKey(reqID), DecryptionRequest{
		BatchID:     id,
		BindingHash: h,
		Processed:   false,
	})

	runtime.Notify("DecryptionRequested", reqID, id, h)
	return reqID
}

// OnDecryptionResult is the oracle callback delivering decrypted values for a
// previously issued request. Callable only by the decryption oracle contract.
// The callback is accepted exactly once per request and only if the batch
// ciphertexts are still byte-identical to the snapshot hashed at request time,
// which refuses any settlement of a stale snapshot.
//
// Cleartexts use fixed-width positional layout: 16-byte little-endian
// aggregate score, 16-byte little-endian price, one exercisability byte.
//
// It produces DecryptionCompleted notification with the plaintext triple.
func OnDecryptionResult(requestID int, cleartexts []byte, proof []byte) {
	ctx := storage.GetContext()
	requireNotPaused(ctx)

	oracle := oracleOf(ctx)
	if !runtime.GetCallingScriptHash().Equals(oracle) {
		panic(cst.ErrNotOracle)
	}

	req := getRequest(ctx, requestID)
	if req.Processed {
		panic(cst.ErrAlreadyProcessed)
	}
	if req.BatchID == 0 {
		panic(cst.ErrUnknownRequest)
	}

	acc, price, flag := ciphertextSlots(ctx, req.BatchID)
	if !common.BytesEqual(bindingHash(acc, price, flag), req.BindingHash) {
		panic(cst.ErrStateMismatch)
	}

	ok := contract.Call(oracle, "verifyProof", contract.ReadOnly,
		requestID, cleartexts, proof).(bool)
	if !ok {
		panic(cst.ErrProofVerification)
	}

	if len(cleartexts) != cst.CleartextsLen {
		panic(cst.ErrCleartextFormat)
	}
	score := convert.ToInteger(cleartexts[:cst.IntFieldLen])
	priceValue := convert.ToInteger(cleartexts[cst.IntFieldLen : 2*cst.IntFieldLen])
	exercisable := cleartexts[cst.CleartextsLen-1] != 0

	req.Processed = true
	common.SetSerialized(ctx, requestKey(requestID), req)

	runtime.Notify("DecryptionCompleted", requestID, req.BatchID, score, priceValue, exercisable)
}

// Owner returns the current contract owner.
func Owner() interop.Hash160 {
	return ownerOf(storage.GetReadOnlyContext())
}

// IsProvider returns whether the account is a registered score provider.
func IsProvider(p interop.Hash160) bool {
	return storage.Get(storage.GetReadOnlyContext(), providerKey(p)) != nil
}

// Paused returns whether the contract is paused.
func Paused() bool {
	return isPaused(storage.GetReadOnlyContext())
}

// CooldownSeconds returns the global per-actor cooldown.
func CooldownSeconds() int {
	return common.GetInt(storage.GetReadOnlyContext(), cooldownKey)
}

// CurrentBatchID returns the id of the latest batch, 0 if none was opened yet.
func CurrentBatchID() int {
	return common.GetInt(storage.GetReadOnlyContext(), batchCounterKey)
}

// BatchOpen returns whether the current batch accepts contributions.
func BatchOpen() bool {
	return batchIsOpen(storage.GetReadOnlyContext())
}

// Accumulator returns the encrypted score accumulator of the given batch or
// nil if no contribution was made to it.
func Accumulator(batchID int) []byte {
	return batchSlot(accumulatorPrefix, batchID)
}

// PriceParameter returns the encrypted price of the given batch or nil.
func PriceParameter(batchID int) []byte {
	return batchSlot(pricePrefix, batchID)
}

// ExercisableParameter returns the encrypted exercisability flag of the given
// batch or nil.
func ExercisableParameter(batchID int) []byte {
	return batchSlot(exercisablePrefix, batchID)
}

// DecryptionOracle returns the script hash of the decryption oracle contract.
func DecryptionOracle() interop.Hash160 {
	return oracleOf(storage.GetReadOnlyContext())
}

// GetDecryptionRequest returns the bookkeeping context of a decryption
// request. For an unknown id the zero context (BatchID 0) is returned.
func GetDecryptionRequest(requestID int) DecryptionRequest {
	return getRequest(storage.GetReadOnlyContext(), requestID)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func ownerOf(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func oracleOf(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, oracleKey).(interop.Hash160)
}

func checkOwnerWitness(ctx storage.Context) {
	if !runtime.CheckWitness(ownerOf(ctx)) {
		panic(cst.ErrNotOwner)
	}
}

func isPaused(ctx storage.Context) bool {
	return storage.Get(ctx, pausedKey) != nil
}

func requireNotPaused(ctx storage.Context) {
	if isPaused(ctx) {
		panic(cst.ErrPaused)
	}
}

func batchIsOpen(ctx storage.Context) bool {
	raw := storage.Get(ctx, batchOpenKey)
	return raw != nil && raw.(bool)
}

// touchCooldown enforces and records one cooldown class for the actor. Both
// classes (submission, decryption request) share cooldownSeconds but are
// tracked under independent prefixes.
func touchCooldown(ctx storage.Context, prefix byte, actor interop.Hash160) {
	key := append([]byte{prefix}, actor...)
	now := runtime.GetTime()

	if raw := storage.Get(ctx, key); raw != nil {
		last := raw.(int)
		if now < last+common.GetInt(ctx, cooldownKey)*1000 {
			panic(cst.ErrCooldownActive)
		}
	}

	storage.Put(ctx, key, now)
}

// ciphertextSlots reads the three ciphertext slots of a batch, substituting
// the co-processor's encrypted zero for slots that were never written. The
// substitution is deterministic, so request-time and callback-time reads of
// an untouched slot hash identically.
func ciphertextSlots(ctx storage.Context, batchID int) ([]byte, []byte, []byte) {
	oracle := oracleOf(ctx)

	return slotOrZero(ctx, oracle, accumulatorPrefix, batchID),
		slotOrZero(ctx, oracle, pricePrefix, batchID),
		slotOrZero(ctx, oracle, exercisablePrefix, batchID)
}

func slotOrZero(ctx storage.Context, oracle interop.Hash160, prefix byte, batchID int) []byte {
	if raw := storage.Get(ctx, batchKey(prefix, batchID)); raw != nil {
		return raw.([]byte)
	}
	return contract.Call(oracle, "identity", contract.ReadOnly).([]byte)
}

// bindingHash digests the exact ciphertext snapshot together with this
// deployment's script hash, so a callback can be bound to both the data and
// the contract instance that requested it.
func bindingHash(acc, price, flag []byte) interop.Hash256 {
	return crypto.Sha256(std.Serialize([]interface{}{
		acc, price, flag, runtime.GetExecutingScriptHash(),
	}))
}

func getRequest(ctx storage.Context, requestID int) DecryptionRequest {
	data := storage.Get(ctx, requestKey(requestID))
	if data != nil {
		return std.Deserialize(data.([]byte)).(DecryptionRequest)
	}

	return DecryptionRequest{}
}

func providerKey(p interop.Hash160) []byte {
	return append([]byte{providerPrefix}, p...)
}

func batchKey(prefix byte, batchID int) []byte {
	return append([]byte{prefix}, convert.ToBytes(batchID)...)
}

func requestKey(requestID int) []byte {
	return append([]byte{requestPrefix}, convert.ToBytes(requestID)...)
}

func batchSlot(prefix byte, batchID int) []byte {
	raw := storage.Get(storage.GetReadOnlyContext(), batchKey(prefix, batchID))
	if raw == nil {
		return nil
	}
	return raw.([]byte)
}

func isNullPrincipal(h interop.Hash160) bool {
	for i := 0; i < len(h); i++ {
		if h[i] != 0 {
			return false
		}
	}
	return true
}
