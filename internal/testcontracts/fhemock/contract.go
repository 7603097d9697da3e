/*
Package fhemock is a test double for the FHE co-processor / decryption oracle
boundary of the ScoreOption contract. Ciphertexts are serialized tagged
integers, so homomorphic addition is real integer addition and settlement
tests can check true sums. Decryption results are not pushed automatically:
tests drive the asynchronous callback leg explicitly through Deliver,
DeliverForged or Misdeliver.
*/
package fhemock

import (
	"github.com/cipherscore/cipherscore-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Envelope is a mock ciphertext: a tagged plaintext integer.
type Envelope struct {
	Magic string
	Value int
}

const (
	envelopeMagic = "fhemock.v1"
	counterKey    = "requestCounter"

	consumerPrefix = 'c'
	payloadPrefix  = 'p'

	// intFieldLen mirrors scoreoptionconst.IntFieldLen; copied to prevent
	// cross-contract imports that may fail due to internal `_deploy` calls.
	intFieldLen = 16
)

// Encrypt wraps a plaintext integer into a mock ciphertext.
func Encrypt(value int) []byte {
	return serializeEnvelope(value)
}

// Identity returns the encrypted zero. Deterministic, so repeated reads of an
// unset slot hash identically.
func Identity() []byte {
	return serializeEnvelope(0)
}

// Add homomorphically adds two mock ciphertexts.
func Add(a, b []byte) []byte {
	return serializeEnvelope(decrypt(a) + decrypt(b))
}

// RequestDecryption registers a decryption request for the given ciphertexts
// and returns its id. The calling contract is recorded as the consumer that
// will receive the result.
func RequestDecryption(cts [][]byte) int {
	ctx := storage.GetContext()

	id := common.GetInt(ctx, counterKey) + 1
	storage.Put(ctx, counterKey, id)

	storage.Put(ctx, requestKey(consumerPrefix, id), runtime.GetCallingScriptHash())
	common.SetSerialized(ctx, requestKey(payloadPrefix, id), cts)

	return id
}

// Deliver decrypts the recorded payload of the request and pushes the result
// to the consumer's onDecryptionResult together with a valid proof.
func Deliver(requestID int) {
	deliver(requestID, consumerOf(requestID), true)
}

// DeliverForged is Deliver with a garbage proof, for rejection tests.
func DeliverForged(requestID int) {
	deliver(requestID, consumerOf(requestID), false)
}

// Misdeliver pushes an arbitrary decryption result to the given consumer on
// behalf of the oracle identity, for negative tests of the consumer's
// callback bookkeeping.
func Misdeliver(consumer interop.Hash160, requestID int, cleartexts []byte, proof []byte) {
	contract.Call(consumer, "onDecryptionResult", contract.All,
		requestID, cleartexts, proof)
}

// VerifyProof checks that the proof authenticates the cleartexts for this
// exact request id.
func VerifyProof(requestID int, cleartexts []byte, proof []byte) bool {
	return common.BytesEqual(proof, proofFor(requestID, cleartexts))
}

func deliver(requestID int, consumer interop.Hash160, genuine bool) {
	ctx := storage.GetContext()

	data := storage.Get(ctx, requestKey(payloadPrefix, requestID))
	if data == nil {
		panic("unknown request")
	}
	cts := deserializePayload(data.([]byte))
	if len(cts) != 3 {
		panic("unexpected payload arity")
	}

	cleartexts := fixedWidth(decrypt(cts[0]))
	cleartexts = append(cleartexts, fixedWidth(decrypt(cts[1]))...)
	if decrypt(cts[2]) != 0 {
		cleartexts = append(cleartexts, 1)
	} else {
		cleartexts = append(cleartexts, 0)
	}

	proof := proofFor(requestID, cleartexts)
	if !genuine {
		proof = []byte("forged proof")
	}

	contract.Call(consumer, "onDecryptionResult", contract.All,
		requestID, cleartexts, proof)
}

func consumerOf(requestID int) interop.Hash160 {
	raw := storage.Get(storage.GetReadOnlyContext(), requestKey(consumerPrefix, requestID))
	if raw == nil {
		panic("unknown request")
	}
	return raw.(interop.Hash160)
}

func decrypt(ct []byte) int {
	env := deserializeEnvelope(ct)
	if env.Magic != envelopeMagic {
		panic("foreign ciphertext")
	}
	return env.Value
}

func proofFor(requestID int, cleartexts []byte) []byte {
	data := append([]byte("fhemock.proof"), convert.ToBytes(requestID)...)
	data = append(data, cleartexts...)
	return crypto.Sha256(data)
}

// fixedWidth pads the little-endian encoding of v with zero bytes up to the
// cleartext field width.
func fixedWidth(v int) []byte {
	b := convert.ToBytes(v)
	for len(b) < intFieldLen {
		b = append(b, 0)
	}
	if len(b) > intFieldLen {
		panic("value out of cleartext field range")
	}
	return b
}

func requestKey(prefix byte, requestID int) []byte {
	return append([]byte{prefix}, convert.ToBytes(requestID)...)
}

func serializeEnvelope(v int) []byte {
	return std.Serialize(Envelope{Magic: envelopeMagic, Value: v})
}

func deserializeEnvelope(ct []byte) Envelope {
	return std.Deserialize(ct).(Envelope)
}

func deserializePayload(data []byte) [][]byte {
	return std.Deserialize(data).([][]byte)
}
