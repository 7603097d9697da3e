/*
Package scoreoption implements the CipherScore ScoreOption contract.

Trusted providers fold individually encrypted reputation scores into a shared
homomorphic accumulator for the currently open batch. The owner attaches
encrypted derivative parameters (strike price, exercisability flag) to the
same batch. Settlement goes through an asynchronous decryption protocol: any
witnessed caller requests decryption of the batch's three ciphertext slots,
the contract binds the request to a digest of the exact snapshot handed out,
and the decryption oracle later calls back with the cleartexts and an
authenticity proof. A callback is accepted exactly once per request and only
while the snapshot digest still matches the stored batch state, so a
settlement can never be based on ciphertexts that mutated while the request
was in flight.

The encryption itself is opaque to this contract: homomorphic addition, the
encrypted zero and decryption are all delegated to a co-processor contract
whose hash is fixed at deployment.

# Contract notifications

OwnershipTransferred, ProviderAdded, ProviderRemoved, CooldownChanged,
Paused, Unpaused, BatchOpened, BatchClosed, ScoreSubmitted, ParametersSet,
DecryptionRequested and DecryptionCompleted, see config.yml for the exact
signatures. No notification carries a plaintext score before settlement.
*/
package scoreoption

/*
Contract storage model.

Current conventions:
 <batch>: little-endian integer batch id, ids start from 1
 <account>: 20-byte script hash of a principal
 <request>: little-endian integer oracle-assigned request id

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   script hash of the contract owner
 - 'decryptionOracle' -> interop.Hash160
   script hash of the FHE co-processor / decryption oracle contract
 - 'paused' -> bool
   present only while the contract is paused
 - 'cooldownSeconds' -> int
   global per-actor cooldown for submissions and decryption requests
 - 'currentBatchID' -> int
   id of the latest batch, absent until the first batch is opened
 - 'batchOpen' -> bool
   whether the latest batch accepts contributions
 - 'p<account>' -> bool
   provider registry, presence of the key is the flag
 - 'a<batch>' -> []byte
   encrypted score accumulator, written on first contribution
 - 'q<batch>' -> []byte
   encrypted strike price
 - 'e<batch>' -> []byte
   encrypted exercisability flag
 - 's<account>' -> int
   block time (ms) of the account's last accepted submission
 - 'd<account>' -> int
   block time (ms) of the account's last accepted decryption request
 - 'r<request>' -> std.Serialize(DecryptionRequest)
   decryption request bookkeeping: target batch, binding hash, processed flag

# Settlement
Binding hash is SHA-256 over the serialized [accumulator, price, flag,
executing script hash] tuple. Unset slots are substituted with the
co-processor's deterministic encrypted zero on both the request and the
callback path.
*/
