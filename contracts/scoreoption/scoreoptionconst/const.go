package scoreoptionconst

const (
	// ErrNotOwner is returned when a method restricted to the contract owner
	// is invoked without the owner's witness.
	ErrNotOwner = "not witnessed by contract owner"
	// ErrNotProvider is returned on score submission from an account missing
	// in the provider registry.
	ErrNotProvider = "caller is not a registered provider"

	// ErrPaused is returned on any state-mutating call while the contract is paused.
	ErrPaused = "contract is paused"
	// ErrAlreadyPaused is returned on an attempt to pause a paused contract.
	ErrAlreadyPaused = "contract is already paused"

	// ErrCooldownActive is returned when an actor repeats an action before
	// its per-actor cooldown has elapsed.
	ErrCooldownActive = "cooldown period has not elapsed"

	// ErrBatchNotOpen is returned on mutation of a closed or missing batch.
	ErrBatchNotOpen = "current batch is not open"
	// ErrBatchStillOpen is returned on an attempt to open a new batch while
	// the previous one has not been closed.
	ErrBatchStillOpen = "previous batch is still open"
	// ErrNoBatch is returned on a decryption request before the first batch
	// has ever been opened.
	ErrNoBatch = "no batch has been opened"

	// ErrNotOracle is returned when the decryption result callback is invoked
	// by anything but the decryption oracle contract.
	ErrNotOracle = "caller is not the decryption oracle"
	// ErrUnknownRequest is returned on a callback for a request this contract
	// never issued.
	ErrUnknownRequest = "unknown decryption request"
	// ErrAlreadyProcessed is returned on a repeated callback for a request
	// that has already been settled.
	ErrAlreadyProcessed = "decryption request already processed"
	// ErrStateMismatch is returned when batch ciphertexts changed between the
	// decryption request and its callback.
	ErrStateMismatch = "ciphertext state changed since decryption request"
	// ErrProofVerification is returned when the oracle's authenticity proof
	// does not match the delivered cleartexts.
	ErrProofVerification = "decryption proof verification failed"
	// ErrCleartextFormat is returned when delivered cleartexts do not follow
	// the fixed-width layout.
	ErrCleartextFormat = "invalid cleartexts layout"

	// CleartextsLen is the exact byte length of the cleartexts blob delivered
	// by the oracle: two IntFieldLen little-endian integers followed by one
	// exercisability byte.
	CleartextsLen = 2*IntFieldLen + 1
	// IntFieldLen is the width of a single integer field within cleartexts.
	IntFieldLen = 16
)
