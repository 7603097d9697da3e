package tests

import (
	"crypto/sha256"
	"path"
	"testing"

	"github.com/cipherscore/cipherscore-contract/common"
	cst "github.com/cipherscore/cipherscore-contract/contracts/scoreoption/scoreoptionconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestScoreOption_Deploy(t *testing.T) {
	e := newScoreOptionExecutor(t, 60)
	c := e.contract

	c.Invoke(t, stackitem.NewBuffer(e.CommitteeHash.BytesBE()), "owner")
	c.Invoke(t, stackitem.NewBuffer(e.mockHash.BytesBE()), "decryptionOracle")
	c.Invoke(t, true, "isProvider", e.CommitteeHash)
	c.Invoke(t, false, "paused")
	c.Invoke(t, 60, "cooldownSeconds")
	c.Invoke(t, 0, "currentBatchID")
	c.Invoke(t, false, "batchOpen")
	c.Invoke(t, common.Version, "version")
}

func TestScoreOption_DeployValidation(t *testing.T) {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	ctrMock := neotest.CompileFile(t, e.CommitteeHash, fheMockPath,
		path.Join(fheMockPath, "config.yml"))
	e.DeployContract(t, ctrMock, nil)

	ctr := neotest.CompileFile(t, e.CommitteeHash, scoreOptionPath,
		path.Join(scoreOptionPath, "config.yml"))

	e.DeployContractCheckFAULT(t, ctr,
		[]any{util.Uint160{}, ctrMock.Hash, int64(60)}, "invalid owner")
	e.DeployContractCheckFAULT(t, ctr,
		[]any{e.CommitteeHash, util.Uint160{}, int64(60)}, "invalid decryption oracle")
	e.DeployContractCheckFAULT(t, ctr,
		[]any{e.CommitteeHash, ctrMock.Hash, int64(-1)}, "negative cooldown")

	e.DeployContract(t, ctr, []any{e.CommitteeHash, ctrMock.Hash, int64(60)})
}

func TestScoreOption_TransferOwnership(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, cst.ErrNotOwner, "transferOwnership", acc.ScriptHash())
	c.InvokeFail(t, "invalid new owner", "transferOwnership", util.Uint160{})

	h := c.Invoke(t, stackitem.Null{}, "transferOwnership", acc.ScriptHash())
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "OwnershipTransferred")
	require.Equal(t, stackitem.Make(e.CommitteeHash.BytesBE()), items[0])
	require.Equal(t, stackitem.Make(acc.ScriptHash().BytesBE()), items[1])

	c.Invoke(t, stackitem.NewBuffer(acc.ScriptHash().BytesBE()), "owner")

	// The previous owner lost all owner-gated operations, the new owner
	// gained them. Ownership does not imply provider registration.
	c.InvokeFail(t, cst.ErrNotOwner, "addProvider", acc.ScriptHash())
	cAcc.Invoke(t, stackitem.Null{}, "addProvider", acc.ScriptHash())
	cAcc.Invoke(t, false, "isProvider", util.Uint160{1, 2, 3})
}

func TestScoreOption_Providers(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, cst.ErrNotOwner, "addProvider", acc.ScriptHash())
	cAcc.InvokeFail(t, cst.ErrNotOwner, "removeProvider", acc.ScriptHash())

	h := c.Invoke(t, stackitem.Null{}, "addProvider", acc.ScriptHash())
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "ProviderAdded")
	require.Equal(t, stackitem.Make(acc.ScriptHash().BytesBE()), items[0])
	c.Invoke(t, true, "isProvider", acc.ScriptHash())

	// Re-adding and removing an unknown account are silent no-ops.
	h = c.Invoke(t, stackitem.Null{}, "addProvider", acc.ScriptHash())
	require.Empty(t, contractEvents(e.CheckHalt(t, h), e.hash, "ProviderAdded"))

	h = c.Invoke(t, stackitem.Null{}, "removeProvider", util.Uint160{1, 2, 3})
	require.Empty(t, contractEvents(e.CheckHalt(t, h), e.hash, "ProviderRemoved"))

	h = c.Invoke(t, stackitem.Null{}, "removeProvider", acc.ScriptHash())
	items = singleEventItems(t, e.CheckHalt(t, h), e.hash, "ProviderRemoved")
	require.Equal(t, stackitem.Make(acc.ScriptHash().BytesBE()), items[0])
	c.Invoke(t, false, "isProvider", acc.ScriptHash())
}

func TestScoreOption_OwnerProviderNotRestored(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	c.Invoke(t, true, "isProvider", e.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "removeProvider", e.CommitteeHash)
	c.Invoke(t, false, "isProvider", e.CommitteeHash)

	// The genesis owner-as-provider registration is not recreated by any
	// later administrative action.
	c.Invoke(t, 1, "openBatch")
	c.InvokeFail(t, cst.ErrNotProvider, "submitScore", e.CommitteeHash, e.encrypt(t, 1))

	c.Invoke(t, stackitem.Null{}, "addProvider", e.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "submitScore", e.CommitteeHash, e.encrypt(t, 1))
}

func TestScoreOption_Pause(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	acc, cProv := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")

	cProv.InvokeFail(t, cst.ErrNotOwner, "pause")
	cProv.InvokeFail(t, cst.ErrNotOwner, "unpause")

	h := c.Invoke(t, stackitem.Null{}, "pause")
	singleEventItems(t, e.CheckHalt(t, h), e.hash, "Paused")
	c.Invoke(t, true, "paused")
	c.InvokeFail(t, cst.ErrAlreadyPaused, "pause")

	// All mutating operations fail fast while paused, including the ones
	// that would fail for other reasons too.
	ct := e.encrypt(t, 700)
	cProv.InvokeFail(t, cst.ErrPaused, "submitScore", acc.ScriptHash(), ct)
	c.InvokeFail(t, cst.ErrPaused, "setParameters", ct, ct)
	cProv.InvokeFail(t, cst.ErrPaused, "requestDecryption", acc.ScriptHash())
	c.InvokeFail(t, cst.ErrPaused, "openBatch")
	c.InvokeFail(t, cst.ErrPaused, "closeBatch")
	c.InvokeFail(t, cst.ErrPaused, "setCooldownSeconds", 5)

	// Reads are unaffected.
	c.Invoke(t, 1, "currentBatchID")
	c.Invoke(t, true, "batchOpen")

	h = c.Invoke(t, stackitem.Null{}, "unpause")
	singleEventItems(t, e.CheckHalt(t, h), e.hash, "Unpaused")
	c.Invoke(t, false, "paused")

	// Unpause of a running contract is allowed and still notifies.
	h = c.Invoke(t, stackitem.Null{}, "unpause")
	singleEventItems(t, e.CheckHalt(t, h), e.hash, "Unpaused")

	cProv.Invoke(t, stackitem.Null{}, "submitScore", acc.ScriptHash(), ct)
}

func TestScoreOption_BatchLifecycle(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	acc, cProv := e.newProvider(t)
	ct := e.encrypt(t, 5)

	// Nothing works before the first batch.
	c.InvokeFail(t, cst.ErrNoBatch, "requestDecryption", e.CommitteeHash)
	cProv.InvokeFail(t, cst.ErrBatchNotOpen, "submitScore", acc.ScriptHash(), ct)
	c.InvokeFail(t, cst.ErrBatchNotOpen, "setParameters", ct, ct)
	c.InvokeFail(t, cst.ErrBatchNotOpen, "closeBatch")

	cProv.InvokeFail(t, cst.ErrNotOwner, "openBatch")

	h := c.Invoke(t, 1, "openBatch")
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "BatchOpened")
	require.Equal(t, stackitem.Make(1), items[0])
	c.Invoke(t, 1, "currentBatchID")
	c.Invoke(t, true, "batchOpen")

	c.InvokeFail(t, cst.ErrBatchStillOpen, "openBatch")
	cProv.InvokeFail(t, cst.ErrNotOwner, "closeBatch")

	// A batch with no contributions closes fine.
	h = c.Invoke(t, stackitem.Null{}, "closeBatch")
	items = singleEventItems(t, e.CheckHalt(t, h), e.hash, "BatchClosed")
	require.Equal(t, stackitem.Make(1), items[0])
	c.Invoke(t, false, "batchOpen")
	c.InvokeFail(t, cst.ErrBatchNotOpen, "closeBatch")

	s, err := c.TestInvoke(t, "accumulator", 1)
	require.NoError(t, err)
	require.Equal(t, stackitem.Null{}, s.Top().Item())

	// A closed batch accepts no contributions.
	cProv.InvokeFail(t, cst.ErrBatchNotOpen, "submitScore", acc.ScriptHash(), ct)
	c.InvokeFail(t, cst.ErrBatchNotOpen, "setParameters", ct, ct)

	c.Invoke(t, 2, "openBatch")
	c.Invoke(t, 2, "currentBatchID")
}

func TestScoreOption_SubmitScore(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	accA, cA := e.newProvider(t)
	accB, cB := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")

	outsider := c.NewAccount(t)
	cOut := c.WithSigners(outsider)
	cOut.InvokeFail(t, cst.ErrNotProvider, "submitScore", outsider.ScriptHash(), e.encrypt(t, 5))

	// A provider cannot submit on behalf of another provider.
	cB.InvokeFail(t, common.ErrWitnessFailed, "submitScore", accA.ScriptHash(), e.encrypt(t, 5))

	cA.InvokeFail(t, "empty ciphertext", "submitScore", accA.ScriptHash(), []byte{})

	ct := e.encrypt(t, 700)
	digest := sha256.Sum256(ct)

	h := cA.Invoke(t, stackitem.Null{}, "submitScore", accA.ScriptHash(), ct)
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "ScoreSubmitted")
	require.Equal(t, stackitem.Make(accA.ScriptHash().BytesBE()), items[0])
	require.Equal(t, stackitem.Make(1), items[1])
	require.Equal(t, stackitem.Make(digest[:]), items[2])

	cB.Invoke(t, stackitem.Null{}, "submitScore", accB.ScriptHash(), e.encrypt(t, 50))

	// The accumulator holds the homomorphic sum of both contributions.
	s, err := c.TestInvoke(t, "accumulator", 1)
	require.NoError(t, err)
	acc, err := s.Top().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, e.encrypt(t, 750), acc)
}

func TestScoreOption_SetParameters(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	_, cProv := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")

	price := e.encrypt(t, 12_500)
	flag := e.encrypt(t, 1)
	cProv.InvokeFail(t, cst.ErrNotOwner, "setParameters", price, flag)
	c.InvokeFail(t, "empty ciphertext", "setParameters", []byte{}, flag)
	c.InvokeFail(t, "empty ciphertext", "setParameters", price, []byte{})

	priceDigest := sha256.Sum256(price)
	flagDigest := sha256.Sum256(flag)

	h := c.Invoke(t, stackitem.Null{}, "setParameters", price, flag)
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "ParametersSet")
	require.Equal(t, stackitem.Make(1), items[0])
	require.Equal(t, stackitem.Make(priceDigest[:]), items[1])
	require.Equal(t, stackitem.Make(flagDigest[:]), items[2])

	s, err := c.TestInvoke(t, "priceParameter", 1)
	require.NoError(t, err)
	got, err := s.Top().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, price, got)

	// Re-setting while the batch is open overwrites.
	price2 := e.encrypt(t, 9_000)
	c.Invoke(t, stackitem.Null{}, "setParameters", price2, flag)

	s, err = c.TestInvoke(t, "priceParameter", 1)
	require.NoError(t, err)
	got, err = s.Top().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, price2, got)
}

func TestScoreOption_Cooldown(t *testing.T) {
	e := newScoreOptionExecutor(t, 60)
	c := e.contract

	acc, cProv := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")

	// Two submissions in one block share a timestamp, the second one hits
	// the cooldown.
	tx1 := cProv.PrepareInvoke(t, "submitScore", acc.ScriptHash(), e.encrypt(t, 1))
	tx2 := cProv.PrepareInvoke(t, "submitScore", acc.ScriptHash(), e.encrypt(t, 2))
	e.AddNewBlock(t, tx1, tx2)
	e.CheckHalt(t, tx1.Hash(), stackitem.Null{})
	e.CheckFault(t, tx2.Hash(), cst.ErrCooldownActive)

	// Still within the window one block later.
	cProv.InvokeFail(t, cst.ErrCooldownActive, "submitScore", acc.ScriptHash(), e.encrypt(t, 2))

	// Submission and decryption request cooldowns are independent.
	cProv.Invoke(t, 1, "requestDecryption", acc.ScriptHash())
	cProv.InvokeFail(t, cst.ErrCooldownActive, "requestDecryption", acc.ScriptHash())

	// A refused submission does not reset the window: only the first
	// accepted submission counts, so one cooldown after it the provider
	// is admitted again.
	e.advanceChainTime(t, 61_000)
	cProv.Invoke(t, stackitem.Null{}, "submitScore", acc.ScriptHash(), e.encrypt(t, 2))
	cProv.Invoke(t, 2, "requestDecryption", acc.ScriptHash())
}

func TestScoreOption_SetCooldownSeconds(t *testing.T) {
	e := newScoreOptionExecutor(t, 60)
	c := e.contract

	acc, cProv := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")

	cProv.InvokeFail(t, cst.ErrNotOwner, "setCooldownSeconds", 0)
	c.InvokeFail(t, "negative cooldown", "setCooldownSeconds", -1)

	cProv.Invoke(t, stackitem.Null{}, "submitScore", acc.ScriptHash(), e.encrypt(t, 1))
	cProv.InvokeFail(t, cst.ErrCooldownActive, "submitScore", acc.ScriptHash(), e.encrypt(t, 2))

	// The new value applies to checks immediately, recorded timestamps are
	// not rewritten.
	h := c.Invoke(t, stackitem.Null{}, "setCooldownSeconds", 0)
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "CooldownChanged")
	require.Equal(t, stackitem.Make(0), items[0])
	c.Invoke(t, 0, "cooldownSeconds")

	cProv.Invoke(t, stackitem.Null{}, "submitScore", acc.ScriptHash(), e.encrypt(t, 2))
	cProv.Invoke(t, stackitem.Null{}, "submitScore", acc.ScriptHash(), e.encrypt(t, 3))
}

func TestScoreOption_Settlement(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	accA, cA := e.newProvider(t)
	accB, cB := e.newProvider(t)

	c.Invoke(t, 1, "openBatch")
	cA.Invoke(t, stackitem.Null{}, "submitScore", accA.ScriptHash(), e.encrypt(t, 700))
	cB.Invoke(t, stackitem.Null{}, "submitScore", accB.ScriptHash(), e.encrypt(t, 50))
	c.Invoke(t, stackitem.Null{}, "setParameters", e.encrypt(t, 12_500), e.encrypt(t, 1))
	c.Invoke(t, stackitem.Null{}, "closeBatch")

	h := c.Invoke(t, 1, "requestDecryption", e.CommitteeHash)
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "DecryptionRequested")
	require.Equal(t, stackitem.Make(1), items[0])
	require.Equal(t, stackitem.Make(1), items[1])
	bindingHash, err := items[2].TryBytes()
	require.NoError(t, err)
	require.Len(t, bindingHash, 32)

	// The oracle pushes the result back, the contract settles in clear.
	h = e.mock.Invoke(t, stackitem.Null{}, "deliver", 1)
	items = singleEventItems(t, e.CheckHalt(t, h), e.hash, "DecryptionCompleted")
	require.Equal(t, stackitem.Make(1), items[0])
	require.Equal(t, stackitem.Make(1), items[1])
	require.Equal(t, stackitem.Make(750), items[2])
	require.Equal(t, stackitem.Make(12_500), items[3])
	require.Equal(t, stackitem.Make(true), items[4])

	s, err := c.TestInvoke(t, "getDecryptionRequest", 1)
	require.NoError(t, err)
	req, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, stackitem.Make(1), req[0])
	processed, err := req[2].TryBool()
	require.NoError(t, err)
	require.True(t, processed)

	// Each request settles exactly once.
	e.mock.InvokeFail(t, cst.ErrAlreadyProcessed, "deliver", 1)
}

func TestScoreOption_StateMismatch(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	accA, cA := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")
	cA.Invoke(t, stackitem.Null{}, "submitScore", accA.ScriptHash(), e.encrypt(t, 100))
	c.Invoke(t, stackitem.Null{}, "setParameters", e.encrypt(t, 7), e.encrypt(t, 1))

	// Accumulator drifts between request and callback.
	c.Invoke(t, 1, "requestDecryption", e.CommitteeHash)
	cA.Invoke(t, stackitem.Null{}, "submitScore", accA.ScriptHash(), e.encrypt(t, 5))
	e.mock.InvokeFail(t, cst.ErrStateMismatch, "deliver", 1)

	// Parameters drift between request and callback.
	c.Invoke(t, 2, "requestDecryption", e.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "setParameters", e.encrypt(t, 9), e.encrypt(t, 0))
	e.mock.InvokeFail(t, cst.ErrStateMismatch, "deliver", 2)

	// Invalidation is permanent, the requests stay pending forever.
	e.mock.InvokeFail(t, cst.ErrStateMismatch, "deliver", 1)
	s, err := c.TestInvoke(t, "getDecryptionRequest", 1)
	require.NoError(t, err)
	req, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	processed, err := req[2].TryBool()
	require.NoError(t, err)
	require.False(t, processed)

	// A fresh request over the settled state succeeds.
	h := c.Invoke(t, 3, "requestDecryption", e.CommitteeHash)
	e.CheckHalt(t, h)
	h = e.mock.Invoke(t, stackitem.Null{}, "deliver", 3)
	items := singleEventItems(t, e.CheckHalt(t, h), e.hash, "DecryptionCompleted")
	require.Equal(t, stackitem.Make(3), items[0])
	require.Equal(t, stackitem.Make(1), items[1])
	require.Equal(t, stackitem.Make(105), items[2])
	require.Equal(t, stackitem.Make(9), items[3])
	require.Equal(t, stackitem.Make(false), items[4])
}

func TestScoreOption_CallbackSecurity(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	accA, cA := e.newProvider(t)
	c.Invoke(t, 1, "openBatch")
	cA.Invoke(t, stackitem.Null{}, "submitScore", accA.ScriptHash(), e.encrypt(t, 42))
	c.Invoke(t, 1, "requestDecryption", e.CommitteeHash)

	// Only the oracle contract may deliver results.
	c.InvokeFail(t, cst.ErrNotOracle, "onDecryptionResult", 1, []byte{0}, []byte{0})

	// A result for a request this contract never issued is refused before
	// any proof checking.
	e.mock.InvokeFail(t, cst.ErrUnknownRequest, "misdeliver", e.hash, 99, []byte{0}, []byte{0})

	// A result with a proof the oracle does not recognize is refused.
	e.mock.InvokeFail(t, cst.ErrProofVerification, "deliverForged", 1)

	// Pause blocks the callback, the pending request survives.
	c.Invoke(t, stackitem.Null{}, "pause")
	e.mock.InvokeFail(t, cst.ErrPaused, "deliver", 1)
	c.Invoke(t, stackitem.Null{}, "unpause")

	// None of the refused attempts consumed the request.
	h := e.mock.Invoke(t, stackitem.Null{}, "deliver", 1)
	singleEventItems(t, e.CheckHalt(t, h), e.hash, "DecryptionCompleted")

	// Replay of a processed request is refused even through misdelivery.
	e.mock.InvokeFail(t, cst.ErrAlreadyProcessed, "misdeliver", e.hash, 1, []byte{0}, []byte{0})
}

func TestScoreOption_Update(t *testing.T) {
	e := newScoreOptionExecutor(t, 0)
	c := e.contract

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, cst.ErrNotOwner, "update", []byte{}, []byte{}, nil)
}
