package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	scoreOptionPath = "../contracts/scoreoption"
	fheMockPath     = "../internal/testcontracts/fhemock"
)

// scoreOptionExecutor bundles a single-node chain with a deployed ScoreOption
// contract and its mock FHE co-processor. The committee account is the
// contract owner.
type scoreOptionExecutor struct {
	*neotest.Executor

	// contract is the ScoreOption invoker signed by the committee (owner).
	contract *neotest.ContractInvoker
	// mock is the co-processor invoker, used to drive oracle callbacks.
	mock *neotest.ContractInvoker

	hash     util.Uint160
	mockHash util.Uint160
}

func newScoreOptionExecutor(t *testing.T, cooldownSeconds int64) *scoreOptionExecutor {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	ctrMock := neotest.CompileFile(t, e.CommitteeHash, fheMockPath,
		path.Join(fheMockPath, "config.yml"))
	e.DeployContract(t, ctrMock, nil)

	ctr := neotest.CompileFile(t, e.CommitteeHash, scoreOptionPath,
		path.Join(scoreOptionPath, "config.yml"))
	e.DeployContract(t, ctr, []any{e.CommitteeHash, ctrMock.Hash, cooldownSeconds})

	return &scoreOptionExecutor{
		Executor: e,
		contract: e.CommitteeInvoker(ctr.Hash),
		mock:     e.CommitteeInvoker(ctrMock.Hash),
		hash:     ctr.Hash,
		mockHash: ctrMock.Hash,
	}
}

// newProvider creates a fresh funded account, registers it as a score provider
// and returns it together with a contract invoker signed by it.
func (e *scoreOptionExecutor) newProvider(t *testing.T) (neotest.Signer, *neotest.ContractInvoker) {
	acc := e.contract.NewAccount(t)
	e.contract.Invoke(t, stackitem.Null{}, "addProvider", acc.ScriptHash())
	return acc, e.contract.WithSigners(acc)
}

// encrypt produces a mock ciphertext of the value via the co-processor.
func (e *scoreOptionExecutor) encrypt(t *testing.T, value int64) []byte {
	s, err := e.mock.TestInvoke(t, "encrypt", value)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	ct, err := s.Top().Item().TryBytes()
	require.NoError(t, err)
	return ct
}

// advanceChainTime appends an empty block with a timestamp ms milliseconds
// after the current top block.
func (e *scoreOptionExecutor) advanceChainTime(t *testing.T, ms uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = e.TopBlock(t).Timestamp + ms
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// contractEvents filters the execution result's notifications down to those
// emitted by the given contract under the given name.
func contractEvents(aer *state.AppExecResult, hash util.Uint160, name string) []state.NotificationEvent {
	var evs []state.NotificationEvent
	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(hash) && ev.Name == name {
			evs = append(evs, ev)
		}
	}
	return evs
}

// singleEventItems asserts that exactly one notification with the given name
// was emitted by the contract and returns its payload items.
func singleEventItems(t *testing.T, aer *state.AppExecResult, hash util.Uint160, name string) []stackitem.Item {
	evs := contractEvents(aer, hash, name)
	require.Len(t, evs, 1, "expected single %s notification", name)

	items, ok := evs[0].Item.Value().([]stackitem.Item)
	require.True(t, ok)
	return items
}
