package btcswap

import (
	"github.com/btcsuite/btcd/wire"

	"github.com/chainswap/swapcore/swap"
)

// FundingTx wraps the externally-funded transaction once observed
// on-chain. It is never constructed by the swap core itself: an external
// wallet builds and broadcasts it, and the core only needs to remember
// which output funds the swap.
type FundingTx struct {
	Tx           *wire.MsgTx
	OutputIndex  uint32
	RedeemScript []byte
}

var _ swap.Fundable[Output] = (*FundingTx)(nil)

func (*FundingTx) Id() swap.TxId { return swap.Funding }

func (f *FundingTx) GetConsumableOutput() (Output, error) {
	out := f.Tx.TxOut[f.OutputIndex]
	return Output{
		OutPoint: wire.OutPoint{
			Hash:  f.Tx.TxHash(),
			Index: f.OutputIndex,
		},
		Value:        out.Value,
		RedeemScript: f.RedeemScript,
	}, nil
}
