package message

import "github.com/chainswap/swapcore/swaperr"

func invalidCommitment() error { return swaperr.New(swaperr.InvalidCommitment) }

func invalidProof() error { return swaperr.New(swaperr.InvalidProof) }

func outOfOrder() error { return swaperr.New(swaperr.OutOfOrder) }
